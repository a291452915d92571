package llm

import "github.com/paperbase/paperbase/constants"

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// structured fields of one document type, as a generic map. We pass this to the
// model as a structured output constraint and also use it locally to validate.
// Every field is optional: the collaborator may omit anything it did not
// recognize in the text.
func BuildDocumentJSONSchema(docType constants.DocumentType) map[string]any {
	var props map[string]any

	switch docType {
	case constants.Invoice:
		props = map[string]any{
			"invoice_no":   strProp(),
			"invoice_date": dateProp(),
			"due_date":     dateProp(),
			"vendor":       strProp(),
			"buyer":        strProp(),
			"amount":       numProp(),
			"tax":          numProp(),
			"currency":     map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"line_items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"description": strProp(),
						"quantity":    numProp(),
						"unit_price":  numProp(),
						"total":       numProp(),
					},
				},
			},
		}
	case constants.Certificate:
		props = map[string]any{
			"certificate_no":   strProp(),
			"certificate_name": strProp(),
			"holder_name":      strProp(),
			"issuer":           strProp(),
			"issue_date":       dateProp(),
			"expiry_date":      dateProp(),
		}
	case constants.Resume:
		props = map[string]any{
			"name":       strProp(),
			"phone":      strProp(),
			"email":      strProp(),
			"summary":    strProp(),
			"skills":     strArrayProp(),
			"education":  strArrayProp(),
			"experience": strArrayProp(),
		}
	case constants.Handwritten:
		props = map[string]any{
			"content": strProp(),
			"summary": strProp(),
			"topics":  strArrayProp(),
		}
	case constants.FinancialReport:
		props = map[string]any{
			"report_title": strProp(),
			"period":       strProp(),
			"company":      strProp(),
			"revenue":      numProp(),
			"expenses":     numProp(),
			"net_profit":   numProp(),
			"currency":     map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		}
	default:
		// "other": no fixed shape, accept whatever the model found
		return map[string]any{
			"type":                 "object",
			"additionalProperties": true,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

// BuildClassificationJSONSchema constrains the classification call to the
// document-type taxonomy.
func BuildClassificationJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_type": map[string]any{
				"type": "string",
				"enum": constants.DocumentTypes(),
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"rationale":  strProp(),
		},
		"required": []string{"document_type"},
	}
}

// SchemaPropertyKeys lists the top-level keys a schema allows; used by the
// lenient sanitize pass. Returns nil for open schemas.
func SchemaPropertyKeys(schemaMap map[string]any) []string {
	props, ok := schemaMap["properties"].(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	return keys
}

func strProp() map[string]any {
	return map[string]any{"type": "string"}
}

func numProp() map[string]any {
	return map[string]any{"type": "number"}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

func strArrayProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}
