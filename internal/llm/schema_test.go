package llm

import (
	"sort"
	"testing"

	"github.com/paperbase/paperbase/constants"
)

func TestBuildDocumentJSONSchemaClosedForKnownTypes(t *testing.T) {
	for _, dt := range []constants.DocumentType{
		constants.Invoice,
		constants.Certificate,
		constants.Resume,
		constants.Handwritten,
		constants.FinancialReport,
	} {
		schema := BuildDocumentJSONSchema(dt)
		if schema["additionalProperties"] != false {
			t.Errorf("%s: schema must reject unknown keys", dt)
		}
		if _, ok := schema["required"]; ok {
			t.Errorf("%s: fields must all be optional", dt)
		}
		if keys := SchemaPropertyKeys(schema); len(keys) == 0 {
			t.Errorf("%s: schema has no properties", dt)
		}
	}
}

func TestBuildDocumentJSONSchemaOtherIsOpen(t *testing.T) {
	schema := BuildDocumentJSONSchema(constants.Other)
	if schema["additionalProperties"] != true {
		t.Error("other schema must accept arbitrary keys")
	}
	if keys := SchemaPropertyKeys(schema); keys != nil {
		t.Errorf("open schema must report nil keys, got %v", keys)
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildDocumentJSONSchema(constants.Invoice)

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid subset", `{"invoice_no":"INV-1","amount":500,"currency":"USD"}`, false},
		{"empty object", `{}`, false},
		{"unknown key", `{"made_up":"x"}`, true},
		{"wrong type", `{"amount":"five hundred"}`, true},
		{"bad date", `{"invoice_date":"01/02/2024"}`, true},
		{"bad currency", `{"currency":"US"}`, true},
		{"line items", `{"line_items":[{"description":"widget","quantity":2,"unit_price":250,"total":500}]}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClassificationSchemaRequiresTaxonomyLabel(t *testing.T) {
	schema := BuildClassificationJSONSchema()

	if err := ValidateJSONAgainstSchema(schema, []byte(`{"document_type":"invoice","confidence":0.9}`)); err != nil {
		t.Errorf("valid classification rejected: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"document_type":"shopping_list"}`)); err == nil {
		t.Error("label outside taxonomy accepted")
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"confidence":0.9}`)); err == nil {
		t.Error("classification without document_type accepted")
	}
}

func TestSanitizeAgainstKeys(t *testing.T) {
	raw := []byte(`{"invoice_no":"  INV-1  ","vendor":null,"buyer":"","made_up":"x","amount":500}`)
	keys := SchemaPropertyKeys(BuildDocumentJSONSchema(constants.Invoice))

	cleaned, dropped, err := SanitizeAgainstKeys(raw, keys)
	if err != nil {
		t.Fatalf("SanitizeAgainstKeys: %v", err)
	}

	if err := ValidateJSONAgainstSchema(BuildDocumentJSONSchema(constants.Invoice), cleaned); err != nil {
		t.Errorf("cleaned output still invalid: %v", err)
	}

	sort.Strings(dropped)
	want := []string{"buyer(empty)", "made_up(unknown)", "vendor(null)"}
	if len(dropped) != len(want) {
		t.Fatalf("dropped = %v, want %v", dropped, want)
	}
	for i := range want {
		if dropped[i] != want[i] {
			t.Errorf("dropped[%d] = %q, want %q", i, dropped[i], want[i])
		}
	}
}

func TestSanitizeOpenSchemaOnlyCleansValues(t *testing.T) {
	cleaned, dropped, err := SanitizeAgainstKeys([]byte(`{"anything":"goes","blank":""}`), nil)
	if err != nil {
		t.Fatalf("SanitizeAgainstKeys: %v", err)
	}
	if len(dropped) != 1 || dropped[0] != "blank(empty)" {
		t.Errorf("dropped = %v, want only the empty value", dropped)
	}
	if string(cleaned) != `{"anything":"goes"}` {
		t.Errorf("cleaned = %s", cleaned)
	}
}
