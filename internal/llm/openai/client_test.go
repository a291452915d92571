package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/llm"
)

func chatReply(t *testing.T, content string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestExtractFieldsInvoice(t *testing.T) {
	var gotAuth string
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		chatReply(t, `{"invoice_no":"INV-42","amount":500,"currency":"USD"}`)(w, r)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL, Model: "gpt-4o-mini"}, nil)
	fields, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		OCRText:      "INVOICE INV-42\nTotal: $500",
		DocumentType: string(constants.Invoice),
	})
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotReq["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v", gotReq["model"])
	}

	var parsed map[string]any
	if err := json.Unmarshal(fields, &parsed); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}
	if parsed["invoice_no"] != "INV-42" {
		t.Errorf("invoice_no = %v", parsed["invoice_no"])
	}
	if parsed["amount"] != float64(500) {
		t.Errorf("amount = %v, want 500", parsed["amount"])
	}
}

func TestExtractFieldsLenientDropsUnknownKeys(t *testing.T) {
	srv := httptest.NewServer(chatReply(t,
		`{"invoice_no":"INV-1","made_up_field":"x","vendor":null}`))
	defer srv.Close()

	c := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL, Lenient: true}, nil)
	fields, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		OCRText:      "INVOICE",
		DocumentType: string(constants.Invoice),
	})
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(fields, &parsed); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}
	if _, ok := parsed["made_up_field"]; ok {
		t.Error("unknown key survived lenient sanitize")
	}
	if _, ok := parsed["vendor"]; ok {
		t.Error("null value survived lenient sanitize")
	}
	if parsed["invoice_no"] != "INV-1" {
		t.Errorf("invoice_no = %v", parsed["invoice_no"])
	}
}

func TestExtractFieldsStrictRejectsUnknownKeys(t *testing.T) {
	srv := httptest.NewServer(chatReply(t, `{"made_up_field":"x"}`))
	defer srv.Close()

	c := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL, Lenient: false}, nil)
	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		OCRText:      "INVOICE",
		DocumentType: string(constants.Invoice),
	})
	if err == nil {
		t.Fatal("want schema validation error in strict mode")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("err = %v", err)
	}
}

func TestExtractFieldsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		OCRText:      "INVOICE",
		DocumentType: string(constants.Invoice),
	})
	if err == nil {
		t.Fatal("want error on non-2xx response")
	}
}

func TestClassify(t *testing.T) {
	srv := httptest.NewServer(chatReply(t,
		`{"document_type":"invoice","confidence":0.93,"rationale":"totals and line items"}`))
	defer srv.Close()

	c := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	cls, err := c.Classify(context.Background(), "INVOICE\nTotal: $500")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if cls.DocumentType != "invoice" {
		t.Errorf("document_type = %q", cls.DocumentType)
	}
	if cls.Confidence != 0.93 {
		t.Errorf("confidence = %v", cls.Confidence)
	}
}

func TestClassifyRejectsUnknownLabel(t *testing.T) {
	srv := httptest.NewServer(chatReply(t, `{"document_type":"shopping_list"}`))
	defer srv.Close()

	c := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	if _, err := c.Classify(context.Background(), "milk, eggs"); err == nil {
		t.Fatal("want validation error for label outside the taxonomy")
	}
}
