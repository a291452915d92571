package constants

import "testing"

func TestCanonicalizeType(t *testing.T) {
	tests := []struct {
		input string
		want  DocumentType
		ok    bool
	}{
		{"invoice", Invoice, true},
		{"  Invoice  ", Invoice, true},
		{"RECEIPT", Invoice, true},
		{"bill", Invoice, true},
		{"cv", Resume, true},
		{"curriculum vitae", Resume, true},
		{"diploma", Certificate, true},
		{"note", Handwritten, true},
		{"balance sheet", FinancialReport, true},
		{"financial_report", FinancialReport, true},
		{"other", Other, true},
		{"", Other, false},
		{"shopping_list", Other, false},
	}
	for _, tt := range tests {
		got, ok := CanonicalizeType(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalizeType(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDocumentTypesIncludesWholeTaxonomy(t *testing.T) {
	got := DocumentTypes()
	if len(got) != 6 {
		t.Fatalf("taxonomy has %d entries, want 6", len(got))
	}
	seen := make(map[string]bool, len(got))
	for _, s := range got {
		seen[s] = true
	}
	for _, want := range []DocumentType{Invoice, Certificate, Resume, Handwritten, FinancialReport, Other} {
		if !seen[string(want)] {
			t.Errorf("taxonomy missing %q", want)
		}
	}
}
