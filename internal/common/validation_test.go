package common

import (
	"testing"

	"github.com/google/uuid"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("phone", "not-a-phone", Required, Phone).
		Field("name", "", Required)

	if !v.HasErrors() {
		t.Fatal("want validation errors")
	}
	msg := v.ErrorMessage()
	if msg == "" {
		t.Fatal("want combined error message")
	}

	if err := ValidateAndReturnError(v); err == nil {
		t.Error("want grpc InvalidArgument error")
	}
}

func TestValidatorPassesValidInput(t *testing.T) {
	v := NewValidator().
		Field("phone", "+84901234567", Required, Phone).
		Field("id", uuid.New().String(), Required, UUID)

	if v.HasErrors() {
		t.Fatalf("unexpected errors: %s", v.ErrorMessage())
	}
	if err := ValidateAndReturnError(v); err != nil {
		t.Errorf("ValidateAndReturnError = %v", err)
	}
}

func TestPhoneRule(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"+84901234567", true},
		{"0901234567", true},
		{"1234567", true},
		{"123456", false},           // too short
		{"+1234567890123456", false}, // too long
		{"090-123-4567", false},      // separators
		{"phone", false},
	}
	for _, tt := range tests {
		err := Phone("phone", tt.value)
		if (err == nil) != tt.ok {
			t.Errorf("Phone(%q) ok = %v, want %v", tt.value, err == nil, tt.ok)
		}
	}
}

func TestMaxLengthRule(t *testing.T) {
	if err := MaxLength("name", "abc", 3); err != nil {
		t.Errorf("MaxLength at limit: %v", err)
	}
	if err := MaxLength("name", "abcd", 3); err == nil {
		t.Error("MaxLength over limit must fail")
	}
	// rune-counted, not byte-counted
	if err := MaxLength("name", "héllo", 5); err != nil {
		t.Errorf("MaxLength with multibyte: %v", err)
	}
}
