package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestParseErrorFlattensFieldErrors(t *testing.T) {
	v := validator.New()
	payload := struct {
		Name string `validate:"required"`
		Page int    `validate:"min=1"`
	}{}
	err := v.Struct(payload)
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	parsed := ParseError(err)
	if len(parsed) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(parsed), parsed)
	}
	if _, ok := parsed["Name"]; !ok {
		t.Fatalf("missing entry for Name: %v", parsed)
	}
}

func TestParseErrorWrapsPlainErrors(t *testing.T) {
	parsed := ParseError(errors.New("boom"))
	if parsed["error"] != "boom" {
		t.Fatalf("plain errors should land under the error key, got %v", parsed)
	}
}
