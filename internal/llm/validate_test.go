package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "answer_v1",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"answer"},
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
		},
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer":"42"}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`{"answer":`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_SchemaMismatch(t *testing.T) {
	raw := json.RawMessage(`{"answer":42}`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_CheckFailure(t *testing.T) {
	schema := &Schema{
		Name:       "checked_v1",
		Definition: map[string]any{"type": "string"},
		Check: func(raw json.RawMessage) error {
			return errors.New("not good enough")
		},
	}

	err := validateResponse(schema, json.RawMessage(`"schema-valid"`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse from Check, got %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must skip validation, got %v", err)
	}
}
