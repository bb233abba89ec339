package ai

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestUnmarshalFlexible(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			name:  "standard json",
			input: `{"entities": ["a", "b"]}`,
			want:  map[string]any{"entities": []any{"a", "b"}},
		},
		{
			name:  "surrounding whitespace",
			input: "\n\t {\"ok\": true} \n",
			want:  map[string]any{"ok": true},
		},
		{
			name:  "double encoded string",
			input: `"{\"nested\": 1}"`,
			want:  map[string]any{"nested": float64(1)},
		},
		{
			name:  "trailing comma repaired",
			input: `{"a": 1, "b": 2,}`,
			want:  map[string]any{"a": float64(1), "b": float64(2)},
		},
		{
			name:  "unquoted keys repaired",
			input: `{a: 1}`,
			want:  map[string]any{"a": float64(1)},
		},
		{
			name:  "duplicate leading brace",
			input: `{{"a": 1}`,
			want:  map[string]any{"a": float64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			if err := UnmarshalFlexible(tt.input, &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUnmarshalFlexible_TargetMismatch(t *testing.T) {
	var out map[string]any
	if err := UnmarshalFlexible(`[1, 2, 3]`, &out); err == nil {
		t.Fatal("expected error for array into map")
	}
}

func TestStripDuplicateLeadingBrace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{{"a": 1}`, `{"a": 1}`},
		{`{ {"a": 1}`, `{"a": 1}`},
		{`{"a": 1}`, `{"a": 1}`},
		{`plain`, `plain`},
	}

	for _, tt := range tests {
		if got := stripDuplicateLeadingBrace(tt.in); got != tt.want {
			t.Fatalf("expected %q for %q, got %q", tt.want, tt.in, got)
		}
	}
}

func TestGenerateSchema(t *testing.T) {
	type payload struct {
		Entities []string `json:"entities"`
		Count    int      `json:"count"`
	}

	schema := GenerateSchema(payload{})
	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	for _, field := range []string{"entities", "count", "properties"} {
		if !strings.Contains(string(data), field) {
			t.Fatalf("expected schema to mention %q: %s", field, data)
		}
	}

	// Pointer and value inputs produce the same schema.
	ptrData, err := json.Marshal(GenerateSchema(&payload{}))
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	if string(data) != string(ptrData) {
		t.Fatal("expected identical schemas for value and pointer")
	}
}
