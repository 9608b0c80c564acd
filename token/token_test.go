package token

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		lexeme string
	}{
		{name: "plus", kind: Plus, lexeme: "+"},
		{name: "identifier", kind: Ident, lexeme: "myVar"},
		{name: "int literal", kind: Int, lexeme: "42"},
		{name: "star", kind: Star, lexeme: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.kind, tt.lexeme, 1, 0)
			if got.Kind != tt.kind || got.Lexeme != tt.lexeme {
				t.Errorf("New() = %v, want kind=%v lexeme=%q", got, tt.kind, tt.lexeme)
			}
		})
	}
}

func TestKeywordsTrueFalse(t *testing.T) {
	if kind, ok := Keywords["true"]; !ok || kind != True {
		t.Errorf("Keywords[\"true\"] = %v, %v; want True, true", kind, ok)
	}
	if kind, ok := Keywords["false"]; !ok || kind != False {
		t.Errorf("Keywords[\"false\"] = %v, %v; want False, true", kind, ok)
	}
}
