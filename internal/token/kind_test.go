package token_test

import (
	"testing"

	"lambdalex/internal/source"
	"lambdalex/internal/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.Invalid, "invalid"},
		{token.Keyword, "keyword"},
		{token.Identifier, "identifier"},
		{token.Number, "number"},
		{token.String, "string"},
		{token.Punctuation, "punctuation"},
		{token.Operator, "operator"},
		{token.Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
		if tt.kind <= token.Operator {
			back, ok := token.ParseKind(tt.want)
			if !ok || back != tt.kind {
				t.Errorf("ParseKind(%q) = %v, %v", tt.want, back, ok)
			}
		}
	}
	if _, ok := token.ParseKind("bogus"); ok {
		t.Error("ParseKind accepted an unknown name")
	}
}

func TestTokenValueAndEqual(t *testing.T) {
	num := token.Token{Kind: token.Number, Number: 16, Span: source.Span{Start: 0, End: 3}}
	if v, ok := num.Value().(float64); !ok || v != 16 {
		t.Fatalf("number Value() = %#v", num.Value())
	}
	str := token.Token{Kind: token.String, Text: ""}
	if v, ok := str.Value().(string); !ok || v != "" {
		t.Fatalf("string Value() = %#v", str.Value())
	}

	// спан не участвует в сравнении
	other := token.Token{Kind: token.Number, Number: 16, Span: source.Span{Start: 7, End: 9}}
	if !num.Equal(other) {
		t.Error("expected tokens with different spans to be equal")
	}
	if num.Equal(token.Token{Kind: token.Identifier, Text: "16"}) {
		t.Error("tokens of different kinds must differ")
	}
	if got := num.String(); got != "number 16" {
		t.Errorf("String() = %q", got)
	}
}

func TestLookupKeyword(t *testing.T) {
	for _, kw := range []string{"lambda", "if", "then", "else"} {
		if !token.LookupKeyword(kw) {
			t.Errorf("LookupKeyword(%q) = false", kw)
		}
	}
	for _, s := range []string{"Lambda", "IF", "lamb", "lambdas", "λ", ""} {
		if token.LookupKeyword(s) {
			t.Errorf("LookupKeyword(%q) = true", s)
		}
	}
}

func TestIsPunctuation(t *testing.T) {
	for _, r := range "{}(),;" {
		if !token.IsPunctuation(r) {
			t.Errorf("IsPunctuation(%q) = false", r)
		}
	}
	for _, r := range "[]:.!@" {
		if token.IsPunctuation(r) {
			t.Errorf("IsPunctuation(%q) = true", r)
		}
	}
}
