package syntax

import "testing"

func TestTokenNames(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if tok.String() == "" {
			t.Errorf("token %d has no name", tok)
		}
		if tok.Debug() == "" {
			t.Errorf("token %d has no table form", tok)
		}
	}
	if got := Token(99).String(); got != "token(99)" {
		t.Errorf("Token(99).String() = %q", got)
	}
}

func TestTokenDebug(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_IntType, "Type(Int)"},
		{_FloatType, "Type(Float)"},
		{_Return, "Return"},
		{_Name, "Identifier"},
		{_IntLit, "LiteralInt"},
		{_FloatLit, "LiteralFloat"},
		{_Lparen, "Symbol(LeftParen)"},
		{_Rbrace, "Symbol(RightCurly)"},
		{_Semi, "Symbol(Semicolon)"},
		{_Assign, "Symbol(Equal)"},
		{_Div, "Symbol(Divide)"},
	}
	for _, tt := range tests {
		if got := tt.tok.Debug(); got != tt.want {
			t.Errorf("%s.Debug() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		kinds := 0
		for _, is := range []bool{tok.IsType(), tok.IsLiteral(), tok.IsSymbol(), tok.IsEOF(), tok == _Name, tok == _Return} {
			if is {
				kinds++
			}
		}
		if kinds != 1 {
			t.Errorf("%s belongs to %d categories, want 1", tok.Debug(), kinds)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Token
	}{
		{"int", _IntType},
		{"float", _FloatType},
		{"return", _Return},
		{"x", _Name},
		{"Int", _Name},
		{"ints", _Name},
		{"_", _Name},
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.ident); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %s, want %s", tt.ident, got.Debug(), tt.want.Debug())
		}
	}
}

func TestSymbolsAreSymbols(t *testing.T) {
	for ch, tok := range symbols {
		if !tok.IsSymbol() {
			t.Errorf("%q maps to non-symbol %s", ch, tok.Debug())
		}
		if tok.String() != string(ch) {
			t.Errorf("%q maps to %s", ch, tok)
		}
	}
}

func TestItemString(t *testing.T) {
	if got := (Item{Tok: _Name, Lit: "x"}).String(); got != `Identifier "x"` {
		t.Errorf("Item.String() = %q", got)
	}
	if got := (Item{}).String(); got != "end of input" {
		t.Errorf("EOF Item.String() = %q", got)
	}
}
