package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LeftParen, "LeftParen"},
		{EqualEqual, "EqualEqual"},
		{EOF, "EOF"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKeywordsMatchReservedWords(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}

	if len(Keywords) != len(want) {
		t.Fatalf("Keywords has %d entries, want %d", len(Keywords), len(want))
	}
	for _, w := range want {
		if _, ok := Keywords[w]; !ok {
			t.Errorf("Keywords is missing %q", w)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Identifier, Lexeme: "foo", Line: 3}
	want := `Identifier "foo"`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
