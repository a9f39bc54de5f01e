package scanner

import (
	"testing"

	"ember/token"
)

func scanAll(src string) []token.Token {
	s := New(src)
	var toks []token.Token
	for {
		tok := s.ScanToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Error {
			break
		}
	}
	return toks
}

func TestScanOperators(t *testing.T) {
	toks := scanAll("== / = * + > - < != <= >= !")
	want := []token.Kind{
		token.EqualEqual, token.Slash, token.Equal, token.Star, token.Plus,
		token.Greater, token.Minus, token.Less, token.BangEqual,
		token.LessEqual, token.GreaterEqual, token.Bang, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Kind != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Kind, want[i])
		}
	}
}

func TestScanNumbers(t *testing.T) {
	toks := scanAll("123 45.67 0")
	want := []string{"123", "45.67", "0"}
	for i, w := range want {
		if toks[i].Kind != token.Number || toks[i].Lexeme != w {
			t.Errorf("token %d: got %s %q, want Number %q", i, toks[i].Kind, toks[i].Lexeme, w)
		}
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll("var x = foo and bar")
	want := []token.Kind{token.Var, token.Identifier, token.Equal, token.Identifier, token.And, token.Identifier, token.EOF}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScanStringLiteralWithEmbeddedNewline(t *testing.T) {
	toks := scanAll("\"hello\nworld\"")
	if len(toks) != 2 || toks[0].Kind != token.String {
		t.Fatalf("got %v, want a single String token then EOF", toks)
	}
	if toks[0].Lexeme != "\"hello\nworld\"" {
		t.Errorf("lexeme = %q", toks[0].Lexeme)
	}
	if toks[1].Line != 2 {
		t.Errorf("EOF line = %d, want 2 (newline inside string must advance the line counter)", toks[1].Line)
	}
}

func TestScanUnterminatedStringIsError(t *testing.T) {
	toks := scanAll(`"abc`)
	if len(toks) != 1 || toks[0].Kind != token.Error {
		t.Fatalf("got %v, want a single Error token", toks)
	}
}

func TestScanSkipsLineComments(t *testing.T) {
	toks := scanAll("1 // a comment\n2")
	want := []string{"1", "2"}
	var nums []token.Token
	for _, tok := range toks {
		if tok.Kind == token.Number {
			nums = append(nums, tok)
		}
	}
	if len(nums) != 2 || nums[0].Lexeme != want[0] || nums[1].Lexeme != want[1] {
		t.Errorf("got %v, want numbers %v", nums, want)
	}
	if nums[1].Line != 2 {
		t.Errorf("second number line = %d, want 2", nums[1].Line)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	toks := scanAll("@")
	if len(toks) != 1 || toks[0].Kind != token.Error {
		t.Fatalf("got %v, want a single Error token", toks)
	}
}

func TestEmptySourceYieldsImmediateEOF(t *testing.T) {
	toks := scanAll("")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("got %v, want a single EOF token", toks)
	}
}
