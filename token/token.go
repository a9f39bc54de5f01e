// Package token defines the closed set of lexical token kinds produced by
// the scanner and consumed one at a time by the compiler's Pratt parser.
package token

import "fmt"

// Kind classifies a Token. The zero value is LeftParen; EOF and Error are
// ordinary members of the set like any other.
type Kind int

const (
	// single-character punctuation
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Semicolon
	Minus
	Plus
	Slash
	Star

	// one or two character operators
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// control
	Error
	EOF
)

// Keywords maps reserved identifier spellings to their Kind. Anything not
// found here that starts with a letter or underscore scans as Identifier.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

var names = map[Kind]string{
	LeftParen: "LeftParen", RightParen: "RightParen",
	LeftBrace: "LeftBrace", RightBrace: "RightBrace",
	Comma: "Comma", Semicolon: "Semicolon",
	Minus: "Minus", Plus: "Plus", Slash: "Slash", Star: "Star",
	Bang: "Bang", BangEqual: "BangEqual",
	Equal: "Equal", EqualEqual: "EqualEqual",
	Greater: "Greater", GreaterEqual: "GreaterEqual",
	Less: "Less", LessEqual: "LessEqual",
	Identifier: "Identifier", String: "String", Number: "Number",
	And: "And", Class: "Class", Else: "Else", False: "False",
	For: "For", Fun: "Fun", If: "If", Nil: "Nil", Or: "Or",
	Print: "Print", Return: "Return", Super: "Super", This: "This",
	True: "True", Var: "Var", While: "While",
	Error: "Error", EOF: "EOF",
}

// String returns a human-readable name for debugging and error messages.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is the unit the scanner produces and the parser consumes. The
// parser holds tokens in its two-slot lookbehind (current, previous) and
// keeps local-variable name tokens in its locals table; Lexeme references
// the original source string rather than a copy.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// String renders a Token for debug output and panic/error messages.
func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
