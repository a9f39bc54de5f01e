// Package scanner turns Ember source text into Tokens on demand. Unlike
// the teacher's lexer, which scans an entire source string up front into a
// slice, Scanner produces exactly one Token per call to ScanToken and never
// buffers more than the characters of the token currently being built —
// the compiler's Pratt parser pulls tokens one at a time and never needs
// to look further ahead than "current".
package scanner

import "ember/token"

// Scanner holds the scan position within a single source string.
type Scanner struct {
	source string
	start  int // start of the lexeme currently being scanned
	pos    int // index of the next unread byte
	line   int
}

// New creates a Scanner positioned at the beginning of source.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func (s *Scanner) isAtEnd() bool { return s.pos >= len(s.source) }

// advance consumes and returns the next byte.
func (s *Scanner) advance() byte {
	c := s.source[s.pos]
	s.pos++
	return c
}

// peek returns the next unread byte without consuming it, or 0 at EOF.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.pos]
}

// peekNext looks one byte past peek, or 0 if that is past EOF.
func (s *Scanner) peekNext() byte {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}

// matchChar consumes the next byte only if it equals c.
func (s *Scanner) matchChar(c byte) bool {
	if s.isAtEnd() || s.source[s.pos] != c {
		return false
	}
	s.pos++
	return true
}

func (s *Scanner) makeToken(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Lexeme: s.source[s.start:s.pos], Line: s.line}
}

func (s *Scanner) errorToken(message string) token.Token {
	return token.Token{Kind: token.Error, Lexeme: message, Line: s.line}
}

// skipWhitespace consumes spaces, tabs, carriage returns, newlines (which
// bump the line counter), and "// line comments" up to but not including
// the newline that ends them.
func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.isAtEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifierKind() token.Kind {
	text := s.source[s.start:s.pos]
	if kind, ok := token.Keywords[text]; ok {
		return kind
	}
	return token.Identifier
}

func (s *Scanner) identifier() token.Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(s.identifierKind())
}

func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return s.makeToken(token.Number)
}

// str scans a "..." string literal. Embedded newlines are legal and bump
// the line counter; an unterminated string yields an Error token.
func (s *Scanner) str() token.Token {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		return s.errorToken("Unterminated string.")
	}
	s.advance() // closing quote
	return s.makeToken(token.String)
}

// ScanToken returns the next Token in the source, skipping whitespace and
// comments first. It never returns more than one Token per call and never
// retains state beyond the current scan position and line counter.
func (s *Scanner) ScanToken() token.Token {
	s.skipWhitespace()
	s.start = s.pos

	if s.isAtEnd() {
		return s.makeToken(token.EOF)
	}

	c := s.advance()
	switch {
	case isAlpha(c):
		return s.identifier()
	case isDigit(c):
		return s.number()
	}

	switch c {
	case '(':
		return s.makeToken(token.LeftParen)
	case ')':
		return s.makeToken(token.RightParen)
	case '{':
		return s.makeToken(token.LeftBrace)
	case '}':
		return s.makeToken(token.RightBrace)
	case ';':
		return s.makeToken(token.Semicolon)
	case ',':
		return s.makeToken(token.Comma)
	case '-':
		return s.makeToken(token.Minus)
	case '+':
		return s.makeToken(token.Plus)
	case '/':
		return s.makeToken(token.Slash)
	case '*':
		return s.makeToken(token.Star)
	case '!':
		if s.matchChar('=') {
			return s.makeToken(token.BangEqual)
		}
		return s.makeToken(token.Bang)
	case '=':
		if s.matchChar('=') {
			return s.makeToken(token.EqualEqual)
		}
		return s.makeToken(token.Equal)
	case '<':
		if s.matchChar('=') {
			return s.makeToken(token.LessEqual)
		}
		return s.makeToken(token.Less)
	case '>':
		if s.matchChar('=') {
			return s.makeToken(token.GreaterEqual)
		}
		return s.makeToken(token.Greater)
	case '"':
		return s.str()
	}

	return s.errorToken("Unexpected character: " + string(c) + ".")
}
