package parse

import (
	"fmt"
	"strings"
	"unicode"
)

// lexer walks prefab source text rune by rune, tracking line and column so
// parse errors can point at the offending spot.
type lexer struct {
	src  []rune
	off  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), line: 1, col: 1}
}

func (l *lexer) pos() Pos {
	return Pos{Line: l.line, Col: l.col}
}

func (l *lexer) peek() rune {
	if l.off >= len(l.src) {
		return 0
	}
	return l.src[l.off]
}

func (l *lexer) peekAt(n int) rune {
	if l.off+n >= len(l.src) {
		return 0
	}
	return l.src[l.off+n]
}

func (l *lexer) advance() rune {
	r := l.src[l.off]
	l.off++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) skipSpace() {
	for l.off < len(l.src) {
		r := l.peek()
		if unicode.IsSpace(r) {
			l.advance()
			continue
		}
		// line comments
		if r == '/' && l.peekAt(1) == '/' {
			for l.off < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		break
	}
}

// next produces the next token. Identifiers may contain '.', '/' and '-'
// after the first rune so bare prefab paths like `sprites/bird.prefab` lex as
// a single token.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	pos := l.pos()
	if l.off >= len(l.src) {
		return token{kind: tokEOF, pos: pos}, nil
	}

	r := l.peek()
	switch {
	case r == '{':
		l.advance()
		return token{kind: tokLBrace, text: "{", pos: pos}, nil
	case r == '}':
		l.advance()
		return token{kind: tokRBrace, text: "}", pos: pos}, nil
	case r == '(':
		l.advance()
		return token{kind: tokLParen, text: "(", pos: pos}, nil
	case r == ')':
		l.advance()
		return token{kind: tokRParen, text: ")", pos: pos}, nil
	case r == '[':
		l.advance()
		return token{kind: tokLBracket, text: "[", pos: pos}, nil
	case r == ']':
		l.advance()
		return token{kind: tokRBracket, text: "]", pos: pos}, nil
	case r == ',':
		l.advance()
		return token{kind: tokComma, text: ",", pos: pos}, nil
	case r == '!':
		l.advance()
		return token{kind: tokBang, text: "!", pos: pos}, nil
	case r == ':':
		l.advance()
		if l.peek() == ':' {
			l.advance()
			return token{kind: tokDoubleColon, text: "::", pos: pos}, nil
		}
		return token{kind: tokColon, text: ":", pos: pos}, nil
	case r == '.':
		if l.peekAt(1) == '.' {
			l.advance()
			l.advance()
			return token{kind: tokDotDot, text: "..", pos: pos}, nil
		}
		return token{}, fmt.Errorf("%s: unexpected '.'", pos)
	case r == '\'':
		return l.lexChar(pos)
	case r == '"':
		return l.lexString(pos)
	case r == '-' || unicode.IsDigit(r):
		return l.lexNumber(pos)
	case unicode.IsLetter(r) || r == '_':
		return l.lexIdent(pos)
	}
	return token{}, fmt.Errorf("%s: unexpected character %q", pos, r)
}

func (l *lexer) lexChar(pos Pos) (token, error) {
	l.advance() // opening quote
	if l.off >= len(l.src) {
		return token{}, fmt.Errorf("%s: unterminated char literal", pos)
	}
	c := l.advance()
	if l.off >= len(l.src) || l.peek() != '\'' {
		return token{}, fmt.Errorf("%s: char literal must hold a single character", pos)
	}
	l.advance() // closing quote
	return token{kind: tokChar, text: string(c), pos: pos}, nil
}

// lexString reads a double-quoted literal. The token text carries the
// interior with the surrounding quotes already stripped. Escapes are not part
// of the grammar.
func (l *lexer) lexString(pos Pos) (token, error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		if l.off >= len(l.src) {
			return token{}, fmt.Errorf("%s: unterminated string literal", pos)
		}
		r := l.advance()
		if r == '"' {
			break
		}
		b.WriteRune(r)
	}
	return token{kind: tokString, text: b.String(), pos: pos}, nil
}

func (l *lexer) lexNumber(pos Pos) (token, error) {
	var b strings.Builder
	if l.peek() == '-' {
		b.WriteRune(l.advance())
	}
	digits := 0
	for l.off < len(l.src) && unicode.IsDigit(l.peek()) {
		b.WriteRune(l.advance())
		digits++
	}
	if digits == 0 {
		return token{}, fmt.Errorf("%s: malformed number", pos)
	}
	// a single '.' followed by a digit makes this a float; '..' belongs to a
	// surrounding range literal
	if l.peek() == '.' && unicode.IsDigit(l.peekAt(1)) {
		b.WriteRune(l.advance())
		for l.off < len(l.src) && unicode.IsDigit(l.peek()) {
			b.WriteRune(l.advance())
		}
		return token{kind: tokFloat, text: b.String(), pos: pos}, nil
	}
	return token{kind: tokInt, text: b.String(), pos: pos}, nil
}

func (l *lexer) lexIdent(pos Pos) (token, error) {
	var b strings.Builder
	b.WriteRune(l.advance())
	for l.off < len(l.src) {
		r := l.peek()
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '/' || r == '-' {
			b.WriteRune(l.advance())
			continue
		}
		// a dot continues the identifier only when it is not the start of a
		// '..' range operator
		if r == '.' && l.peekAt(1) != '.' && (unicode.IsLetter(l.peekAt(1)) || unicode.IsDigit(l.peekAt(1))) {
			b.WriteRune(l.advance())
			continue
		}
		break
	}
	return token{kind: tokIdent, text: b.String(), pos: pos}, nil
}
