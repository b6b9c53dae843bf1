// Package template substitutes {{ token }} markers in file names and file
// contents. There is no expression language: a marker either names a known
// variable and is replaced, or it is kept exactly as written.
package template

import (
	"strings"
	"unicode/utf8"
)

// Position tracks source location for diagnostics.
type Position struct {
	File   string
	Line   int
	Column int
}

// TokenType identifies the type of token.
type TokenType int

// TokenType constants.
const (
	TokenText   TokenType = iota // Literal text
	TokenMarker                  // {{ name }}
	TokenEOF                     // End of input
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "TEXT"
	case TokenMarker:
		return "MARKER"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token.
type Token struct {
	Type TokenType
	// Value is the literal text for TokenText and the trimmed marker body
	// for TokenMarker.
	Value string
	// Raw is the exact input the token was read from, delimiters included.
	Raw string
	Pos Position
}

// Lexer tokenizes template text.
//
// Unlike a strict template lexer it never fails: a "{{" without a matching
// "}}" on the same line is read as literal text and lexing resumes right
// after it, so arbitrary files pass through unchanged.
type Lexer struct {
	input    string
	file     string
	pos      int // current position in input
	line     int // current line number (1-based)
	col      int // current column number (1-based)
	lastLine int // line at start of current token
	lastCol  int // column at start of current token
}

// NewLexer creates a new lexer for the given input. file is only used to
// annotate token positions.
func NewLexer(input, file string) *Lexer {
	return &Lexer{
		input: input,
		file:  file,
		line:  1,
		col:   1,
	}
}

// Tokenize converts the input into a slice of tokens ending with TokenEOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.nextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// Tokens tokenizes s without a file name.
func Tokens(s string) []Token {
	return NewLexer(s, "").Tokenize()
}

func (l *Lexer) nextToken() Token {
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.position()}
	}
	if l.matchString("{{") {
		if tok, ok := l.scanMarker(); ok {
			return tok
		}
		return l.scanBrace()
	}
	return l.scanText()
}

// scanText scans literal text up to the next "{{" or EOF.
func (l *Lexer) scanText() Token {
	l.markStart()
	start := l.pos

	for l.pos < len(l.input) && !l.matchString("{{") {
		l.advance()
	}

	text := l.input[start:l.pos]
	return Token{Type: TokenText, Value: text, Raw: text, Pos: l.startPosition()}
}

// scanBrace consumes the first brace of an unclosed "{{" as text, so that
// "{{{package}}}" still yields a marker for the inner pair.
func (l *Lexer) scanBrace() Token {
	l.markStart()
	start := l.pos
	l.advance()
	text := l.input[start:l.pos]
	return Token{Type: TokenText, Value: text, Raw: text, Pos: l.startPosition()}
}

// scanMarker scans a {{ ... }} marker. The body ends at the first "}}" and
// may not span lines, start with "{" or contain another "{{". Otherwise the
// lexer state is restored and ok is false.
func (l *Lexer) scanMarker() (tok Token, ok bool) {
	saved := *l
	l.markStart()
	start := l.pos

	l.pos += 2
	l.col += 2

	bodyStart := l.pos
	if l.peek() == '{' {
		// "{{{": the marker starts one brace later.
		*l = saved
		return Token{}, false
	}
	for l.pos < len(l.input) {
		switch {
		case l.matchString("}}"):
			body := strings.TrimSpace(l.input[bodyStart:l.pos])
			l.pos += 2
			l.col += 2
			return Token{
				Type:  TokenMarker,
				Value: body,
				Raw:   l.input[start:l.pos],
				Pos:   l.startPosition(),
			}, true
		case l.matchString("{{"), l.peek() == '\n':
			*l = saved
			return Token{}, false
		}
		l.advance()
	}

	*l = saved
	return Token{}, false
}

// peek returns the current rune without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// advance moves to the next rune, updating position tracking.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) matchString(s string) bool {
	return strings.HasPrefix(l.input[l.pos:], s)
}

func (l *Lexer) markStart() {
	l.lastLine = l.line
	l.lastCol = l.col
}

func (l *Lexer) position() Position {
	return Position{File: l.file, Line: l.line, Column: l.col}
}

func (l *Lexer) startPosition() Position {
	return Position{File: l.file, Line: l.lastLine, Column: l.lastCol}
}
