package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_PlainText(t *testing.T) {
	input := "name = example"
	tokens := NewLexer(input, "setup.cfg").Tokenize()

	require.Len(t, tokens, 2, "expected 2 tokens") // TEXT + EOF

	assert.Equal(t, TokenText, tokens[0].Type, "expected TEXT")
	assert.Equal(t, input, tokens[0].Value, "expected input value")
	assert.Equal(t, TokenEOF, tokens[1].Type, "expected EOF")
}

func TestLexer_SimpleMarker(t *testing.T) {
	input := "import {{ package }}.app"
	tokens := NewLexer(input, "app.py").Tokenize()

	expected := []struct {
		typ TokenType
		val string
	}{
		{TokenText, "import "},
		{TokenMarker, "package"},
		{TokenText, ".app"},
		{TokenEOF, ""},
	}

	require.Len(t, tokens, len(expected), "wrong number of tokens")

	for i, exp := range expected {
		assert.Equal(t, exp.typ, tokens[i].Type, "token[%d] type", i)
		if exp.typ != TokenEOF {
			assert.Equal(t, exp.val, tokens[i].Value, "token[%d] value", i)
		}
	}
	assert.Equal(t, "{{ package }}", tokens[1].Raw)
}

func TestLexer_AdjacentMarkers(t *testing.T) {
	tokens := NewLexer("{{a}}{{b}}", "").Tokenize()

	require.Len(t, tokens, 3)
	assert.Equal(t, TokenMarker, tokens[0].Type)
	assert.Equal(t, "a", tokens[0].Value)
	assert.Equal(t, TokenMarker, tokens[1].Type)
	assert.Equal(t, "b", tokens[1].Value)
}

func TestLexer_UnclosedMarker(t *testing.T) {
	input := "prefix {{ package and the rest"
	tokens := NewLexer(input, "").Tokenize()

	require.Len(t, tokens, 4, "TEXT + TEXT + TEXT + EOF")
	assert.Equal(t, "prefix ", tokens[0].Value)
	assert.Equal(t, TokenText, tokens[1].Type)
	assert.Equal(t, "{", tokens[1].Value)
	assert.Equal(t, TokenText, tokens[2].Type)
	assert.Equal(t, "{ package and the rest", tokens[2].Value)
}

func TestLexer_UnclosedMarkerResumes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		marker string
		line   int
		column int
	}{
		{"closer on a later line", "a {{ b\n{{package}}", "package", 2, 1},
		{"nested opener", "a {{ b {{package}}", "package", 1, 8},
		{"triple brace", "{{{package}}}", "package", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var markers []Token
			for _, tok := range NewLexer(tt.input, "").Tokenize() {
				if tok.Type == TokenMarker {
					markers = append(markers, tok)
				}
			}

			require.Len(t, markers, 1)
			assert.Equal(t, tt.marker, markers[0].Value)
			assert.Equal(t, tt.line, markers[0].Pos.Line)
			assert.Equal(t, tt.column, markers[0].Pos.Column)
		})
	}
}

func TestLexer_MarkerEndsAtFirstCloser(t *testing.T) {
	tokens := NewLexer("[]P{{1, 2}, {3, 4}} {{package}}", "").Tokenize()

	require.Len(t, tokens, 5)
	assert.Equal(t, "[]P", tokens[0].Value)
	assert.Equal(t, TokenMarker, tokens[1].Type)
	assert.Equal(t, "{{1, 2}, {3, 4}}", tokens[1].Raw)
	assert.Equal(t, " ", tokens[2].Value)
	assert.Equal(t, TokenMarker, tokens[3].Type)
	assert.Equal(t, "package", tokens[3].Value)
}

func TestTokens(t *testing.T) {
	tokens := Tokens("x {{ package }}")

	require.Len(t, tokens, 3)
	assert.Equal(t, TokenMarker, tokens[1].Type)
	assert.Equal(t, "package", tokens[1].Value)
	assert.Empty(t, tokens[1].Pos.File)
}

func TestLexer_NestedBraces(t *testing.T) {
	input := `{{ {"key": "value"} }}`
	tokens := NewLexer(input, "").Tokenize()

	require.Len(t, tokens, 2, "expected 2 tokens") // MARKER + EOF
	assert.Equal(t, TokenMarker, tokens[0].Type)
	assert.Equal(t, `{"key": "value"}`, tokens[0].Value)
	assert.Equal(t, input, tokens[0].Raw)
}

func TestLexer_PositionTracking(t *testing.T) {
	input := "line1\nline2\n  {{ package }}"
	tokens := NewLexer(input, "README.md").Tokenize()

	marker := tokens[1]
	require.Equal(t, TokenMarker, marker.Type)
	assert.Equal(t, "README.md", marker.Pos.File)
	assert.Equal(t, 3, marker.Pos.Line)
	assert.Equal(t, 3, marker.Pos.Column)
}

func TestLexer_WhitespaceHandling(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"{{  x  }}", "x"},
		{"{{x}}", "x"},
		{"{{\tx\t}}", "x"},
		{"{{ }}", ""},
	}

	for _, tt := range tests {
		tokens := NewLexer(tt.input, "").Tokenize()
		require.Equal(t, TokenMarker, tokens[0].Type, "input %q", tt.input)
		assert.Equal(t, tt.expected, tokens[0].Value, "input %q", tt.input)
		assert.Equal(t, tt.input, tokens[0].Raw, "input %q", tt.input)
	}
}

func TestLexer_MultibyteText(t *testing.T) {
	input := "héllo {{ package }} wörld"
	tokens := NewLexer(input, "").Tokenize()

	require.Len(t, tokens, 4)
	assert.Equal(t, "héllo ", tokens[0].Value)
	assert.Equal(t, 7, tokens[1].Pos.Column)
	assert.Equal(t, " wörld", tokens[2].Value)
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "TEXT", TokenText.String())
	assert.Equal(t, "MARKER", TokenMarker.String())
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "UNKNOWN", TokenType(42).String())
}
