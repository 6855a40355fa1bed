package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tokenize(t *testing.T, source string) []Element {
	t.Helper()
	elements, err := NewLexer(source, zap.NewNop()).Tokenize()
	require.NoError(t, err)
	return elements
}

func TestLexer_Tokenize_PlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple text", "Hello, world!"},
		{"multiline text", "Line 1\nLine 2\nLine 3"},
		{"lone braces", "a { b } c % d"},
		{"text with special characters", "Hello <world> & \"friends\"!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := tokenize(t, tt.input)
			require.Len(t, elements, 1)
			assert.Equal(t, ElementKindText, elements[0].Kind)
			assert.Equal(t, tt.input, elements[0].Text)
			assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, elements[0].Position)
		})
	}

	t.Run("empty string", func(t *testing.T) {
		assert.Empty(t, tokenize(t, ""))
	})
}

func TestLexer_Tokenize_Output(t *testing.T) {
	elements := tokenize(t, "a {{ x }} b")
	require.Len(t, elements, 3)

	assert.Equal(t, ElementKindText, elements[0].Kind)
	assert.Equal(t, "a ", elements[0].Text)

	out := elements[1]
	assert.Equal(t, ElementKindOutput, out.Kind)
	assert.Equal(t, "{{ x }}", out.Raw)
	assert.Equal(t, Position{Offset: 2, Line: 1, Column: 3}, out.Position)
	require.Len(t, out.Args, 1)
	assert.Equal(t, Token{Type: TokenTypeIdentifier, Value: "x", Position: Position{Offset: 5, Line: 1, Column: 6}}, out.Args[0])

	assert.Equal(t, " b", elements[2].Text)
	assert.Equal(t, Position{Offset: 9, Line: 1, Column: 10}, elements[2].Position)
}

func TestLexer_Tokenize_Tags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tagName  string
		argTypes []TokenType
		args     []string
	}{
		{
			name:     "condition",
			input:    "{% if a == 1 %}",
			tagName:  "if",
			argTypes: []TokenType{TokenTypeIdentifier, TokenTypeOperator, TokenTypeNumber},
			args:     []string{"a", "==", "1"},
		},
		{
			name:     "loop",
			input:    "{% for item in items %}",
			tagName:  "for",
			argTypes: []TokenType{TokenTypeIdentifier, TokenTypeIdentifier, TokenTypeIdentifier},
			args:     []string{"item", "in", "items"},
		},
		{
			name:    "no arguments",
			input:   "{%endif%}",
			tagName: "endif",
		},
		{
			name:     "string argument",
			input:    `{% assign "hello world" %}`,
			tagName:  "assign",
			argTypes: []TokenType{TokenTypeString},
			args:     []string{"hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := tokenize(t, tt.input)
			require.Len(t, elements, 1)

			el := elements[0]
			assert.Equal(t, ElementKindTag, el.Kind)
			assert.Equal(t, tt.tagName, el.Name)
			assert.Equal(t, tt.input, el.Raw)
			require.Len(t, el.Args, len(tt.args))
			for i := range tt.args {
				assert.Equal(t, tt.argTypes[i], el.Args[i].Type)
				assert.Equal(t, tt.args[i], el.Args[i].Value)
			}
		})
	}
}

func TestLexer_Tokenize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		message  string
		position Position
		detail   string
	}{
		{
			name:     "unterminated output",
			input:    "abc {{ x",
			message:  ErrMsgUnterminatedOutput,
			position: Position{Offset: 4, Line: 1, Column: 5},
		},
		{
			name:     "unterminated tag",
			input:    "abc {% if x",
			message:  ErrMsgUnterminatedTag,
			position: Position{Offset: 4, Line: 1, Column: 5},
		},
		{
			name:     "unterminated tag on second line",
			input:    "line1\n{% if",
			message:  ErrMsgUnterminatedTag,
			position: Position{Offset: 6, Line: 2, Column: 1},
		},
		{
			name:     "missing tag name",
			input:    "{% %}",
			message:  ErrMsgMissingTagName,
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:     "tag starting with a literal",
			input:    "{% 42 %}",
			message:  ErrMsgMissingTagName,
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:     "unterminated string",
			input:    "{{ 'abc }}",
			message:  ErrMsgUnterminatedStr,
			position: Position{Offset: 3, Line: 1, Column: 4},
		},
		{
			name:     "unexpected character",
			input:    "{{ a = b }}",
			message:  ErrMsgUnexpectedChar,
			position: Position{Offset: 5, Line: 1, Column: 6},
			detail:   "=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input, nil).Tokenize()
			require.Error(t, err)

			var lexErr *LexerError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.message, lexErr.Message)
			assert.Equal(t, tt.position, lexErr.Position)
			assert.Equal(t, tt.detail, lexErr.Detail)
		})
	}
}

func TestLexer_Tokenize_WhitespaceControl(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"trim both sides of output", "a  \n{{- x -}}\n  b", []string{"a", "b"}},
		{"trim left only", "a  {{- x }}  b", []string{"a", "  b"}},
		{"trim right only", "a  {% if x -%}\t b", []string{"a  ", "b"}},
		{"no markers", "a {{ x }} b", []string{"a ", " b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := tokenize(t, tt.input)
			require.Len(t, elements, 3)
			assert.Equal(t, tt.expected[0], elements[0].Text)
			assert.Equal(t, tt.expected[1], elements[2].Text)
		})
	}

	t.Run("markers are recorded", func(t *testing.T) {
		elements := tokenize(t, "{%- if x -%}")
		require.Len(t, elements, 1)
		assert.True(t, elements[0].TrimLeft)
		assert.True(t, elements[0].TrimRight)
		assert.Equal(t, "if", elements[0].Name)
		require.Len(t, elements[0].Args, 1)
	})
}

func TestLexer_Tokenize_RawCapture(t *testing.T) {
	t.Run("malformed delimiters inside raw", func(t *testing.T) {
		elements := tokenize(t, "{% raw %}{{ {% if %}{%  endraw %}")
		require.Len(t, elements, 3)
		assert.True(t, elements[0].IsTag("raw"))
		assert.Equal(t, ElementKindText, elements[1].Kind)
		assert.Equal(t, "{{ {% if %}", elements[1].Text)
		assert.True(t, elements[2].IsTag("endraw"))
	})

	t.Run("empty raw body", func(t *testing.T) {
		elements := tokenize(t, "{% raw %}{% endraw %}")
		require.Len(t, elements, 3)
		assert.Equal(t, "", elements[1].Text)
	})

	t.Run("capture disabled", func(t *testing.T) {
		elements, err := NewLexerWithConfig("{% raw %}{{ x }}{% endraw %}", LexerConfig{}, nil).Tokenize()
		require.NoError(t, err)
		require.Len(t, elements, 3)
		assert.True(t, elements[0].IsTag("raw"))
		assert.Equal(t, ElementKindOutput, elements[1].Kind)
		assert.True(t, elements[2].IsTag("endraw"))
	})

	t.Run("raw without end is left to the parser", func(t *testing.T) {
		elements := tokenize(t, "{% raw %}abc")
		require.Len(t, elements, 2)
		assert.Equal(t, "abc", elements[1].Text)
	})
}

func TestElement_IsEndTag(t *testing.T) {
	tests := []struct {
		name     string
		element  Element
		expected bool
	}{
		{"endif", NewTagElement("endif", nil, "", Position{}), true},
		{"bare end", NewTagElement("end", nil, "", Position{}), false},
		{"if", NewTagElement("if", nil, "", Position{}), false},
		{"text", NewTextElement("endif", Position{}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.element.IsEndTag())
		})
	}
}
