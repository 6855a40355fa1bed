package internal

import (
	"fmt"
	"strings"
)

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token is an atomic lexical unit inside an output or tag span
type Token struct {
	Type     TokenType // The type of token
	Value    string    // The token's value (quotes stripped for strings)
	Position Position  // Source position
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Type, t.Value, t.Position)
}

// IsIdentifier returns true if the token is an identifier with the given name.
// An empty name matches any identifier.
func (t Token) IsIdentifier(name string) bool {
	if t.Type != TokenTypeIdentifier {
		return false
	}
	return name == "" || t.Value == name
}

// NewToken creates a new token with the given type, value, and position
func NewToken(tokenType TokenType, value string, pos Position) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	}
}

// Element is a parse-time unit: a run of literal text, an output expression,
// or a tag invocation with its argument tokens.
type Element struct {
	Kind      ElementKind
	Name      string   // Tag name (tags only)
	Args      []Token  // Tag arguments, or the whole expression for outputs
	Text      string   // Literal content (text only)
	Raw       string   // Exact source span
	Position  Position // Source position of the element start
	TrimLeft  bool     // {%- or {{- marker present
	TrimRight bool     // -%} or -}} marker present
}

// String returns a human-readable representation of the element
func (e Element) String() string {
	switch e.Kind {
	case ElementKindTag:
		return fmt.Sprintf("Element{TAG %s, args=%d @ %s}", e.Name, len(e.Args), e.Position)
	case ElementKindOutput:
		return fmt.Sprintf("Element{OUTPUT args=%d @ %s}", len(e.Args), e.Position)
	default:
		content := e.Text
		if len(content) > maxTextDisplayLength {
			content = content[:truncatedTextLength] + truncationSuffix
		}
		return fmt.Sprintf("Element{TEXT %q @ %s}", content, e.Position)
	}
}

// IsTag returns true if the element is a tag with the given name.
// An empty name matches any tag.
func (e Element) IsTag(name string) bool {
	if e.Kind != ElementKindTag {
		return false
	}
	return name == "" || e.Name == name
}

// IsEndTag returns true if the element is an end tag (e.g. endif)
func (e Element) IsEndTag() bool {
	return e.Kind == ElementKindTag && strings.HasPrefix(e.Name, EndTagPrefix) && len(e.Name) > len(EndTagPrefix)
}

// EndTagName returns the end tag name for a block name (e.g. "if" -> "endif")
func EndTagName(blockName string) string {
	return EndTagPrefix + blockName
}

// NewTextElement creates a text element
func NewTextElement(text string, pos Position) Element {
	return Element{
		Kind:     ElementKindText,
		Text:     text,
		Raw:      text,
		Position: pos,
	}
}

// NewOutputElement creates an output element from its expression tokens
func NewOutputElement(args []Token, raw string, pos Position) Element {
	return Element{
		Kind:     ElementKindOutput,
		Args:     args,
		Raw:      raw,
		Position: pos,
	}
}

// NewTagElement creates a tag element
func NewTagElement(name string, args []Token, raw string, pos Position) Element {
	return Element{
		Kind:     ElementKindTag,
		Name:     name,
		Args:     args,
		Raw:      raw,
		Position: pos,
	}
}

const (
	maxTextDisplayLength = 40
	truncatedTextLength  = 37
	truncationSuffix     = "..."
)
