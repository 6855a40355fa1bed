package internal

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// endRawPattern matches the closing tag of a raw block, whitespace control included
var endRawPattern = regexp.MustCompile(`\{%-?\s*endraw\s*-?%\}`)

// whitespaceChars is the set stripped by whitespace-control markers
const whitespaceChars = " \t\r\n"

// LexerConfig holds lexer configuration
type LexerConfig struct {
	// CaptureRaw makes the body after a raw tag one verbatim text element.
	// Turn it off when raw is not the built-in block.
	CaptureRaw bool
}

// DefaultLexerConfig returns the default lexer configuration
func DefaultLexerConfig() LexerConfig {
	return LexerConfig{CaptureRaw: true}
}

// Lexer splits template source into text, output and tag elements
type Lexer struct {
	source string
	config LexerConfig
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewLexer creates a new lexer with default configuration
func NewLexer(source string, logger *zap.Logger) *Lexer {
	return NewLexerWithConfig(source, DefaultLexerConfig(), logger)
}

// NewLexerWithConfig creates a lexer with custom configuration
func NewLexerWithConfig(source string, config LexerConfig, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated,
		zap.Int(LogFieldSource, len(source)),
		zap.Bool(LogFieldCaptureRaw, config.CaptureRaw))
	return &Lexer{
		source: source,
		config: config,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the source and returns the element sequence
func (l *Lexer) Tokenize() ([]Element, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var elements []Element

	for !l.isAtEnd() {
		switch {
		case l.matchStr(StrOutputOpen):
			el, err := l.scanOutput()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)

		case l.matchStr(StrTagOpen):
			el, err := l.scanTag()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)

			// Raw bodies are captured verbatim so they may hold malformed delimiters
			if l.config.CaptureRaw && el.Name == TagNameRaw {
				if body, ok := l.captureRaw(); ok {
					elements = append(elements, body)
				}
			}

		default:
			elements = append(elements, l.scanText())
		}
	}

	applyWhitespaceControl(elements)
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldElements, len(elements)))
	return elements, nil
}

// scanText scans literal text until the next output or tag delimiter
func (l *Lexer) scanText() Element {
	startPos := l.currentPosition()
	start := l.pos

	for !l.isAtEnd() {
		if l.matchStr(StrOutputOpen) || l.matchStr(StrTagOpen) {
			break
		}
		l.advance()
	}

	return NewTextElement(l.source[start:l.pos], startPos)
}

// scanOutput scans a {{ ... }} span
func (l *Lexer) scanOutput() (Element, error) {
	span, err := l.scanSpan(StrOutputOpen, StrOutputClose, ErrMsgUnterminatedOutput)
	if err != nil {
		return Element{}, err
	}

	tokens, err := TokenizeMarkup(span.markup, span.markupPos)
	if err != nil {
		return Element{}, err
	}

	el := NewOutputElement(tokens, span.raw, span.start)
	el.TrimLeft = span.trimLeft
	el.TrimRight = span.trimRight
	return el, nil
}

// scanTag scans a {% ... %} span; the first token is the tag name
func (l *Lexer) scanTag() (Element, error) {
	span, err := l.scanSpan(StrTagOpen, StrTagClose, ErrMsgUnterminatedTag)
	if err != nil {
		return Element{}, err
	}

	tokens, err := TokenizeMarkup(span.markup, span.markupPos)
	if err != nil {
		return Element{}, err
	}
	if len(tokens) == 0 || tokens[0].Type != TokenTypeIdentifier {
		return Element{}, &LexerError{
			Message:  ErrMsgMissingTagName,
			Position: span.start,
		}
	}

	el := NewTagElement(tokens[0].Value, tokens[1:], span.raw, span.start)
	el.TrimLeft = span.trimLeft
	el.TrimRight = span.trimRight
	return el, nil
}

// span holds the pieces of a delimited output or tag
type span struct {
	start     Position
	markup    string
	markupPos Position
	raw       string
	trimLeft  bool
	trimRight bool
}

// scanSpan consumes open ... close and returns the inner markup.
// A missing close delimiter is reported at the opening position.
func (l *Lexer) scanSpan(open, closeDelim, unterminatedMsg string) (span, error) {
	s := span{start: l.currentPosition()}
	startOffset := l.pos

	l.advanceN(len(open))
	if l.matchStr(StrTrimMarker) {
		s.trimLeft = true
		l.advance()
	}

	idx := strings.Index(l.source[l.pos:], closeDelim)
	if idx == -1 {
		return span{}, &LexerError{
			Message:  unterminatedMsg,
			Position: s.start,
		}
	}

	s.markupPos = l.currentPosition()
	markup := l.source[l.pos : l.pos+idx]
	if strings.HasSuffix(markup, StrTrimMarker) {
		s.trimRight = true
		markup = markup[:len(markup)-len(StrTrimMarker)]
	}
	s.markup = markup

	l.advanceN(idx + len(closeDelim))
	s.raw = l.source[startOffset:l.pos]
	return s, nil
}

// captureRaw consumes everything up to the next endraw tag as one text element.
// Returns false when no endraw tag follows; the parser reports the open block.
func (l *Lexer) captureRaw() (Element, bool) {
	loc := endRawPattern.FindStringIndex(l.source[l.pos:])
	if loc == nil {
		return Element{}, false
	}

	startPos := l.currentPosition()
	start := l.pos
	l.advanceN(loc[0])
	l.logger.Debug(LogMsgRawCaptured,
		zap.Int(LogFieldLine, startPos.Line),
		zap.Int(LogFieldColumn, startPos.Column))
	return NewTextElement(l.source[start:l.pos], startPos), true
}

// applyWhitespaceControl strips whitespace from text next to trim markers
func applyWhitespaceControl(elements []Element) {
	for i := range elements {
		if elements[i].Kind == ElementKindText {
			continue
		}
		if elements[i].TrimLeft && i > 0 && elements[i-1].Kind == ElementKindText {
			elements[i-1].Text = strings.TrimRight(elements[i-1].Text, whitespaceChars)
		}
		if elements[i].TrimRight && i+1 < len(elements) && elements[i+1].Kind == ElementKindText {
			elements[i+1].Text = strings.TrimLeft(elements[i+1].Text, whitespaceChars)
		}
	}
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// advanceN advances by n characters
func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}

// matchStr returns true if the remaining source starts with s
func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}

// LexerError represents a lexer error with position
type LexerError struct {
	Message  string
	Position Position
	Detail   string
}

func (e *LexerError) Error() string {
	if e.Detail != "" {
		return e.Message + " '" + e.Detail + "' at " + e.Position.String()
	}
	return e.Message + " at " + e.Position.String()
}

// Error message constants for lexer
const (
	ErrMsgUnterminatedOutput = "unterminated output"
	ErrMsgUnterminatedTag    = "unterminated tag"
	ErrMsgUnterminatedStr    = "unterminated string literal"
	ErrMsgUnexpectedChar     = "unexpected character"
	ErrMsgMissingTagName     = "missing tag name"
)
