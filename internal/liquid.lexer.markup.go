package internal

import (
	"strings"
)

// markupScanner splits the inside of an output or tag span into tokens
type markupScanner struct {
	input  string
	pos    int
	line   int
	column int
	base   int // Byte offset of input[0] in the template source
}

// TokenizeMarkup splits markup on whitespace and symbol boundaries into tokens.
// base is the source position of the first markup byte; token positions are
// reported relative to the whole template.
func TokenizeMarkup(markup string, base Position) ([]Token, error) {
	s := &markupScanner{
		input:  markup,
		line:   base.Line,
		column: base.Column,
		base:   base.Offset,
	}

	var tokens []Token
	for {
		s.skipWhitespace()
		if s.isAtEnd() {
			return tokens, nil
		}

		tok, err := s.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// nextToken reads the next token from the input
func (s *markupScanner) nextToken() (Token, error) {
	startPos := s.currentPosition()
	ch := s.peek()

	// String literals
	if ch == CharDoubleQuote || ch == CharSingleQuote {
		return s.readString()
	}

	// Numbers, including a leading minus sign
	if isDigit(ch) || (ch == CharMinus && isDigit(s.peekAt(1))) {
		return s.readNumber(), nil
	}

	// Identifiers and keywords
	if isLetter(ch) || ch == '_' {
		return s.readIdentifier(), nil
	}

	// Two-character operators
	if s.pos+1 < len(s.input) {
		switch op := s.input[s.pos : s.pos+2]; op {
		case OpEq, OpNeq, OpLte, OpGte:
			s.advanceN(2)
			return NewToken(TokenTypeOperator, op, startPos), nil
		}
	}

	// Single-character tokens
	switch ch {
	case CharLess:
		s.advance()
		return NewToken(TokenTypeOperator, OpLt, startPos), nil
	case CharGreater:
		s.advance()
		return NewToken(TokenTypeOperator, OpGt, startPos), nil
	case CharPipe:
		s.advance()
		return NewToken(TokenTypePipe, string(CharPipe), startPos), nil
	case CharColon:
		s.advance()
		return NewToken(TokenTypeColon, string(CharColon), startPos), nil
	case CharComma:
		s.advance()
		return NewToken(TokenTypeComma, string(CharComma), startPos), nil
	}

	return Token{}, &LexerError{
		Message:  ErrMsgUnexpectedChar,
		Position: startPos,
		Detail:   string(ch),
	}
}

// readString reads a quoted string literal, honoring backslash escapes
func (s *markupScanner) readString() (Token, error) {
	startPos := s.currentPosition()
	quote := s.advance()

	var sb strings.Builder
	for !s.isAtEnd() {
		ch := s.advance()
		if ch == quote {
			return NewToken(TokenTypeString, sb.String(), startPos), nil
		}
		if ch == CharBackslash && !s.isAtEnd() {
			next := s.peek()
			if next == quote || next == CharBackslash {
				sb.WriteByte(s.advance())
				continue
			}
		}
		sb.WriteByte(ch)
	}

	return Token{}, &LexerError{
		Message:  ErrMsgUnterminatedStr,
		Position: startPos,
	}
}

// readNumber reads an integer or decimal literal
func (s *markupScanner) readNumber() Token {
	startPos := s.currentPosition()
	start := s.pos

	if s.peek() == CharMinus {
		s.advance()
	}
	hasDecimal := false
	for !s.isAtEnd() {
		ch := s.peek()
		if ch == CharDot && !hasDecimal && isDigit(s.peekAt(1)) {
			hasDecimal = true
			s.advance()
			continue
		}
		if !isDigit(ch) {
			break
		}
		s.advance()
	}

	return NewToken(TokenTypeNumber, s.input[start:s.pos], startPos)
}

// readIdentifier reads an identifier; dots join path segments
func (s *markupScanner) readIdentifier() Token {
	startPos := s.currentPosition()
	start := s.pos

	for !s.isAtEnd() {
		ch := s.peek()
		if isLetter(ch) || isDigit(ch) || ch == '_' || ch == CharMinus || ch == CharDot || ch == '?' {
			s.advance()
			continue
		}
		break
	}

	return NewToken(TokenTypeIdentifier, s.input[start:s.pos], startPos)
}

// Helper methods

func (s *markupScanner) currentPosition() Position {
	return Position{
		Offset: s.base + s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

func (s *markupScanner) isAtEnd() bool {
	return s.pos >= len(s.input)
}

func (s *markupScanner) peek() byte {
	return s.peekAt(0)
}

func (s *markupScanner) peekAt(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}
	return s.input[s.pos+n]
}

func (s *markupScanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	if ch == CharNewline {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

func (s *markupScanner) advanceN(n int) {
	for i := 0; i < n && !s.isAtEnd(); i++ {
		s.advance()
	}
}

func (s *markupScanner) skipWhitespace() {
	for !s.isAtEnd() {
		ch := s.peek()
		if ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet {
			s.advance()
		} else {
			break
		}
	}
}

// Character classification helpers

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
