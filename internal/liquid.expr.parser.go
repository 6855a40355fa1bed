package internal

import (
	"fmt"
	"strconv"
)

// ExprParser parses markup tokens into condition and output expressions
type ExprParser struct {
	tokens []Token
	pos    int
}

// NewExprParser creates a new expression parser
func NewExprParser(tokens []Token) *ExprParser {
	return &ExprParser{
		tokens: tokens,
		pos:    0,
	}
}

// ParseCondition parses a boolean condition such as `a == 1 and b contains "x"`.
// Precedence, lowest first: or, and, comparison.
func ParseCondition(tokens []Token) (ExprNode, error) {
	return NewExprParser(tokens).ParseCondition()
}

// ParseOutput parses an output expression such as `items | size`.
func ParseOutput(tokens []Token) (*OutputExpr, error) {
	return NewExprParser(tokens).ParseOutput()
}

// ParseCondition parses the whole token stream as a condition
func (p *ExprParser) ParseCondition() (ExprNode, error) {
	if len(p.tokens) == 0 {
		return nil, NewExprError(ErrMsgExprEmptyExpression, Position{}, "")
	}

	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if !p.isAtEnd() {
		return nil, NewExprError(ErrMsgExprUnexpectedToken, p.peek().Position, p.peek().Value)
	}
	return node, nil
}

// ParseOutput parses the whole token stream as head | filter: args | filter
func (p *ExprParser) ParseOutput() (*OutputExpr, error) {
	if len(p.tokens) == 0 {
		return nil, NewExprError(ErrMsgExprEmptyExpression, Position{}, "")
	}

	head, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	out := &OutputExpr{Head: head}

	for p.match(TokenTypePipe) {
		if !p.check(TokenTypeIdentifier) {
			return nil, p.errorAtCurrent(ErrMsgExprExpectedFilter)
		}
		nameTok := p.advance()
		call := FilterCall{Name: nameTok.Value, Position: nameTok.Position}

		if p.match(TokenTypeColon) {
			for {
				arg, err := p.parseOperand()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if !p.match(TokenTypeComma) {
					break
				}
			}
		}
		out.Filters = append(out.Filters, call)
	}

	if !p.isAtEnd() {
		return nil, NewExprError(ErrMsgExprUnexpectedToken, p.peek().Position, p.peek().Value)
	}
	return out, nil
}

// parseOr parses OR expressions (lowest precedence)
func (p *ExprParser) parseOr() (ExprNode, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.matchKeyword(KeywordOr) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = NewBinary(left, KeywordOr, right)
	}

	return left, nil
}

// parseAnd parses AND expressions
func (p *ExprParser) parseAnd() (ExprNode, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.matchKeyword(KeywordAnd) {
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = NewBinary(left, KeywordAnd, right)
	}

	return left, nil
}

// parseComparison parses a single optional comparison (==, !=, <, >, <=, >=, contains)
func (p *ExprParser) parseComparison() (ExprNode, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	var op string
	switch {
	case p.check(TokenTypeOperator):
		op = p.advance().Value
	case p.matchKeyword(KeywordContains):
		op = KeywordContains
	default:
		return left, nil
	}

	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return NewBinary(left, op, right), nil
}

// parseOperand parses literals and identifiers
func (p *ExprParser) parseOperand() (ExprNode, error) {
	if p.isAtEnd() {
		return nil, p.errorAtCurrent(ErrMsgExprUnexpectedEOF)
	}

	tok := p.advance()
	switch tok.Type {
	case TokenTypeString:
		return NewLiteralString(tok.Value), nil

	case TokenTypeNumber:
		n, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, NewExprError(ErrMsgExprInvalidNumber, tok.Position, tok.Value)
		}
		return NewLiteralNumber(n), nil

	case TokenTypeIdentifier:
		switch tok.Value {
		case KeywordTrue:
			return NewLiteralBool(true), nil
		case KeywordFalse:
			return NewLiteralBool(false), nil
		case KeywordNil:
			return NewLiteralNil(), nil
		case KeywordAnd, KeywordOr, KeywordContains:
			return nil, NewExprError(ErrMsgExprUnexpectedToken, tok.Position, tok.Value)
		}
		return NewIdentifier(tok.Value, tok.Position), nil
	}

	return nil, NewExprError(ErrMsgExprUnexpectedToken, tok.Position, tok.Value)
}

// Helper methods

// match checks if the current token matches and advances if so
func (p *ExprParser) match(tokenType TokenType) bool {
	if p.check(tokenType) {
		p.advance()
		return true
	}
	return false
}

// matchKeyword consumes an identifier token spelling the given keyword
func (p *ExprParser) matchKeyword(keyword string) bool {
	if !p.isAtEnd() && p.peek().IsIdentifier(keyword) {
		p.advance()
		return true
	}
	return false
}

// check returns true if the current token is of the given type
func (p *ExprParser) check(tokenType TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

// advance moves to the next token and returns the consumed one
func (p *ExprParser) advance() Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

// peek returns the current token
func (p *ExprParser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Position: p.currentPos()}
	}
	return p.tokens[p.pos]
}

// isAtEnd returns true if we've consumed all tokens
func (p *ExprParser) isAtEnd() bool {
	return p.pos >= len(p.tokens)
}

// currentPos returns the current position for error reporting
func (p *ExprParser) currentPos() Position {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) > 0 {
			return p.tokens[len(p.tokens)-1].Position
		}
		return Position{}
	}
	return p.tokens[p.pos].Position
}

func (p *ExprParser) errorAtCurrent(message string) *ExprError {
	if p.isAtEnd() {
		return NewExprError(ErrMsgExprUnexpectedEOF, p.currentPos(), "")
	}
	return NewExprError(message, p.peek().Position, p.peek().Value)
}

// ExprError represents an error during expression parsing
type ExprError struct {
	Message  string
	Position Position
	Detail   string
}

// NewExprError creates a new expression error
func NewExprError(message string, pos Position, detail string) *ExprError {
	return &ExprError{
		Message:  message,
		Position: pos,
		Detail:   detail,
	}
}

// Error implements the error interface
func (e *ExprError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf(ErrFmtWithPosition, fmt.Sprintf(ErrFmtWithDetail, e.Message, e.Detail), e.Position)
	}
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position)
}

// Expression parser error messages
const (
	ErrMsgExprEmptyExpression = "empty expression"
	ErrMsgExprUnexpectedToken = "unexpected token"
	ErrMsgExprUnexpectedEOF   = "unexpected end of expression"
	ErrMsgExprExpectedFilter  = "expected filter name after '|'"
	ErrMsgExprInvalidNumber   = "invalid number literal"
)
