package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// ExprNodeType identifies the type of expression AST node
type ExprNodeType int

// Expression node type constants
const (
	ExprNodeTypeLiteral ExprNodeType = iota
	ExprNodeTypeIdentifier
	ExprNodeTypeBinary
)

// Expression node type names for debugging
const (
	ExprNodeTypeNameLiteral    = "LITERAL"
	ExprNodeTypeNameIdentifier = "IDENTIFIER"
	ExprNodeTypeNameBinary     = "BINARY"
)

// String returns the string representation of the node type
func (t ExprNodeType) String() string {
	switch t {
	case ExprNodeTypeLiteral:
		return ExprNodeTypeNameLiteral
	case ExprNodeTypeIdentifier:
		return ExprNodeTypeNameIdentifier
	case ExprNodeTypeBinary:
		return ExprNodeTypeNameBinary
	default:
		return ExprNodeTypeNameLiteral
	}
}

// ExprNode is the interface for all expression AST nodes
type ExprNode interface {
	// Type returns the node type
	Type() ExprNodeType
	// String returns a string representation for debugging
	String() string
	// exprNode is a marker method to ensure type safety
	exprNode()
}

// LiteralKind identifies the kind of literal value
type LiteralKind int

// Literal kind constants
const (
	LiteralKindString LiteralKind = iota
	LiteralKindNumber
	LiteralKindBool
	LiteralKindNil
)

// LiteralNode represents a literal value (string, number, bool, nil)
type LiteralNode struct {
	Str  string
	Num  float64
	Bool bool
	Kind LiteralKind
}

func (n *LiteralNode) Type() ExprNodeType { return ExprNodeTypeLiteral }
func (n *LiteralNode) exprNode()          {}

func (n *LiteralNode) String() string {
	switch n.Kind {
	case LiteralKindString:
		return strconv.Quote(n.Str)
	case LiteralKindNumber:
		return strconv.FormatFloat(n.Num, 'f', -1, 64)
	case LiteralKindBool:
		return strconv.FormatBool(n.Bool)
	default:
		return KeywordNil
	}
}

// IdentifierNode represents a variable reference (may include dot notation)
type IdentifierNode struct {
	Name     string
	Position Position
}

func (n *IdentifierNode) Type() ExprNodeType { return ExprNodeTypeIdentifier }
func (n *IdentifierNode) exprNode()          {}

func (n *IdentifierNode) String() string {
	return n.Name
}

// BinaryNode represents a binary operation (e.g., a == b, a and b)
type BinaryNode struct {
	Left  ExprNode
	Op    string
	Right ExprNode
}

func (n *BinaryNode) Type() ExprNodeType { return ExprNodeTypeBinary }
func (n *BinaryNode) exprNode()          {}

func (n *BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op, n.Right.String())
}

// NewLiteralString creates a string literal node
func NewLiteralString(value string) *LiteralNode {
	return &LiteralNode{Str: value, Kind: LiteralKindString}
}

// NewLiteralNumber creates a number literal node
func NewLiteralNumber(value float64) *LiteralNode {
	return &LiteralNode{Num: value, Kind: LiteralKindNumber}
}

// NewLiteralBool creates a boolean literal node
func NewLiteralBool(value bool) *LiteralNode {
	return &LiteralNode{Bool: value, Kind: LiteralKindBool}
}

// NewLiteralNil creates a nil literal node
func NewLiteralNil() *LiteralNode {
	return &LiteralNode{Kind: LiteralKindNil}
}

// NewIdentifier creates an identifier node
func NewIdentifier(name string, pos Position) *IdentifierNode {
	return &IdentifierNode{Name: name, Position: pos}
}

// NewBinary creates a binary operation node
func NewBinary(left ExprNode, op string, right ExprNode) *BinaryNode {
	return &BinaryNode{Left: left, Op: op, Right: right}
}

// FilterCall is one stage of an output filter chain
type FilterCall struct {
	Name     string
	Args     []ExprNode
	Position Position
}

// String returns a string representation for debugging
func (f FilterCall) String() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	args := make([]string, len(f.Args))
	for i, arg := range f.Args {
		args[i] = arg.String()
	}
	return f.Name + ": " + strings.Join(args, ", ")
}

// OutputExpr is the parsed body of a {{ ... }} span
type OutputExpr struct {
	Head    ExprNode // Literal or identifier
	Filters []FilterCall
}

// String returns a string representation for debugging
func (o *OutputExpr) String() string {
	var sb strings.Builder
	sb.WriteString(o.Head.String())
	for _, f := range o.Filters {
		sb.WriteString(" | ")
		sb.WriteString(f.String())
	}
	return sb.String()
}
