package liquid

import (
	"github.com/itsatony/go-liquid/internal"
)

// textNode renders literal template text
type textNode struct {
	text string
}

func (n *textNode) Render(*Context) (string, error) {
	return n.text, nil
}

// variableNode renders an output expression: a head value and a filter chain.
// Filters are looked up at render time.
type variableNode struct {
	expr *internal.OutputExpr
	pos  Position
}

func newVariableNode(el Element) (*variableNode, error) {
	expr, err := internal.ParseOutput(el.Args)
	if err != nil {
		return nil, NewParseError(ReasonInvalidExpression, ErrMsgInvalidExpression, "", el.Position, err)
	}
	return &variableNode{expr: expr, pos: el.Position}, nil
}

func (n *variableNode) Render(ctx *Context) (string, error) {
	value, err := evalOperand(ctx, n.expr.Head)
	if err != nil {
		return "", err
	}

	for _, call := range n.expr.Filters {
		fn, ok := ctx.Filter(call.Name)
		if !ok {
			suggestions := internal.FindSimilarStrings(call.Name, ctx.FilterNames(), DefaultMaxSuggestions)
			return "", NewUnknownFilterError(call.Name, suggestions)
		}

		args := make([]Value, len(call.Args))
		for i, arg := range call.Args {
			if args[i], err = evalOperand(ctx, arg); err != nil {
				return "", err
			}
		}

		if value, err = fn(value, args); err != nil {
			if ReasonOf(err) == ReasonTypeMismatch {
				return "", err
			}
			return "", NewFilterFailedError(call.Name, err)
		}
	}

	return value.Text(), nil
}

// evalOperand resolves a literal or identifier node to a value
func evalOperand(ctx *Context, node internal.ExprNode) (Value, error) {
	switch n := node.(type) {
	case *internal.IdentifierNode:
		return ctx.Lookup(n.Name)
	case *internal.LiteralNode:
		return literalValue(n), nil
	default:
		return Value{}, NewRenderError(ReasonInvalidExpression, ErrMsgInvalidExpression, nil)
	}
}

func literalValue(n *internal.LiteralNode) Value {
	switch n.Kind {
	case internal.LiteralKindString:
		return NewString(n.Str)
	case internal.LiteralKindNumber:
		return NewNumber(n.Num)
	case internal.LiteralKindBool:
		return NewBool(n.Bool)
	default:
		return Nil()
	}
}
