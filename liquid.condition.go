package liquid

import (
	"strings"

	"github.com/itsatony/go-liquid/internal"
)

// evalCondition evaluates a parsed condition to a boolean using the truthiness policy
func evalCondition(ctx *Context, node internal.ExprNode) (bool, error) {
	bin, ok := node.(*internal.BinaryNode)
	if !ok {
		v, present, err := resolveOperand(ctx, node)
		if err != nil || !present {
			return false, err
		}
		return v.Truthy(), nil
	}

	switch bin.Op {
	case internal.KeywordAnd:
		left, err := evalCondition(ctx, bin.Left)
		if err != nil || !left {
			return false, err
		}
		return evalCondition(ctx, bin.Right)

	case internal.KeywordOr:
		left, err := evalCondition(ctx, bin.Left)
		if err != nil || left {
			return left, err
		}
		return evalCondition(ctx, bin.Right)
	}

	left, _, err := resolveOperand(ctx, bin.Left)
	if err != nil {
		return false, err
	}
	right, _, err := resolveOperand(ctx, bin.Right)
	if err != nil {
		return false, err
	}
	return compare(bin.Op, left, right)
}

// resolveOperand evaluates an operand. An undefined variable resolves to nil
// with present=false instead of failing.
func resolveOperand(ctx *Context, node internal.ExprNode) (Value, bool, error) {
	v, err := evalOperand(ctx, node)
	if err != nil {
		if ReasonOf(err) == ReasonUndefinedVariable {
			return Nil(), false, nil
		}
		return Value{}, false, err
	}
	return v, true, nil
}

// compare applies a comparison operator. Absent values are nil, and nil
// equals only nil.
func compare(op string, left, right Value) (bool, error) {
	switch op {
	case internal.OpEq:
		return left.Equal(right), nil
	case internal.OpNeq:
		return !left.Equal(right), nil
	case internal.KeywordContains:
		return contains(left, right)
	}

	var cmp int
	switch {
	case left.Kind() == KindNumber && right.Kind() == KindNumber:
		l, _ := left.AsNumber()
		r, _ := right.AsNumber()
		switch {
		case l < r:
			cmp = -1
		case l > r:
			cmp = 1
		}
	case left.Kind() == KindString && right.Kind() == KindString:
		l, _ := left.AsString()
		r, _ := right.AsString()
		cmp = strings.Compare(l, r)
	default:
		return false, NewTypeMismatchError("", left.Kind().String(), right.Kind().String())
	}

	switch op {
	case internal.OpLt:
		return cmp < 0, nil
	case internal.OpGt:
		return cmp > 0, nil
	case internal.OpLte:
		return cmp <= 0, nil
	default:
		return cmp >= 0, nil
	}
}

// contains tests substring, array membership or object key presence.
// A nil container contains nothing.
func contains(container, item Value) (bool, error) {
	switch container.Kind() {
	case KindNil:
		return false, nil
	case KindString:
		s, _ := container.AsString()
		sub, ok := item.AsString()
		if !ok {
			return false, NewTypeMismatchError("", KindNameString, item.Kind().String())
		}
		return strings.Contains(s, sub), nil
	case KindArray:
		items, _ := container.AsArray()
		for _, candidate := range items {
			if candidate.Equal(item) {
				return true, nil
			}
		}
		return false, nil
	case KindObject:
		key, ok := item.AsString()
		if !ok {
			return false, NewTypeMismatchError("", KindNameString, item.Kind().String())
		}
		fields, _ := container.AsObject()
		_, found := fields[key]
		return found, nil
	default:
		return false, NewTypeMismatchError("", KindNameArray, container.Kind().String())
	}
}
