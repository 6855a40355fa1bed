package liquid

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/itsatony/go-liquid/internal"
)

// forBlock renders its body once per element of an array variable
type forBlock struct {
	variable string    // Loop variable name
	source   string    // Path of the array to iterate
	body     *Template // Rendered per element
	elseBody *Template // Rendered for an empty array; may be nil
	logger   *zap.Logger
}

// newForBlock builds a loop from `{% for item in items %}...{% else %}...{% endfor %}`
func newForBlock(tagName string, args []Token, body []Element, opts *Options) (Renderable, error) {
	if len(args) != 3 ||
		!args[0].IsIdentifier("") || strings.Contains(args[0].Value, PathSeparator) ||
		!args[1].IsIdentifier(internal.KeywordIn) ||
		!args[2].IsIdentifier("") {
		return nil, fmt.Errorf("%s: %s", tagName, ErrMsgForSyntax)
	}

	sections := opts.blockMatcher().SplitBranches(body, TagNameElse)
	if len(sections) > 2 {
		return nil, NewParseError(ReasonInvalidArguments, ErrMsgDuplicateElse, tagName, sections[2].Tag.Position, nil)
	}

	loopBody, err := ParseTemplate(sections[0].Body, opts)
	if err != nil {
		return nil, err
	}

	block := &forBlock{
		variable: args[0].Value,
		source:   args[2].Value,
		body:     loopBody,
		logger:   opts.logger,
	}

	if len(sections) == 2 {
		elseTag := sections[1].Tag
		if len(elseTag.Args) > 0 {
			return nil, NewParseError(ReasonInvalidArguments,
				fmt.Sprintf("%s %s", TagNameElse, ErrMsgNoArguments), TagNameElse, elseTag.Position, nil)
		}
		if block.elseBody, err = ParseTemplate(sections[1].Body, opts); err != nil {
			return nil, err
		}
	}

	return block, nil
}

// Render iterates the source array. The loop variable's previous binding,
// or its absence, is restored afterwards.
func (b *forBlock) Render(ctx *Context) (string, error) {
	src, err := ctx.Lookup(b.source)
	if err != nil {
		return "", err
	}
	items, ok := src.AsArray()
	if !ok {
		return "", NewTypeMismatchError(b.source, KindNameArray, src.Kind().String())
	}

	b.logger.Debug(LogMsgLoopStart,
		zap.String(LogFieldLoopVar, b.variable),
		zap.Int(LogFieldItems, len(items)))

	if len(items) == 0 {
		if b.elseBody != nil {
			return b.elseBody.Render(ctx)
		}
		return "", nil
	}

	previous, hadPrevious := ctx.Get(b.variable)
	defer func() {
		if hadPrevious {
			ctx.Set(b.variable, previous)
		} else {
			ctx.Delete(b.variable)
		}
	}()

	var sb strings.Builder
	for _, item := range items {
		ctx.Set(b.variable, item)
		out, err := b.body.Render(ctx)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}
