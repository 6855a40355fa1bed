package liquid

import (
	"fmt"

	"github.com/itsatony/go-liquid/internal"
)

// ifBranch is a condition and the body rendered when it holds
type ifBranch struct {
	cond internal.ExprNode
	body *Template
}

// ifBlock renders the first branch whose condition holds, else the else body
type ifBlock struct {
	branches []ifBranch
	elseBody *Template // nil when there is no else branch
}

// newIfBlock builds an if block from `{% if cond %}...{% elsif cond %}...{% else %}...{% endif %}`
func newIfBlock(tagName string, args []Token, body []Element, opts *Options) (Renderable, error) {
	cond, err := internal.ParseCondition(args)
	if err != nil {
		return nil, err
	}

	sections := opts.blockMatcher().SplitBranches(body, TagNameElsif, TagNameElse)
	block := &ifBlock{}

	for _, section := range sections {
		tmpl, err := ParseTemplate(section.Body, opts)
		if err != nil {
			return nil, err
		}

		switch {
		case section.Tag == nil:
			block.branches = append(block.branches, ifBranch{cond: cond, body: tmpl})

		case block.elseBody != nil:
			return nil, NewParseError(ReasonInvalidArguments, ErrMsgElseNotLast, tagName, section.Tag.Position, nil)

		case section.Tag.Name == TagNameElsif:
			branchCond, err := internal.ParseCondition(section.Tag.Args)
			if err != nil {
				return nil, NewInvalidArgumentsError(TagNameElsif, section.Tag.Position, err)
			}
			block.branches = append(block.branches, ifBranch{cond: branchCond, body: tmpl})

		default:
			if len(section.Tag.Args) > 0 {
				return nil, NewParseError(ReasonInvalidArguments,
					fmt.Sprintf("%s %s", TagNameElse, ErrMsgNoArguments), TagNameElse, section.Tag.Position, nil)
			}
			block.elseBody = tmpl
		}
	}

	return block, nil
}

func (b *ifBlock) Render(ctx *Context) (string, error) {
	for _, branch := range b.branches {
		ok, err := evalCondition(ctx, branch.cond)
		if err != nil {
			return "", err
		}
		if ok {
			return branch.body.Render(ctx)
		}
	}
	if b.elseBody != nil {
		return b.elseBody.Render(ctx)
	}
	return "", nil
}
