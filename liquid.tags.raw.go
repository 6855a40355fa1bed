package liquid

import (
	"fmt"
	"strings"

	"github.com/itsatony/go-liquid/internal"
)

// rawBlock emits its body source without evaluating it
type rawBlock struct {
	content string
}

// rawBlockBuilder is the built-in raw constructor. While it is registered
// the lexer captures raw bodies verbatim.
type rawBlockBuilder struct{}

func (rawBlockBuilder) Initialize(tagName string, args []Token, body []Element, opts *Options) (Renderable, error) {
	return newRawBlock(tagName, args, body, opts)
}

func newRawBlock(tagName string, args []Token, body []Element, _ *Options) (Renderable, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("%s %s", tagName, ErrMsgNoArguments)
	}

	var sb strings.Builder
	for _, el := range body {
		if el.Kind == internal.ElementKindText {
			sb.WriteString(el.Text)
		} else {
			sb.WriteString(el.Raw)
		}
	}
	return &rawBlock{content: sb.String()}, nil
}

func (b *rawBlock) Render(*Context) (string, error) {
	return b.content, nil
}
