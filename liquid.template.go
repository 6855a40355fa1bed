package liquid

import (
	"strings"

	"go.uber.org/zap"
)

// Renderable is a compiled node that produces text from a context.
// Its configuration is fixed at parse time.
type Renderable interface {
	Render(ctx *Context) (string, error)
}

// RenderFunc adapts a function to the Renderable interface
type RenderFunc func(ctx *Context) (string, error)

// Render calls f
func (f RenderFunc) Render(ctx *Context) (string, error) {
	return f(ctx)
}

// Template is a compiled, immutable sequence of Renderable nodes.
// A Template may be rendered concurrently as long as each render uses its own Context.
type Template struct {
	nodes    []Renderable
	maxDepth int
	logger   *zap.Logger
}

// NewTemplate creates a template over a copy of nodes, bound to the
// depth limit and logger of opts.
func NewTemplate(nodes []Renderable, opts *Options) *Template {
	if opts == nil {
		opts = NewOptions()
	}
	owned := make([]Renderable, len(nodes))
	copy(owned, nodes)
	return &Template{
		nodes:    owned,
		maxDepth: opts.maxDepth,
		logger:   opts.logger,
	}
}

// ParseTemplate compiles a block body into a template. Block constructors use it.
func ParseTemplate(body []Element, opts *Options) (*Template, error) {
	if opts == nil {
		opts = NewOptions()
	}
	nodes, err := ParseElements(body, opts)
	if err != nil {
		return nil, err
	}
	return NewTemplate(nodes, opts), nil
}

// Render folds the nodes left to right and concatenates their output.
// The first node error aborts the render and is returned. A nil ctx
// renders against a fresh empty context.
func (t *Template) Render(ctx *Context) (string, error) {
	if ctx == nil {
		ctx = NewContext()
	}
	ctx.installBuiltinFilters()

	// Root plus one body per nesting level
	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.depth > t.maxDepth+1 {
		return "", NewDepthExceededError(KindRender, t.maxDepth, Position{})
	}

	root := ctx.depth == 1
	if root {
		t.logger.Debug(LogMsgRenderStart, zap.Int(LogFieldNodes, len(t.nodes)))
	}

	var sb strings.Builder
	for _, node := range t.nodes {
		out, err := node.Render(ctx)
		if err != nil {
			if root {
				t.logger.Debug(LogMsgRenderFailed, zap.Error(err))
			}
			return "", err
		}
		sb.WriteString(out)
	}

	if root {
		t.logger.Debug(LogMsgRenderComplete, zap.Int(LogFieldOutputLen, sb.Len()))
	}
	return sb.String(), nil
}

// Nodes returns a copy of the template's nodes
func (t *Template) Nodes() []Renderable {
	out := make([]Renderable, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Len returns the number of top-level nodes
func (t *Template) Len() int {
	return len(t.nodes)
}

// RenderString parses source with a fresh Options built from opts and
// renders it against data.
func RenderString(source string, data map[string]any, opts ...Option) (string, error) {
	tmpl, err := Parse(source, NewOptions(opts...))
	if err != nil {
		return "", err
	}
	ctx, err := NewContextFromMap(data)
	if err != nil {
		return "", err
	}
	return tmpl.Render(ctx)
}
