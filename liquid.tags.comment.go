package liquid

// commentBlock discards its body; arguments are ignored
type commentBlock struct{}

// commentBlockBuilder is the built-in comment constructor. While it is
// registered comment bodies are opaque to block matching.
type commentBlockBuilder struct{}

func (commentBlockBuilder) Initialize(tagName string, args []Token, body []Element, opts *Options) (Renderable, error) {
	return newCommentBlock(tagName, args, body, opts)
}

func newCommentBlock(string, []Token, []Element, *Options) (Renderable, error) {
	return commentBlock{}, nil
}

func (commentBlock) Render(*Context) (string, error) {
	return "", nil
}
