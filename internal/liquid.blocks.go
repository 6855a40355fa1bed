package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// BlockMatcher locates the extent of block tags in an element sequence
type BlockMatcher struct {
	isBlock  func(name string) bool
	isOpaque func(name string) bool
	maxDepth int
	logger   *zap.Logger
}

// NewBlockMatcher creates a matcher. isBlock reports whether a tag name opens
// a block. isOpaque reports blocks whose bodies are never parsed; inside them
// only their own opening and end tags count. A nil isOpaque means none.
func NewBlockMatcher(isBlock, isOpaque func(name string) bool, maxDepth int, logger *zap.Logger) *BlockMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if isOpaque == nil {
		isOpaque = func(string) bool { return false }
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &BlockMatcher{
		isBlock:  isBlock,
		isOpaque: isOpaque,
		maxDepth: maxDepth,
		logger:   logger,
	}
}

// skipped reports whether el is ignored because the innermost open block is opaque
func (m *BlockMatcher) skipped(el Element, innermost string) bool {
	if innermost == "" || !m.isOpaque(innermost) {
		return false
	}
	return el.Name != innermost && el.Name != EndTagName(innermost)
}

// FindEnd returns the index of the end tag closing the block opened at
// elements[start]. Nested blocks of any name are tracked on a stack; depth
// is the nesting level of the opening tag itself.
func (m *BlockMatcher) FindEnd(elements []Element, start, depth int) (int, error) {
	open := elements[start]
	stack := []Element{open}

	for i := start + 1; i < len(elements); i++ {
		el := elements[i]
		if el.Kind != ElementKindTag {
			continue
		}
		top := stack[len(stack)-1]
		if m.skipped(el, top.Name) {
			continue
		}

		// A registered block name wins over the end prefix ("endless" opens a block)
		if m.isBlock(el.Name) {
			stack = append(stack, el)
			if depth+len(stack)-1 > m.maxDepth {
				return 0, &BlockError{
					Message:  ErrMsgDepthExceeded,
					TagName:  el.Name,
					Position: el.Position,
					Expected: fmt.Sprintf("%d", m.maxDepth),
				}
			}
			continue
		}

		if !el.IsEndTag() {
			continue
		}
		name := strings.TrimPrefix(el.Name, EndTagPrefix)
		if name == top.Name {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				m.logger.Debug(LogMsgBlockMatched,
					zap.String(LogFieldName, open.Name),
					zap.Int(LogFieldLine, open.Position.Line),
					zap.Int(LogFieldElements, i-start-1))
				return i, nil
			}
			continue
		}
		// An end tag for something that is not a block is left for the parser to reject
		if m.isBlock(name) || stackHas(stack, name) {
			return 0, &BlockError{
				Message:  ErrMsgMismatchedEndTag,
				TagName:  top.Name,
				Position: el.Position,
				Expected: EndTagName(top.Name),
				Actual:   el.Name,
			}
		}
	}

	innermost := stack[len(stack)-1]
	return 0, &BlockError{
		Message:  ErrMsgUnterminatedBlock,
		TagName:  innermost.Name,
		Position: innermost.Position,
		Expected: EndTagName(innermost.Name),
	}
}

// Branch is a section of a block body introduced by a separator tag.
// The first branch has a nil Tag.
type Branch struct {
	Tag  *Element
	Body []Element
}

// SplitBranches splits a block body at separator tags (e.g. elsif, else)
// that appear outside any nested block. body must be balanced, as returned
// between an opening tag and the index FindEnd reports.
func (m *BlockMatcher) SplitBranches(body []Element, separators ...string) []Branch {
	branches := []Branch{{}}
	var open []string

	for i := range body {
		el := body[i]
		if el.Kind == ElementKindTag {
			innermost := ""
			if len(open) > 0 {
				innermost = open[len(open)-1]
			}

			switch {
			case m.skipped(el, innermost):
			case m.isBlock(el.Name):
				open = append(open, el.Name)
			case innermost != "" && el.Name == EndTagName(innermost):
				open = open[:len(open)-1]
			case innermost == "" && isSeparator(el.Name, separators):
				branches = append(branches, Branch{Tag: &body[i]})
				continue
			}
		}
		last := &branches[len(branches)-1]
		last.Body = append(last.Body, el)
	}

	return branches
}

func isSeparator(name string, separators []string) bool {
	for _, s := range separators {
		if name == s {
			return true
		}
	}
	return false
}

func stackHas(stack []Element, name string) bool {
	for _, el := range stack {
		if el.Name == name {
			return true
		}
	}
	return false
}

// BlockError represents a block structure error with position
type BlockError struct {
	Message  string
	TagName  string
	Position Position
	Expected string
	Actual   string
}

// Error implements the error interface
func (e *BlockError) Error() string {
	if e.TagName != "" {
		return fmt.Sprintf(ErrFmtWithTagAndPosition, e.Message, e.TagName, e.Position)
	}
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position)
}

// Block matcher error messages
const (
	ErrMsgUnterminatedBlock = "unterminated block"
	ErrMsgMismatchedEndTag  = "mismatched end tag"
	ErrMsgDepthExceeded     = "maximum nesting depth exceeded"
)
