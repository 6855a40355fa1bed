package liquid

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-liquid/internal"
)

// Parse compiles source into a Template using the tags and blocks in opts.
// A nil opts means NewOptions(). Parse never re-registers built-ins, so
// overrides registered on opts are honored.
func Parse(source string, opts *Options) (*Template, error) {
	if opts == nil {
		opts = NewOptions()
	}
	opts.logger.Debug(LogMsgParseStart, zap.Int(LogFieldSourceLen, len(source)))

	lexerConfig := internal.LexerConfig{CaptureRaw: opts.capturesRaw()}
	elements, err := internal.NewLexerWithConfig(source, lexerConfig, opts.logger).Tokenize()
	if err != nil {
		return nil, fromLexerError(err)
	}

	nodes, err := ParseElements(elements, opts)
	if err != nil {
		return nil, err
	}

	opts.logger.Debug(LogMsgParseComplete, zap.Int(LogFieldNodes, len(nodes)))
	return NewTemplate(nodes, opts), nil
}

// MustParse is like Parse but panics on error. Intended for templates known at compile time.
func MustParse(source string, opts *Options) *Template {
	tmpl, err := Parse(source, opts)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// ParseElements compiles an element sequence into renderable nodes. It is the
// single recursive entry point: block constructors call it on their bodies.
func ParseElements(elements []Element, opts *Options) ([]Renderable, error) {
	if opts == nil {
		opts = NewOptions()
	}
	matcher := opts.blockMatcher()

	var nodes []Renderable
	for i := 0; i < len(elements); i++ {
		el := elements[i]

		switch el.Kind {
		case internal.ElementKindText:
			nodes = append(nodes, &textNode{text: el.Text})

		case internal.ElementKindOutput:
			node, err := newVariableNode(el)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		case internal.ElementKindTag:
			if tag, ok := opts.Tag(el.Name); ok {
				node, err := tag.Initialize(el.Name, el.Args, opts)
				if err != nil {
					return nil, constructorError(el, err)
				}
				nodes = append(nodes, node)
				continue
			}

			block, ok := opts.Block(el.Name)
			if !ok {
				suggestions := internal.FindSimilarStrings(el.Name, opts.names(), DefaultMaxSuggestions)
				return nil, NewUnknownTagError(el.Name, el.Position, suggestions)
			}

			end, err := matcher.FindEnd(elements, i, 1)
			if err != nil {
				return nil, fromBlockError(err, opts.maxDepth)
			}

			body := elements[i+1 : end : end]
			node, err := block.Initialize(el.Name, el.Args, body, opts)
			if err != nil {
				return nil, constructorError(el, err)
			}
			opts.logger.Debug(LogMsgBlockInitialized,
				zap.String(LogFieldTag, el.Name),
				zap.Int(LogFieldNodes, len(body)))
			nodes = append(nodes, node)
			i = end
		}
	}

	return nodes, nil
}

// constructorError keeps typed liquid errors and wraps anything else as invalid_arguments
func constructorError(el Element, err error) error {
	if KindOf(err) != "" {
		return err
	}
	return NewInvalidArgumentsError(el.Name, el.Position, err)
}
