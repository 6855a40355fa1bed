package liquid

import (
	"strings"

	"go.uber.org/zap"

	"github.com/itsatony/go-liquid/internal"
)

// ErrorMode selects how strictly templates are treated. It is carried on
// Options and Config but does not change parsing or rendering yet.
type ErrorMode int

// Error mode constants
const (
	ErrorModeStrict ErrorMode = iota
	ErrorModeWarn
	ErrorModeLax
)

// Error mode names
const (
	ErrorModeNameStrict = "strict"
	ErrorModeNameWarn   = "warn"
	ErrorModeNameLax    = "lax"
)

// String returns the name of the error mode
func (m ErrorMode) String() string {
	switch m {
	case ErrorModeStrict:
		return ErrorModeNameStrict
	case ErrorModeLax:
		return ErrorModeNameLax
	default:
		return ErrorModeNameWarn
	}
}

// ParseErrorMode converts a name such as "strict" into an ErrorMode
func ParseErrorMode(name string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ErrorModeNameStrict:
		return ErrorModeStrict, nil
	case ErrorModeNameWarn:
		return ErrorModeWarn, nil
	case ErrorModeNameLax:
		return ErrorModeLax, nil
	default:
		return DefaultErrorMode, NewConfigError(ErrMsgInvalidErrorMode, ConfigFieldErrorMode, name, nil)
	}
}

// Token is a lexical unit of a tag's arguments
type Token = internal.Token

// Element is a lexed unit of template source: text, output or tag
type Element = internal.Element

// Tag constructs the Renderable for a tag without a body
type Tag interface {
	Initialize(tagName string, args []Token, opts *Options) (Renderable, error)
}

// Block constructs the Renderable for a tag with a body closed by end<name>.
// body holds the elements between the opening and end tags; constructors
// compile it with ParseTemplate or ParseElements.
type Block interface {
	Initialize(tagName string, args []Token, body []Element, opts *Options) (Renderable, error)
}

// TagFunc adapts a function to the Tag interface
type TagFunc func(tagName string, args []Token, opts *Options) (Renderable, error)

// Initialize calls f
func (f TagFunc) Initialize(tagName string, args []Token, opts *Options) (Renderable, error) {
	return f(tagName, args, opts)
}

// BlockFunc adapts a function to the Block interface
type BlockFunc func(tagName string, args []Token, body []Element, opts *Options) (Renderable, error)

// Initialize calls f
func (f BlockFunc) Initialize(tagName string, args []Token, body []Element, opts *Options) (Renderable, error) {
	return f(tagName, args, body, opts)
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// Options is the extension registry consulted by the parser: tag and block
// constructors plus parse settings. Register extensions before parsing;
// registration is safe for concurrent use but should not race a parse.
type Options struct {
	tags      *internal.Registry[Tag]
	blocks    *internal.Registry[Block]
	errorMode ErrorMode
	maxDepth  int
	logger    *zap.Logger
}

// WithLogger sets the logger.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithMaxDepth sets the maximum block nesting depth.
// Values below 1 keep the default.
// Default: 100
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithErrorMode sets the error mode.
// Default: ErrorModeWarn
func WithErrorMode(mode ErrorMode) Option {
	return func(o *Options) {
		o.errorMode = mode
	}
}

// WithConfig applies the valid settings of cfg
func WithConfig(cfg *Config) Option {
	return func(o *Options) {
		if cfg == nil {
			return
		}
		if mode, err := ParseErrorMode(cfg.ErrorMode); err == nil {
			o.errorMode = mode
		}
		if cfg.MaxDepth > 0 {
			o.maxDepth = cfg.MaxDepth
		}
	}
}

// NewOptions creates a fresh registry holding the built-in blocks
// (if, for, comment, raw), then applies opts. Later registrations for a
// built-in name replace it.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		errorMode: DefaultErrorMode,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	o.tags = internal.NewRegistry[Tag](RegistryNameTags, o.logger)
	o.blocks = internal.NewRegistry[Block](RegistryNameBlocks, o.logger)
	registerBuiltins(o)

	o.logger.Debug(LogMsgOptionsCreated,
		zap.Int(LogFieldMaxDepth, o.maxDepth),
		zap.String(LogFieldErrorMode, o.errorMode.String()))
	return o
}

// RegisterTag registers a tag constructor. A block of the same name is removed.
func (o *Options) RegisterTag(name string, tag Tag) error {
	if fn, ok := tag.(TagFunc); tag == nil || (ok && fn == nil) {
		return NewRegistryError(ReasonNilConstructor, ErrMsgNilConstructor, name)
	}
	if err := o.tags.Register(name, tag); err != nil {
		return NewRegistryError(ReasonEmptyName, ErrMsgEmptyName, name)
	}
	if o.blocks.Delete(name) {
		o.logger.Debug(LogMsgKindReplaced, zap.String(LogFieldTag, name))
	}
	return nil
}

// RegisterBlock registers a block constructor. A tag of the same name is removed.
func (o *Options) RegisterBlock(name string, block Block) error {
	if fn, ok := block.(BlockFunc); block == nil || (ok && fn == nil) {
		return NewRegistryError(ReasonNilConstructor, ErrMsgNilConstructor, name)
	}
	if err := o.blocks.Register(name, block); err != nil {
		return NewRegistryError(ReasonEmptyName, ErrMsgEmptyName, name)
	}
	if o.tags.Delete(name) {
		o.logger.Debug(LogMsgKindReplaced, zap.String(LogFieldTag, name))
	}
	return nil
}

// MustRegisterTag registers a tag constructor and panics if registration fails.
// Use this for setup code where a failure is a programming error.
func (o *Options) MustRegisterTag(name string, tag Tag) {
	if err := o.RegisterTag(name, tag); err != nil {
		panic(err)
	}
}

// MustRegisterBlock registers a block constructor and panics if registration fails.
func (o *Options) MustRegisterBlock(name string, block Block) {
	if err := o.RegisterBlock(name, block); err != nil {
		panic(err)
	}
}

// Unregister removes a tag or block. Returns true if anything was removed.
func (o *Options) Unregister(name string) bool {
	removedTag := o.tags.Delete(name)
	removedBlock := o.blocks.Delete(name)
	return removedTag || removedBlock
}

// Tag returns the tag constructor registered under name
func (o *Options) Tag(name string) (Tag, bool) {
	return o.tags.Get(name)
}

// Block returns the block constructor registered under name
func (o *Options) Block(name string) (Block, bool) {
	return o.blocks.Get(name)
}

// IsBlock reports whether name is a registered block
func (o *Options) IsBlock(name string) bool {
	return o.blocks.Has(name)
}

// Tags returns the registered tag names in sorted order
func (o *Options) Tags() []string {
	return o.tags.List()
}

// Blocks returns the registered block names in sorted order
func (o *Options) Blocks() []string {
	return o.blocks.List()
}

// ErrorMode returns the configured error mode
func (o *Options) ErrorMode() ErrorMode {
	return o.errorMode
}

// MaxDepth returns the maximum nesting depth
func (o *Options) MaxDepth() int {
	return o.maxDepth
}

// Logger returns the configured logger; never nil
func (o *Options) Logger() *zap.Logger {
	return o.logger
}

// blockMatcher returns a matcher over the currently registered blocks
func (o *Options) blockMatcher() *internal.BlockMatcher {
	return internal.NewBlockMatcher(o.IsBlock, o.isOpaque, o.maxDepth, o.logger)
}

// names returns every registered tag and block name, for suggestions
func (o *Options) names() []string {
	return append(o.Tags(), o.Blocks()...)
}
