package liquid

// Built-in block names
const (
	BlockNameIf      = "if"
	BlockNameFor     = "for"
	BlockNameComment = "comment"
	BlockNameRaw     = "raw"
)

// Branch separator tag names
const (
	TagNameElse  = "else"
	TagNameElsif = "elsif"
)

// Built-in filter names
const (
	FilterNameSize = "size"
)

// Registry labels used in logs and errors
const (
	RegistryNameTags   = "tags"
	RegistryNameBlocks = "blocks"
)

// Default configuration values
const (
	DefaultMaxDepth       = 100
	DefaultErrorMode      = ErrorModeWarn
	DefaultLogLevel       = "info"
	DefaultMaxSuggestions = 3
)

// Error code constants for categorization
const (
	ErrCodeLex      = "LIQUID_LEX"
	ErrCodeParse    = "LIQUID_PARSE"
	ErrCodeRender   = "LIQUID_RENDER"
	ErrCodeRegistry = "LIQUID_REGISTRY"
	ErrCodeConfig   = "LIQUID_CONFIG"
)

// Error kinds, stored under MetaKeyKind
const (
	KindLex      = "lex"
	KindParse    = "parse"
	KindRender   = "render"
	KindRegistry = "registry"
	KindConfig   = "config"
)

// Error reasons, stored under MetaKeyReason
const (
	ReasonUnterminatedOutput = "unterminated_output"
	ReasonUnterminatedTag    = "unterminated_tag"
	ReasonUnterminatedString = "unterminated_string"
	ReasonUnexpectedChar     = "unexpected_character"
	ReasonMissingTagName     = "missing_tag_name"

	ReasonUnknownTag        = "unknown_tag"
	ReasonInvalidArguments  = "invalid_arguments"
	ReasonUnterminatedBlock = "unterminated_block"
	ReasonMismatchedEndTag  = "mismatched_end_tag"
	ReasonDepthExceeded     = "depth_exceeded"
	ReasonInvalidExpression = "invalid_expression"

	ReasonUndefinedVariable = "undefined_variable"
	ReasonTypeMismatch      = "type_mismatch"
	ReasonUnknownFilter     = "unknown_filter"
	ReasonFilterFailed      = "filter_failed"

	ReasonEmptyName      = "empty_name"
	ReasonNilConstructor = "nil_constructor"

	ReasonInvalidConfig = "invalid_config"
)

// Metadata keys for error context
const (
	MetaKeyKind        = "kind"
	MetaKeyReason      = "reason"
	MetaKeyTag         = "tag"
	MetaKeyVariable    = "variable"
	MetaKeyFilter      = "filter"
	MetaKeyLine        = "line"
	MetaKeyColumn      = "column"
	MetaKeyOffset      = "offset"
	MetaKeyExpected    = "expected"
	MetaKeyActual      = "actual"
	MetaKeySuggestions = "suggestions"
	MetaKeyDetail      = "detail"
	MetaKeyField       = "field"
	MetaKeyValue       = "value"
	MetaKeyMaxDepth    = "max_depth"
)

// Log message constants
const (
	LogMsgOptionsCreated   = "options created"
	LogMsgParseStart       = "parsing template"
	LogMsgParseComplete    = "template parsed"
	LogMsgRenderStart      = "rendering template"
	LogMsgRenderComplete   = "template rendered"
	LogMsgRenderFailed     = "template render failed"
	LogMsgLoopStart        = "loop started"
	LogMsgBlockInitialized = "block initialized"
	LogMsgKindReplaced     = "registration replaced an entry of the other kind"
)

// Log field names
const (
	LogFieldSourceLen = "source_length"
	LogFieldNodes     = "node_count"
	LogFieldTag       = "tag"
	LogFieldLoopVar   = "loop_variable"
	LogFieldItems     = "item_count"
	LogFieldOutputLen = "output_length"
	LogFieldMaxDepth  = "max_depth"
	LogFieldErrorMode = "error_mode"
)

// Text rendering constants
const (
	TextTrue        = "true"
	TextFalse       = "false"
	TextObjectOpen  = "{"
	TextObjectClose = "}"
	TextObjectSep   = ", "
	TextKeyValueSep = "="
)
