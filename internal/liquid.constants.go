package internal

// TokenType represents the type of a markup token
type TokenType string

// Token type constants
const (
	TokenTypeIdentifier TokenType = "IDENT"
	TokenTypeNumber     TokenType = "NUMBER"
	TokenTypeString     TokenType = "STRING"
	TokenTypeOperator   TokenType = "OPERATOR"
	TokenTypePipe       TokenType = "PIPE"
	TokenTypeColon      TokenType = "COLON"
	TokenTypeComma      TokenType = "COMMA"
)

// ElementKind identifies the kind of a lexed element
type ElementKind int

// Element kind constants
const (
	ElementKindText ElementKind = iota
	ElementKindOutput
	ElementKindTag
)

// Element kind string names for debugging
const (
	ElementKindNameText   = "TEXT"
	ElementKindNameOutput = "OUTPUT"
	ElementKindNameTag    = "TAG"
)

// String returns the string representation of the element kind
func (k ElementKind) String() string {
	switch k {
	case ElementKindText:
		return ElementKindNameText
	case ElementKindOutput:
		return ElementKindNameOutput
	case ElementKindTag:
		return ElementKindNameTag
	default:
		return ElementKindNameText
	}
}

// Character constants
const (
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharBackslash   = '\\'
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
	CharPipe        = '|'
	CharColon       = ':'
	CharComma       = ','
	CharDot         = '.'
	CharMinus       = '-'
	CharLess        = '<'
	CharGreater     = '>'
)

// Delimiter constants
const (
	StrOutputOpen  = "{{"
	StrOutputClose = "}}"
	StrTagOpen     = "{%"
	StrTagClose    = "%}"
	StrTrimMarker  = "-"
)

// Tag name conventions shared by the lexer and block matcher
const (
	TagNameRaw   = "raw"
	EndTagPrefix = "end"
	TagNameElse  = "else"
	TagNameElsif = "elsif"
)

// Expression keywords
const (
	KeywordTrue     = "true"
	KeywordFalse    = "false"
	KeywordNil      = "nil"
	KeywordAnd      = "and"
	KeywordOr       = "or"
	KeywordContains = "contains"
	KeywordIn       = "in"
)

// Comparison operators
const (
	OpEq  = "=="
	OpNeq = "!="
	OpLt  = "<"
	OpGt  = ">"
	OpLte = "<="
	OpGte = ">="
)

// Log message constants
const (
	LogMsgLexerCreated    = "lexer created"
	LogMsgTokenizerStart  = "starting tokenization"
	LogMsgTokenizerEnd    = "tokenization complete"
	LogMsgRawCaptured     = "raw body captured"
	LogMsgBlockMatched    = "block end matched"
	LogMsgRegistryCreated = "registry created"
	LogMsgEntryRegistered = "registry entry registered"
	LogMsgEntryOverridden = "registry entry overridden - last registration wins"
	LogMsgEntryRemoved    = "registry entry removed"
)

// Log field names
const (
	LogFieldSource     = "source_length"
	LogFieldElements   = "element_count"
	LogFieldName       = "name"
	LogFieldRegistry   = "registry"
	LogFieldLine       = "line"
	LogFieldColumn     = "column"
	LogFieldCaptureRaw = "capture_raw"
)

// Default configuration values
const (
	DefaultMaxDepth       = 100
	DefaultMaxSuggestions = 3
)

// Error format string constants (for Error() methods)
const (
	ErrFmtWithPosition       = "%s at %s"
	ErrFmtWithTagAndPosition = "%s [%s] at %s"
	ErrFmtWithDetail         = "%s: %s"
)

