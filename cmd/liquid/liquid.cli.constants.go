package main

// CLI identity
const (
	CLIName      = "liquid"
	CLIShort     = "Render Liquid-style templates"
	CLILong      = `liquid compiles and renders Liquid-style templates with {{ output }} and
{% tag %} markup. Data is supplied as JSON or YAML.`
	EnvPrefix    = "LIQUID_"
	KeyDelimiter = "."
)

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameTags     = "tags"
	CmdNameVersion  = "version"
)

// Flag names - long form
const (
	FlagConfig    = "config"
	FlagMaxDepth  = "max-depth"
	FlagErrorMode = "error-mode"
	FlagLogLevel  = "log-level"
	FlagTemplate  = "template"
	FlagData      = "data"
	FlagDataFile  = "data-file"
	FlagOutput    = "output"
	FlagWatch     = "watch"
	FlagFormat    = "format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagWatchShort    = "w"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Data file extensions decoded as JSON; anything else is read as YAML
const (
	ExtJSON = ".json"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgInvalidData       = "invalid data"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgParseFailed       = "template parsing failed"
	ErrMsgRenderFailed      = "template rendering failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgConfigFailed      = "configuration failed"
	ErrMsgWatchStdin        = "cannot watch a template read from stdin"
	ErrMsgWatchFailed       = "failed to watch template"
)

// Status and table text
const (
	TextValid        = "valid"
	TableHeaderName  = "Name"
	TableHeaderKind  = "Kind"
	TableHeaderBuilt = "Built-in"
	TableKindBlock   = "block"
	TableKindTag     = "tag"
)

// Version output
const (
	VersionTextTemplate = "liquid version %s\nGo: %s"
	VersionUnknown      = "dev"
)

// Log message constants
const (
	LogMsgConfigLoaded = "configuration loaded"
	LogMsgWatchStarted = "watching template"
	LogMsgWatchRender  = "template changed, re-rendering"
	LogMsgWatchError   = "watcher error"
	LogMsgWatchStopped = "watch stopped"
	LogFieldPath       = "path"
	LogFieldConfigFile = "config_file"
	LogFieldMaxDepth   = "max_depth"
	LogFieldErrorMode  = "error_mode"
	LogFieldLogLevel   = "log_level"
)

// Miscellaneous
const (
	FilePermissions    = 0644
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
