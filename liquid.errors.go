package liquid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-liquid/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Lex errors
	ErrMsgLexFailed = "template tokenization failed"

	// Parse errors
	ErrMsgUnknownTag        = "unknown tag"
	ErrMsgInvalidArguments  = "invalid tag arguments"
	ErrMsgUnterminatedBlock = "unterminated block"
	ErrMsgMismatchedEndTag  = "mismatched end tag"
	ErrMsgDepthExceeded     = "maximum nesting depth exceeded"
	ErrMsgInvalidExpression = "invalid output expression"
	ErrMsgForSyntax         = "expected '<identifier> in <identifier>'"
	ErrMsgNoArguments       = "takes no arguments"
	ErrMsgElseNotLast       = "else must be the last branch"
	ErrMsgDuplicateElse     = "only one else branch is allowed"

	// Render errors
	ErrMsgUndefinedVariable = "undefined variable"
	ErrMsgTypeMismatch      = "type mismatch"
	ErrMsgUnknownFilter     = "unknown filter"
	ErrMsgFilterFailed      = "filter failed"

	// Registry errors
	ErrMsgEmptyName      = "name cannot be empty"
	ErrMsgNilConstructor = "constructor cannot be nil"

	// Config errors
	ErrMsgInvalidErrorMode = "invalid error mode"
	ErrMsgInvalidMaxDepth  = "max depth must be positive"
	ErrMsgInvalidLogLevel  = "invalid log level"
	ErrMsgConfigRead       = "failed to read config file"
	ErrMsgConfigParse      = "failed to parse config"
)

// Position represents a location in the source template
type Position = internal.Position

// newError builds the common error shape: code, kind and reason, optionally wrapping a cause.
func newError(code, kind, reason, msg string, cause error) *cuserr.CustomError {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, code, msg)
	} else {
		err = cuserr.NewValidationError(code, msg)
	}
	return err.
		WithMetadata(MetaKeyKind, kind).
		WithMetadata(MetaKeyReason, reason)
}

func withPosition(err *cuserr.CustomError, pos Position) *cuserr.CustomError {
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

func withSuggestions(err *cuserr.CustomError, suggestions []string) *cuserr.CustomError {
	if len(suggestions) == 0 {
		return err
	}
	return err.WithMetadata(MetaKeySuggestions, strings.Join(suggestions, ","))
}

// NewLexError creates a tokenization error with position context
func NewLexError(reason, msg string, pos Position, detail string) error {
	if detail == "" {
		return withPosition(newError(ErrCodeLex, KindLex, reason, msg, nil), pos)
	}
	msg = fmt.Sprintf("%s '%s'", msg, detail)
	err := newError(ErrCodeLex, KindLex, reason, msg, nil).WithMetadata(MetaKeyDetail, detail)
	return withPosition(err, pos)
}

// NewParseError creates a parse error with tag and position context
func NewParseError(reason, msg, tagName string, pos Position, cause error) error {
	err := newError(ErrCodeParse, KindParse, reason, msg, cause)
	if tagName != "" {
		err = err.WithMetadata(MetaKeyTag, tagName)
	}
	return withPosition(err, pos)
}

// NewUnknownTagError creates an error for a tag name that is neither a tag nor a block
func NewUnknownTagError(tagName string, pos Position, suggestions []string) error {
	msg := fmt.Sprintf("%s '%s'%s", ErrMsgUnknownTag, tagName, internal.FormatSuggestions(suggestions))
	err := newError(ErrCodeParse, KindParse, ReasonUnknownTag, msg, nil).
		WithMetadata(MetaKeyTag, tagName)
	return withPosition(withSuggestions(err, suggestions), pos)
}

// NewInvalidArgumentsError creates an error for malformed tag arguments
func NewInvalidArgumentsError(tagName string, pos Position, cause error) error {
	msg := fmt.Sprintf("%s for '%s'", ErrMsgInvalidArguments, tagName)
	err := newError(ErrCodeParse, KindParse, ReasonInvalidArguments, msg, cause).
		WithMetadata(MetaKeyTag, tagName)
	return withPosition(err, pos)
}

// NewUnterminatedBlockError creates an error for a block without its end tag
func NewUnterminatedBlockError(tagName string, pos Position) error {
	msg := fmt.Sprintf("%s '%s'", ErrMsgUnterminatedBlock, tagName)
	err := newError(ErrCodeParse, KindParse, ReasonUnterminatedBlock, msg, nil).
		WithMetadata(MetaKeyTag, tagName).
		WithMetadata(MetaKeyExpected, internal.EndTagName(tagName))
	return withPosition(err, pos)
}

// NewMismatchedEndTagError creates an error for an end tag closing the wrong block
func NewMismatchedEndTagError(tagName, actual string, pos Position) error {
	expected := internal.EndTagName(tagName)
	msg := fmt.Sprintf("%s: expected '%s', got '%s'", ErrMsgMismatchedEndTag, expected, actual)
	err := newError(ErrCodeParse, KindParse, ReasonMismatchedEndTag, msg, nil).
		WithMetadata(MetaKeyTag, tagName).
		WithMetadata(MetaKeyExpected, expected).
		WithMetadata(MetaKeyActual, actual)
	return withPosition(err, pos)
}

// NewDepthExceededError creates a nesting depth error. kind is KindParse or KindRender.
func NewDepthExceededError(kind string, maxDepth int, pos Position) error {
	code := ErrCodeParse
	if kind == KindRender {
		code = ErrCodeRender
	}
	err := newError(code, kind, ReasonDepthExceeded, ErrMsgDepthExceeded, nil).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(maxDepth))
	return withPosition(err, pos)
}

// NewRenderError creates a render error with a reason
func NewRenderError(reason, msg string, cause error) error {
	return newError(ErrCodeRender, KindRender, reason, msg, cause)
}

// NewUndefinedVariableError creates an error for a variable missing from the context
func NewUndefinedVariableError(name string) error {
	msg := fmt.Sprintf("%s '%s'", ErrMsgUndefinedVariable, name)
	return newError(ErrCodeRender, KindRender, ReasonUndefinedVariable, msg, nil).
		WithMetadata(MetaKeyVariable, name)
}

// NewTypeMismatchError creates an error for a value of the wrong variant.
// subject names the variable or filter involved and may be empty.
func NewTypeMismatchError(subject, expected, actual string) error {
	msg := fmt.Sprintf("%s: expected %s, got %s", ErrMsgTypeMismatch, expected, actual)
	if subject != "" {
		msg = fmt.Sprintf("%s for '%s'", msg, subject)
	}
	err := newError(ErrCodeRender, KindRender, ReasonTypeMismatch, msg, nil).
		WithMetadata(MetaKeyExpected, expected).
		WithMetadata(MetaKeyActual, actual)
	if subject != "" {
		err = err.WithMetadata(MetaKeyVariable, subject)
	}
	return err
}

// NewFilterTypeMismatchError creates a type mismatch raised by a filter on its input
func NewFilterTypeMismatchError(filter, expected, actual string) error {
	msg := fmt.Sprintf("%s: filter '%s' expected %s, got %s", ErrMsgTypeMismatch, filter, expected, actual)
	return newError(ErrCodeRender, KindRender, ReasonTypeMismatch, msg, nil).
		WithMetadata(MetaKeyFilter, filter).
		WithMetadata(MetaKeyExpected, expected).
		WithMetadata(MetaKeyActual, actual)
}

// NewUnknownFilterError creates an error for a filter missing from the context
func NewUnknownFilterError(name string, suggestions []string) error {
	msg := fmt.Sprintf("%s '%s'%s", ErrMsgUnknownFilter, name, internal.FormatSuggestions(suggestions))
	err := newError(ErrCodeRender, KindRender, ReasonUnknownFilter, msg, nil).
		WithMetadata(MetaKeyFilter, name)
	return withSuggestions(err, suggestions)
}

// NewFilterFailedError wraps an error returned by a filter
func NewFilterFailedError(name string, cause error) error {
	msg := fmt.Sprintf("%s '%s'", ErrMsgFilterFailed, name)
	return newError(ErrCodeRender, KindRender, ReasonFilterFailed, msg, cause).
		WithMetadata(MetaKeyFilter, name)
}

// NewRegistryError creates a registration error
func NewRegistryError(reason, msg, name string) error {
	return newError(ErrCodeRegistry, KindRegistry, reason, msg, nil).
		WithMetadata(MetaKeyTag, name)
}

// NewConfigError creates a configuration error naming the offending field
func NewConfigError(msg, field, value string, cause error) error {
	return newError(ErrCodeConfig, KindConfig, ReasonInvalidConfig, msg, cause).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}

// KindOf returns the error kind (lex, parse, render, registry, config) or "" for foreign errors.
func KindOf(err error) string {
	return metadataOf(err, MetaKeyKind)
}

// ReasonOf returns the error reason (e.g. unknown_tag) or "" for foreign errors.
func ReasonOf(err error) string {
	return metadataOf(err, MetaKeyReason)
}

// MetadataOf returns a metadata value attached to a liquid error
func MetadataOf(err error, key string) (string, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return "", false
	}
	return customErr.GetMetadata(key)
}

func metadataOf(err error, key string) string {
	v, _ := MetadataOf(err, key)
	return v
}

// IsLexError reports whether err is a tokenization error
func IsLexError(err error) bool { return KindOf(err) == KindLex }

// IsParseError reports whether err is a parse error
func IsParseError(err error) bool { return KindOf(err) == KindParse }

// IsRenderError reports whether err is a render error
func IsRenderError(err error) bool { return KindOf(err) == KindRender }

// fromLexerError converts an internal lexer error into a liquid error
func fromLexerError(err error) error {
	var lexErr *internal.LexerError
	if !errors.As(err, &lexErr) {
		return newError(ErrCodeLex, KindLex, ReasonUnexpectedChar, ErrMsgLexFailed, err)
	}

	reason := ReasonUnexpectedChar
	switch lexErr.Message {
	case internal.ErrMsgUnterminatedOutput:
		reason = ReasonUnterminatedOutput
	case internal.ErrMsgUnterminatedTag:
		reason = ReasonUnterminatedTag
	case internal.ErrMsgUnterminatedStr:
		reason = ReasonUnterminatedString
	case internal.ErrMsgMissingTagName:
		reason = ReasonMissingTagName
	}
	return NewLexError(reason, lexErr.Message, lexErr.Position, lexErr.Detail)
}

// fromBlockError converts an internal block matcher error into a liquid error
func fromBlockError(err error, maxDepth int) error {
	var blockErr *internal.BlockError
	if !errors.As(err, &blockErr) {
		return err
	}

	switch blockErr.Message {
	case internal.ErrMsgMismatchedEndTag:
		return NewMismatchedEndTagError(blockErr.TagName, blockErr.Actual, blockErr.Position)
	case internal.ErrMsgDepthExceeded:
		return NewDepthExceededError(KindParse, maxDepth, blockErr.Position)
	default:
		return NewUnterminatedBlockError(blockErr.TagName, blockErr.Position)
	}
}
