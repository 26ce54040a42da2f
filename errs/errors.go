package errs

import (
	"github.com/napalu/fli/i18n"
	"golang.org/x/text/language"
)

// Resolution errors
var (
	ErrUnknownCommand         = i18n.NewError(ErrUnknownCommandKey)
	ErrOptionNotFound         = i18n.NewError(ErrOptionNotFoundKey)
	ErrMissingValue           = i18n.NewError(ErrMissingValueKey)
	ErrValueParse             = i18n.NewError(ErrValueParseKey)
	ErrValueParseOption       = i18n.NewError(ErrValueParseOptionKey)
	ErrUnexpectedToken        = i18n.NewError(ErrUnexpectedTokenKey)
	ErrCommandMismatch        = i18n.NewError(ErrCommandMismatchKey)
	ErrPositionalCount        = i18n.NewError(ErrPositionalCountKey)
	ErrPositionalCountAtLeast = i18n.NewError(ErrPositionalCountAtLeastKey)
	ErrCommandCallback        = i18n.NewError(ErrCommandCallbackKey)
)

// Coercion reasons carried by ValueParseError
var (
	ErrParseInt   = i18n.NewError(ErrParseIntKey)
	ErrParseFloat = i18n.NewError(ErrParseFloatKey)
	ErrParseBool  = i18n.NewError(ErrParseBoolKey)
)

// Registration errors, always reported wrapped in an InternalError
var (
	ErrInternal            = i18n.NewError(ErrInternalKey)
	ErrDuplicateOption     = i18n.NewError(ErrDuplicateOptionKey)
	ErrDuplicateCommand    = i18n.NewError(ErrDuplicateCommandKey)
	ErrEmptyName           = i18n.NewError(ErrEmptyNameKey)
	ErrInvalidVersion      = i18n.NewError(ErrInvalidVersionKey)
	ErrInvalidDescriptor   = i18n.NewError(ErrInvalidDescriptorKey)
	ErrInvalidTransition   = i18n.NewError(ErrInvalidTransitionKey)
	ErrOptionNotRegistered = i18n.NewError(ErrOptionNotRegisteredKey)
)

// UpdateMessageProvider replaces the provider used to render every error message
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
}

// SetLanguage switches the language of the embedded bundle used for error messages
func SetLanguage(lang language.Tag) error {
	return i18n.Default().SetDefaultLanguage(lang)
}

// UnknownCommandError is returned when a bare token matches no subcommand of a node
// which declares no positional arguments.
type UnknownCommandError struct {
	Token       string
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	return ErrUnknownCommand.WithArgs(e.Token).Error()
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}

// OptionNotFoundError is returned for a flag token absent from the active registry
type OptionNotFoundError struct {
	Token string
}

func (e *OptionNotFoundError) Error() string {
	return ErrOptionNotFound.WithArgs(e.Token).Error()
}

func (e *OptionNotFoundError) Unwrap() error {
	return ErrOptionNotFound
}

// MissingValueError is returned when an option receives fewer values than its descriptor requires
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return ErrMissingValue.WithArgs(e.Option).Error()
}

func (e *MissingValueError) Unwrap() error {
	return ErrMissingValue
}

// ValueParseError is returned when a raw token cannot be coerced to the expected kind.
// Option is empty when the coercion happened outside of option resolution.
type ValueParseError struct {
	Raw      string
	Expected string
	Reason   error
	Option   string
}

func (e *ValueParseError) Error() string {
	var err i18n.TranslatableError
	if e.Option != "" {
		err = ErrValueParseOption.WithArgs(e.Raw, e.Option, e.Expected)
	} else {
		err = ErrValueParse.WithArgs(e.Raw, e.Expected)
	}
	if e.Reason != nil {
		err = err.Wrap(e.Reason)
	}

	return err.Error()
}

func (e *ValueParseError) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrValueParse}
	}

	return []error{ErrValueParse, e.Reason}
}

// UnexpectedTokenError is returned for malformed flag syntax
type UnexpectedTokenError struct {
	Token    string
	Position int
}

func (e *UnexpectedTokenError) Error() string {
	return ErrUnexpectedToken.WithArgs(e.Token, e.Position).Error()
}

func (e *UnexpectedTokenError) Unwrap() error {
	return ErrUnexpectedToken
}

// CommandMismatchError is returned when a subtree is resolved with an argument vector
// which does not start with the subtree's command name.
type CommandMismatchError struct {
	Expected string
	Actual   string
}

func (e *CommandMismatchError) Error() string {
	return ErrCommandMismatch.WithArgs(e.Expected, e.Actual).Error()
}

func (e *CommandMismatchError) Unwrap() error {
	return ErrCommandMismatch
}

// PositionalArgCountError is returned when the resolved command received the wrong
// number of positional arguments.
type PositionalArgCountError struct {
	Command  string
	Expected int
	Actual   int
	AtLeast  bool
}

func (e *PositionalArgCountError) Error() string {
	if e.AtLeast {
		return ErrPositionalCountAtLeast.WithArgs(e.Command, e.Expected, e.Actual).Error()
	}

	return ErrPositionalCount.WithArgs(e.Command, e.Expected, e.Actual).Error()
}

func (e *PositionalArgCountError) Unwrap() error {
	return ErrPositionalCount
}

// InternalError reports a programming error: registry misuse or a broken invariant.
// Reason holds the specific sentinel, e.g. ErrDuplicateOption.
type InternalError struct {
	Reason error
}

// NewInternal wraps reason in an InternalError
func NewInternal(reason error) *InternalError {
	return &InternalError{Reason: reason}
}

func (e *InternalError) Error() string {
	if e.Reason == nil {
		return ErrInternal.Error()
	}

	return ErrInternal.Wrap(e.Reason).Error()
}

func (e *InternalError) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrInternal}
	}

	return []error{ErrInternal, e.Reason}
}
