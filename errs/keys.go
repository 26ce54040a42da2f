package errs

// Prefix for all fli translation keys
const (
	PrefixKey = "fli"
)

const (
	ErrorPrefixKey    = PrefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	MessagePrefixKey  = PrefixKey + ".msg"
)

// Resolution errors
const (
	ErrUnknownCommandKey         = ErrorPrefixKey + ".unknown_command"
	ErrOptionNotFoundKey         = ErrorPrefixKey + ".option_not_found"
	ErrMissingValueKey           = ErrorPrefixKey + ".missing_value"
	ErrValueParseKey             = ErrorPrefixKey + ".value_parse"
	ErrValueParseOptionKey       = ErrorPrefixKey + ".value_parse_option"
	ErrUnexpectedTokenKey        = ErrorPrefixKey + ".unexpected_token"
	ErrCommandMismatchKey        = ErrorPrefixKey + ".command_mismatch"
	ErrPositionalCountKey        = ErrorPrefixKey + ".positional_count"
	ErrPositionalCountAtLeastKey = ErrorPrefixKey + ".positional_count_at_least"
	ErrCommandCallbackKey        = ErrorPrefixKey + ".command_callback"
	ErrParseIntKey               = ParseErrorPathKey + ".int"
	ErrParseFloatKey             = ParseErrorPathKey + ".float"
	ErrParseBoolKey              = ParseErrorPathKey + ".bool"
)

// Registration errors
const (
	ErrInternalKey            = ErrorPrefixKey + ".internal"
	ErrDuplicateOptionKey     = ErrorPrefixKey + ".duplicate_option"
	ErrDuplicateCommandKey    = ErrorPrefixKey + ".duplicate_command"
	ErrEmptyNameKey           = ErrorPrefixKey + ".empty_name"
	ErrInvalidVersionKey      = ErrorPrefixKey + ".invalid_version"
	ErrInvalidDescriptorKey   = ErrorPrefixKey + ".invalid_descriptor"
	ErrInvalidTransitionKey   = ErrorPrefixKey + ".invalid_transition"
	ErrOptionNotRegisteredKey = ErrorPrefixKey + ".option_not_registered"
)

// Messages used by renderers
const (
	MsgDidYouMeanKey             = MessagePrefixKey + ".did_you_mean"
	MsgUsageKey                  = MessagePrefixKey + ".usage"
	MsgOptionsKey                = MessagePrefixKey + ".options"
	MsgSubcommandsKey            = MessagePrefixKey + ".subcommands"
	MsgCommandKey                = MessagePrefixKey + ".command"
	MsgHelpHintKey               = MessagePrefixKey + ".help_hint"
	MsgHelpDescriptionKey        = MessagePrefixKey + ".help_description"
	MsgVersionDescriptionKey     = MessagePrefixKey + ".version_description"
	MsgHeaderFlagKey             = MessagePrefixKey + ".header.flag"
	MsgHeaderLongKey             = MessagePrefixKey + ".header.long"
	MsgHeaderValueKey            = MessagePrefixKey + ".header.value"
	MsgHeaderDescriptionKey      = MessagePrefixKey + ".header.description"
	MsgShapeNoneKey              = MessagePrefixKey + ".shape.none"
	MsgShapeSingleRequiredKey    = MessagePrefixKey + ".shape.single_required"
	MsgShapeSingleOptionalKey    = MessagePrefixKey + ".shape.single_optional"
	MsgShapeMultipleExactlyKey   = MessagePrefixKey + ".shape.multiple_exactly"
	MsgShapeMultipleOneOrMoreKey = MessagePrefixKey + ".shape.multiple_one_or_more"
	MsgShapeMultipleMaxKey       = MessagePrefixKey + ".shape.multiple_max"
	MsgShapeMultipleAnyKey       = MessagePrefixKey + ".shape.multiple_any"
)
