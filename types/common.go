package types

// Kind is the scalar type carried by a Value
type Kind int

const (
	KindString Kind = iota // KindString denotes a plain string value
	KindInt                // KindInt denotes a 64-bit signed integer value
	KindFloat              // KindFloat denotes a 64-bit float value
	KindBool               // KindBool denotes a boolean value
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindString:
		fallthrough
	default:
		return "string"
	}
}

// Shape is the cardinality contract of a Descriptor
type Shape int

const (
	ShapeNone             Shape = iota // ShapeNone denotes a flag which takes no value
	ShapeRequiredSingle                // ShapeRequiredSingle denotes exactly one value
	ShapeOptionalSingle                // ShapeOptionalSingle denotes zero or one value
	ShapeRequiredMultiple              // ShapeRequiredMultiple denotes one or more values (exactly max when bounded)
	ShapeOptionalMultiple              // ShapeOptionalMultiple denotes zero up to max values
)

// String returns the string representation of a Shape
func (s Shape) String() string {
	switch s {
	case ShapeRequiredSingle:
		return "required-single"
	case ShapeOptionalSingle:
		return "optional-single"
	case ShapeRequiredMultiple:
		return "required-multiple"
	case ShapeOptionalMultiple:
		return "optional-multiple"
	case ShapeNone:
		fallthrough
	default:
		return "none"
	}
}

// IsMultiple reports whether the shape collects a list of values
func (s Shape) IsMultiple() bool {
	return s == ShapeRequiredMultiple || s == ShapeOptionalMultiple
}

// Strictness defines how a command's expected positional argument count is enforced
type Strictness int

const (
	Exact   Strictness = iota // Exact requires the declared count
	AtLeast                   // AtLeast requires the declared count or more
)

// String returns the string representation of a Strictness
func (s Strictness) String() string {
	if s == AtLeast {
		return "at-least"
	}
	return "exact"
}

// Unbounded as a maximum count means the option accepts any number of values
const Unbounded = 0

// Unconstrained as an expected positional count disables positional count validation
const Unconstrained = -1
