package types

import (
	"math"
	"strconv"
	"strings"

	"github.com/napalu/fli/errs"
)

// FloatEpsilon is the tolerance used when comparing Float values
const FloatEpsilon = 1e-9

// Value is an immutable scalar: a string, an int64, a float64 or a bool.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// String creates a string Value
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Int creates an integer Value
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float creates a float Value
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Bool creates a boolean Value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// ZeroOf returns the zero Value of kind k, suitable as a type template
func ZeroOf(k Kind) Value {
	return Value{kind: k}
}

// ParseValue coerces raw into the kind of template
func ParseValue(raw string, template Value) (Value, error) {
	switch template.kind {
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &errs.ValueParseError{Raw: raw, Expected: KindInt.String(), Reason: errs.ErrParseInt}
		}
		return Int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, &errs.ValueParseError{Raw: raw, Expected: KindFloat.String(), Reason: errs.ErrParseFloat}
		}
		return Float(f), nil
	case KindBool:
		b, ok := parseBool(raw)
		if !ok {
			return Value{}, &errs.ValueParseError{Raw: raw, Expected: KindBool.String(), Reason: errs.ErrParseBool}
		}
		return Bool(b), nil
	default:
		return String(raw), nil
	}
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "true", "t", "1", "yes", "y":
		return true, true
	case "false", "f", "0", "no", "n":
		return false, true
	}

	return false, false
}

// Replace re-parses raw using v as the type template and returns the new Value
func (v Value) Replace(raw string) (Value, error) {
	return ParseValue(raw, v)
}

// Kind returns the scalar kind of v
func (v Value) Kind() Kind {
	return v.kind
}

// Equal compares kind and content; floats are equal when closer than FloatEpsilon
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return math.Abs(v.f-other.f) < FloatEpsilon
	case KindBool:
		return v.b == other.b
	default:
		return v.s == other.s
	}
}

// AsString returns the string content when v is a string
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsInt returns the integer content when v is an integer
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float content when v is a float
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsBool returns the boolean content when v is a boolean
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// String renders v as a command-line literal
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}
