package types

import (
	"fmt"
	"strings"
)

// Descriptor declares what an option accepts: its Shape, an optional maximum
// count for multiples and the template values pinning the kind of each value.
// Descriptors are values; resolution returns copies carrying the parsed values.
type Descriptor struct {
	shape     Shape
	max       int
	templates []Value
	values    []Value
	set       bool
}

// None describes a flag. Its state is false until the flag is seen.
func None() Descriptor {
	return Descriptor{shape: ShapeNone}
}

// RequiredSingle describes exactly one value of the template's kind
func RequiredSingle(template Value) Descriptor {
	return Descriptor{
		shape:     ShapeRequiredSingle,
		templates: []Value{template},
		values:    []Value{template},
	}
}

// OptionalSingle describes zero or one value. With a default, the default pins the
// kind and is reported until a value is supplied; without one, values are strings.
func OptionalSingle(def ...Value) Descriptor {
	d := Descriptor{shape: ShapeOptionalSingle}
	if len(def) > 0 {
		d.templates = []Value{def[0]}
		d.values = []Value{def[0]}
	}

	return d
}

// OptionalSingleOf describes zero or one value of kind k, with no default
func OptionalSingleOf(k Kind) Descriptor {
	return Descriptor{
		shape:     ShapeOptionalSingle,
		templates: []Value{ZeroOf(k)},
	}
}

// RequiredMultiple describes one or more values. A bounded max (> 0) requires exactly
// max values. Value i is coerced against template i; the last template repeats.
func RequiredMultiple(max int, templates ...Value) Descriptor {
	return Descriptor{
		shape:     ShapeRequiredMultiple,
		max:       max,
		templates: cloneValues(templates),
		values:    cloneValues(templates),
	}
}

// OptionalMultiple describes zero up to max values (any number when max is Unbounded).
// defaults pin the kinds and are reported until values are supplied.
func OptionalMultiple(max int, defaults ...Value) Descriptor {
	return Descriptor{
		shape:     ShapeOptionalMultiple,
		max:       max,
		templates: cloneValues(defaults),
		values:    cloneValues(defaults),
	}
}

// Shape returns the cardinality contract
func (d Descriptor) Shape() Shape {
	return d.shape
}

// Max returns the upper bound on the number of values, Unbounded for unbounded multiples
func (d Descriptor) Max() int {
	switch d.shape {
	case ShapeNone:
		return 0
	case ShapeRequiredSingle, ShapeOptionalSingle:
		return 1
	default:
		return d.max
	}
}

// Bounded reports whether the number of values has an upper limit
func (d Descriptor) Bounded() bool {
	return !d.shape.IsMultiple() || d.max != Unbounded
}

// Min returns the least number of values the descriptor accepts
func (d Descriptor) Min() int {
	switch d.shape {
	case ShapeRequiredSingle:
		return 1
	case ShapeRequiredMultiple:
		if d.max != Unbounded {
			return d.max
		}
		return 1
	default:
		return 0
	}
}

// ExpectsValue is false only for flags
func (d Descriptor) ExpectsValue() bool {
	return d.shape != ShapeNone
}

// AcceptsCount reports whether n supplied values satisfy the descriptor
func (d Descriptor) AcceptsCount(n int) bool {
	if n < 0 {
		return false
	}

	switch d.shape {
	case ShapeNone:
		return n == 0
	case ShapeRequiredSingle:
		return n == 1
	case ShapeOptionalSingle:
		return n <= 1
	case ShapeRequiredMultiple:
		if d.max != Unbounded {
			return n == d.max
		}
		return n >= 1
	case ShapeOptionalMultiple:
		return d.max == Unbounded || n <= d.max
	}

	return false
}

// Template returns the value pinning the kind of the i-th supplied value
func (d Descriptor) Template(i int) Value {
	switch {
	case len(d.templates) == 0:
		return String("")
	case i >= len(d.templates):
		return d.templates[len(d.templates)-1]
	case i < 0:
		return d.templates[0]
	default:
		return d.templates[i]
	}
}

// Parse coerces raw values against the templates and returns a copy of d holding them.
// It does not check the count; callers use AcceptsCount for that.
func (d Descriptor) Parse(raws ...string) (Descriptor, error) {
	values := make([]Value, 0, len(raws))
	for i, raw := range raws {
		v, err := ParseValue(raw, d.Template(i))
		if err != nil {
			return d, err
		}
		values = append(values, v)
	}

	return d.WithValues(values...), nil
}

// WithValues returns a copy of d holding values and marked as set
func (d Descriptor) WithValues(values ...Value) Descriptor {
	c := d.clone()
	c.values = cloneValues(values)
	c.set = true

	return c
}

// Mark returns a copy of d marked as seen on the command line
func (d Descriptor) Mark() Descriptor {
	c := d.clone()
	c.set = true

	return c
}

// IsSet reports whether the descriptor was resolved from the command line
func (d Descriptor) IsSet() bool {
	return d.set
}

// AsSingle projects single-valued descriptors. A flag projects as its boolean state.
func (d Descriptor) AsSingle() (Value, bool) {
	switch d.shape {
	case ShapeNone:
		return Bool(d.set), true
	case ShapeRequiredSingle, ShapeOptionalSingle:
		if len(d.values) == 0 {
			return Value{}, false
		}
		return d.values[0], true
	}

	return Value{}, false
}

// AsMany projects multi-valued descriptors
func (d Descriptor) AsMany() ([]Value, bool) {
	if !d.shape.IsMultiple() {
		return nil, false
	}

	return cloneValues(d.values), true
}

// Validate reports whether the descriptor is well formed
func (d Descriptor) Validate() bool {
	if d.shape < ShapeNone || d.shape > ShapeOptionalMultiple {
		return false
	}

	return d.max >= 0
}

// Equal compares shape, bound, set state and values
func (d Descriptor) Equal(other Descriptor) bool {
	if d.shape != other.shape || d.max != other.max || d.set != other.set {
		return false
	}

	return valuesEqual(d.values, other.values) && valuesEqual(d.templates, other.templates)
}

func (d Descriptor) String() string {
	var sb strings.Builder
	sb.WriteString(d.shape.String())
	if d.shape.IsMultiple() && d.max != Unbounded {
		sb.WriteString(fmt.Sprintf("(max=%d)", d.max))
	}
	if d.shape == ShapeNone {
		sb.WriteString(fmt.Sprintf("[%t]", d.set))
		return sb.String()
	}

	parts := make([]string, len(d.values))
	for i, v := range d.values {
		parts[i] = v.String()
	}
	sb.WriteString("[" + strings.Join(parts, ", ") + "]")

	return sb.String()
}

func (d Descriptor) clone() Descriptor {
	c := d
	c.templates = cloneValues(d.templates)
	c.values = cloneValues(d.values)

	return c
}

func cloneValues(values []Value) []Value {
	if values == nil {
		return nil
	}
	c := make([]Value, len(values))
	copy(c, values)

	return c
}

func valuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
