package types

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/napalu/fli/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue_BoolVocabulary(t *testing.T) {
	vocabulary := map[string]bool{
		"true": true, "t": true, "1": true, "yes": true, "y": true,
		"false": false, "f": false, "0": false, "no": false, "n": false,
	}

	for literal, want := range vocabulary {
		for _, variant := range []string{literal, strings.ToUpper(literal), strings.ToUpper(literal[:1]) + literal[1:]} {
			v, err := ParseValue(variant, Bool(false))
			require.NoError(t, err, variant)
			got, ok := v.AsBool()
			assert.True(t, ok)
			assert.Equal(t, want, got, variant)
		}
	}

	for _, bad := range []string{"", "2", "on", "off", "yess", "tru", "nope", " true"} {
		_, err := ParseValue(bad, Bool(true))
		var vpe *errs.ValueParseError
		if assert.True(t, errors.As(err, &vpe), "expected ValueParseError for %q", bad) {
			assert.Equal(t, bad, vpe.Raw)
			assert.Equal(t, "boolean", vpe.Expected)
			assert.ErrorIs(t, err, errs.ErrParseBool)
		}
	}
}

func TestParseValue_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		template Value
		want     Value
		wantErr  error
	}{
		{name: "integer", raw: "42", template: Int(0), want: Int(42)},
		{name: "negative integer", raw: "-7", template: Int(0), want: Int(-7)},
		{name: "max int64", raw: "9223372036854775807", template: Int(0), want: Int(math.MaxInt64)},
		{name: "integer overflow", raw: "9223372036854775808", template: Int(0), wantErr: errs.ErrParseInt},
		{name: "integer from float literal", raw: "1.5", template: Int(0), wantErr: errs.ErrParseInt},
		{name: "integer from text", raw: "abc", template: Int(1), wantErr: errs.ErrParseInt},
		{name: "float", raw: "3.25", template: Float(0), want: Float(3.25)},
		{name: "float exponent", raw: "1e3", template: Float(0), want: Float(1000)},
		{name: "float decimal comma", raw: "3,25", template: Float(0), wantErr: errs.ErrParseFloat},
		{name: "string keeps raw", raw: "-5", template: String("x"), want: String("-5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.raw, tt.template)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, errs.ErrValueParse)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestValue_Replace(t *testing.T) {
	v := Int(1)
	replaced, err := v.Replace("10")
	require.NoError(t, err)
	assert.True(t, replaced.Equal(Int(10)))
	assert.True(t, v.Equal(Int(1)), "the template must not change")

	_, err = v.Replace("ten")
	var vpe *errs.ValueParseError
	require.True(t, errors.As(err, &vpe))
	assert.Equal(t, "integer", vpe.Expected)
}

func TestValue_FloatEquality(t *testing.T) {
	pairs := []struct {
		a, b  float64
		equal bool
	}{
		{1.0, 1.0, true},
		{1.0, 1.0 + FloatEpsilon/2, true},
		{0.1 + 0.2, 0.3, true},
		{-5, -5 - FloatEpsilon/10, true},
		{1.0, 1.0 + 2*FloatEpsilon, false},
		{1.0, 1.1, false},
		{0, -3 * FloatEpsilon, false},
	}

	for _, p := range pairs {
		assert.Equal(t, p.equal, Float(p.a).Equal(Float(p.b)), "%v vs %v", p.a, p.b)
		assert.Equal(t, p.equal, Float(p.b).Equal(Float(p.a)), "equality must be symmetric")
	}
}

func TestValue_EqualityAcrossKinds(t *testing.T) {
	assert.False(t, Int(1).Equal(Float(1)))
	assert.False(t, Int(1).Equal(Bool(true)))
	assert.False(t, String("1").Equal(Int(1)))
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(String("A")))
	assert.True(t, Value{}.Equal(String("")))
}

func TestValue_Accessors(t *testing.T) {
	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = String("x").AsInt()
	assert.False(t, ok)

	f, ok := Float(2.5).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	assert.Equal(t, KindBool, ZeroOf(KindBool).Kind())
	assert.Equal(t, "2.5", Float(2.5).String())
	assert.Equal(t, "-3", Int(-3).String())
	assert.Equal(t, "true", Bool(true).String())
}
