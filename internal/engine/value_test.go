package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{name: "equal ints", a: IntValue(7), b: IntValue(7), equal: true},
		{name: "different ints", a: IntValue(7), b: IntValue(8), equal: false},
		{name: "equal longs", a: LongValue(1 << 40), b: LongValue(1 << 40), equal: true},
		{name: "equal strings", a: StringValue("App1"), b: StringValue("App1"), equal: true},
		{name: "different strings", a: StringValue("App1"), b: StringValue("App2"), equal: false},
		{name: "equal bytes", a: BytesValue([]byte{1, 2}), b: BytesValue([]byte{1, 2}), equal: true},
		{name: "int vs long never equal", a: IntValue(7), b: LongValue(7), equal: false},
		{name: "unknown values equal", a: Value{}, b: Value{}, equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestValueLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		less bool
	}{
		{name: "int ordering", a: IntValue(1), b: IntValue(2), less: true},
		{name: "string ordering", a: StringValue("a"), b: StringValue("b"), less: true},
		{name: "double ordering", a: DoubleValue(1.5), b: DoubleValue(1.25), less: false},
		{name: "mismatched kinds order by kind", a: IntValue(100), b: LongValue(1), less: true},
		{name: "equal values are not less", a: IntValue(3), b: IntValue(3), less: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.less, tt.a.Less(tt.b))
		})
	}
}

func TestValueIsZero(t *testing.T) {
	assert.True(t, IntValue(0).IsZero())
	assert.True(t, StringValue("").IsZero())
	assert.True(t, BytesValue(nil).IsZero())
	assert.True(t, Value{}.IsZero())
	assert.False(t, IntValue(1).IsZero())
	assert.False(t, DoubleValue(0.1).IsZero())
}

func TestValueArithmetic(t *testing.T) {
	assert.Equal(t, IntValue(2), IntValue(5).Sub(IntValue(3)))
	assert.Equal(t, LongValue(8), LongValue(5).Add(LongValue(3)))
	assert.Equal(t, FloatValue(1.5), FloatValue(2).Sub(FloatValue(0.5)))
	assert.Equal(t, DoubleValue(2.5), DoubleValue(2).Add(DoubleValue(0.5)))
}

func TestValueArithmeticDegradesToZero(t *testing.T) {
	before := Stats().Snapshot().TypeMismatches

	// Mismatched kinds and non-numeric kinds must not panic; they yield
	// the zero Value and bump the guardrail counter.
	assert.Equal(t, Value{}, IntValue(5).Sub(LongValue(3)))
	assert.Equal(t, Value{}, StringValue("a").Sub(StringValue("b")))
	assert.Equal(t, Value{}, BytesValue([]byte{1}).Add(BytesValue([]byte{2})))

	assert.Equal(t, before+3, Stats().Snapshot().TypeMismatches)
}

func TestValueMarshalJSON(t *testing.T) {
	data, err := StringValue("App1").MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"kind":"string","value":"App1"}`, string(data))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "111", IntValue(111).String())
	assert.Equal(t, "-5", LongValue(-5).String())
	assert.Equal(t, "App1", StringValue("App1").String())
	assert.Equal(t, "0a0b", BytesValue([]byte{0x0a, 0x0b}).String())
	assert.Equal(t, "unknown", Value{}.String())
}
