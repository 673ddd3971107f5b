package engine

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// ValueKind tags the scalar held by a Value.
type ValueKind int32

// Supported value kinds.
const (
	KindUnknown ValueKind = iota
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindBytes
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Value is a closed tagged union holding one scalar field value. Values
// are plain value types: copied freely, no shared ownership. Comparisons
// and arithmetic are only meaningful between values of the same kind;
// mismatched kinds order by kind, and arithmetic on mismatched or
// non-numeric kinds degrades to the zero Value with a logged diagnostic.
type Value struct {
	Kind      ValueKind
	IntVal    int32
	LongVal   int64
	FloatVal  float32
	DoubleVal float64
	StrVal    string
	BytesVal  []byte
}

// IntValue returns an int-kind Value.
func IntValue(v int32) Value { return Value{Kind: KindInt, IntVal: v} }

// LongValue returns a long-kind Value.
func LongValue(v int64) Value { return Value{Kind: KindLong, LongVal: v} }

// FloatValue returns a float-kind Value.
func FloatValue(v float32) Value { return Value{Kind: KindFloat, FloatVal: v} }

// DoubleValue returns a double-kind Value.
func DoubleValue(v float64) Value { return Value{Kind: KindDouble, DoubleVal: v} }

// StringValue returns a string-kind Value.
func StringValue(v string) Value { return Value{Kind: KindString, StrVal: v} }

// BytesValue returns a bytes-kind Value.
func BytesValue(v []byte) Value { return Value{Kind: KindBytes, BytesVal: v} }

// Equal reports whether two values hold the same kind and scalar.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.IntVal == o.IntVal
	case KindLong:
		return v.LongVal == o.LongVal
	case KindFloat:
		return v.FloatVal == o.FloatVal
	case KindDouble:
		return v.DoubleVal == o.DoubleVal
	case KindString:
		return v.StrVal == o.StrVal
	case KindBytes:
		return bytes.Equal(v.BytesVal, o.BytesVal)
	default:
		return true
	}
}

// Less orders values: mismatched kinds by kind, same kinds by scalar.
func (v Value) Less(o Value) bool {
	if v.Kind != o.Kind {
		return v.Kind < o.Kind
	}
	switch v.Kind {
	case KindInt:
		return v.IntVal < o.IntVal
	case KindLong:
		return v.LongVal < o.LongVal
	case KindFloat:
		return v.FloatVal < o.FloatVal
	case KindDouble:
		return v.DoubleVal < o.DoubleVal
	case KindString:
		return v.StrVal < o.StrVal
	case KindBytes:
		return bytes.Compare(v.BytesVal, o.BytesVal) < 0
	default:
		return false
	}
}

// IsZero reports whether the value is its kind's default.
func (v Value) IsZero() bool {
	switch v.Kind {
	case KindInt:
		return v.IntVal == 0
	case KindLong:
		return v.LongVal == 0
	case KindFloat:
		return v.FloatVal == 0
	case KindDouble:
		return v.DoubleVal == 0
	case KindString:
		return v.StrVal == ""
	case KindBytes:
		return len(v.BytesVal) == 0
	default:
		return true
	}
}

// Sub returns v - o. Only numeric kinds subtract; mismatched or
// non-numeric kinds are recorded and yield the zero Value, since this
// path runs on untrusted config data that must not crash the host daemon.
func (v Value) Sub(o Value) Value {
	if v.Kind != o.Kind {
		recordTypeMismatch("subtract", v.Kind, o.Kind)
		return Value{}
	}
	switch v.Kind {
	case KindInt:
		return IntValue(v.IntVal - o.IntVal)
	case KindLong:
		return LongValue(v.LongVal - o.LongVal)
	case KindFloat:
		return FloatValue(v.FloatVal - o.FloatVal)
	case KindDouble:
		return DoubleValue(v.DoubleVal - o.DoubleVal)
	default:
		recordTypeMismatch("subtract", v.Kind, o.Kind)
		return Value{}
	}
}

// Add returns v + o, the accumulation counterpart of Sub with the same
// degraded behavior for non-numeric kinds.
func (v Value) Add(o Value) Value {
	if v.Kind != o.Kind {
		recordTypeMismatch("accumulate", v.Kind, o.Kind)
		return Value{}
	}
	switch v.Kind {
	case KindInt:
		return IntValue(v.IntVal + o.IntVal)
	case KindLong:
		return LongValue(v.LongVal + o.LongVal)
	case KindFloat:
		return FloatValue(v.FloatVal + o.FloatVal)
	case KindDouble:
		return DoubleValue(v.DoubleVal + o.DoubleVal)
	default:
		recordTypeMismatch("accumulate", v.Kind, o.Kind)
		return Value{}
	}
}

func recordTypeMismatch(op string, a, b ValueKind) {
	defaultStats.RecordTypeMismatch()
	log.WithError(NewError(ErrTypeMismatch, fmt.Sprintf("cannot %s %s and %s", op, a, b))).
		Warn("value arithmetic degraded to zero value")
}

// MarshalJSON renders the value with its kind for debug dumps.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value string `json:"value"`
	}{v.Kind.String(), v.String()})
}

// String renders the scalar without its kind.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(int64(v.IntVal), 10)
	case KindLong:
		return strconv.FormatInt(v.LongVal, 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.FloatVal), 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(v.DoubleVal, 'g', -1, 64)
	case KindString:
		return v.StrVal
	case KindBytes:
		return fmt.Sprintf("%x", v.BytesVal)
	default:
		return "unknown"
	}
}
