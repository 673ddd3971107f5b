package engine

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// FieldValue pairs a field path with its parsed value: one entry of an
// event's flat field list, and one entry of a dimension key.
type FieldValue struct {
	Field FieldPath
	Value Value
}

// DimensionKey is an ordered sequence of field values used to group
// events before aggregation. Insertion order is the matcher evaluation
// order and is part of the key's identity: the same values appended in a
// different order form a different key. Keys are built fresh per event
// and must not be mutated once handed to an aggregation map.
type DimensionKey struct {
	values []FieldValue
}

// NewDimensionKey builds a key from the given entries in order.
func NewDimensionKey(values ...FieldValue) DimensionKey {
	return DimensionKey{values: values}
}

// AddValue appends one entry. Only key builders may call this; consumers
// treat keys as immutable.
func (k *DimensionKey) AddValue(fv FieldValue) {
	k.values = append(k.values, fv)
}

// Values returns the entries in insertion order.
func (k DimensionKey) Values() []FieldValue {
	return k.values
}

// Size returns the number of entries.
func (k DimensionKey) Size() int {
	return len(k.values)
}

// Empty reports whether the key has no entries.
func (k DimensionKey) Empty() bool {
	return len(k.values) == 0
}

// Contains reports whether any entry carries the given path.
func (k DimensionKey) Contains(f FieldPath) bool {
	for _, fv := range k.values {
		if fv.Field == f {
			return true
		}
	}
	return false
}

// Equal reports elementwise equality, short-circuiting on length.
func (k DimensionKey) Equal(o DimensionKey) bool {
	if len(k.values) != len(o.values) {
		return false
	}
	for i, fv := range k.values {
		if fv.Field != o.values[i].Field || !fv.Value.Equal(o.values[i].Value) {
			return false
		}
	}
	return true
}

// CanonicalString renders every entry in order as tag:0xfield:kind:value
// with entries separated by "|". The rendering doubles as the total order
// and the debug representation.
func (k DimensionKey) CanonicalString() string {
	var sb strings.Builder
	for i, fv := range k.values {
		if i > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "%d:0x%x:%s:%s", fv.Field.Tag, uint32(fv.Field.Field), fv.Value.Kind, fv.Value)
	}
	return sb.String()
}

func (k DimensionKey) String() string {
	return k.CanonicalString()
}

// Less orders keys lexicographically over the canonical string. This
// trades comparison speed for simplicity; equality never goes through
// the string form.
func (k DimensionKey) Less(o DimensionKey) bool {
	return k.CanonicalString() < o.CanonicalString()
}

// Hash folds every entry's path and value into an order-sensitive digest.
func (k DimensionKey) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, fv := range k.values {
		binary.LittleEndian.PutUint32(buf[:4], uint32(fv.Field.Tag))
		d.Write(buf[:4])
		binary.LittleEndian.PutUint32(buf[:4], uint32(fv.Field.Field))
		d.Write(buf[:4])
		hashValue(d, fv.Value)
	}
	return d.Sum64()
}

func hashValue(d *xxhash.Digest, v Value) {
	var buf [8]byte
	buf[0] = byte(v.Kind)
	d.Write(buf[:1])
	switch v.Kind {
	case KindInt:
		binary.LittleEndian.PutUint32(buf[:4], uint32(v.IntVal))
		d.Write(buf[:4])
	case KindLong:
		binary.LittleEndian.PutUint64(buf[:8], uint64(v.LongVal))
		d.Write(buf[:8])
	case KindFloat:
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(v.FloatVal))
		d.Write(buf[:4])
	case KindDouble:
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(v.DoubleVal))
		d.Write(buf[:8])
	case KindString:
		d.WriteString(v.StrVal)
	case KindBytes:
		d.Write(v.BytesVal)
	}
}

type keyEntryJSON struct {
	Tag   int32  `json:"tag"`
	Field string `json:"field"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// MarshalJSON renders the key for debug dumps.
func (k DimensionKey) MarshalJSON() ([]byte, error) {
	entries := make([]keyEntryJSON, len(k.values))
	for i, fv := range k.values {
		entries[i] = keyEntryJSON{
			Tag:   fv.Field.Tag,
			Field: fmt.Sprintf("0x%08x", uint32(fv.Field.Field)),
			Kind:  fv.Value.Kind.String(),
			Value: fv.Value.String(),
		}
	}
	return json.Marshal(entries)
}

// CompositeDimensionKey pairs a metric's own dimension with the dimension
// of the condition gating it. An empty condition sub-key is valid and
// means the metric has no dimension in condition.
type CompositeDimensionKey struct {
	What      DimensionKey
	Condition DimensionKey
}

// Equal reports equality of both sub-keys.
func (k CompositeDimensionKey) Equal(o CompositeDimensionKey) bool {
	return k.What.Equal(o.What) && k.Condition.Equal(o.Condition)
}

// Less orders composite keys by the what sub-key, then the condition
// sub-key.
func (k CompositeDimensionKey) Less(o CompositeDimensionKey) bool {
	ks, os := k.What.CanonicalString(), o.What.CanonicalString()
	if ks != os {
		return ks < os
	}
	return k.Condition.Less(o.Condition)
}

func (k CompositeDimensionKey) String() string {
	return k.What.CanonicalString() + "||" + k.Condition.CanonicalString()
}

// Hash combines both sub-key hashes through an avalanche step so the
// combination stays well mixed when one sub-key is empty.
func (k CompositeDimensionKey) Hash() uint64 {
	h := k.What.Hash()*0x100000001b3 ^ k.Condition.Hash()
	return avalanche(h)
}

// avalanche is the splitmix64 finalizer.
func avalanche(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
