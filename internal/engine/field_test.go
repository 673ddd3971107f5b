package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeFieldRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		positions [MaxDepth + 1]int32
		depth     int32
	}{
		{
			name:      "depth 0 single field",
			positions: [MaxDepth + 1]int32{5},
			depth:     0,
		},
		{
			name:      "depth 1 repeated entry",
			positions: [MaxDepth + 1]int32{1, 3},
			depth:     1,
		},
		{
			name:      "depth 2 leaf in repeated entry",
			positions: [MaxDepth + 1]int32{1, 2, 1},
			depth:     2,
		},
		{
			name:      "depth 2 max 7-bit index",
			positions: [MaxDepth + 1]int32{127, 127, 127},
			depth:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFieldPath(10, tt.positions, tt.depth)
			assert.Equal(t, int32(10), f.Tag)
			assert.Equal(t, tt.depth, f.Depth())
			for d := int32(0); d <= tt.depth; d++ {
				assert.Equal(t, tt.positions[d], f.PosAtDepth(d), "position at depth %d", d)
				assert.False(t, f.IsLastPos(d), "no decoration applied at depth %d", d)
			}
		})
	}
}

func TestDecorateLast(t *testing.T) {
	f := NewFieldPath(10, [MaxDepth + 1]int32{1, 2, 1}, 2)
	decorated := f.DecorateLast(1)

	assert.True(t, decorated.IsLastPos(1))
	assert.False(t, decorated.IsLastPos(0))
	assert.False(t, decorated.IsLastPos(2))
	// The numeric index survives the decoration.
	assert.Equal(t, int32(2), decorated.PosAtDepth(1))
	assert.Equal(t, int32(0x82), decorated.RawPosAtDepth(1))
	// The original is untouched: FieldPath is a value type.
	assert.False(t, f.IsLastPos(1))
}

func TestPositionMatcherPredicates(t *testing.T) {
	any := FieldPath{Tag: 10, Field: EncodeField([MaxDepth + 1]int32{1, 0, 1}, 2, true)}
	assert.True(t, any.IsAnyPosMatcher(1))
	assert.False(t, any.IsLastPosMatcher(1))

	last := FieldPath{Tag: 10, Field: EncodeField([MaxDepth + 1]int32{1, lastBitMask, 1}, 2, true)}
	assert.True(t, last.IsLastPosMatcher(1))
	assert.False(t, last.IsAnyPosMatcher(1))

	indexed := NewFieldPath(10, [MaxDepth + 1]int32{1, 3, 1}, 2)
	assert.False(t, indexed.IsAnyPosMatcher(1))
	assert.False(t, indexed.IsLastPosMatcher(1))
}

func TestPrefixIdentifiesSiblings(t *testing.T) {
	uid := NewFieldPath(10, [MaxDepth + 1]int32{1, 2, 1}, 2)
	tag := NewFieldPath(10, [MaxDepth + 1]int32{1, 2, 2}, 2)
	otherEntry := NewFieldPath(10, [MaxDepth + 1]int32{1, 1, 1}, 2)

	assert.Equal(t, uid.Prefix(2), tag.Prefix(2), "leaves of the same repeated entry share a prefix")
	assert.NotEqual(t, uid.Prefix(2), otherEntry.Prefix(2), "leaves of different entries do not")
	assert.Equal(t, uid.Prefix(1), otherEntry.Prefix(1), "all entries share the depth-1 prefix")
}

func TestFieldPathEquality(t *testing.T) {
	a := NewFieldPath(10, [MaxDepth + 1]int32{1, 2, 1}, 2)
	b := NewFieldPath(10, [MaxDepth + 1]int32{1, 2, 1}, 2)
	sameFieldOtherTag := NewFieldPath(11, [MaxDepth + 1]int32{1, 2, 1}, 2)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, sameFieldOtherTag, "the tag is never folded into the packed field")
}
