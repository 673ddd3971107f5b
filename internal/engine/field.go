// Package engine contains the field encoding, matching, and dimension
// extraction implementation.
package engine

// A field position is packed into a single int32. Bits 24-31 hold the
// depth (0..2). Each level then occupies one byte from the top: level 0
// in bits 16-23, level 1 in bits 8-15, level 2 in bits 0-7. A level byte
// holds a 7-bit 1-based index; the top bit marks the last element of a
// repeated field at that level.

const (
	// MaxDepth is the deepest supported nesting level. Three levels total:
	// top-level field, repeated entry, leaf within the entry.
	MaxDepth = 2

	lastBitMask      = 0x80
	clearLastBitMask = 0x7f
)

// EncodeField packs positions[0..depth] into the single-int32 layout.
// Positions beyond depth are ignored.
func EncodeField(positions [MaxDepth + 1]int32, depth int32, includeDepth bool) int32 {
	var f int32
	for i := int32(0); i <= depth; i++ {
		f |= positions[i] << (8 * (MaxDepth - i))
	}
	if includeDepth {
		f |= depth << 24
	}
	return f
}

// FieldPath identifies one logical position in an event's field tree: the
// atom tag plus the packed path from the tree root to a leaf. The tag is
// never folded into the packed field; two paths are equal iff both parts
// are equal. FieldPath is a two-word value type, copied freely.
type FieldPath struct {
	Tag   int32
	Field int32
}

// NewFieldPath builds a path for the given tag from explicit per-level
// positions.
func NewFieldPath(tag int32, positions [MaxDepth + 1]int32, depth int32) FieldPath {
	return FieldPath{Tag: tag, Field: EncodeField(positions, depth, true)}
}

// Depth returns the nesting depth encoded in the path (0..2).
func (f FieldPath) Depth() int32 {
	return (f.Field >> 24) & 0xff
}

// RawPosAtDepth returns the full byte at the given depth, last-element
// flag included.
func (f FieldPath) RawPosAtDepth(depth int32) int32 {
	return (f.Field >> (8 * (MaxDepth - depth))) & 0xff
}

// PosAtDepth returns the 1-based index at the given depth with the
// last-element flag masked off.
func (f FieldPath) PosAtDepth(depth int32) int32 {
	return f.RawPosAtDepth(depth) & clearLastBitMask
}

// IsLastPos reports whether the last-element flag is set at the given
// depth.
func (f FieldPath) IsLastPos(depth int32) bool {
	return f.RawPosAtDepth(depth)&lastBitMask != 0
}

// IsAnyPosMatcher reports whether the byte at the given depth is the
// wildcard position: no index, no flag.
func (f FieldPath) IsAnyPosMatcher(depth int32) bool {
	return f.RawPosAtDepth(depth) == 0
}

// IsLastPosMatcher reports whether the byte at the given depth carries
// only the last-element flag and no index.
func (f FieldPath) IsLastPosMatcher(depth int32) bool {
	return f.RawPosAtDepth(depth) == lastBitMask
}

// DecorateLast returns the path with the last-element flag set at the
// given depth.
func (f FieldPath) DecorateLast(depth int32) FieldPath {
	f.Field |= lastBitMask << (8 * (MaxDepth - depth))
	return f
}

// Prefix returns the packed field truncated to the levels above the given
// depth. Two fields with equal prefixes at depth d are siblings under the
// same parent slot.
func (f FieldPath) Prefix(depth int32) int32 {
	return f.Field &^ ((1 << (8 * (MaxDepth - depth + 1))) - 1)
}
