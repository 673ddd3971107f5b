package engine

// Position selects which occurrence(s) of a repeated field a matcher
// targets.
type Position int32

const (
	// PositionNone means the node declares no position selector.
	PositionNone Position = iota
	// PositionAny matches any occurrence, last-element flag included.
	PositionAny
	// PositionFirst matches only the occurrence at index 1.
	PositionFirst
	// PositionLast matches any occurrence carrying the last-element flag,
	// irrespective of numeric index.
	PositionLast
	// PositionAll matches every occurrence. Expanding the matches into one
	// output entry per occurrence belongs to the aggregation layer; the
	// engine only encodes the selector and applies the fallback match tier.
	PositionAll
	// PositionUnspecified is a declared but unset selector. It compiles
	// like PositionAny.
	PositionUnspecified
)

func (p Position) String() string {
	switch p {
	case PositionNone:
		return "none"
	case PositionAny:
		return "any"
	case PositionFirst:
		return "first"
	case PositionLast:
		return "last"
	case PositionAll:
		return "all"
	default:
		return "unspecified"
	}
}

// exactDepthMask is OR-ed into every compiled mask: the depth byte always
// matches exactly.
const exactDepthMask = int32(-1 << 24)

// clearAllPositionMask strips the depth-1 position byte from a mask, used
// by the ALL fallback tier.
const clearAllPositionMask = int32(-1<<16) | 0xff

// Matcher is the compiled form of one leaf of a declarative matcher tree:
// a pattern path plus a bit mask over the packed field. Matchers are
// built once at config-load time, immutable, and safe to share across
// any number of concurrent extraction calls.
type Matcher struct {
	Pattern FieldPath
	Mask    int32
}

// RawMaskAtDepth returns the mask byte at the given depth.
func (m Matcher) RawMaskAtDepth(depth int32) int32 {
	return (m.Mask >> (8 * (MaxDepth - depth))) & 0xff
}

// HasAllPositionMatcher reports whether the matcher was compiled from an
// ALL position selector: a wildcard position whose index must still be
// present in the matched field.
func (m Matcher) HasAllPositionMatcher() bool {
	return m.Pattern.Depth() >= 1 &&
		m.Pattern.IsAnyPosMatcher(1) &&
		m.RawMaskAtDepth(1) == clearLastBitMask
}

// HasFirstPositionMatcher reports whether the matcher selects index 1 at
// depth 1.
func (m Matcher) HasFirstPositionMatcher() bool {
	return m.Pattern.Depth() >= 1 &&
		m.Pattern.RawPosAtDepth(1) == 1 &&
		m.RawMaskAtDepth(1) == clearLastBitMask
}

// HasLastPositionMatcher reports whether the matcher selects the
// last-element flag at depth 1.
func (m Matcher) HasLastPositionMatcher() bool {
	return m.Pattern.Depth() >= 1 && m.Pattern.IsLastPosMatcher(1)
}

// Matches applies the two-tier match rule: tags must be equal, then the
// masked field must equal the pattern. When that fails and the matcher
// carries an ALL selector, re-test with the depth-1 position byte cleared
// from the mask, so a fixed-position leaf can match a matcher whose
// parent slot is unconstrained.
func (m Matcher) Matches(f FieldPath) bool {
	if f.Tag != m.Pattern.Tag {
		return false
	}
	if f.Field&m.Mask == m.Pattern.Field {
		return true
	}
	if m.HasAllPositionMatcher() {
		return f.Field&(m.Mask&clearAllPositionMask) == m.Pattern.Field
	}
	return false
}
