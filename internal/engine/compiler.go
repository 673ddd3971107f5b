package engine

import "github.com/sirupsen/logrus"

// FieldMatcher is one node of the declarative field-selection tree,
// produced by external configuration deserialization. The root node's
// Field is the atom tag; children select fields recursively, at most
// three levels deep. A Position is only meaningful on a node that
// represents a repeated field.
type FieldMatcher struct {
	Field    int32
	Position Position
	Children []FieldMatcher
}

// Compile translates a declarative matcher tree into the flat compiled
// matcher list, one Matcher per leaf, in depth-first order. The output
// order is deterministic and becomes the evaluation order of every key
// built from the list. Subtrees nested deeper than MaxDepth are logged
// and skipped rather than failing the whole metric.
func Compile(root FieldMatcher) []Matcher {
	var out []Matcher
	var pos, mask [MaxDepth + 1]int32
	for _, child := range root.Children {
		out = translate(root.Field, child, 0, pos, mask, out)
	}
	return out
}

// translate walks one node. The position and mask prefixes are arrays
// passed by value: each recursion level extends its own copy, so sibling
// subtrees never observe each other's writes.
func translate(tag int32, m FieldMatcher, depth int32, pos, mask [MaxDepth + 1]int32, out []Matcher) []Matcher {
	if depth > MaxDepth {
		skipSubtree(tag, m.Field, depth)
		return out
	}
	pos[depth] = m.Field
	mask[depth] = clearLastBitMask // the field number always matches exactly

	if m.Position != PositionNone {
		depth++
		if depth > MaxDepth {
			skipSubtree(tag, m.Field, depth)
			return out
		}
		switch m.Position {
		case PositionFirst:
			pos[depth] = 1
			mask[depth] = clearLastBitMask
		case PositionLast:
			pos[depth] = lastBitMask
			mask[depth] = lastBitMask
		case PositionAll:
			pos[depth] = 0
			mask[depth] = clearLastBitMask
		default: // PositionAny, PositionUnspecified
			pos[depth] = 0
			mask[depth] = 0
		}
	}

	if len(m.Children) == 0 {
		return append(out, Matcher{
			Pattern: FieldPath{Tag: tag, Field: EncodeField(pos, depth, true)},
			Mask:    EncodeField(mask, depth, false) | exactDepthMask,
		})
	}
	for _, child := range m.Children {
		out = translate(tag, child, depth+1, pos, mask, out)
	}
	return out
}

func skipSubtree(tag, field, depth int32) {
	defaultStats.RecordSkippedSubtree()
	log.WithFields(logrus.Fields{"tag": tag, "field": field, "depth": depth}).
		WithError(NewError(ErrInvalidMatcher, "matcher tree exceeds supported nesting")).
		Error("skipping matcher subtree")
}
