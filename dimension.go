// Package dimension implements the field encoding, matching, and
// dimension-extraction engine of an on-device metrics pipeline. It
// compiles declarative field matchers into compact masked patterns,
// evaluates them against the flat field lists of parsed events, and
// assembles the ordered, hashable dimension keys that group events for
// aggregation.
package dimension

import "github.com/usetero/dimension-go/internal/engine"

// Version returns the current version of the dimension library.
func Version() string {
	return "0.1.0"
}

// MaxDepth is the deepest supported field nesting level (three levels,
// 0..2).
const MaxDepth = engine.MaxDepth

// Re-export types from internal/engine.
type (
	Value                 = engine.Value
	ValueKind             = engine.ValueKind
	FieldPath             = engine.FieldPath
	FieldValue            = engine.FieldValue
	FieldMatcher          = engine.FieldMatcher
	Position              = engine.Position
	Matcher               = engine.Matcher
	DimensionKey          = engine.DimensionKey
	CompositeDimensionKey = engine.CompositeDimensionKey
	Metric2Condition      = engine.Metric2Condition
)

// Value kinds.
const (
	KindUnknown = engine.KindUnknown
	KindInt     = engine.KindInt
	KindLong    = engine.KindLong
	KindFloat   = engine.KindFloat
	KindDouble  = engine.KindDouble
	KindString  = engine.KindString
	KindBytes   = engine.KindBytes
)

// Position selectors.
const (
	PositionNone        = engine.PositionNone
	PositionAny         = engine.PositionAny
	PositionFirst       = engine.PositionFirst
	PositionLast        = engine.PositionLast
	PositionAll         = engine.PositionAll
	PositionUnspecified = engine.PositionUnspecified
)

// Value constructors.
var (
	IntValue    = engine.IntValue
	LongValue   = engine.LongValue
	FloatValue  = engine.FloatValue
	DoubleValue = engine.DoubleValue
	StringValue = engine.StringValue
	BytesValue  = engine.BytesValue
)

// Field path construction.
var (
	NewFieldPath = engine.NewFieldPath
	EncodeField  = engine.EncodeField
)

// Core operations.
var (
	Compile            = engine.Compile
	LookupValue        = engine.LookupValue
	ExtractDimension   = engine.ExtractDimension
	ExtractSnapshot    = engine.ExtractSnapshot
	ProjectToCondition = engine.ProjectToCondition
	NewDimensionKey    = engine.NewDimensionKey
)

// SetLogger redirects engine diagnostics to the given logrus logger.
var SetLogger = engine.SetLogger
