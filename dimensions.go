package dimension

// Dimensions is an immutable compiled matcher list, owned by whichever
// long-lived metric or condition object needs it. There is no global
// matcher cache: compile once at config-load time and keep the handle.
// A Dimensions is safe to share across any number of goroutines;
// extraction is a pure function of the compiled matchers and one event's
// field list.
type Dimensions struct {
	matchers []Matcher
}

// CompileDimensions compiles a declarative matcher tree into a reusable
// handle. Subtrees nested deeper than MaxDepth are logged and skipped,
// never fatal: a metric missing one sub-matcher beats a dead pipeline.
func CompileDimensions(root FieldMatcher) *Dimensions {
	return &Dimensions{matchers: Compile(root)}
}

// NewDimensions wraps an already-compiled matcher list.
func NewDimensions(matchers []Matcher) *Dimensions {
	return &Dimensions{matchers: matchers}
}

// Matchers returns the compiled matchers in evaluation order.
func (d *Dimensions) Matchers() []Matcher {
	return d.matchers
}

// Empty reports whether the handle selects no fields.
func (d *Dimensions) Empty() bool {
	return len(d.matchers) == 0
}

// Extract builds the canonicalizing group-by key for one event.
func (d *Dimensions) Extract(fields []FieldValue) DimensionKey {
	return ExtractDimension(d.matchers, fields)
}

// Snapshot returns the matched fields with physical paths preserved,
// for consumers where positional identity itself is meaningful.
func (d *Dimensions) Snapshot(fields []FieldValue) []FieldValue {
	return ExtractSnapshot(d.matchers, fields)
}

// Lookup performs a point lookup with the first compiled matcher. Used by
// value-metric consumers whose matcher tree has a single leaf.
func (d *Dimensions) Lookup(fields []FieldValue) (Value, bool) {
	if len(d.matchers) == 0 {
		return Value{}, false
	}
	return LookupValue(d.matchers[0], fields)
}
