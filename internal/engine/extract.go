package engine

// Extraction evaluates compiled matchers against one event's flat field
// list, produced by the external event-buffer parser. All operations are
// bounded linear scans: field lists hold tens of entries, so no indexing
// is worth its setup cost here.

// LookupValue returns the value of the first field matching m, or false
// if nothing matches. A miss is a normal outcome for optional fields.
func LookupValue(m Matcher, fields []FieldValue) (Value, bool) {
	for _, fv := range fields {
		if m.Matches(fv.Field) {
			return fv.Value, true
		}
	}
	return Value{}, false
}

// ExtractDimension builds the canonicalizing group-by key: for every
// matcher, every matching field is appended with its path masked by the
// matcher. Masking clears the index bits at the depth selected by ANY and
// keeps only the last-element decoration for LAST, so occurrences that
// fill the same logical slot at different physical indices collapse into
// equal keys. An ALL selector keeps the physical index in the mask, so
// each occurrence stays a distinct entry.
func ExtractDimension(matchers []Matcher, fields []FieldValue) DimensionKey {
	var key DimensionKey
	for _, m := range matchers {
		for _, fv := range fields {
			if !m.Matches(fv.Field) {
				continue
			}
			key.AddValue(FieldValue{
				Field: FieldPath{Tag: fv.Field.Tag, Field: fv.Field.Field & m.Mask},
				Value: fv.Value,
			})
		}
	}
	return key
}

// ExtractSnapshot is ExtractDimension without canonicalization: matched
// entries keep their physical paths verbatim. Gauge sampling depends on
// the physical position, so it must survive.
func ExtractSnapshot(matchers []Matcher, fields []FieldValue) []FieldValue {
	var out []FieldValue
	for _, m := range matchers {
		for _, fv := range fields {
			if m.Matches(fv.Field) {
				out = append(out, fv)
			}
		}
	}
	return out
}
