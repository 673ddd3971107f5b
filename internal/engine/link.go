package engine

import "fmt"

// Metric2Condition declares the positional correspondence between a
// metric's selected fields and the fields of the condition gating it: the
// i-th metric matcher feeds the i-th condition matcher's slot. Both lists
// are compiled once from configuration and never mutated.
type Metric2Condition struct {
	ConditionID     int64
	MetricFields    []Matcher
	ConditionFields []Matcher
}

// ProjectToCondition re-bases the event's matched metric fields into the
// condition's namespace, producing the key used to probe the condition's
// dimensioned state. Each field matching the i-th metric matcher is
// emitted under the i-th condition matcher's pattern, tag and path
// rewritten, value unchanged. Mismatched matcher arity is reported
// instead of silently producing a misaligned key.
func ProjectToCondition(link Metric2Condition, fields []FieldValue) (DimensionKey, error) {
	if len(link.MetricFields) != len(link.ConditionFields) {
		defaultStats.RecordLinkMismatch()
		return DimensionKey{}, NewError(ErrLinkMismatch, fmt.Sprintf(
			"link to condition %d: %d metric fields vs %d condition fields",
			link.ConditionID, len(link.MetricFields), len(link.ConditionFields)))
	}
	var key DimensionKey
	for i, m := range link.MetricFields {
		cond := link.ConditionFields[i]
		for _, fv := range fields {
			if m.Matches(fv.Field) {
				key.AddValue(FieldValue{Field: cond.Pattern, Value: fv.Value})
			}
		}
	}
	return key, nil
}
