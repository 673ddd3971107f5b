package engine

import "sync/atomic"

// EngineStats holds atomic counters for the engine's degraded paths. The
// engine recovers locally instead of failing: a skipped subtree or a
// mismatched value kind bumps a counter so the host daemon can report it.
type EngineStats struct {
	SkippedSubtrees atomic.Uint64
	TypeMismatches  atomic.Uint64
	LinkMismatches  atomic.Uint64
}

// RecordSkippedSubtree increments the skipped-subtree counter.
func (s *EngineStats) RecordSkippedSubtree() {
	s.SkippedSubtrees.Add(1)
}

// RecordTypeMismatch increments the type-mismatch counter.
func (s *EngineStats) RecordTypeMismatch() {
	s.TypeMismatches.Add(1)
}

// RecordLinkMismatch increments the link-mismatch counter.
func (s *EngineStats) RecordLinkMismatch() {
	s.LinkMismatches.Add(1)
}

// EngineStatsSnapshot is an immutable copy of stats for reporting.
type EngineStatsSnapshot struct {
	SkippedSubtrees uint64
	TypeMismatches  uint64
	LinkMismatches  uint64
}

// Snapshot creates an immutable snapshot of the current stats.
func (s *EngineStats) Snapshot() EngineStatsSnapshot {
	return EngineStatsSnapshot{
		SkippedSubtrees: s.SkippedSubtrees.Load(),
		TypeMismatches:  s.TypeMismatches.Load(),
		LinkMismatches:  s.LinkMismatches.Load(),
	}
}

var defaultStats = &EngineStats{}

// Stats returns the process-wide engine counters.
func Stats() *EngineStats {
	return defaultStats
}
