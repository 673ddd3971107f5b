package dimension

import "github.com/usetero/dimension-go/internal/engine"

// Re-export types from internal/engine.
type (
	EngineStats         = engine.EngineStats
	EngineStatsSnapshot = engine.EngineStatsSnapshot
)

// Stats returns the process-wide engine counters.
var Stats = engine.Stats

// StatsCollector is a function that returns the current engine counters.
// Registered with a host daemon's reporting loop so degraded-path counts
// surface in its own telemetry.
type StatsCollector func() EngineStatsSnapshot
