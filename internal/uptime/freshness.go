package uptime

// ClassifyFreshness decides whether a monitor's recorded state should be
// exposed as-is or degraded to "unknown" because the scheduler has gone
// quiet. Paused and maintenance states are operator-declared and are
// never degraded, regardless of how old lastCheckedAt is.
//
// Returns the status to expose and whether it was judged stale.
func ClassifyFreshness(now int64, status string, lastCheckedAt *int64, intervalSec int64) (exposedStatus string, isStale bool) {
	if status == "paused" || status == "maintenance" {
		return status, false
	}
	if lastCheckedAt == nil {
		return "unknown", true
	}
	if now-*lastCheckedAt > 2*intervalSec {
		return "unknown", true
	}
	return status, false
}
