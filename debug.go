package sprout

import "time"

// TickStats summarizes one Processor tick.
type TickStats struct {
	Entries   int // UpdateTick nodes pushed
	Evaluated int // node behaviors run (cache misses)
	Faults    int // evaluations that failed or panicked
	Skipped   int // dangling connections ignored
	CommandX  bool
	CommandY  bool
	Duration  time.Duration
}

// debugLog reports the tick's stats at debug level.
func (p *Processor) debugLog(stats TickStats) {
	p.logger.Debug("Tick complete.",
		"entries", stats.Entries,
		"evaluated", stats.Evaluated,
		"faults", stats.Faults,
		"skipped", stats.Skipped,
		"velocityX", stats.CommandX,
		"velocityY", stats.CommandY,
		"duration", stats.Duration,
	)
}
