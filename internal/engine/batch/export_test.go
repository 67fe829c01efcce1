package batch

import "time"

// SetClock replaces the clock used for report timestamps.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}
