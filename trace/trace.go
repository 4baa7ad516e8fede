// Package trace provides simple interfaces for timing applications
package trace

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

// Timer measures how long a named operation takes and reports it through a
// structured logger.
type Timer struct {
	name   string
	logger hclog.Logger
	t0     time.Time
}

// Start a timer with the specified name.
func Start(name string, logger hclog.Logger) *Timer {
	return &Timer{name: name, logger: logger, t0: time.Now()}
}

// Since logs the time since the timer started at debug level.
func (t *Timer) Since() {
	if t.logger == nil {
		return
	}
	t.logger.Debug("trace", "name", t.name, "elapsed", time.Since(t.t0))
}
