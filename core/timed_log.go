package core

import (
	"log"
	"sync"
	"time"
)

// TimedLogger writes a log line only when interval has elapsed since the last accepted line
// Used from per-frame code where logging every frame would flood the file
type TimedLogger struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	logged   bool
	logger   *log.Logger
}

// NewTimedLogger creates a throttled logger; nil logger uses the standard logger
func NewTimedLogger(interval time.Duration, logger *log.Logger) *TimedLogger {
	return &TimedLogger{
		interval: interval,
		logger:   logger,
	}
}

// Logf logs if the interval has elapsed at now, returns true if written
func (t *TimedLogger) Logf(now time.Time, format string, args ...any) bool {
	t.mu.Lock()
	if t.logged && now.Sub(t.last) < t.interval {
		t.mu.Unlock()
		return false
	}
	t.last = now
	t.logged = true
	t.mu.Unlock()

	if t.logger != nil {
		t.logger.Printf(format, args...)
	} else {
		log.Printf(format, args...)
	}
	return true
}
