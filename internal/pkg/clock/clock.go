// Package clock lets time-dependent code read "now" from something tests
// can pin.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Func adapts a plain function, such as time.Now, to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

func NewRealClock() Clock {
	return Func(time.Now)
}

// InLocation reports every reading in loc so calendar math ("today") follows the vendor's zone.
type InLocation struct {
	base Clock
	loc  *time.Location
}

func NewInLocation(base Clock, loc *time.Location) *InLocation {
	if loc == nil {
		loc = time.UTC
	}
	return &InLocation{base: base, loc: loc}
}

func (c *InLocation) Now() time.Time {
	return c.base.Now().In(c.loc)
}

// MockClock stays where it is put. Safe for concurrent use.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
