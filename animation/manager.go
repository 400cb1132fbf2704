// Package animation schedules timed tasks that are advanced once per frame.
package animation

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// ErrStarted is returned when registering with, or starting, a manager that
// has already started.
var ErrStarted = errors.New("animation manager already started")

// Manager owns a set of animations and ticks them from a single start time.
type Manager struct {
	mu         sync.Mutex
	clock      func() time.Time
	animations []*Animation
	started    bool
	startTime  time.Time
}

// NewManager creates an instance of a Manager. A nil clock means time.Now.
func NewManager(clock func() time.Time) *Manager {
	m := new(Manager)
	m.clock = clock
	if m.clock == nil {
		m.clock = time.Now
	}

	return m
}

// AddAnimations registers animations. Pass a slice with list...
func (m *Manager) AddAnimations(animations ...*Animation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return ErrStarted
	}
	for _, a := range animations {
		if a != nil {
			m.animations = append(m.animations, a)
		}
	}
	return nil
}

// Start records the global start time. Ticks before Start do nothing.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return ErrStarted
	}
	m.started = true
	m.startTime = m.clock()
	log.Printf("Starting %d animations", len(m.animations))
	return nil
}

// Started reports whether Start has been called.
func (m *Manager) Started() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

// StartTime is the time recorded by Start.
func (m *Manager) StartTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startTime
}

// Active is the number of animations still being ticked.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.animations)
}

// Tick runs one frame: every active animation is ticked in the order it was
// added, then finished ones are removed. An animation whose update fails is
// logged and dropped; the rest carry on. The lock is not held while updates
// run, so an update may query the manager. Tick itself must only be called
// from one goroutine.
func (m *Manager) Tick(now time.Time) {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	active := make([]*Animation, len(m.animations))
	copy(active, m.animations)
	start := m.startTime
	m.mu.Unlock()

	done := make(map[*Animation]bool)
	for _, a := range active {
		finished, err := a.Tick(start, now)
		if err != nil {
			log.Printf("Dropping animation: %v", err)
			done[a] = true
			continue
		}
		if finished {
			done[a] = true
		}
	}
	if len(done) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.animations[:0]
	for _, a := range m.animations {
		if !done[a] {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(m.animations); i++ {
		m.animations[i] = nil
	}
	m.animations = kept
}

// Run ticks the manager once per interval until ctx is cancelled. onFrame,
// if set, is called after every tick with the frame time.
func (m *Manager) Run(ctx context.Context, interval time.Duration, onFrame func(now time.Time)) error {
	frameTimer := time.NewTicker(interval)
	defer frameTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-frameTimer.C:
			// Both channels may be ready; cancellation wins.
			if err := ctx.Err(); err != nil {
				return err
			}
			now := m.clock()
			m.Tick(now)
			if onFrame != nil {
				onFrame(now)
			}
		}
	}
}
