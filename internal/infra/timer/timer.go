// Package timer schedules delayed callbacks that can be cancelled.
package timer

import (
	"sort"
	"sync"
	"time"
)

type Timer interface {
	// Stop cancels the callback. It reports false if the callback already
	// ran or was stopped before.
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real runs callbacks on their own goroutine via time.AfterFunc. StopAll
// cancels everything still pending.
type Real struct {
	mu      sync.Mutex
	pending map[*realTimer]struct{}
	stopped bool
}

func NewReal() *Real {
	return &Real{pending: make(map[*realTimer]struct{})}
}

type realTimer struct {
	owner *Real
	t     *time.Timer
}

func (r *realTimer) Stop() bool {
	r.owner.forget(r)
	return r.t.Stop()
}

func (s *Real) AfterFunc(d time.Duration, f func()) Timer {
	rt := &realTimer{owner: s}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		rt.t = time.NewTimer(0)
		rt.t.Stop()
		return rt
	}
	rt.t = time.AfterFunc(d, func() {
		s.forget(rt)
		f()
	})
	s.pending[rt] = struct{}{}
	return rt
}

func (s *Real) forget(rt *realTimer) {
	s.mu.Lock()
	delete(s.pending, rt)
	s.mu.Unlock()
}

func (s *Real) StopAll() {
	s.mu.Lock()
	s.stopped = true
	pending := s.pending
	s.pending = make(map[*realTimer]struct{})
	s.mu.Unlock()

	for rt := range pending {
		rt.t.Stop()
	}
}

// Manual fires callbacks only when Advance moves its clock past their due
// time. Callbacks run on the goroutine calling Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	queue []*manualTimer
}

func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	owner *Manual
	due   time.Duration
	seq   int
	f     func()
	done  bool
}

func (m *manualTimer) Stop() bool {
	m.owner.mu.Lock()
	defer m.owner.mu.Unlock()
	if m.done {
		return false
	}
	m.done = true
	return true
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{owner: m, due: m.now + d, seq: m.seq, f: f}
	m.queue = append(m.queue, t)
	return t
}

// Advance moves the clock forward and runs every callback that became due,
// including ones scheduled by callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		next.done = true
		m.now = next.due
		m.mu.Unlock()

		next.f()
	}
}

func (m *Manual) nextDueLocked(target time.Duration) *manualTimer {
	live := m.queue[:0]
	for _, t := range m.queue {
		if !t.done {
			live = append(live, t)
		}
	}
	m.queue = live
	sort.SliceStable(m.queue, func(i, j int) bool {
		if m.queue[i].due != m.queue[j].due {
			return m.queue[i].due < m.queue[j].due
		}
		return m.queue[i].seq < m.queue[j].seq
	})
	if len(m.queue) == 0 || m.queue[0].due > target {
		return nil
	}
	return m.queue[0]
}

// Pending reports how many callbacks are still scheduled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.queue {
		if !t.done {
			n++
		}
	}
	return n
}
