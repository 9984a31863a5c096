// Package notice keeps short-lived messages per session and channel, such as
// "Added to cart!" or newsletter feedback. Each notice clears itself after
// its time to live.
package notice

import (
	"sync"
	"time"

	"example.com/storefront/internal/infra/timer"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Channel string

const (
	ChannelNewsletter Channel = "newsletter-feedback"
	ChannelCart       Channel = "cart-feedback"
	ChannelCheckout   Channel = "checkout-feedback"
)

type Notice struct {
	Message string
	Kind    Kind
	// Fading is set once the notice enters its fade-out phase.
	Fading bool
}

// Class is the CSS class the page uses for the notice.
func (n Notice) Class() string {
	return string(n.Kind) + "-message"
}

type slot struct {
	session string
	channel Channel
}

type entry struct {
	notice Notice
	timers []timer.Timer
}

type Board struct {
	mu        sync.Mutex
	scheduler timer.Scheduler
	entries   map[slot]*entry
}

func NewBoard(scheduler timer.Scheduler) *Board {
	return &Board{
		scheduler: scheduler,
		entries:   make(map[slot]*entry),
	}
}

// Show replaces whatever the channel displays for the session and schedules
// the clear after ttl. Replacing a notice cancels the old one's timers.
func (b *Board) Show(session string, ch Channel, n Notice, ttl time.Duration) {
	b.ShowFading(session, ch, n, ttl, 0)
}

// ShowFading marks the notice as fading after visible, then clears it after
// a further fade.
func (b *Board) ShowFading(session string, ch Channel, n Notice, visible, fade time.Duration) {
	key := slot{session: session, channel: ch}
	e := &entry{notice: n}

	b.mu.Lock()
	if old, ok := b.entries[key]; ok {
		for _, t := range old.timers {
			t.Stop()
		}
	}
	b.entries[key] = e
	b.mu.Unlock()

	if fade <= 0 {
		t := b.scheduler.AfterFunc(visible, func() { b.clear(key, e) })
		b.track(key, e, t)
		return
	}

	t := b.scheduler.AfterFunc(visible, func() {
		b.fade(key, e)
		ft := b.scheduler.AfterFunc(fade, func() { b.clear(key, e) })
		b.track(key, e, ft)
	})
	b.track(key, e, t)
}

func (b *Board) track(key slot, e *entry, t timer.Timer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.entries[key] != e {
		t.Stop()
		return
	}
	e.timers = append(e.timers, t)
}

func (b *Board) fade(key slot, e *entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.entries[key] == e {
		e.notice.Fading = true
	}
}

// clear tolerates a notice that was already replaced or removed.
func (b *Board) clear(key slot, e *entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.entries[key] == e {
		delete(b.entries, key)
	}
}

func (b *Board) Current(session string, ch Channel) (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[slot{session: session, channel: ch}]
	if !ok {
		return Notice{}, false
	}
	return e.notice, true
}

// Dismiss removes the notice immediately and cancels its timers.
func (b *Board) Dismiss(session string, ch Channel) {
	key := slot{session: session, channel: ch}
	b.mu.Lock()
	defer b.mu.Unlock()
	if e, ok := b.entries[key]; ok {
		for _, t := range e.timers {
			t.Stop()
		}
		delete(b.entries, key)
	}
}
