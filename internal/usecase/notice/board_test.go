package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/storefront/internal/infra/timer"
)

func TestBoard_ShowThenClearAfterTTL(t *testing.T) {
	clock := timer.NewManual()
	b := NewBoard(clock)

	b.Show("s1", ChannelNewsletter, Notice{Message: "Thank you for subscribing!", Kind: KindSuccess}, 3*time.Second)

	n, ok := b.Current("s1", ChannelNewsletter)
	require.True(t, ok)
	require.Equal(t, "success-message", n.Class())

	_, ok = b.Current("s2", ChannelNewsletter)
	require.False(t, ok)

	clock.Advance(2999 * time.Millisecond)
	_, ok = b.Current("s1", ChannelNewsletter)
	require.True(t, ok)

	clock.Advance(time.Millisecond)
	_, ok = b.Current("s1", ChannelNewsletter)
	require.False(t, ok)
}

func TestBoard_ReplacementCancelsOldClear(t *testing.T) {
	clock := timer.NewManual()
	b := NewBoard(clock)

	b.Show("s1", ChannelNewsletter, Notice{Message: "first", Kind: KindError}, 3*time.Second)
	clock.Advance(2 * time.Second)
	b.Show("s1", ChannelNewsletter, Notice{Message: "second", Kind: KindSuccess}, 3*time.Second)

	clock.Advance(1500 * time.Millisecond)
	n, ok := b.Current("s1", ChannelNewsletter)
	require.True(t, ok)
	require.Equal(t, "second", n.Message)

	clock.Advance(1500 * time.Millisecond)
	_, ok = b.Current("s1", ChannelNewsletter)
	require.False(t, ok)
	require.Equal(t, 0, clock.Pending())
}

func TestBoard_FadingPhase(t *testing.T) {
	clock := timer.NewManual()
	b := NewBoard(clock)

	b.ShowFading("s1", ChannelCart, Notice{Message: "Added to cart!", Kind: KindSuccess}, 2*time.Second, 500*time.Millisecond)

	n, _ := b.Current("s1", ChannelCart)
	require.False(t, n.Fading)

	clock.Advance(2 * time.Second)
	n, ok := b.Current("s1", ChannelCart)
	require.True(t, ok)
	require.True(t, n.Fading)

	clock.Advance(500 * time.Millisecond)
	_, ok = b.Current("s1", ChannelCart)
	require.False(t, ok)
}

func TestBoard_DismissToleratesLateTimers(t *testing.T) {
	clock := timer.NewManual()
	b := NewBoard(clock)

	b.Show("s1", ChannelCheckout, Notice{Message: "done", Kind: KindSuccess}, time.Second)
	b.Dismiss("s1", ChannelCheckout)
	b.Dismiss("s1", ChannelCheckout)

	require.NotPanics(t, func() { clock.Advance(5 * time.Second) })
	_, ok := b.Current("s1", ChannelCheckout)
	require.False(t, ok)
}
