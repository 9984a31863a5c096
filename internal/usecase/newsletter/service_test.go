package newsletter

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"example.com/storefront/internal/infra/timer"
	"example.com/storefront/internal/usecase/notice"
)

func newTestService() (*Service, *notice.Board, *timer.Manual) {
	clock := timer.NewManual()
	board := notice.NewBoard(clock)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(board, clock, log), board, clock
}

func TestSubscribe_EmptyEmailShowsError(t *testing.T) {
	svc, board, clock := newTestService()

	err := svc.Subscribe("s1", "   ")
	require.ErrorIs(t, err, ErrEmptyEmail)

	n, ok := board.Current("s1", notice.ChannelNewsletter)
	require.True(t, ok)
	require.Equal(t, MsgInvalidEmail, n.Message)
	require.Equal(t, "error-message", n.Class())

	clock.Advance(FeedbackTTL)
	_, ok = board.Current("s1", notice.ChannelNewsletter)
	require.False(t, ok)
}

func TestSubscribe_AcknowledgesAfterDelay(t *testing.T) {
	svc, board, clock := newTestService()

	require.NoError(t, svc.Subscribe("s1", "reader@example.com"))

	_, ok := board.Current("s1", notice.ChannelNewsletter)
	require.False(t, ok)

	clock.Advance(AckDelay)
	n, ok := board.Current("s1", notice.ChannelNewsletter)
	require.True(t, ok)
	require.Equal(t, MsgSubscribed, n.Message)
	require.Equal(t, notice.KindSuccess, n.Kind)

	clock.Advance(FeedbackTTL - time.Millisecond)
	_, ok = board.Current("s1", notice.ChannelNewsletter)
	require.True(t, ok)

	clock.Advance(time.Millisecond)
	_, ok = board.Current("s1", notice.ChannelNewsletter)
	require.False(t, ok)
}
