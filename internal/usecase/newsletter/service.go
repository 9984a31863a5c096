package newsletter

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"example.com/storefront/internal/infra/timer"
	"example.com/storefront/internal/usecase/notice"
)

var ErrEmptyEmail = errors.New("email is required")

const (
	MsgInvalidEmail = "Please enter a valid email address"
	MsgSubscribed   = "Thank you for subscribing!"

	AckDelay    = time.Second
	FeedbackTTL = 3 * time.Second
)

type Service struct {
	board     *notice.Board
	scheduler timer.Scheduler
	log       logrus.FieldLogger
}

func NewService(board *notice.Board, scheduler timer.Scheduler, log logrus.FieldLogger) *Service {
	return &Service{board: board, scheduler: scheduler, log: log}
}

// Subscribe never contacts a mail provider. A non-empty address gets its
// acknowledgment after AckDelay, as if a remote call had completed.
func (s *Service) Subscribe(session, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		s.board.Show(session, notice.ChannelNewsletter, notice.Notice{
			Message: MsgInvalidEmail,
			Kind:    notice.KindError,
		}, FeedbackTTL)
		return ErrEmptyEmail
	}

	s.log.WithField("session", session).Debug("newsletter subscription received")
	s.scheduler.AfterFunc(AckDelay, func() {
		s.board.Show(session, notice.ChannelNewsletter, notice.Notice{
			Message: MsgSubscribed,
			Kind:    notice.KindSuccess,
		}, FeedbackTTL)
		s.log.WithField("session", session).Info("newsletter subscription acknowledged")
	})
	return nil
}
