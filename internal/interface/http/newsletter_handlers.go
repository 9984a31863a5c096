package http

import (
	"errors"
	"net/http"

	newsletteruc "example.com/storefront/internal/usecase/newsletter"
	"example.com/storefront/internal/usecase/notice"
)

type noticeResponse struct {
	Message string `json:"message"`
	Class   string `json:"class"`
}

func (a *API) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	err := a.newsletterSvc.Subscribe(sessionFrom(r.Context()), r.PostFormValue("email"))
	if err != nil && !errors.Is(err, newsletteruc.ErrEmptyEmail) {
		a.log.WithError(err).Error("newsletter subscribe failed")
	}
	redirectBack(w, r)
}

// handleNewsletterFeedback lets the page poll for the delayed acknowledgment.
func (a *API) handleNewsletterFeedback(w http.ResponseWriter, r *http.Request) {
	var resp noticeResponse
	if n, ok := a.board.Current(sessionFrom(r.Context()), notice.ChannelNewsletter); ok {
		resp = noticeResponse{Message: n.Message, Class: n.Class()}
	}
	writeJSON(w, http.StatusOK, resp)
}
