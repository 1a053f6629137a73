package web

import (
	"context"
	"net/http"
	"time"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/i18n"
	"github.com/sparcom/portal/internal/session"
)

// Callback flow states. A page load enters loading and reaches exactly one
// terminal state; there is no retry.
const (
	CallbackLoading = "loading"
	CallbackSuccess = "success"
	CallbackError   = "error"
)

// Redirect delays after the terminal state is shown.
const (
	callbackSuccessDelay = 1500 * time.Millisecond
	callbackErrorDelay   = 3 * time.Second
)

// tokenExchanger is what the callback flow needs from the Telegram service.
type tokenExchanger interface {
	Exchange(ctx context.Context, oneTimeToken string) (*session.Session, error)
}

// CallbackResult is the terminal state of one callback page load, including
// where the page navigates next and after how long. The rendered page
// carries the timed redirect, so the flow itself needs no timers.
type CallbackResult struct {
	State         string
	Sess          *session.Session
	ErrMessage    string // server-provided error text
	MessageID     string // i18n ID for locally produced messages
	RedirectPath  string
	RedirectAfter time.Duration
}

// resolveCallback runs the loading state to completion for the given
// one-time token. A missing token fails immediately without a network call;
// an exchange failure carries the server's message when there is one.
func resolveCallback(ctx context.Context, svc tokenExchanger, oneTimeToken string) CallbackResult {
	if oneTimeToken == "" {
		return CallbackResult{
			State:         CallbackError,
			MessageID:     "callback_token_missing",
			RedirectPath:  "/",
			RedirectAfter: callbackErrorDelay,
		}
	}

	sess, err := svc.Exchange(ctx, oneTimeToken)
	if err != nil {
		res := CallbackResult{
			State:         CallbackError,
			RedirectPath:  "/",
			RedirectAfter: callbackErrorDelay,
		}
		if msg := api.ErrorMessage(err, ""); msg != "" {
			res.ErrMessage = msg
		} else {
			res.MessageID = "error_network"
		}
		return res
	}

	return CallbackResult{
		State:         CallbackSuccess,
		Sess:          sess,
		RedirectPath:  "/account",
		RedirectAfter: callbackSuccessDelay,
	}
}

// HandleTelegramCallback completes the Telegram handshake for the one-time
// token in the URL and shows a timed status screen before redirecting.
func (ui *UI) HandleTelegramCallback(w http.ResponseWriter, r *http.Request) {
	res := resolveCallback(r.Context(), ui.telegram, r.URL.Query().Get("token"))

	if res.State == CallbackSuccess {
		ui.sessions.SetCookie(w, res.Sess)
	}

	message := res.ErrMessage
	if res.MessageID != "" {
		loc := i18n.Localizer(r.Header.Get("Accept-Language"))
		message = i18n.T(loc, res.MessageID)
	}

	ui.render(w, r, http.StatusOK, "callback", map[string]any{
		"State":         res.State,
		"Message":       message,
		"RedirectPath":  res.RedirectPath,
		"RedirectAfter": res.RedirectAfter,
		"Session":       res.Sess,
	})
}
