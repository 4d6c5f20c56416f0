package errhttp

import (
	"context"

	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/notice"
)

// Messages surfaced to the operator for each failing outcome.
const (
	MessageReauth  = "Your session has expired. Please log in again."
	MessageInvalid = "Please check the highlighted fields."
	MessageGeneric = "Something went wrong. Please try again later."
)

// Session is the part of the auth collaborator the classifier drives.
type Session interface {
	Logout(ctx context.Context) error
}

// Notifier surfaces a message to the view.
type Notifier interface {
	Notify(ctx context.Context, n notice.Notice)
}

// Reporter forwards unexpected failures to crash reporting.
type Reporter interface {
	Report(ctx context.Context, domain string, c Classification)
}

// SideEffects executes what each outcome requires of the caller. Nil
// collaborators are skipped.
type SideEffects struct {
	Session  Session
	Notifier Notifier
	Reporter Reporter
	Log      logger.Logger
}

// Apply runs the side effect for c. Success does nothing.
func (e SideEffects) Apply(ctx context.Context, domain string, c Classification) {
	if c.OK() {
		return
	}

	n := notice.Notice{Domain: domain, Outcome: c.Outcome.String(), Status: c.Status}
	switch c.Outcome {
	case AuthExpired:
		if e.Session != nil {
			if err := e.Session.Logout(ctx); err != nil && e.Log != nil {
				e.Log.WarnContext(ctx, "forced logout failed", "domain", domain, "error", err)
			}
		}
		n.Message = MessageReauth
		n.Reauth = true
	case ValidationFailed:
		n.Message = c.Message
		if n.Message == "" {
			n.Message = MessageInvalid
		}
	default:
		n.Message = MessageGeneric
		if e.Reporter != nil {
			e.Reporter.Report(ctx, domain, c)
		}
	}

	if e.Notifier != nil {
		e.Notifier.Notify(ctx, n)
	}
}
