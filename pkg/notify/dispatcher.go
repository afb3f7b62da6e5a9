package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/foundlab/lostfound/pkg/logger"
	"github.com/foundlab/lostfound/pkg/mailer"
)

// defaultTimeout bounds a single delivery attempt so a slow transport cannot
// hold the triggering operation.
const defaultTimeout = 15 * time.Second

// Dispatcher delivers composed notifications on a best-effort basis. It
// never returns an error: transport failures are logged and absorbed so they
// cannot be confused with persistence failures, and they never undo the
// mutation that triggered them.
type Dispatcher struct {
	sender  mailer.EmailSender
	log     *slog.Logger
	timeout time.Duration
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger for the Dispatcher.
func WithLogger(log *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithTimeout bounds each delivery attempt. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// NewDispatcher creates a dispatcher around the given transport. A nil
// sender is accepted and turns every dispatch into a logged no-op; this is
// the degraded mode used when live transport credentials are missing.
func NewDispatcher(sender mailer.EmailSender, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sender:  sender,
		log:     slog.Default(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Notify composes a message for the event and dispatches it to the given
// recipients. This is the single entry point the lifecycle layer calls after
// a persistence event.
func (d *Dispatcher) Notify(ctx context.Context, action Action, snapshot Snapshot, recipients []string) {
	d.Dispatch(ctx, recipients, Compose(action, snapshot))
}

// Dispatch attempts to deliver the message to all recipients in a single
// email. Failure is observable only through logs.
func (d *Dispatcher) Dispatch(ctx context.Context, recipients []string, msg Message) {
	if len(recipients) == 0 {
		d.log.InfoContext(ctx, "no receivers configured, skipping notification",
			logger.Component("dispatcher"),
			slog.String("subject", msg.Subject),
		)
		return
	}

	if d.sender == nil {
		d.log.WarnContext(ctx, "mail transport unavailable, notification dropped",
			logger.Component("dispatcher"),
			slog.String("subject", msg.Subject),
			logger.Recipients(len(recipients)),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.sender.SendEmail(ctx, mailer.SendEmailParams{
		SendTo:   recipients,
		Subject:  msg.Subject,
		BodyHTML: msg.BodyHTML,
		Tag:      msg.Tag,
	})
	if err != nil {
		d.log.WarnContext(ctx, "failed to send notification",
			logger.Component("dispatcher"),
			logger.Event(msg.Tag),
			slog.String("subject", msg.Subject),
			logger.Recipients(len(recipients)),
			logger.Error(err),
		)
		return
	}

	d.log.InfoContext(ctx, "notification sent",
		logger.Component("dispatcher"),
		logger.Event(msg.Tag),
		slog.String("subject", msg.Subject),
		logger.Recipients(len(recipients)),
	)
}
