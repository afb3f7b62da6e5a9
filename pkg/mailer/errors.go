package mailer

import "errors"

var (
	// ErrInvalidConfig indicates the transport configuration is unusable.
	ErrInvalidConfig = errors.New("mailer: invalid config")
	// ErrInvalidParams indicates the message itself failed validation.
	ErrInvalidParams = errors.New("mailer: invalid params")
	// ErrFailedToSend wraps delivery failures from any transport.
	ErrFailedToSend = errors.New("mailer: failed to send email")
	// ErrTransportUnavailable indicates live mode was requested without
	// usable credentials.
	ErrTransportUnavailable = errors.New("mailer: transport unavailable")
)
