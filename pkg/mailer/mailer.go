package mailer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// emailRegex matches the basic local@domain shape. Deliverability beyond the
// shape check is the transport's concern.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// EmailSender represents an outbound mail transport.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents a single outbound email.
type SendEmailParams struct {
	SendTo   []string `json:"send_to"`       // Recipient email addresses
	Subject  string   `json:"subject"`       // Subject line
	BodyHTML string   `json:"body_html"`     // HTML body
	Tag      string   `json:"tag,omitempty"` // Optional category tag
}

// Validate checks the params before any transport is touched. Every sender
// implementation calls this first so a malformed message fails the same way
// regardless of transport.
func (p SendEmailParams) Validate() error {
	if len(p.SendTo) == 0 {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	for _, addr := range p.SendTo {
		if !emailRegex.MatchString(strings.TrimSpace(addr)) {
			return fmt.Errorf("%w: %q is not a valid email address", ErrInvalidParams, addr)
		}
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// TransportName reports which transport backs the given sender, for startup
// and delivery logs. A nil sender reports "none".
func TransportName(s EmailSender) string {
	switch s.(type) {
	case *postmarkSender:
		return "postmark"
	case *smtpSender:
		return "smtp"
	case *SandboxSender:
		return "sandbox"
	case nil:
		return "none"
	default:
		return "custom"
	}
}
