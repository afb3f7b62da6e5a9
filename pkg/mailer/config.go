package mailer

import "fmt"

// Mode selects the mail transport family at process start.
type Mode string

const (
	// ModeSandbox captures messages on disk instead of delivering them.
	ModeSandbox Mode = "sandbox"
	// ModeLive delivers through Postmark or SMTP, whichever is configured.
	ModeLive Mode = "live"
)

// Config holds mail transport configuration. In live mode a Postmark server
// token takes precedence; the SMTP fields carry a classic
// host/port/secure/credentials setup and are used when no Postmark token is
// present. When live mode is requested without usable credentials,
// NewFromConfig returns ErrTransportUnavailable and the caller is expected to
// run with notifications disabled rather than fail startup.
type Config struct {
	Mode        Mode   `env:"MAIL_MODE" envDefault:"sandbox"`
	SenderEmail string `env:"MAIL_SENDER_EMAIL" envDefault:"noreply@lostfound.local"`
	SandboxDir  string `env:"MAIL_SANDBOX_DIR" envDefault:"./mail-outbox"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure   bool   `env:"SMTP_SECURE" envDefault:"false"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

// NewFromConfig selects and constructs the mail transport once, at process
// start. Sandbox mode always succeeds. Live mode prefers Postmark when a
// server token is set, falls back to SMTP when host and credentials are set,
// and otherwise reports ErrTransportUnavailable.
func NewFromConfig(cfg Config) (EmailSender, error) {
	switch cfg.Mode {
	case ModeSandbox, "":
		return NewSandboxSender(cfg.SandboxDir), nil
	case ModeLive:
		if cfg.PostmarkServerToken != "" {
			return NewPostmarkSender(cfg)
		}
		if cfg.SMTPHost != "" && cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
			return NewSMTPSender(cfg)
		}
		return nil, fmt.Errorf("%w: live mode requires a Postmark server token or SMTP host and credentials", ErrTransportUnavailable)
	default:
		return nil, fmt.Errorf("%w: unknown mail mode %q", ErrInvalidConfig, cfg.Mode)
	}
}
