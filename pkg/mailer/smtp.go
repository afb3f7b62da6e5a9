package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

type smtpSender struct {
	host   string
	addr   string
	secure bool
	auth   smtp.Auth
	from   string
}

// NewSMTPSender creates an SMTP transport. With secure=false the connection
// is upgraded with STARTTLS when the server offers it (the usual port 587
// setup); with secure=true the connection is implicit TLS (port 465).
func NewSMTPSender(cfg Config) (EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		return nil, fmt.Errorf("%w: SMTP credentials are required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}

	return &smtpSender{
		host:   cfg.SMTPHost,
		addr:   fmt.Sprintf("%s:%d", cfg.SMTPHost, port),
		secure: cfg.SMTPSecure,
		auth:   smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost),
		from:   cfg.SenderEmail,
	}, nil
}

// SendEmail delivers a single message over SMTP. The context deadline is
// applied to the connection so a stalled server cannot hold the caller past
// the dispatcher's timeout.
func (s *smtpSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	var (
		conn net.Conn
		err  error
	)
	if s.secure {
		tlsDialer := tls.Dialer{Config: &tls.Config{ServerName: s.host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", s.addr)
	} else {
		dialer := net.Dialer{}
		conn, err = dialer.DialContext(ctx, "tcp", s.addr)
	}
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return errors.Join(ErrFailedToSend, err)
	}
	defer client.Close()

	if !s.secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
				return errors.Join(ErrFailedToSend, err)
			}
		}
	}

	if err := client.Auth(s.auth); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if err := client.Mail(s.from); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	for _, rcpt := range params.SendTo {
		if err := client.Rcpt(strings.TrimSpace(rcpt)); err != nil {
			return errors.Join(ErrFailedToSend, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if _, err := w.Write(buildMessage(s.from, params)); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if err := w.Close(); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	if err := client.Quit(); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	return nil
}

// buildMessage renders the RFC 5322 message with an HTML content type.
func buildMessage(from string, params SendEmailParams) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(params.SendTo, ", ") + "\r\n")
	b.WriteString("Subject: " + params.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(params.BodyHTML)
	b.WriteString("\r\n")
	return []byte(b.String())
}
