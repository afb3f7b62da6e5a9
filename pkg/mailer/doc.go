// Package mailer provides the outbound mail transport behind notification
// dispatch. All transports implement the EmailSender interface:
//
//   - PostmarkSender delivers through Postmark's transactional API
//   - SMTPSender delivers through a classic SMTP setup (STARTTLS or implicit
//     TLS)
//   - SandboxSender captures messages on disk for inspection in
//     non-production environments
//
// The transport is selected exactly once at process start via NewFromConfig.
// In live mode a Postmark server token wins over SMTP configuration; when
// neither is usable, NewFromConfig returns ErrTransportUnavailable so the
// caller can run with notifications disabled instead of crashing.
//
// Transport failures are reported as errors wrapping ErrFailedToSend; the
// notification dispatcher is the layer that decides those never reach the
// end caller.
package mailer
