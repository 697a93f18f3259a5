package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/imhotep-finance/finance-service/internal/logger"
)

// SMTPMailer sends plain-text mail over SMTP. It covers the only two mails
// the service sends: verification codes and temporary passwords.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// New creates an SMTPMailer for the given server and sender account. Auth
// is skipped when username is empty, which local relays like mailhog expect.
func New(host string, port int, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
		from: from,
	}
}

// Send delivers a single plain-text message to recipient.
func (m *SMTPMailer) Send(ctx context.Context, recipient, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, recipient, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{recipient}, []byte(msg)); err != nil {
		logger.Log.Errorw("failed to send mail", "recipient", recipient, "subject", subject, "error", err)
		return err
	}
	return nil
}
