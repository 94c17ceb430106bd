package auth

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"qa-tracker-backend/internal/config"
	"qa-tracker-backend/internal/logger"
)

// Mailer delivers account emails
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain text mail through an SMTP relay
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// LogMailer writes mails to the log instead of sending them. Used when no SMTP host is set.
type LogMailer struct{}

// NewMailer picks the SMTP mailer when a host is configured
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return &LogMailer{}
	}

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPMailer{
		addr: net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort),
		auth: auth,
		from: cfg.MailFrom,
	}
}

// Send delivers one message
func (m *SMTPMailer) Send(to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// Send logs the message
func (m *LogMailer) Send(to, subject, body string) error {
	logger.New().WithFields(map[string]interface{}{
		"to":      to,
		"subject": subject,
	}).Info(body)
	return nil
}
