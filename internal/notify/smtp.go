package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds SMTP relay settings, typically read from
// SMTP_HOST / SMTP_PORT / SMTP_USER / SMTP_PASS.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// SMTPChannel delivers email over plain SMTP with PLAIN auth. It serves
// as the fallback when the primary API provider is down.
type SMTPChannel struct {
	cfg SMTPConfig
	// sendMail is swappable in tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPChannel creates an SMTPChannel. Missing credentials produce a
// channel whose Send always returns ErrNotConfigured.
func NewSMTPChannel(cfg SMTPConfig) *SMTPChannel {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPChannel{cfg: cfg, sendMail: smtp.SendMail}
}

func (c *SMTPChannel) Name() string { return "smtp" }

// Send composes an RFC 5322 message with an HTML body and hands it to
// the SMTP relay.
func (c *SMTPChannel) Send(ctx context.Context, email Email) error {
	if c.cfg.User == "" || c.cfg.Pass == "" {
		return ErrNotConfigured
	}
	// smtp.SendMail has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}

	from := c.cfg.From
	if from == "" {
		from = c.cfg.User
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	if email.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", email.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.HTML)
	b.WriteString("\r\n")

	auth := smtp.PlainAuth("", c.cfg.User, c.cfg.Pass, c.cfg.Host)
	addr := c.cfg.Host + ":" + c.cfg.Port
	if err := c.sendMail(addr, auth, from, []string{email.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
