package infra

import (
	"fmt"
	"net/smtp"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends plain-text mail through the configured SMTP relay. Both the
// contact-form relay and the background notification worker go through it.
type Mailer struct {
	from string
	host string
	addr string
	auth smtp.Auth
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		from: cfg.SMTPUser,
		host: cfg.SMTPHost,
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	return e.Send(m.addr, m.auth)
}
