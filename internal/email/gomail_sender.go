package email

import (
	"fmt"

	"alumni_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// GomailSender - реализация Provider поверх gomail/SMTP
type GomailSender struct {
	cfg *config.Config
}

func NewGomailSender(cfg *config.Config) *GomailSender {
	return &GomailSender{cfg: cfg}
}

func (e *GomailSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(e.cfg.Email.FromEmail, e.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUsername,
		e.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func (e *GomailSender) SendPasswordReset(to, resetLink string) error {
	body, err := renderPasswordReset(resetLink)
	if err != nil {
		return fmt.Errorf("render password reset email: %w", err)
	}
	return e.Send(to, "Password reset", body)
}
