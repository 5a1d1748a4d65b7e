package mailer

import (
	"gopkg.in/gomail.v2"

	"service-booking/pkg/utils"
)

// Sender delivers a rendered message to a single recipient. Implementations
// may fail; callers treat delivery as best-effort.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type smtpSender struct {
	cfg utils.EmailConfig
}

func NewSMTPSender(cfg utils.EmailConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)

	return d.DialAndSend(m)
}
