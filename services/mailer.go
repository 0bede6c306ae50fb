package services

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"aqarpress/config"
)

// Mailer sends plaintext notification mails over SMTP. A nil Mailer (no
// SMTP host configured) disables notifications without special-casing
// callers.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

// NewMailer returns nil when no SMTP host is configured.
func NewMailer(cfg *config.Config, log *zap.Logger) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   from,
		log:    log,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// SendAsync delivers on a background goroutine; failures are logged, never
// propagated into the request path.
func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			m.log.Warn("failed to send mail",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
		}
	}()
}
