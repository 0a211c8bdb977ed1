package mail

import (
	"context"
	"errors"
	"io"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host   string
	Port   int
	Secure bool // implicit TLS (port 465); otherwise STARTTLS when offered
	User   string
	Pass   string
	From   string
	// DefaultTo is used when a message has no recipients.
	DefaultTo string
}

type SMTPSender struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	d.SSL = cfg.Secure
	return &SMTPSender{cfg: cfg, dialer: d}
}

var ErrNotConfigured = errors.New("smtp host is not configured")

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.cfg.Host == "" {
		return ErrNotConfigured
	}
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SMTPSender) build(msg Message) (*gomail.Message, error) {
	to := msg.To
	if len(to) == 0 && s.cfg.DefaultTo != "" {
		to = []string{s.cfg.DefaultTo}
	}
	if len(to) == 0 {
		return nil, errors.New("message has no recipients")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetBody("text/plain", msg.Body)

	for _, a := range msg.Attachments {
		content := a.Content
		m.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return m, nil
}
