package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ignitai/ignitai-backend/internal/providers/mail"
	"github.com/ignitai/ignitai-backend/internal/utils"
)

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ContactService interface {
	Send(ctx context.Context, in ContactInput) error
}

type contactService struct {
	mailer   mail.Sender
	notifyTo string
}

func NewContactService(mailer mail.Sender, notifyTo string) ContactService {
	return &contactService{mailer: mailer, notifyTo: notifyTo}
}

func (s *contactService) Send(ctx context.Context, in ContactInput) error {
	const op = "ContactService.Send"

	for _, v := range []string{in.Name, in.Email, in.Subject, in.Message} {
		if strings.TrimSpace(v) == "" {
			return utils.E(utils.CodeInvalidArgument, op, "All fields are required.", nil)
		}
	}

	msg := mail.Message{
		Subject: "Contact Form: " + strings.TrimSpace(in.Subject),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", in.Name, in.Email, in.Message),
		ReplyTo: strings.TrimSpace(in.Email),
	}
	if s.notifyTo != "" {
		msg.To = []string{s.notifyTo}
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return utils.E(utils.CodeInternal, op, "Failed to send message.", err)
	}
	return nil
}
