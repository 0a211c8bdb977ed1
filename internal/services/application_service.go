package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/providers/mail"
	"github.com/ignitai/ignitai-backend/internal/repositories/mongo"
	"github.com/ignitai/ignitai-backend/internal/storage"
	"github.com/ignitai/ignitai-backend/internal/utils"
)

// UploadedFile is a multipart file already read into memory.
type UploadedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type ApplicationInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Program    string
	Experience string
	Motivation string
	Resume     *UploadedFile
}

type ApplicationService interface {
	Submit(ctx context.Context, in ApplicationInput) (*models.Application, error)
}

type applicationService struct {
	repo     mongo.ApplicationRepository
	uploader storage.Uploader
	mailer   mail.Sender
	notifyTo string
	now      func() time.Time
}

func NewApplicationService(repo mongo.ApplicationRepository, uploader storage.Uploader, mailer mail.Sender, notifyTo string) ApplicationService {
	return &applicationService{repo: repo, uploader: uploader, mailer: mailer, notifyTo: notifyTo, now: time.Now}
}

func (s *applicationService) Submit(ctx context.Context, in ApplicationInput) (*models.Application, error) {
	const op = "ApplicationService.Submit"
	const failed = "Failed to submit application."

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FirstName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "firstName is required", nil)
	}
	if in.Email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}

	now := s.now()
	app := &models.Application{
		FirstName:  in.FirstName,
		LastName:   strings.TrimSpace(in.LastName),
		Email:      in.Email,
		Phone:      strings.TrimSpace(in.Phone),
		Program:    strings.TrimSpace(in.Program),
		Experience: strings.TrimSpace(in.Experience),
		Motivation: strings.TrimSpace(in.Motivation),
		CreatedAt:  now.UTC(),
	}

	if in.Resume != nil {
		name := storage.ObjectName(now, in.Resume.Filename)
		path, err := s.uploader.Upload(ctx, name, in.Resume.ContentType, bytes.NewReader(in.Resume.Content))
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, failed, err)
		}
		app.Resume = path
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, utils.E(utils.CodeInternal, op, failed, err)
	}

	msg := mail.Message{
		Subject: "New Application Received",
		Body:    applicationBody(app),
		ReplyTo: app.Email,
	}
	if s.notifyTo != "" {
		msg.To = []string{s.notifyTo}
	}
	if in.Resume != nil {
		msg.Attachments = []mail.Attachment{{Filename: in.Resume.Filename, Content: in.Resume.Content}}
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, utils.E(utils.CodeInternal, op, failed, err)
	}
	return app, nil
}

func applicationBody(a *models.Application) string {
	return fmt.Sprintf(`New application received:

Name: %s %s
Email: %s
Phone: %s
Program: %s
Experience: %s
Motivation: %s
`, a.FirstName, a.LastName, a.Email, a.Phone, a.Program, a.Experience, a.Motivation)
}
