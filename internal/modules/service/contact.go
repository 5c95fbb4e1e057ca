package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/halcyonlabs/studio-api/internal/config"
	"github.com/halcyonlabs/studio-api/internal/infra/mailer"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/repo"
	"go.uber.org/zap"
)

// ErrDispatchFailed marks a submission that was stored but whose email
// notification could not be sent.
var ErrDispatchFailed = errors.New("contact email dispatch failed")

type ContactService interface {
	// Submit stores the message and dispatches exactly one email
	// notification. No retry is attempted; callers resubmit manually.
	Submit(ctx context.Context, msg *model.ContactMessage) error
}

type contactService struct {
	r    repo.ContactRepo
	mail mailer.Mailer
	log  *zap.Logger
	to   string
}

func NewContactService(r repo.ContactRepo, mail mailer.Mailer, log *zap.Logger, cfg *config.Config) ContactService {
	return &contactService{r: r, mail: mail, log: log, to: cfg.SMTP.ContactTo}
}

func (s *contactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return errors.New("name, email and message are required")
	}

	if err := s.r.Create(ctx, msg); err != nil {
		return err
	}

	err := s.mail.Send(ctx, mailer.Message{
		To:      s.to,
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("New inquiry from %s", msg.Name),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", msg.Name, msg.Email, msg.Message),
	})
	if err != nil {
		// The row is kept so the inquiry is not lost even when email is down.
		s.log.Sugar().Errorw("contact email dispatch failed", "message_id", msg.ID, "err", err)
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	return nil
}
