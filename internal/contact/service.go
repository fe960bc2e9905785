package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/validate"
)

// Service contains business logic for contact messages.
type Service struct {
	Repo Repo
}

// SubmitInput carries the fields accepted on public submission.
type SubmitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit validates and stores a public contact message.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Message, error) {
	fe := validate.FieldErrors{}
	in.Name = fe.Required("name", in.Name)
	in.Email = fe.Required("email", in.Email)
	in.Message = fe.Required("message", in.Message)
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		fe.Add("email", "must be a valid email address")
	}
	if err := fe.OrNil(); err != nil {
		return Message{}, err
	}

	m := Message{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   strings.TrimSpace(in.Subject),
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return Message{}, err
	}
	return m, nil
}

// Inbox returns every message plus the unread count for the admin view.
func (s *Service) Inbox(ctx context.Context) (Inbox, error) {
	messages, err := s.Repo.List(ctx)
	if err != nil {
		return Inbox{}, err
	}
	unread, err := s.Repo.CountUnread(ctx)
	if err != nil {
		return Inbox{}, err
	}
	if messages == nil {
		messages = []Message{}
	}
	return Inbox{Messages: messages, Unread: unread}, nil
}

// MarkRead flags one message as read.
func (s *Service) MarkRead(ctx context.Context, id string) (Message, error) {
	if err := s.Repo.MarkRead(ctx, id); err != nil {
		return Message{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

// Delete removes one message.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
