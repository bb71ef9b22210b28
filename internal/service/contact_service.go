package service

import (
	"context"
	"fmt"
	"time"

	"newsroom/internal/model"
	"newsroom/internal/repository"
)

// ContactService defines operations for contact messages
type ContactService interface {
	SubmitMessage(ctx context.Context, req model.CreateContactMessageRequest) (*model.ContactMessage, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// SubmitMessage persists a contact form submission
func (s *contactService) SubmitMessage(ctx context.Context, req model.CreateContactMessageRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create contact message in repo: %w", err)
	}
	return msg, nil
}
