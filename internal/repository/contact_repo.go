package repository

import (
	"context"
	"fmt"

	"newsroom/internal/model"
)

// ContactRepository defines operations for contact message data
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
}

type contactRepository struct {
	db Querier
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db Querier) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact message into the database
func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	sql := `INSERT INTO contact_messages (name, email, subject, message, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}
