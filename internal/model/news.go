package model

import "time"

// NewsPost represents a published news article
type NewsPost struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl,omitempty"` // Pointer for optional field
	CreatedAt time.Time `json:"created_at"`
}

// CreateNewsPostRequest is used for creating a new news post
type CreateNewsPostRequest struct {
	Title    string  `json:"title" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
}
