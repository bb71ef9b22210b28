package repository

import (
	"context"
	"errors"
	"fmt"

	"newsroom/internal/model"

	"github.com/jackc/pgx/v5"
)

// NewsRepository defines operations for news post data
type NewsRepository interface {
	Create(ctx context.Context, post *model.NewsPost) error
	FindAll(ctx context.Context) ([]model.NewsPost, error)
	FindByID(ctx context.Context, id int64) (*model.NewsPost, error)
}

type newsRepository struct {
	db Querier
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db Querier) NewsRepository {
	return &newsRepository{db: db}
}

// Create inserts a new news post into the database
func (r *newsRepository) Create(ctx context.Context, post *model.NewsPost) error {
	sql := `INSERT INTO news_posts (title, category, content, image_url, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, post.Title, post.Category, post.Content, post.ImageURL, post.CreatedAt).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to create news post: %w", err)
	}
	return nil
}

// FindAll retrieves all news posts in insertion order
func (r *newsRepository) FindAll(ctx context.Context) ([]model.NewsPost, error) {
	sql := `SELECT id, title, category, content, image_url, created_at FROM news_posts ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query news posts: %w", err)
	}
	defer rows.Close()

	var posts []model.NewsPost
	for rows.Next() {
		var p model.NewsPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Content, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan news post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news post rows: %w", err)
	}
	return posts, nil
}

// FindByID retrieves a news post by its ID
func (r *newsRepository) FindByID(ctx context.Context, id int64) (*model.NewsPost, error) {
	p := &model.NewsPost{}
	sql := `SELECT id, title, category, content, image_url, created_at FROM news_posts WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&p.ID, &p.Title, &p.Category, &p.Content, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find news post by ID: %w", err)
	}
	return p, nil
}
