package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsroom/internal/model"
	"newsroom/internal/repository"
)

var ErrNewsPostNotFound = errors.New("news post not found")

// NewsService defines operations for news posts
type NewsService interface {
	CreateNewsPost(ctx context.Context, req model.CreateNewsPostRequest) (*model.NewsPost, error)
	GetAllNewsPosts(ctx context.Context) ([]model.NewsPost, error)
	GetNewsPostByID(ctx context.Context, id int64) (*model.NewsPost, error)
}

type newsService struct {
	repo repository.NewsRepository
}

// NewNewsService creates a new NewsService
func NewNewsService(repo repository.NewsRepository) NewsService {
	return &newsService{repo: repo}
}

// CreateNewsPost stores a new post with a server-assigned creation timestamp
func (s *newsService) CreateNewsPost(ctx context.Context, req model.CreateNewsPostRequest) (*model.NewsPost, error) {
	post := &model.NewsPost{
		Title:     req.Title,
		Category:  req.Category,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create news post in repo: %w", err)
	}
	return post, nil
}

func (s *newsService) GetAllNewsPosts(ctx context.Context) ([]model.NewsPost, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get news posts from repo: %w", err)
	}
	return posts, nil
}

func (s *newsService) GetNewsPostByID(ctx context.Context, id int64) (*model.NewsPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find news post by ID: %w", err)
	}
	if post == nil {
		return nil, ErrNewsPostNotFound
	}
	return post, nil
}
