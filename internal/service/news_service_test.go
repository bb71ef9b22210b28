package service

import (
	"context"
	"testing"
	"time"

	"newsroom/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNewsRepo struct {
	nextID int64
	posts  []model.NewsPost
}

func (f *fakeNewsRepo) Create(ctx context.Context, post *model.NewsPost) error {
	f.nextID++
	post.ID = f.nextID
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakeNewsRepo) FindAll(ctx context.Context) ([]model.NewsPost, error) {
	return append([]model.NewsPost(nil), f.posts...), nil
}

func (f *fakeNewsRepo) FindByID(ctx context.Context, id int64) (*model.NewsPost, error) {
	for _, p := range f.posts {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func TestNewsService_CreateNewsPost(t *testing.T) {
	repo := &fakeNewsRepo{}
	svc := NewNewsService(repo)

	imageURL := "https://example.com/a.png"
	post, err := svc.CreateNewsPost(context.Background(), model.CreateNewsPostRequest{
		Title:    "Launch day",
		Category: "tech",
		Content:  "We shipped.",
		ImageURL: &imageURL,
	})

	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, "tech", post.Category)
	// Creation timestamp is server-assigned
	assert.WithinDuration(t, time.Now(), post.CreatedAt, 5*time.Second)
}

func TestNewsService_GetAllNewsPosts(t *testing.T) {
	repo := &fakeNewsRepo{}
	svc := NewNewsService(repo)

	for _, title := range []string{"first", "second"} {
		_, err := svc.CreateNewsPost(context.Background(), model.CreateNewsPostRequest{
			Title:    title,
			Category: "general",
			Content:  "body",
		})
		require.NoError(t, err)
	}

	posts, err := svc.GetAllNewsPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)
}

func TestNewsService_GetNewsPostByID_NotFound(t *testing.T) {
	svc := NewNewsService(&fakeNewsRepo{})

	_, err := svc.GetNewsPostByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNewsPostNotFound)
}
