package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"recipeblog/internal/config"
	"recipeblog/internal/models"
	"recipeblog/internal/repository"
	"recipeblog/internal/storage"
)

type CreatePostRequest struct {
	Title   string
	Excerpt *string
	Content *string
	Image   *string
	Author  *string
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, session *models.Session, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, session *models.Session, id int64, req CreatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{postRepo: postRepo, storage: storage, cfg: cfg}
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.GetAll(ctx)
}

func (s *postService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *postService) CreatePost(ctx context.Context, session *models.Session, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
		Author:  authorOrDefault(req.Author, session),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost has full-row replace semantics: every column is overwritten
// with the request values.
func (s *postService) UpdatePost(ctx context.Context, session *models.Session, id int64, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		ID:      id,
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
		Author:  authorOrDefault(req.Author, session),
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes the post row (with its comment thread) and then cleans
// up the stored header image, best effort: a failed object delete leaves an
// orphan in the bucket but never fails the request.
func (s *postService) DeletePost(ctx context.Context, id int64) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	if post != nil && post.Image != nil {
		if objectName, ok := s.ownedObjectName(*post.Image); ok {
			if err := s.storage.DeleteImage(ctx, objectName); err != nil {
				log.Printf("failed to delete image %s for post %d: %v", objectName, id, err)
			}
		}
	}

	return nil
}

// ownedObjectName maps a posts.image URL back to a bucket object name.
// External image URLs are left alone.
func (s *postService) ownedObjectName(imageURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/%s/", s.cfg.MinIO.PublicURL, s.cfg.MinIO.BucketName)
	objectName := strings.TrimPrefix(imageURL, prefix)
	if objectName == imageURL || objectName == "" {
		return "", false
	}
	return objectName, true
}

// The author byline falls back to the session username when the request
// leaves it empty.
func authorOrDefault(author *string, session *models.Session) *string {
	if author != nil && *author != "" {
		return author
	}
	if session != nil {
		name := session.Username
		return &name
	}
	return nil
}
