package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"recipeblog/internal/models"
)

type PostRepository interface {
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Create(ctx context.Context, username, password string) (*models.Admin, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.Admin, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username string, password *string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	FindOrCreateOAuth(ctx context.Context, username string) (*models.User, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID, userID int64, content string) (*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	Update(ctx context.Context, id int64, content string) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	Post    PostRepository
	Admin   AdminRepository
	User    UserRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:    NewPostRepository(db),
		Admin:   NewAdminRepository(db),
		User:    NewUserRepository(db),
		Comment: NewCommentRepository(db),
	}
}
