package service

import (
	"context"

	"recipeblog/internal/models"
	"recipeblog/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a credential-backed account. The unique constraint is the
// single source of truth for taken usernames, so there is no separate
// lookup-then-insert step to race against.
func (s *userService) Register(ctx context.Context, username, password string) (*models.User, error) {
	return s.userRepo.Create(ctx, username, &password)
}
