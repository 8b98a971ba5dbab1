package service

import (
	"recipeblog/internal/config"
	"recipeblog/internal/repository"
	"recipeblog/internal/storage"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Post    PostService
	Comment CommentService
	Image   ImageService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(repo.Admin, repo.User, cfg),
		User:    NewUserService(repo.User),
		Post:    NewPostService(repo.Post, storage, cfg),
		Comment: NewCommentService(repo.Comment),
		Image:   NewImageService(storage, cfg),
	}
}
