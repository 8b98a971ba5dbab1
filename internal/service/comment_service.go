package service

import (
	"context"
	"errors"

	"recipeblog/internal/models"
	"recipeblog/internal/repository"
)

// ErrForbidden means the session is valid but the role or ownership rules
// reject the mutation.
var ErrForbidden = errors.New("forbidden")

type CommentService interface {
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, session *models.Session, postID int64, content string) (*models.Comment, error)
	UpdateComment(ctx context.Context, session *models.Session, commentID int64, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, session *models.Session, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}

// CreateComment only accepts the "user" role. Admin accounts live in a
// separate table and cannot satisfy the comments.user_id foreign key, so an
// admin session is rejected outright.
func (s *commentService) CreateComment(ctx context.Context, session *models.Session, postID int64, content string) (*models.Comment, error) {
	if session.Role != models.RoleUser {
		return nil, ErrForbidden
	}

	return s.commentRepo.Create(ctx, postID, session.UserID, content)
}

// UpdateComment permits the owning user or any admin (moderation).
func (s *commentService) UpdateComment(ctx context.Context, session *models.Session, commentID int64, content string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if !s.canMutate(session, comment) {
		return nil, ErrForbidden
	}

	return s.commentRepo.Update(ctx, commentID, content)
}

func (s *commentService) DeleteComment(ctx context.Context, session *models.Session, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !s.canMutate(session, comment) {
		return ErrForbidden
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// canMutate is the ownership check: admins moderate anything, users touch
// only their own comments. Admin ids and user ids come from disjoint tables,
// so the id comparison is only meaningful for the "user" role.
func (s *commentService) canMutate(session *models.Session, comment *models.Comment) bool {
	if session.IsAdmin() {
		return true
	}
	return session.Role == models.RoleUser && session.UserID == comment.UserID
}
