package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"recipeblog/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and then resolves the author's username in a
// second round trip. If the user row vanishes in between, the comment still
// stands and the username stays nil.
func (r *commentRepository) Create(ctx context.Context, postID, userID int64, content string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}

	err := r.db.QueryRowxContext(ctx, query, postID, userID, content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("post %d or user %d: %w", postID, userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	comment.Username = r.lookupUsername(ctx, userID)

	return comment, nil
}

// GetByID tolerates a vanished user row: the left join leaves the username
// nil instead of dropping the comment.
func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.id = $1
	`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}

	return &comment, nil
}

// GetByPostID inner-joins the users table, so comments whose user row has
// vanished are excluded from listings.
func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, id int64, content string) (*models.Comment, error) {
	query := `
		UPDATE comments
		SET content = $1
		WHERE id = $2
		RETURNING id, post_id, user_id, content, created_at
	`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, content, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	comment.Username = r.lookupUsername(ctx, comment.UserID)

	return &comment, nil
}

// Delete removes the comment by id. Deleting an id that does not exist
// succeeds: the end state is the same.
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

func (r *commentRepository) lookupUsername(ctx context.Context, userID int64) *string {
	var username string
	err := r.db.GetContext(ctx, &username, `SELECT username FROM users WHERE id = $1`, userID)
	if err != nil {
		return nil
	}
	return &username
}
