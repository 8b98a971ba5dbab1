package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"recipeblog/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT id, title, excerpt, content, image, author, created_at
		FROM posts
		ORDER BY created_at DESC
	`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		SELECT id, title, excerpt, content, image, author, created_at
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	return &post, nil
}

// Create inserts the post and fills in the generated id and the server-set
// created_at. Title is the only required field; validation happens upstream.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (title, excerpt, content, image, author)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		post.Title, post.Excerpt, post.Content, post.Image, post.Author).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// Update overwrites every column of the target row. There is no partial
// patch: callers send the full post each time.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, excerpt = $2, content = $3, image = $4, author = $5
		WHERE id = $6
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		post.Title, post.Excerpt, post.Content, post.Image, post.Author, post.ID).
		Scan(&post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("post %d: %w", post.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// Delete removes the post and its comments. Deleting an id that does not
// exist is not an error: the end state is the same.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post deletion: %w", err)
	}

	return nil
}
