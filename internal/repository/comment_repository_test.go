package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCommentRepository(sqlxDB)
	ctx := context.Background()

	insertQuery := `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	usernameQuery := `SELECT username FROM users WHERE id = $1`

	t.Run("inserts and resolves the username", func(t *testing.T) {
		mock.ExpectQuery(insertQuery).
			WithArgs(int64(3), int64(1), "Looks delicious").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), time.Now()))
		mock.ExpectQuery(usernameQuery).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("alice"))

		comment, err := repo.Create(ctx, 3, 1, "Looks delicious")

		require.NoError(t, err)
		assert.Equal(t, int64(10), comment.ID)
		assert.Equal(t, int64(3), comment.PostID)
		require.NotNil(t, comment.Username)
		assert.Equal(t, "alice", *comment.Username)
	})

	t.Run("vanished user leaves the username nil", func(t *testing.T) {
		mock.ExpectQuery(insertQuery).
			WithArgs(int64(3), int64(1), "Looks delicious").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))
		mock.ExpectQuery(usernameQuery).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"username"}))

		comment, err := repo.Create(ctx, 3, 1, "Looks delicious")

		require.NoError(t, err)
		assert.Nil(t, comment.Username)
	})

	t.Run("absent post or user maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(insertQuery).
			WithArgs(int64(99), int64(1), "orphan").
			WillReturnError(&pq.Error{Code: "23503"})

		comment, err := repo.Create(ctx, 99, 1, "orphan")

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCommentRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCommentRepository(sqlxDB)
	ctx := context.Background()

	query := `
		SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.id = $1
	`

	t.Run("left join tolerates a vanished user", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "username", "content", "created_at"}).
				AddRow(int64(5), int64(3), int64(1), nil, "Looks delicious", time.Now()))

		comment, err := repo.GetByID(ctx, 5)

		require.NoError(t, err)
		assert.Nil(t, comment.Username)
		assert.Equal(t, "Looks delicious", comment.Content)
	})

	t.Run("missing comment maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "username", "content", "created_at"}))

		comment, err := repo.GetByID(ctx, 99)

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCommentRepository_GetByPostID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCommentRepository(sqlxDB)
	ctx := context.Background()

	query := `
		SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	t.Run("returns the thread oldest first", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "username", "content", "created_at"}).
				AddRow(int64(1), int64(3), int64(1), "alice", "first", time.Now().Add(-time.Hour)).
				AddRow(int64(2), int64(3), int64(2), "bob", "second", time.Now()))

		comments, err := repo.GetByPostID(ctx, 3)

		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "first", comments[0].Content)
		assert.Equal(t, "alice", *comments[0].Username)
	})

	t.Run("no comments yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "username", "content", "created_at"}))

		comments, err := repo.GetByPostID(ctx, 4)

		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestCommentRepository_Update(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCommentRepository(sqlxDB)
	ctx := context.Background()

	query := `
		UPDATE comments
		SET content = $1
		WHERE id = $2
		RETURNING id, post_id, user_id, content, created_at
	`

	t.Run("rewrites the content", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("edited", int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "content", "created_at"}).
				AddRow(int64(5), int64(3), int64(1), "edited", time.Now()))
		mock.ExpectQuery(`SELECT username FROM users WHERE id = $1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("alice"))

		comment, err := repo.Update(ctx, 5, "edited")

		require.NoError(t, err)
		assert.Equal(t, "edited", comment.Content)
		assert.Equal(t, "alice", *comment.Username)
	})

	t.Run("missing comment maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("edited", int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "content", "created_at"}))

		comment, err := repo.Update(ctx, 99, "edited")

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCommentRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCommentRepository(sqlxDB)
	ctx := context.Background()

	t.Run("deletes by id", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE id = $1`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 5))
	})

	t.Run("deleting a nonexistent id still succeeds", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE id = $1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, 99))
	})
}
