package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Post struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Excerpt   *string   `json:"excerpt" db:"excerpt"`
	Content   *string   `json:"content" db:"content"`
	Image     *string   `json:"image" db:"image"`
	Author    *string   `json:"author" db:"author"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Admin accounts live in their own table, separate from users, and are
// never referenced by comments.
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// User is a regular account holder. PasswordHash is nil for accounts
// provisioned on first OAuth sign-in.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Comment carries the author's username joined in from the users table.
// Username is nil when the user row has vanished.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Username  *string   `json:"username" db:"username"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
