package models

import "context"

// Session is the identity carried by a signed token: exactly one of the two
// roles, plus the id of the row in the matching identity table.
type Session struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

type ctxKey int

const sessionKey ctxKey = 0

// NewContext returns a context carrying the authenticated session.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session set by the auth middleware, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}
