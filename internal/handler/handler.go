package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"recipeblog/internal/config"
	"recipeblog/internal/database"
	"recipeblog/internal/models"
	"recipeblog/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	PostService    service.PostService
	CommentService service.CommentService
	ImageService   service.ImageService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		UserService:    services.User,
		PostService:    services.Post,
		CommentService: services.Comment,
		ImageService:   services.Image,
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}

// requireSession answers 401 and returns false when the request carries no
// authenticated session.
func requireSession(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	session, ok := models.SessionFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return session, true
}

// Health reports whether the database connection is alive.
func Health(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			WriteError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}
