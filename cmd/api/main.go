package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"recipeblog/cmd/app"
	"recipeblog/internal/config"
	handlers "recipeblog/internal/handler"
	"recipeblog/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	r := mux.NewRouter()

	r.HandleFunc("/health", handlers.Health(db)).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/oauth/google", handler.GoogleOAuth).Methods(http.MethodPost)

	api.HandleFunc("/users", handler.RegisterUser).Methods(http.MethodPost)

	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut)

	api.HandleFunc("/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments", handler.UpdateComment).Methods(http.MethodPut)
	api.HandleFunc("/comments", handler.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/images", handler.UploadImage).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		r,
		middleware.Authenticate(services.Auth),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)
	log.Printf("Database: %s", cfg.DB.Name)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
