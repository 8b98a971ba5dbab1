package app

import (
	"log"

	"recipeblog/internal/config"
	"recipeblog/internal/database"
	"recipeblog/internal/repository"
	"recipeblog/internal/service"
	"recipeblog/internal/storage"
)

// App wires the dependency graph: database, object storage, repositories,
// services.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("failed to initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
