package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"recipeblog/internal/config"
	"recipeblog/internal/database"
	"recipeblog/internal/repository"
)

// One-time admin provisioning. Admin accounts are never created through the
// HTTP surface.
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("usage: setupadmin -username <name> -password <password>")
	}

	cfg := config.LoadConfig()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.CloseDB()

	adminRepo := repository.NewAdminRepository(db.DB)

	admin, err := adminRepo.Create(context.Background(), *username, *password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Fatalf("admin %q already exists", *username)
		}
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("created admin %q (id %d)", admin.Username, admin.ID)
}
