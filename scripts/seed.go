//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
	"github.com/Ifeanyi-design/irapada-ogo-youths/pkg/config"
	"github.com/Ifeanyi-design/irapada-ogo-youths/pkg/util"
)

// Seeds the initial admin account and its linked PreUser.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	identityService := identity.NewService(db)

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	if email == "" {
		email = "admin@example.com"
	}
	if password == "" {
		password = "admin123!"
	}
	if name == "" {
		name = "Admin"
	}

	ctx := context.Background()

	user, err := identityService.Register(ctx, identity.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	if err := identityService.SetAdmin(ctx, user.ID, true); err != nil {
		log.Fatalf("failed to grant admin role: %v", err)
	}

	preUser, err := identityService.CreatePreUser(ctx, identity.CreatePreUserInput{
		Name:  name,
		Email: email,
	})
	if err != nil {
		log.Fatalf("failed to create pre-user: %v", err)
	}

	if err := identityService.Merge(ctx, preUser.ID, user.ID); err != nil {
		log.Fatalf("failed to link pre-user: %v", err)
	}

	fmt.Printf("Seeded admin %s (user %d, pre-user %d)\n", email, user.ID, preUser.ID)
}
