package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

// Out-of-band bootstrap tool: creates the schema and provisions staff
// accounts. At least one account must exist before the first login.
func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.Complaint{}, &models.User{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "create-user":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin create-user <username> <password>")
			os.Exit(1)
		}
		username, password := os.Args[2], os.Args[3]
		if err := createUser(storageSvc, username, password); err != nil {
			log.Fatalf("Error creating user: %v", err)
		}
		fmt.Printf("Staff user %q created.\n", username)
	case "set-password":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-password <username> <password>")
			os.Exit(1)
		}
		username, password := os.Args[2], os.Args[3]
		if err := setPassword(storageSvc, username, password); err != nil {
			log.Fatalf("Error setting password: %v", err)
		}
		fmt.Printf("Password updated for %q.\n", username)
	case "migrate":
		// AutoMigrate already ran above.
		fmt.Println("Database tables created.")
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func createUser(s storage.Storage, username, password string) error {
	existing, err := s.GetUserByUsername(username)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %q already exists", username)
	}

	user := &models.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return s.SaveUser(user)
}

func setPassword(s storage.Storage, username, password string) error {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return err
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return s.SaveUser(user)
}
