package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"complaintdesk/backend/internal/api/handler"
	"complaintdesk/backend/internal/auth"
	"complaintdesk/backend/internal/classifier"
	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/livefeed"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/notify"
	"complaintdesk/backend/internal/storage"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "user"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "complaintdeskdb"),
		envOr("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis (session records)
	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	err = db.AutoMigrate(
		&models.Complaint{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

// setupClassifier loads the label decoder and wires the model server adapter.
// Initialization failures degrade to the sentinel classifier: intake must
// keep working even when classification is down.
func setupClassifier() classifier.Classifier {
	endpoint := envOr("MODEL_SERVER_URL", "http://localhost:9696")
	labelsPath := envOr("MODEL_LABELS_PATH", "saved_model/labels.json")

	model, err := classifier.NewModelService(endpoint, labelsPath)
	if err != nil {
		log.Printf("WARN: Classifier unavailable, running degraded: %v", err)
		return classifier.Unavailable{}
	}

	log.Printf("Classifier ready (model server %s)", endpoint)
	return model
}

func main() {
	log.Println("Starting ComplaintDesk Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set!")
	}

	// 1. Dependencies
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)
	cls := setupClassifier()

	// 2. Live feed hub
	hub := livefeed.NewManagerService()
	go hub.Run()

	// 3. Services
	complaintSvc := complaint.NewService(s, cls)
	complaintSvc.SetFeed(hub)

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_STAFF_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_STAFF_CHAT_ID: %v", err)
		}
		notifier, err := notify.NewTelegramNotifier(token, chatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		complaintSvc.SetNotifier(notifier)
	}

	authSvc := auth.NewService(s, sessionSecret)

	// 4. Gin and routing
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*")
	h := handler.NewHandler(complaintSvc, authSvc, cls, hub)

	// Public routes
	r.GET("/ping", h.Ping)
	r.GET("/complaint", h.ShowComplaintForm)
	r.POST("/complaint", h.SubmitComplaint)
	r.POST("/predict", h.Predict)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// Staff routes
	staff := r.Group("/", h.RequireSession())
	staff.GET("/records", h.ListRecords)
	staff.POST("/update_status/:id", h.UpdateStatus)
	r.GET("/ws/records", h.ServeFeed) // does its own session check before upgrade

	server := &http.Server{
		Addr:           ":" + envOr("SERVER_PORT", "8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
