package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"healthassist/internal/constants"
	"healthassist/internal/mailer"
	"healthassist/internal/store"

	_ "github.com/joho/godotenv/autoload"

	"github.com/joho/godotenv"
)

type Server struct {
	port     int
	accounts store.AccountStore
	sessions store.SessionStore
	otps     store.OTPStore
	mailer   mailer.Mailer
}

func NewServer() *http.Server {
	// Explicitly load the .env file to ensure environment variables are available
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file. Ensure .env is present in the root directory.")
	}

	port, err := strconv.Atoi(os.Getenv(constants.Port))
	if err != nil {
		port = 8080 // Default to 8080 if PORT is not set or invalid
	}

	// Initialize server instance
	NewServer := &Server{
		port:     port,
		accounts: store.NewAccountStore(),
		sessions: store.NewSessionStore(),
		otps:     store.NewOTPStore(constants.OTPExpiry),
		mailer:   mailer.New(),
	}

	// Configure and return the HTTP server instance
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
