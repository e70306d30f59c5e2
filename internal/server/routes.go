package server

import (
	"encoding/json"
	"net/http"

	"healthassist/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes initializes all server routes
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.healthHandler)
	r.Get("/api/v1/status", s.statusHandler)
	r.Post("/api/v1/sendOtp", s.handleSendOTP)
	r.Post("/api/v1/signUp", s.handleSignUp)
	r.Post("/api/v1/signIn", s.handleSignIn)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(s.sessions))
		r.Get("/api/v1/me", s.handleMe)
		r.Post("/api/v1/signOut", s.handleSignOut)
		r.Post("/api/v1/predict", s.handlePredict)
		r.Post("/api/v1/report", s.handleReport)
	})

	return r
}

// Health check endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Server status endpoint
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"message": "Server working correctly"})
}
