package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"healthassist/internal/middleware"
	"healthassist/internal/models"
	"healthassist/internal/store"
	"healthassist/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const dobLayout = "2006-01-02"

// handleSendOTP issues a registration code. Demo mode: the code is
// surfaced in the response; email delivery only happens when SMTP is
// configured, and its failure does not block registration.
func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req models.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	attempt := s.otps.Issue(utils.GenerateOTP())

	if s.mailer != nil && req.Email != "" {
		if err := s.mailer.SendOTP(req.Email, attempt.Code); err != nil {
			log.Printf("failed to send OTP email to %s: %v", req.Email, err)
		}
	}

	json.NewEncoder(w).Encode(models.SendOTPResponse{
		AttemptID: attempt.AttemptID,
		DemoOTP:   attempt.Code,
		ExpiresAt: attempt.ExpiresAt,
	})
}

// Sign-up logic. Registration is OTP-gated: a failed code comparison
// leaves the account store untouched. No auto-login on success.
func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	gender, ok := models.NormalizeGender(req.Gender)
	if !ok {
		http.Error(w, "Invalid gender", http.StatusBadRequest)
		return
	}

	dob, err := time.Parse(dobLayout, req.DateOfBirth)
	if err != nil {
		http.Error(w, "Invalid date of birth, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if err := s.otps.Consume(req.AttemptID, req.OTP); err != nil {
		http.Error(w, "Invalid OTP", http.StatusUnauthorized)
		return
	}

	// Hash password before storing
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	profile := models.UserProfile{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		Age:          utils.Age(dob, time.Now()),
		Gender:       gender,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
	}

	if err := s.accounts.Create(profile); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			http.Error(w, "User already exists", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"})
}

// Sign-in logic
func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	profile, err := s.accounts.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateTokens(profile.Username)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	s.sessions.Set(profile.Username)

	json.NewEncoder(w).Encode(models.AuthResponse{
		Token:     token,
		FirstName: profile.FirstName,
	})
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value(middleware.UsernameKey).(string)
	s.sessions.Remove(username)

	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value(middleware.UsernameKey).(string)

	profile, err := s.accounts.Get(username)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(profile)
}
