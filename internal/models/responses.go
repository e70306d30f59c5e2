package models

import "time"

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token     string `json:"token"`
	FirstName string `json:"first_name"`
}

type SendOTPRequest struct {
	Email string `json:"email"`
}

// SendOTPResponse carries the demo code back to the caller. Out-of-band
// delivery is deliberately not required for registration to proceed.
type SendOTPResponse struct {
	AttemptID string    `json:"attempt_id"`
	DemoOTP   string    `json:"demo_otp"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"dob"`
	Gender      string `json:"gender"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	AttemptID   string `json:"attempt_id"`
	OTP         string `json:"otp"`
}

type SymptomRequest struct {
	Symptoms []string `json:"symptoms"`
}
