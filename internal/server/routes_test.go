package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthassist/internal/constants"
	"healthassist/internal/models"
	"healthassist/internal/store"
	"healthassist/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	t.Setenv(constants.JwtSecret, "test-secret")

	s := &Server{
		accounts: store.NewAccountStore(),
		sessions: store.NewSessionStore(),
		otps:     store.NewOTPStore(constants.OTPExpiry),
	}
	return s, s.RegisterRoutes()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func sendOTP(t *testing.T, handler http.Handler) models.SendOTPResponse {
	t.Helper()

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/sendOtp", models.SendOTPRequest{Email: "alice@example.com"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SendOTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AttemptID)
	require.Len(t, resp.DemoOTP, 4)
	return resp
}

func signUpAlice(t *testing.T, handler http.Handler, attemptID, otp string) *httptest.ResponseRecorder {
	t.Helper()

	return doJSON(t, handler, http.MethodPost, "/api/v1/signUp", models.SignUpRequest{
		FirstName:   "Alice",
		LastName:    "Smith",
		DateOfBirth: "1990-01-01",
		Gender:      "female",
		Mobile:      "5551234567",
		Email:       "alice@example.com",
		Username:    "alice",
		Password:    "secret",
		AttemptID:   attemptID,
		OTP:         otp,
	}, "")
}

func signIn(t *testing.T, handler http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	return doJSON(t, handler, http.MethodPost, "/api/v1/signIn", models.AuthRequest{
		Username: username,
		Password: password,
	}, "")
}

func TestHealthAndStatus(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/status", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignUpRejectsWrongOTP(t *testing.T) {
	_, handler := newTestServer(t)

	otp := sendOTP(t, handler)
	wrong := "0000"
	if otp.DemoOTP == wrong {
		wrong = "0001"
	}

	rec := signUpAlice(t, handler, otp.AttemptID, wrong)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The store must be unchanged: signing in with those credentials fails.
	rec = signIn(t, handler, "alice", "secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignUpRejectsUnknownAttempt(t *testing.T) {
	_, handler := newTestServer(t)

	rec := signUpAlice(t, handler, "no-such-attempt", "1234")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignUpValidation(t *testing.T) {
	_, handler := newTestServer(t)
	otp := sendOTP(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/signUp", models.SignUpRequest{
		Username: "", Password: "secret", AttemptID: otp.AttemptID, OTP: otp.DemoOTP,
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/signUp", models.SignUpRequest{
		Username: "alice", Password: "secret", Gender: "unknown",
		DateOfBirth: "1990-01-01", AttemptID: otp.AttemptID, OTP: otp.DemoOTP,
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/signUp", models.SignUpRequest{
		Username: "alice", Password: "secret", Gender: "female",
		DateOfBirth: "01/01/1990", AttemptID: otp.AttemptID, OTP: otp.DemoOTP,
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Validation failures must not consume the OTP attempt.
	rec = signUpAlice(t, handler, otp.AttemptID, otp.DemoOTP)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSignUpRejectsDuplicateUsername(t *testing.T) {
	_, handler := newTestServer(t)

	otp := sendOTP(t, handler)
	rec := signUpAlice(t, handler, otp.AttemptID, otp.DemoOTP)
	require.Equal(t, http.StatusCreated, rec.Code)

	otp = sendOTP(t, handler)
	rec = signUpAlice(t, handler, otp.AttemptID, otp.DemoOTP)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterLoginPredictReport(t *testing.T) {
	s, handler := newTestServer(t)

	// Register with the correct OTP. No auto-login.
	otp := sendOTP(t, handler)
	rec := signUpAlice(t, handler, otp.AttemptID, otp.DemoOTP)
	require.Equal(t, http.StatusCreated, rec.Code)

	profile, err := s.accounts.Get("alice")
	require.NoError(t, err)
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, utils.Age(dob, time.Now()), profile.Age)
	assert.False(t, s.sessions.Active("alice"))

	// Wrong password stays unauthenticated.
	rec = signIn(t, handler, "alice", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, s.sessions.Active("alice"))

	rec = signIn(t, handler, "alice", "secret")
	require.Equal(t, http.StatusOK, rec.Code)

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, "Alice", auth.FirstName)
	assert.True(t, s.sessions.Active("alice"))

	// Profile endpoint hides the credential hash.
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/me", nil, auth.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/predict", models.SymptomRequest{
		Symptoms: []string{"fever", "cough"},
	}, auth.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.PredictionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Viral Respiratory Infection", result.Condition)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/report", models.SymptomRequest{
		Symptoms: []string{"fever", "cough"},
	}, auth.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constants.ReportContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf("attachment; filename=%s", constants.ReportFileName), rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestPredictRejectsUnknownSymptom(t *testing.T) {
	s, handler := newTestServer(t)
	token := registerAndSignIn(t, s, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/predict", models.SymptomRequest{
		Symptoms: []string{"fever", "sneezing"},
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	_, handler := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/me"},
		{http.MethodPost, "/api/v1/signOut"},
		{http.MethodPost, "/api/v1/predict"},
		{http.MethodPost, "/api/v1/report"},
	} {
		rec := doJSON(t, handler, route.method, route.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
	}
}

func TestSignOutInvalidatesSession(t *testing.T) {
	s, handler := newTestServer(t)
	token := registerAndSignIn(t, s, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/signOut", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, s.sessions.Active("alice"))

	// The token is still within its expiry window but the session is gone.
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/signOut", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func registerAndSignIn(t *testing.T, s *Server, handler http.Handler) string {
	t.Helper()

	otp := sendOTP(t, handler)
	rec := signUpAlice(t, handler, otp.AttemptID, otp.DemoOTP)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = signIn(t, handler, "alice", "secret")
	require.Equal(t, http.StatusOK, rec.Code)

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))
	require.True(t, s.sessions.Active("alice"))
	return auth.Token
}
