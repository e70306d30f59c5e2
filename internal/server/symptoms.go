package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"healthassist/internal/constants"
	"healthassist/internal/middleware"
	"healthassist/internal/models"
	"healthassist/internal/predictor"
	"healthassist/internal/report"
)

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	symptoms, ok := s.decodeSymptoms(w, r)
	if !ok {
		return
	}

	json.NewEncoder(w).Encode(predictor.Predict(symptoms))
}

// handleReport renders the caller's prediction as a downloadable PDF.
// Filename and content type are part of the API contract.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	symptoms, ok := s.decodeSymptoms(w, r)
	if !ok {
		return
	}

	username, _ := r.Context().Value(middleware.UsernameKey).(string)
	profile, err := s.accounts.Get(username)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	result := predictor.Predict(symptoms)
	pdf, err := report.Render(profile, result)
	if err != nil {
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", constants.ReportContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", constants.ReportFileName))
	w.Write(pdf)
}

func (s *Server) decodeSymptoms(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	var req models.SymptomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return nil, false
	}

	for _, tag := range req.Symptoms {
		if !predictor.Valid(tag) {
			http.Error(w, fmt.Sprintf("Unknown symptom: %s", tag), http.StatusBadRequest)
			return nil, false
		}
	}

	return req.Symptoms, true
}
