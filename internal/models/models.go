package models

import "strings"

// Gender is a closed enumeration.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// UserProfile is the stored account record. Age is a snapshot computed
// once at registration time, not recomputed afterwards.
type UserProfile struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DateOfBirth  string `json:"dob"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// PredictionResult is produced fresh per prediction request and never
// persisted.
type PredictionResult struct {
	Condition string `json:"condition"`
	Severity  string `json:"severity"`
	Doctor    string `json:"doctor"`
	Medicine  string `json:"medicine"`
	Advice    string `json:"advice"`
}

// NormalizeGender maps a case-insensitive value onto the gender
// enumeration. ok is false for anything outside it.
func NormalizeGender(value string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	case "other":
		return GenderOther, true
	}
	return "", false
}
