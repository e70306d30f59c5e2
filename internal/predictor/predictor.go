package predictor

import "healthassist/internal/models"

// Symptom tags the checker accepts.
const (
	SymptomFever             = "fever"
	SymptomCough             = "cough"
	SymptomFatigue           = "fatigue"
	SymptomHeadache          = "headache"
	SymptomChestPain         = "chest pain"
	SymptomShortnessOfBreath = "shortness of breath"
)

var Symptoms = []string{
	SymptomFever,
	SymptomCough,
	SymptomFatigue,
	SymptomHeadache,
	SymptomChestPain,
	SymptomShortnessOfBreath,
}

// rule pairs the symptoms that must all be present with the result
// returned when they are. Rules are evaluated in order, first match
// wins; the last rule requires nothing and always matches.
type rule struct {
	requires []string
	result   models.PredictionResult
}

var rules = []rule{
	{
		requires: []string{SymptomFever, SymptomCough},
		result: models.PredictionResult{
			Condition: "Viral Respiratory Infection",
			Severity:  "Moderate",
			Doctor:    "General Physician",
			Medicine:  "Paracetamol, Cough Syrup",
			Advice:    "Rest and drink fluids",
		},
	},
	{
		result: models.PredictionResult{
			Condition: "Common Cold",
			Severity:  "Mild",
			Doctor:    "General Physician",
			Medicine:  "Paracetamol",
			Advice:    "Rest",
		},
	},
}

// Predict maps a set of symptom tags to one of the fixed result
// records. Pure and total; duplicate or extra tags do not change the
// outcome.
func Predict(symptoms []string) models.PredictionResult {
	present := make(map[string]bool, len(symptoms))
	for _, tag := range symptoms {
		present[tag] = true
	}

	for _, r := range rules {
		matched := true
		for _, required := range r.requires {
			if !present[required] {
				matched = false
				break
			}
		}
		if matched {
			return r.result
		}
	}

	return rules[len(rules)-1].result
}

// Valid reports whether tag belongs to the symptom enumeration.
func Valid(tag string) bool {
	for _, s := range Symptoms {
		if s == tag {
			return true
		}
	}
	return false
}
