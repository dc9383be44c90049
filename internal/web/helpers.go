package web

import (
	"errors"
	"net/http"

	"github.com/emiliopalmerini/diacheck/internal/domain"
	"github.com/emiliopalmerini/diacheck/internal/web/templates"
)

var fieldIcons = map[string]string{
	domain.KeyPregnancies:      "🤰",
	domain.KeyGlucose:          "🍬",
	domain.KeyBloodPressure:    "💓",
	domain.KeySkinThickness:    "🧬",
	domain.KeyInsulin:          "💉",
	domain.KeyBMI:              "⚖️",
	domain.KeyDiabetesPedigree: "🧪",
	domain.KeyAge:              "🎂",
}

var fieldPlaceholders = map[string]string{
	domain.KeyPregnancies:      "e.g. 2",
	domain.KeyGlucose:          "mg/dL, e.g. 120",
	domain.KeyBloodPressure:    "mm Hg, e.g. 70",
	domain.KeySkinThickness:    "mm, e.g. 20",
	domain.KeyInsulin:          "mu U/ml, e.g. 80",
	domain.KeyBMI:              "kg/m², e.g. 25.0",
	domain.KeyDiabetesPedigree: "e.g. 0.5",
	domain.KeyAge:              "years, e.g. 33",
}

// rawFromForm collects the eight fields from a parsed form. Missing fields
// become empty strings so validation rejects them.
func rawFromForm(r *http.Request) domain.RawInput {
	raw := make(domain.RawInput, domain.FeatureCount)
	for _, f := range domain.FeatureOrder {
		raw[f.Key] = r.PostFormValue(f.Key)
	}
	return raw
}

// formFields builds the form inputs in feature order, echoing raw values back.
func formFields(raw domain.RawInput) []templates.FormField {
	fields := make([]templates.FormField, 0, domain.FeatureCount)
	for _, f := range domain.FeatureOrder {
		fields = append(fields, templates.FormField{
			Key:         f.Key,
			Label:       f.Label,
			Icon:        fieldIcons[f.Key],
			Placeholder: fieldPlaceholders[f.Key],
			Value:       raw[f.Key],
		})
	}
	return fields
}

// parseForm parses a form body and writes the error response when it fails.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	err := r.ParseForm()
	switch {
	case err == nil:
		return true
	case isTooLarge(err):
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
	default:
		http.Error(w, "Invalid form data", http.StatusBadRequest)
	}
	return false
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
