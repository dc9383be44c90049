package domain

import (
	"math"
	"strconv"
	"strings"
)

// ValidationMessage is the single warning shown to users when any field is bad.
const ValidationMessage = "Please fill all fields with valid numbers."

// ValidationError reports that at least one field was empty or not a number.
// Fields lists the offending keys in FeatureOrder, for logs and API clients.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

// Validate trims every field and parses it as a float. It fails the whole
// batch if any field is missing, empty or not a finite number.
func Validate(raw RawInput) (Features, error) {
	var (
		features Features
		invalid  []string
	)
	features.Details = make(Details, 0, FeatureCount)

	for i, f := range FeatureOrder {
		val := strings.TrimSpace(raw[f.Key])
		n, ok := parseFinite(val)
		if !ok {
			invalid = append(invalid, f.Key)
			continue
		}
		features.Vector[i] = n
		features.Details = append(features.Details, Entry{Label: f.Label, Value: val})
	}

	if len(invalid) > 0 {
		return Features{}, &ValidationError{Fields: invalid}
	}
	return features, nil
}

func parseFinite(s string) (float64, bool) {
	if s == "" || isHexLiteral(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// isHexLiteral reports whether s is a hexadecimal float such as 0x1p4.
// ParseFloat accepts those but they are not decimal measurements.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
