package domain

// Field is one of the eight measurements collected by the form.
type Field struct {
	Key   string
	Label string
}

const (
	KeyPregnancies      = "pregnancies"
	KeyGlucose          = "glucose"
	KeyBloodPressure    = "blood_pressure"
	KeySkinThickness    = "skin_thickness"
	KeyInsulin          = "insulin"
	KeyBMI              = "bmi"
	KeyDiabetesPedigree = "diabetes_pedigree"
	KeyAge              = "age"
)

// FeatureCount is the length of every feature vector.
const FeatureCount = 8

// FeatureOrder is the column order the trained model was fitted on
// (Pima Indians Diabetes layout). Vectors are always built in this order;
// reordering it silently produces wrong predictions.
var FeatureOrder = [FeatureCount]Field{
	{Key: KeyPregnancies, Label: "Number of Pregnancies"},
	{Key: KeyGlucose, Label: "Glucose Level"},
	{Key: KeyBloodPressure, Label: "Blood Pressure"},
	{Key: KeySkinThickness, Label: "Skin Thickness"},
	{Key: KeyInsulin, Label: "Insulin Level"},
	{Key: KeyBMI, Label: "BMI (Body Mass Index)"},
	{Key: KeyDiabetesPedigree, Label: "Diabetes Pedigree Function"},
	{Key: KeyAge, Label: "Age"},
}

// FeatureKeys returns the keys of FeatureOrder.
func FeatureKeys() []string {
	keys := make([]string, FeatureCount)
	for i, f := range FeatureOrder {
		keys[i] = f.Key
	}
	return keys
}

// LookupField returns the field registered under key.
func LookupField(key string) (Field, bool) {
	for _, f := range FeatureOrder {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Vector is a validated feature vector in FeatureOrder.
type Vector [FeatureCount]float64

// Slice returns a copy of v as a slice.
func (v Vector) Slice() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, v[:])
	return out
}

// RawInput holds the untouched form values keyed by field key.
type RawInput map[string]string

// Entry is a label and the trimmed value the user typed for it.
type Entry struct {
	Label string
	Value string
}

// Details keeps the trimmed input values in FeatureOrder for reporting.
type Details []Entry

// Value returns the value recorded for label.
func (d Details) Value(label string) (string, bool) {
	for _, e := range d {
		if e.Label == label {
			return e.Value, true
		}
	}
	return "", false
}

// Features is the result of a successful validation.
type Features struct {
	Vector  Vector
	Details Details
}
