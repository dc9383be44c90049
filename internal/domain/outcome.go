package domain

// Outcome is the binary class returned by the classifier.
type Outcome int

const (
	OutcomeNegative Outcome = 0
	OutcomePositive Outcome = 1
)

const (
	LabelNegative = "not diabetic"
	LabelPositive = "diabetic"
)

// OutcomeFromClass maps a raw classifier output to an Outcome.
// Zero is negative, every other value is positive.
func OutcomeFromClass(class int) Outcome {
	if class == 0 {
		return OutcomeNegative
	}
	return OutcomePositive
}

func (o Outcome) IsPositive() bool {
	return o != OutcomeNegative
}

// Label is the display string for the outcome.
func (o Outcome) Label() string {
	if o.IsPositive() {
		return LabelPositive
	}
	return LabelNegative
}

func (o Outcome) String() string {
	return o.Label()
}
