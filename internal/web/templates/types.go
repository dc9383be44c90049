package templates

// FormField is one text input of the prediction form.
type FormField struct {
	Key         string
	Label       string
	Icon        string
	Placeholder string
	Value       string
}

// Verdict is the rendered outcome of a successful prediction.
type Verdict struct {
	Label    string
	Positive bool
}

type PredictPageData struct {
	Fields  []FormField
	Verdict *Verdict
	Warning string
}

