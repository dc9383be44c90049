// Package report renders a prediction into a downloadable document.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/diacheck/internal/domain"
)

const Title = "Diabetes Test Report"

// ErrUnknownFormat is returned by ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Format is the artifact type of a report.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "text"
)

// ParseFormat accepts pdf, text and txt in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/plain; charset=utf-8"
}

func (f Format) Extension() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "txt"
}

// FileName is the suggested download name.
func (f Format) FileName() string {
	return "diabetes_report." + f.Extension()
}

// Report is the label to value mapping of one submission plus its result.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Details     domain.Details
	Result      string
}

// New stamps a fresh report ID and timestamp.
func New(details domain.Details, result string) Report {
	return Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Details:     details,
		Result:      result,
	}
}

func (r Report) resultLine() string {
	return "Prediction Result: " + r.Result
}

func (r Report) headerLines() []string {
	var lines []string
	if r.ID != "" {
		lines = append(lines, "Report ID: "+r.ID)
	}
	if !r.GeneratedAt.IsZero() {
		lines = append(lines, "Generated: "+r.GeneratedAt.Format(time.RFC3339))
	}
	return lines
}

func (r Report) detailLines() []string {
	lines := make([]string, len(r.Details))
	for i, e := range r.Details {
		lines[i] = e.Label + ": " + e.Value
	}
	return lines
}

// Render writes r to w in the given format.
func Render(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatPDF:
		return NewPDFRenderer().Render(w, r)
	case FormatText:
		return RenderText(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
