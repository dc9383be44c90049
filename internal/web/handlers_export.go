package web

import (
	"bytes"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/diacheck/internal/domain"
	"github.com/emiliopalmerini/diacheck/internal/report"
)

// handleReport validates and classifies the submitted fields again and
// streams the report as an attachment. Nothing is kept between requests.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !parseForm(w, r) {
		return
	}

	// format comes from the query string or the clicked download button
	format, err := report.ParseFormat(r.FormValue("format"))
	if err != nil {
		http.Error(w, "Unsupported report format", http.StatusBadRequest)
		return
	}

	res, err := s.predictor.Predict(ctx, rawFromForm(r), "web")
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, domain.ValidationMessage, http.StatusUnprocessableEntity)
			return
		}
		s.logger.Error("prediction failed", zap.Error(err))
		http.Error(w, "Prediction failed", http.StatusInternalServerError)
		return
	}

	rep := report.New(res.Features.Details, res.Label())

	// Render into memory first so a failure can still produce a clean error.
	var buf bytes.Buffer
	if err := report.Render(&buf, format, rep); err != nil {
		s.logger.Error("failed to render report", zap.Error(err), zap.String("format", string(format)))
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordReport(ctx, string(format))
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+format.FileName())
	_, _ = w.Write(buf.Bytes())
}
