package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/diacheck/internal/domain"
	"github.com/emiliopalmerini/diacheck/internal/web/templates"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := templates.PredictPageData{
		Fields: formFields(nil),
	}
	s.render(w, r, http.StatusOK, data)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	raw := rawFromForm(r)
	data := templates.PredictPageData{
		Fields: formFields(raw),
	}

	res, err := s.predictor.Predict(r.Context(), raw, "web")
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			data.Warning = domain.ValidationMessage
			s.render(w, r, http.StatusUnprocessableEntity, data)
			return
		}
		s.logger.Error("prediction failed", zap.Error(err))
		http.Error(w, "Prediction failed", http.StatusInternalServerError)
		return
	}

	data.Verdict = &templates.Verdict{
		Label:    res.Label(),
		Positive: res.Outcome.IsPositive(),
	}
	s.render(w, r, http.StatusOK, data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data templates.PredictPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.PredictPage(data).Render(r.Context(), w); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
	}
}
