package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/diacheck/internal/domain"
)

type apiPredictResponse struct {
	Outcome int               `json:"outcome"`
	Label   string            `json:"label"`
	Values  map[string]string `json:"values"`
}

type apiErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// handleAPIPredict accepts a JSON object keyed by field key. Values may be
// strings or numbers; both go through the same validation as the form.
func (s *Server) handleAPIPredict(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		if isTooLarge(err) {
			writeJSON(w, http.StatusRequestEntityTooLarge, apiErrorResponse{Error: "Request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, apiErrorResponse{Error: "Invalid JSON body"})
		return
	}
	raw := rawFromJSON(body)

	res, err := s.predictor.Predict(r.Context(), raw, "api")
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, apiErrorResponse{
				Error:  domain.ValidationMessage,
				Fields: verr.Fields,
			})
			return
		}
		s.logger.Error("prediction failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, apiErrorResponse{Error: "Prediction failed"})
		return
	}

	values := make(map[string]string, len(res.Features.Details))
	for i, e := range res.Features.Details {
		values[domain.FeatureOrder[i].Key] = e.Value
	}

	writeJSON(w, http.StatusOK, apiPredictResponse{
		Outcome: int(res.Outcome),
		Label:   res.Label(),
		Values:  values,
	})
}

func rawFromJSON(body map[string]any) domain.RawInput {
	raw := make(domain.RawInput, len(body))
	for k, v := range body {
		switch v := v.(type) {
		case string:
			raw[k] = v
		case json.Number:
			raw[k] = v.String()
		}
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
