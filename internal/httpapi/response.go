package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/taskhive/accounts/internal/auth"
	"github.com/taskhive/accounts/pkg/logger"
	"github.com/taskhive/accounts/pkg/validator"
)

// envelope is the uniform response body. Every endpoint, success or failure,
// answers with this shape so clients parse one structure.
type envelope struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respond(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{
		StatusCode: status,
		Message:    message,
		Success:    true,
		Data:       data,
	})
}

// respondError is the single error boundary: domain errors carry their own
// status and message, validation errors become a 422 with per-field details,
// and anything else collapses to a logged 500 with a generic message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if verrs := validator.Extract(err); verrs != nil {
		writeJSON(w, http.StatusUnprocessableEntity, envelope{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "Validation failed",
			Success:    false,
			Errors:     verrs.ByField(),
		})
		return
	}

	if domainErr := auth.AsError(err); domainErr != nil {
		if domainErr.Status >= http.StatusInternalServerError {
			h.logger.Error("request failed",
				logger.Error(err),
				logger.Component("httpapi"),
			)
		}
		writeJSON(w, domainErr.Status, envelope{
			StatusCode: domainErr.Status,
			Message:    domainErr.Message,
			Success:    false,
		})
		return
	}

	h.logger.Error("unhandled error",
		logger.Error(err),
		logger.Component("httpapi"),
	)
	writeJSON(w, http.StatusInternalServerError, envelope{
		StatusCode: http.StatusInternalServerError,
		Message:    "Something went wrong",
		Success:    false,
	})
}
