package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/math-arcade/internal/errors"
)

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.FromContext(r.Context())

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		logger.Error("server error", "error", appErr)
	} else {
		logger.Warn("client error", "error", appErr)
	}

	var body ErrorBody
	body.Error.Code = appErr.Code
	body.Error.Message = appErr.Message
	writeJSON(w, appErr.Status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
