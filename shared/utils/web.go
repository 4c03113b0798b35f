package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/mateoroldos/personal-blog/shared/errors"
	"github.com/mateoroldos/personal-blog/shared/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *apperrors.ErrorWithStatusCode
	if errors.As(err, &e) {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error("unhandled error", "error", err)
	// default error is 500 and never echoes the cause
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
