// Package handlers contains the HTTP handlers for the API surface
package handlers

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/mealhaven/api/pkg/errors"
)

var validate = validator.New()

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps an error to the structured error envelope. Non-AppError
// values are wrapped as internal errors so no raw error text leaks out.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		appErr = apperrors.Wrap(err, "request failed")
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.String("code", string(appErr.Code)),
			zap.Error(appErr),
		)
	}

	requestID := chimiddleware.GetReqID(r.Context())
	writeJSON(w, appErr.StatusCode(), apperrors.ToErrorResponse(appErr, requestID))
}

// decodeJSON decodes and validates a request body. Malformed JSON is a bad
// request; failed field validation is a validation error.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewBadRequestError("invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}
