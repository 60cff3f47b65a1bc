/*
Package resp provides helper functions for sending HTTP JSON responses.

Success payloads are written as-is so each endpoint controls its own wire
shape; errors are reduced to a flat {"message": ...} body carrying the
status code of the underlying CustomError.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"whispeer/internal/pkg/errs"
	"whispeer/internal/pkg/logx"
)

// messageBody is the body shape shared by error responses and the
// acknowledge-only mutation endpoints.
type messageBody struct {
	Message string `json:"message"`
}

// RespondJSON sets the Content-Type and writes the JSON payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(
			err,
			"Error encoding JSON response",
			"http_status", httpStatus,
		)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondMessage sends an HTTP 200 response whose body is only a message field.
func RespondMessage(w http.ResponseWriter, r *http.Request, message string) {
	RespondJSON(w, r, http.StatusOK, messageBody{Message: message})
}

// RespondError sends the error's status code with a {"message": ...} body.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, messageBody{Message: customErr.Message})
}
