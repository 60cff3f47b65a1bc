/*
Package req provides helper functions for HTTP request parsing and data binding.

It encapsulates JSON body decoding with strictness guarantees (content type
check, unknown field rejection, trailing content rejection) so handlers only
see well-formed input structs.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"whispeer/internal/pkg/errs"
)

// BindJSON binds the JSON request body to the destination struct dst.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
