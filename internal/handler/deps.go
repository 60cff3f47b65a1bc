package handler

import (
	"strconv"

	"whispeer/internal/app/store"
	"whispeer/internal/configs"
	"whispeer/internal/pkg/validate"
)

// AppDeps carries the shared dependencies injected into every handler.
type AppDeps struct {
	Store  store.UserStore
	Config *configs.AppConfig
	Val    *validate.Validator
}

// parseIndex converts a positional index path segment to an int.
// Anything non-numeric is treated the same as an out-of-range index.
func parseIndex(raw string) (int, bool) {
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return idx, true
}

// fieldNames extracts the failing field names from validation errors for logging.
func fieldNames(fieldErrs []validate.FieldError) []string {
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		names = append(names, fe.Field)
	}
	return names
}
