/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError corresponding to every application error code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},

	// 2xxx: Message Business Logic Errors
	ErrMessageIndexInvalid: {Code: ErrMessageIndexInvalid, Message: "Message not found at that position.", Status: http.StatusBadRequest},
	ErrMessageEmpty:        {Code: ErrMessageEmpty, Message: "Message text is required.", Status: http.StatusBadRequest},

	// 3xxx: User and Credential Errors
	ErrWrongPassword: {Code: ErrWrongPassword, Message: "Incorrect password.", Status: http.StatusUnauthorized},
	ErrUserNotFound:  {Code: ErrUserNotFound, Message: "User not found.", Status: http.StatusNotFound},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
