/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004
)

// 2xxx: Message Business Logic Errors
const (
	// ErrMessageIndexInvalid indicates that the addressed message position is outside the current list bounds.
	ErrMessageIndexInvalid = 2001

	// ErrMessageEmpty indicates that a message or reply was submitted without text.
	ErrMessageEmpty = 2002
)

// 3xxx: User and Credential Errors
const (
	// ErrWrongPassword indicates that the submitted password does not match the stored one.
	ErrWrongPassword = 3001

	// ErrUserNotFound indicates that the addressed username does not exist.
	ErrUserNotFound = 3002
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
