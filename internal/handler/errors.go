package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"

	// Auth error messages
	ErrMsgInvalidCredentials = "Invalid credentials"

	// User management error messages
	ErrMsgUsernameTaken = "Username already exists"
	ErrMsgEmailTaken    = "Email already exists"
	ErrMsgUserNotFound  = "User not found"

	// Transcript error messages
	ErrMsgVideoNotFound = "Video not found"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
)

// Success messages for API responses
const (
	MsgRequestSubmitted = "Request submitted successfully"
)

// Status values used in transcript responses
const (
	StatusError = "error"
)
