package handlers

const (
	ErrInvalidRequestBody  = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrGuardianOnly        = "Guardian access required"
	ErrNotTutorTime        = "It's not yet tutor time"
	ErrInternalServerError = "Internal server error"
	ErrTooManyRequests     = "Too many requests"
	ErrNotFound            = "Not found"
)
