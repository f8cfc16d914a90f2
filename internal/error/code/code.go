package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Registration error codes (101xxx).
const (
	// ErrRegistrationNotFound - 404: applicant not found.
	ErrRegistrationNotFound int = iota + 101000
	// ErrRegistrationAlreadyExist - 400: duplicate email or national registration number.
	ErrRegistrationAlreadyExist
	// ErrRegistrationFailed - 500: registration could not be stored.
	ErrRegistrationFailed
	// ErrInvalidStatus - 400: status value outside the known set.
	ErrInvalidStatus
	// ErrStatusUpdateFailed - 500: status change could not be stored.
	ErrStatusUpdateFailed
	// ErrPaymentFileMissing - 400: payment confirmation image absent.
	ErrPaymentFileMissing
	// ErrPaymentFileInvalid - 400: payment confirmation image wrong type or too large.
	ErrPaymentFileInvalid
)

// Admin error codes (102xxx).
const (
	// ErrAdminNotFound - 404: admin not found.
	ErrAdminNotFound int = iota + 102000
	// ErrAdminAlreadyExist - 400: duplicate admin username or email.
	ErrAdminAlreadyExist
	// ErrInvalidCredentials - 401: wrong username or password.
	ErrInvalidCredentials
	// ErrLoginFailed - 500: login could not be processed.
	ErrLoginFailed
)

// Database error codes (103xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 103000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
