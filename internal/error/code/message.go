package code

// Error code to client-facing message mapping. The wording matches the
// public API contract and is deliberately generic for auth failures.
var codeMessageMap = map[int]string{
	// Generic error codes
	ErrSuccess:         "Success",
	ErrUnknown:         "Something broke!",
	ErrBind:            "Invalid request parameters",
	ErrValidation:      "Validation failed",
	ErrTokenInvalid:    "Please authenticate.",
	ErrTooManyRequests: "Too many requests, please try again later",

	// Registration error codes
	ErrRegistrationNotFound:     "User not found",
	ErrRegistrationAlreadyExist: "User with this email or national registration number already exists",
	ErrRegistrationFailed:       "Registration failed",
	ErrInvalidStatus:            "Invalid status value",
	ErrStatusUpdateFailed:       "Failed to update status",
	ErrPaymentFileMissing:       "Payment confirmation image is required",
	ErrPaymentFileInvalid:       "Invalid file type. Only JPEG, PNG and GIF are allowed.",

	// Admin error codes
	ErrAdminNotFound:      "Admin not found",
	ErrAdminAlreadyExist:  "Admin with this username or email already exists",
	ErrInvalidCredentials: "Invalid credentials",
	ErrLoginFailed:        "Login failed",

	// Database error codes
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Registration error codes
	ErrRegistrationNotFound:     StatusNotFound,
	ErrRegistrationAlreadyExist: StatusBadRequest,
	ErrRegistrationFailed:       StatusInternalServerError,
	ErrInvalidStatus:            StatusBadRequest,
	ErrStatusUpdateFailed:       StatusInternalServerError,
	ErrPaymentFileMissing:       StatusBadRequest,
	ErrPaymentFileInvalid:       StatusBadRequest,

	// Admin error codes
	ErrAdminNotFound:      StatusNotFound,
	ErrAdminAlreadyExist:  StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrLoginFailed:        StatusInternalServerError,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
