// Package apperr defines the coded errors surfaced by the customer and
// session authorities. Every failure a caller can act on carries a stable
// machine-readable code alongside its human message; callers match with
// errors.Is against the sentinels below.
package apperr

// Error is a categorized failure with a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// New creates a coded error. Prefer the package sentinels; New exists for
// tests and for collaborators that define their own codes.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Signup restrictions
var (
	ErrDuplicateContact  = New("SGR-001", "This contact number is already registered! Try other contact number.")
	ErrInvalidEmail      = New("SGR-002", "Invalid email-id format!")
	ErrInvalidContact    = New("SGR-003", "Invalid contact number!")
	ErrWeakPassword      = New("SGR-004", "Weak password!")
	ErrSignupFieldsEmpty = New("SGR-005", "Except last name all fields should be filled")
)

// Authentication failures (login)
var (
	ErrUnknownContact  = New("ATH-001", "This contact number has not been registered!")
	ErrBadCredentials  = New("ATH-002", "Invalid Credentials")
	ErrMalformedHeader = New("ATH-003", "Incorrect format of decoded customer name and password")
)

// Authorization failures (token lifecycle)
var (
	ErrNotAuthenticated = New("ATHR-001", "Customer is not Logged in.")
	ErrAlreadyLoggedOut = New("ATHR-002", "Customer is logged out. Log in again to access this endpoint.")
	ErrSessionExpired   = New("ATHR-003", "Your session is expired. Log in again to access this endpoint.")
	ErrForeignAddress   = New("ATHR-004", "You are not authorized to view/update/delete any one else's address")
)

// Profile and password update failures
var (
	ErrWeakNewPassword     = New("UCR-001", "Weak password!")
	ErrFirstNameEmpty      = New("UCR-002", "First name field should not be empty")
	ErrPasswordFieldsEmpty = New("UCR-003", "No field should be empty")
	ErrWrongOldPassword    = New("UCR-004", "Incorrect old password!")
)

// Address failures
var (
	ErrAddressFieldsEmpty = New("SAR-001", "No field can be empty")
	ErrInvalidPincode     = New("SAR-002", "Invalid pincode")
	ErrAddressNotFound    = New("ANF-003", "No address by this id")
)
