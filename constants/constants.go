package constants

// Error messages shared between services and controllers.
const (
	ErrUserExists        = "User already exists"
	ErrUserNotFound      = "User not found"
	ErrIncorrectPassword = "Incorrect password"
	ErrCartItemNotFound  = "Item not found in cart"
	ErrUnexpected        = "Unexpected error"
	ErrInvalidID         = "Invalid id"
	ErrInvalidInput      = "Invalid input"
)
