package models

// Error codes shared between services and handlers.
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInvalidSignature    = "INVALID_SIGNATURE"
	ErrCodeGateway             = "GATEWAY_ERROR"
	ErrCodeInvoiceNotAvailable = "INVOICE_NOT_AVAILABLE"
	ErrCodeAuthorization       = "AUTHORIZATION_ERROR"
)

// AppError is a domain error carrying a stable code and a human-readable
// message. Handlers map codes to HTTP status; services return these directly
// or wrap infrastructure failures around them.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// Is makes errors.Is match any AppError with the same code, so wrapped
// instances still compare against the sentinels below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// NewAppError creates a new domain error.
func NewAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Domain errors surfaced by the order subsystem.
var (
	ErrNoOrderItems        = NewAppError(ErrCodeValidation, "No order items")
	ErrOrderNotFound       = NewAppError(ErrCodeNotFound, "Order not found")
	ErrUserNotFound        = NewAppError(ErrCodeNotFound, "User not found")
	ErrInvalidSignature    = NewAppError(ErrCodeInvalidSignature, "Invalid signature")
	ErrGateway             = NewAppError(ErrCodeGateway, "Payment gateway request failed")
	ErrInvoiceNotAvailable = NewAppError(ErrCodeInvoiceNotAvailable, "Invoice is only available for paid orders")
	ErrNotAuthorized       = NewAppError(ErrCodeAuthorization, "Not authorized")
)
