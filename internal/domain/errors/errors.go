package errors

import (
	"fmt"
	"net/http"

	"jewelshop/internal/errors"
)

// Kind classifies an application error independently of the transport.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindState      Kind = "state"
	KindInternal   Kind = "internal"
)

// HTTPStatus maps a kind to the status code returned by the API.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindState:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error, deriving its kind from the status code
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kindFromStatus(httpCode),
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewKindError creates an error whose status code follows its kind
func NewKindError(kind Kind, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  kind.HTTPStatus(),
		errorCode: errorCode,
		message:   message,
	}
}

func kindFromStatus(code int) Kind {
	switch code {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindInternal
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails or WithMessagef still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithMessagef replaces the user-facing message, keeping code and kind
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	cloned := *e
	cloned.message = fmt.Sprintf(format, args...)

	return &cloned
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewKindError(KindValidation, "VALIDATION_FAILED", "Input validation failed")

	ErrInvalidQuantity = NewKindError(KindValidation, "INVALID_QUANTITY", "Quantity must be between 1 and 999")

	ErrEmptyOrder = NewKindError(KindValidation, "EMPTY_ORDER", "Order must have at least one item")

	ErrEmptyCart = NewKindError(KindValidation, "EMPTY_CART", "Cart is empty")

	ErrProductUnavailable = NewKindError(KindValidation, "PRODUCT_UNAVAILABLE", "Product is not available")

	ErrInsufficientStock = NewKindError(KindValidation, "INSUFFICIENT_STOCK", "Insufficient stock")

	ErrInvalidStatus = NewKindError(KindValidation, "INVALID_STATUS", "Invalid status")

	ErrInvalidPaymentMethod = NewKindError(KindValidation, "INVALID_PAYMENT_METHOD", "Invalid payment method")

	ErrInvalidAddressType = NewKindError(KindValidation, "INVALID_ADDRESS_TYPE", "Invalid address type")

	// Not found errors
	ErrProductNotFound = NewKindError(KindNotFound, "PRODUCT_NOT_FOUND", "Product not found")

	ErrCartItemNotFound = NewKindError(KindNotFound, "CART_ITEM_NOT_FOUND", "Item not found in cart")

	ErrOrderNotFound = NewKindError(KindNotFound, "ORDER_NOT_FOUND", "Order not found")

	ErrAddressNotFound = NewKindError(KindNotFound, "ADDRESS_NOT_FOUND", "Address not found")

	ErrNotFound = NewKindError(KindNotFound, "NOT_FOUND", "Resource not found")

	// Conflict errors
	ErrStockExhausted = NewKindError(KindConflict, "STOCK_EXHAUSTED", "Stock was taken by another order")

	ErrOrderNumberCollision = NewKindError(KindConflict, "ORDER_NUMBER_COLLISION", "Order number already in use")

	ErrIdempotencyKeyInUse = NewKindError(KindConflict, "IDEMPOTENCY_KEY_IN_USE", "A request with this Idempotency-Key is still being processed")

	ErrDefaultAddressConflict = NewKindError(KindConflict, "DEFAULT_ADDRESS_CONFLICT", "Another default address was saved concurrently")

	ErrConflict = NewKindError(KindConflict, "CONFLICT", "Resource conflict")

	// State errors
	ErrOrderNotCancellable = NewKindError(KindState, "ORDER_NOT_CANCELLABLE", "Order cannot be cancelled")

	// Authentication errors
	ErrUnauthorized = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", "")

	ErrForbidden = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")

	// Internal errors
	ErrTransactionFailed = NewKindError(KindInternal, "TRANSACTION_FAILED", "Database transaction failed")

	ErrCartStoreFailed = NewKindError(KindInternal, "CART_STORE_FAILED", "Cart storage failed")

	ErrInternalError = NewKindError(KindInternal, "INTERNAL_ERROR", "Internal error")
)

// KindOf returns the kind of the first AppError in err's tree, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Kind returns KindInternal
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}
