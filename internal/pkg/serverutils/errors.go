package serverutils

import "github.com/gofiber/fiber/v2"

type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindNotFound
	KindUnavailable
	KindInternal
)

// AppError is the typed failure every service returns, so callers can tell
// not-found, invalid-input and store-unavailable conditions apart without
// matching on message text.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewUnavailable(message string, err error) *AppError {
	return &AppError{Kind: KindUnavailable, Message: message, Err: err}
}

func NewInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}
