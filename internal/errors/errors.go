package errors

import "fmt"

// ErrorCode represents a Cardex error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrInvalidOperation ErrorCode = "INVALID_OPERATION" // 400 (e.g. selling past zero)
	ErrUnknownCard      ErrorCode = "UNKNOWN_CARD"      // 404
	ErrUnknownSeries    ErrorCode = "UNKNOWN_SERIES"    // 404
	ErrUnknownRarity    ErrorCode = "UNKNOWN_RARITY"    // 404
	ErrUnknownCardType  ErrorCode = "UNKNOWN_CARD_TYPE" // 404
	ErrUniqueConstraint ErrorCode = "UNIQUE_CONSTRAINT" // 409
	ErrInternal         ErrorCode = "INTERNAL"          // 500
)

// CardexError represents a structured error with code, status, and details.
type CardexError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *CardexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *CardexError {
	return &CardexError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewInvalidOperation creates a 400 error for operations the store refuses,
// such as a sell that would drive a card's copy count below zero.
func NewInvalidOperation(msg string) *CardexError {
	return &CardexError{
		Code:    ErrInvalidOperation,
		Status:  400,
		Message: msg,
	}
}

// NewUnknownCard creates a 404 error for a card number matching no row.
func NewUnknownCard(number string) *CardexError {
	return &CardexError{
		Code:    ErrUnknownCard,
		Status:  404,
		Message: fmt.Sprintf("unknown card number: %s", number),
		Details: map[string]any{"number": number},
	}
}

// NewUnknownSeries creates a 404 error for an unresolved series reference.
func NewUnknownSeries(identifier string) *CardexError {
	return &CardexError{
		Code:    ErrUnknownSeries,
		Status:  404,
		Message: fmt.Sprintf("unknown series: %s", identifier),
		Details: map[string]any{"series": identifier},
	}
}

// NewUnknownRarity creates a 404 error for an unresolved rarity name.
func NewUnknownRarity(name string) *CardexError {
	return &CardexError{
		Code:    ErrUnknownRarity,
		Status:  404,
		Message: fmt.Sprintf("unknown rarity: %s", name),
		Details: map[string]any{"rarity": name},
	}
}

// NewUnknownCardType creates a 404 error for an unresolved card-type label.
func NewUnknownCardType(label string) *CardexError {
	return &CardexError{
		Code:    ErrUnknownCardType,
		Status:  404,
		Message: fmt.Sprintf("unknown card type: %s", label),
		Details: map[string]any{"card_type": label},
	}
}

// NewUniqueConstraint creates a 409 error for a unique-key violation.
func NewUniqueConstraint(key string) *CardexError {
	return &CardexError{
		Code:    ErrUniqueConstraint,
		Status:  409,
		Message: fmt.Sprintf("unique constraint violation: %s", key),
		Details: map[string]any{"key": key},
	}
}

// NewInternal creates a 500 error for unexpected storage faults.
func NewInternal(err error) *CardexError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &CardexError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a CardexError with the given code.
func Is(err error, code ErrorCode) bool {
	if cErr, ok := err.(*CardexError); ok {
		return cErr.Code == code
	}
	return false
}
