package custom_error

import "fmt"

type CustomError interface {
	Error() string
}

// ValidationError covers missing required fields, values outside an enumerated
// set and violated numeric constraints. Never retried.
type ValidationError struct {
	Message  string
	Property string
}

func (e *ValidationError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s (property: %s)", e.Message, e.Property)
	}
	return e.Message
}

func NewValidationError(message, property string) *ValidationError {
	return &ValidationError{Message: message, Property: property}
}

// NotFoundError signals that a referenced resource id does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError signals a delete attempted on a resource still referenced by
// stock records. The caller must remove dependents first.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// InvariantViolationError is returned under the reject capacity policy when an
// adjustment would leave a location outside its bounds.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return e.Message
}

func NewInvariantViolationError(message string) *InvariantViolationError {
	return &InvariantViolationError{Message: message}
}

type UniqueViolationError struct {
	message string
	code    string // PostgreSQL error code (e.g., "23505")
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

// WrapDBError maps PostgreSQL error codes onto the taxonomy: unique violations
// keep their own type, foreign key violations become conflicts because the only
// foreign keys in the schema are stock references.
func WrapDBError(message, code string) CustomError {
	switch code {
	case "23505":
		return &UniqueViolationError{
			message: message,
			code:    code,
		}
	case "23503":
		return NewConflictError("Value is still referenced by other resources: " + message)
	default:
		return fmt.Errorf("uncategorized error occurred with code %s: %s", code, message)
	}
}
