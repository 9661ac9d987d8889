package utils

import "errors"

var (
	ErrFetchFailure      = errors.New("fetch failure")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrSubmissionFailure = errors.New("submission failure")
	ErrInvalidPlanID     = errors.New("invalid plan id")
	ErrInvalidPayload    = errors.New("invalid payload")
)

// ServiceError carries a static user-facing message. Cause is kept for logging only.
type ServiceError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Kind
}

func NewServiceError(kind error, message string, cause error) *ServiceError {
	return &ServiceError{Kind: kind, Message: message, Cause: cause}
}

// CauseOf returns the underlying cause of a ServiceError, or err itself.
func CauseOf(err error) error {
	var se *ServiceError
	if errors.As(err, &se) && se.Cause != nil {
		return se.Cause
	}
	return err
}
