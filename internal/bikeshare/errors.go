package bikeshare

import "fmt"

// ProviderAPIError represents a failure loading stations from the provider
type ProviderAPIError struct {
	Message string
	Err     error
}

func (e *ProviderAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider API error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("provider API error: %s", e.Message)
}

func (e *ProviderAPIError) Unwrap() error {
	return e.Err
}

// NewProviderAPIError creates a new provider API error
func NewProviderAPIError(message string, err error) *ProviderAPIError {
	return &ProviderAPIError{
		Message: message,
		Err:     err,
	}
}

// Error when the caller asks for an impossible availability threshold
type InvalidFilterError struct {
	Message string
}

func (e *InvalidFilterError) Error() string {
	return e.Message
}

func NewInvalidFilterError(message string) *InvalidFilterError {
	return &InvalidFilterError{
		Message: message,
	}
}

// NoRouteError is returned when no station with bikes serves one of the ends
type NoRouteError struct {
	MissingStart bool
	MissingEnd   bool
}

func (e *NoRouteError) Error() string {
	return "no available stations for the requested route"
}
