package station

import "fmt"

// ProviderError is returned when the provider answers with a non-200 status
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

const maxErrorBody = 256

func newProviderError(status int, body []byte) *ProviderError {
	excerpt := string(body)
	if len(excerpt) > maxErrorBody {
		excerpt = excerpt[:maxErrorBody] + "..."
	}
	return &ProviderError{StatusCode: status, Body: excerpt}
}
