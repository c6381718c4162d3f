package rest

import "fmt"

// Error is the normalized failure every API call collapses to. Message is
// the best human-readable text available: the response body's "message"
// field, then its "error" field, then the transport error, then the status
// text.
type Error struct {
	StatusCode int
	Message    string
}

func (apiError *Error) Error() string {
	if apiError.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d)", apiError.Message, apiError.StatusCode)
	}
	return apiError.Message
}

// MessageOf extracts the display message from an API call error.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if apiError, ok := err.(*Error); ok {
		return apiError.Message
	}
	return err.Error()
}
