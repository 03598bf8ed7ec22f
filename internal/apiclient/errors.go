package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthRejected means the backend refused the bearer token. The session has
	// already been revoked by the time a caller sees it.
	ErrAuthRejected = errors.New("authentication rejected")
	// ErrUnreachable covers transport failures and bodies that cannot be decoded.
	ErrUnreachable = errors.New("backend unreachable")
)

const genericFailure = "Request Failed"

// RequestFailedError is any other non-2xx answer, or a 2xx whose envelope
// reports a failure status.
type RequestFailedError struct {
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// Phrases some backends return with a non-auth status when the token is bad.
var tokenFailurePhrases = []string{
	"signature verification failed",
	"token has expired",
}

func isTokenFailure(message string) bool {
	m := strings.ToLower(message)
	for _, phrase := range tokenFailurePhrases {
		if strings.Contains(m, phrase) {
			return true
		}
	}
	return false
}

// envelope covers the error and status fields the backend variants use.
type envelope struct {
	Status  string `json:"status"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e envelope) text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	}
	return ""
}

// extractMessage pulls the server's error text out of a body, falling back to a
// generic message for empty or non-object bodies.
func extractMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return genericFailure
	}
	if msg := env.text(); msg != "" {
		return msg
	}
	return genericFailure
}

// MessageOf returns the user-facing message carried by a RequestFailedError.
func MessageOf(err error) string {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.Message
	}
	return genericFailure
}
