package core

import (
	"errors"
	"fmt"
)

// User-facing fallback messages
const (
	MsgEmptyQuery     = "Please describe the wheelchair you are looking for."
	MsgGenericFailure = "Something went wrong while getting recommendations."
	MsgTransport      = "Could not communicate with the recommendation server."
)

var (
	// ErrEmptyQuery is returned when free-text input is empty after trimming.
	// No request is sent.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrStale is returned when a newer submission superseded this one.
	// The response was discarded without touching the view.
	ErrStale = errors.New("response superseded by a newer request")
)

// ApplicationError is an envelope with success=false
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return "recommendation failed"
	}
	return "recommendation failed: " + e.Message
}

// TransportError covers network faults and unusable responses
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
