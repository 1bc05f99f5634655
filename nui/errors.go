package nui

import (
	"errors"
	"fmt"
)

// ErrUnknownNotification is returned for push messages with an unrecognised action
var ErrUnknownNotification = errors.New("unknown notification")

// ErrMalformedNotification is returned for push messages missing required fields
var ErrMalformedNotification = errors.New("malformed notification")

// ErrNoPlayerData is returned when the host answers requestPlayerData without an identity
var ErrNoPlayerData = errors.New("no player data")

// TransportError is returned when an exchange with the host could not complete
type TransportError struct {
	Name       string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("nui %s: HTTP %d", e.Name, e.StatusCode)
	}
	return fmt.Sprintf("nui %s: %v", e.Name, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is or wraps a TransportError
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
