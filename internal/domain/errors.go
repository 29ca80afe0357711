package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoStepAvailable   = errors.New("no step available")
	ErrBootstrapFailed   = errors.New("bootstrap failed")
	ErrClockAgentMissing = errors.New("clock agent missing from session roster")
	ErrEngineRunning     = errors.New("synchronization loop already running")
	ErrUnknownAgent      = errors.New("unknown agent")
)

// TransportError is a connection, DNS or timeout failure before any response arrived.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is a response whose payload is malformed or has an unexpected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
}
