package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrInvalidCapacity    = fmt.Errorf("history capacity must be at least one")
	ErrEmptyConnectionID  = fmt.Errorf("connection id cannot be empty")
	ErrEmptySenderID      = fmt.Errorf("sender id cannot be empty")
	ErrNotConnected       = fmt.Errorf("connection is not open")
	ErrUnknownModule      = fmt.Errorf("no handler registered for module")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("unable to generate session token")
	ErrEmptyWords         = fmt.Errorf("no censored words have been found")
)
