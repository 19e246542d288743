package errors

import "fmt"

// Categories. Every sentinel below wraps exactly one of them so callers
// can match either the precise failure or its class with errors.Is.
var (
	ErrValidation     = fmt.Errorf("validation error")
	ErrStateViolation = fmt.Errorf("state violation")
	ErrLookup         = fmt.Errorf("lookup error")
)

var (
	ErrInvalidName         = fmt.Errorf("%w: user name must be a non-empty string", ErrValidation)
	ErrInvalidCode         = fmt.Errorf("%w: code must be a non-negative integer", ErrValidation)
	ErrChanceNotNumber     = fmt.Errorf("%w: chance must be a finite number", ErrValidation)
	ErrChanceOutOfRange    = fmt.Errorf("%w: chance must be in range [0-1]", ErrValidation)
	ErrUnregisteredUser    = fmt.Errorf("%w: user is not registered", ErrValidation)
	ErrUnregisteredMessage = fmt.Errorf("%w: message is not registered within the system", ErrValidation)
	ErrInvalidWordCount    = fmt.Errorf("%w: word count must be positive", ErrValidation)
)

var (
	ErrNeverSent     = fmt.Errorf("%w: cannot receive a message never sent", ErrStateViolation)
	ErrNeverReceived = fmt.Errorf("%w: cannot read a message never received", ErrStateViolation)
)

var ErrNotInInbox = fmt.Errorf("%w: message not in inbox", ErrLookup)
