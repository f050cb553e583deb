// Package apperrors defines the client's error taxonomy.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for snapshots the renderer must skip.
var (
	ErrUnrenderable       = errors.New("snapshot is not renderable")
	ErrIdentityUnassigned = errors.New("player identity not assigned")
)

// ValidationError is a local input failure. It blocks emission and leaves state untouched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProtocolNotice is a server-originated error_message.
type ProtocolNotice struct {
	Message string
}

func (e *ProtocolNotice) Error() string {
	return "server: " + e.Message
}

// SessionTerminatedError reports a peer disconnect. PlayerNum is 1-based as sent by the server.
type SessionTerminatedError struct {
	PlayerNum int
}

func (e *SessionTerminatedError) Error() string {
	return fmt.Sprintf("player %d left the game", e.PlayerNum)
}

// 预定义错误
var (
	ErrNothingSelected   = &ValidationError{Message: "Please select tiles first!"}
	ErrInvalidNumPlayers = &ValidationError{Message: "A game needs 3, 4 or 5 players"}
)

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Unrenderable wraps ErrUnrenderable with a reason.
func Unrenderable(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnrenderable, reason)
}
