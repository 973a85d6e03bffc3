package game

import "errors"

// Code is a machine-readable rejection code.
type Code string

const (
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	CodeOutOfTurn            Code = "OUT_OF_TURN_MOVE"
	CodeNoOpMove             Code = "NO_OP_MOVE"
	CodeForbiddenColor       Code = "FORBIDDEN_COLOR_MOVE"
	CodeGameOver             Code = "GAME_OVER_MOVE"
	CodeUnknownParty         Code = "UNKNOWN_PARTY"
	CodeUnknownColor         Code = "UNKNOWN_COLOR"
)

// Error is a game error carrying a code.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrInvalidConfiguration = &Error{Code: CodeInvalidConfiguration, Message: "invalid configuration"}
	ErrOutOfTurn            = &Error{Code: CodeOutOfTurn, Message: "not your turn"}
	ErrNoOpMove             = &Error{Code: CodeNoOpMove, Message: "color is already yours"}
	ErrForbiddenColor       = &Error{Code: CodeForbiddenColor, Message: "color is held by the opponent"}
	ErrGameOver             = &Error{Code: CodeGameOver, Message: "game over"}
	ErrUnknownParty         = &Error{Code: CodeUnknownParty, Message: "unknown party"}
	ErrUnknownColor         = &Error{Code: CodeUnknownColor, Message: "color not in palette"}
)

func configError(msg string) error {
	return &Error{Code: CodeInvalidConfiguration, Message: "invalid configuration: " + msg}
}

// CodeOf extracts the rejection code from err, or "" when err is not a game error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
