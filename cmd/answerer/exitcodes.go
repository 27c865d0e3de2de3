package main

import "fmt"

// Exit codes for the answerer CLI.
const (
	ExitOK                = 0 // Command succeeded.
	ExitInvalidArgs       = 1 // Invalid arguments, unreadable input or a write failure.
	ExitValidationFailure = 2 // The answer file violates the grader's format.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string {
	return e.msg
}

func exitError(code int, format string, args ...interface{}) error {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
