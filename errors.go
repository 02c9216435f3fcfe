// Package gemmbench structured error types
package gemmbench

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind represents categories of errors
type ErrorKind int

const (
	// Missing or malformed command line arguments
	ErrKindUsage ErrorKind = iota
	// Invalid Config field
	ErrKindConfig
	// Kernel output diverged from the reference
	ErrKindCheck
)

// Error is a structured error with the operation that raised it.
type Error struct {
	Kind    ErrorKind
	Op      string // Operation or field that failed
	Message string
	Err     error // Underlying error if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error in %s: %s: %v", e.Kind, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

func (k ErrorKind) String() string {
	switch k {
	case ErrKindUsage:
		return "Usage"
	case ErrKindConfig:
		return "Config"
	case ErrKindCheck:
		return "Check"
	default:
		return "Unknown"
	}
}

// NewUsageError creates a command line usage error.
func NewUsageError(op, message string, err error) error {
	return &Error{Kind: ErrKindUsage, Op: op, Message: message, Err: err}
}

// NewConfigError creates an error for an invalid Config field.
func NewConfigError(field string, err error) error {
	return &Error{Kind: ErrKindConfig, Op: field, Message: "invalid value", Err: err}
}

// NewCheckError creates an error describing a failed reference check.
func NewCheckError(kernel string, result VerificationResult) error {
	return &Error{Kind: ErrKindCheck, Op: kernel, Message: "check ref failed", Err: errors.New(result.String())}
}

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsUsageError checks if err, or anything it wraps, is a usage error.
func IsUsageError(err error) bool { return isKind(err, ErrKindUsage) }

// IsConfigError checks if err, or anything it wraps, is a config error.
func IsConfigError(err error) bool { return isKind(err, ErrKindConfig) }

// IsCheckError checks if err, or anything it wraps, is a check error.
func IsCheckError(err error) bool { return isKind(err, ErrKindCheck) }
