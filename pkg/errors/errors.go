// Package errors provides structured error handling for go-bip38.
// It defines the sentinel errors surfaced by every codec operation and
// helpers for adding context and details to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Error is the structured error type for go-bip38.
type Error struct {
	Code    string            // Machine-readable error code
	Message string            // Human-readable message
	Details map[string]string // Additional context
	Cause   error             // Underlying error
}

func (e *Error) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for Error.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors. One per observable failure kind.
var (
	ErrInvalidChecksum = &Error{
		Code:    "INVALID_CHECKSUM",
		Message: "base58check checksum mismatch",
	}

	ErrInvalidCharacter = &Error{
		Code:    "INVALID_CHARACTER",
		Message: "invalid base58 character",
	}

	ErrInvalidLength = &Error{
		Code:    "INVALID_LENGTH",
		Message: "invalid payload length",
	}

	ErrUnexpectedPrefix = &Error{
		Code:    "UNEXPECTED_PREFIX",
		Message: "payload does not begin with the expected magic bytes",
	}

	ErrUnsupportedFlag = &Error{
		Code:    "UNSUPPORTED_FLAG",
		Message: "reserved flag bits set",
	}

	ErrBadPassphrase = &Error{
		Code:    "BAD_PASSPHRASE",
		Message: "passphrase does not match - address hash verification failed",
	}

	ErrInvalidKeyRange = &Error{
		Code:    "INVALID_KEY_RANGE",
		Message: "scalar is zero or not below the curve order",
	}

	ErrInvalidLot = &Error{
		Code:    "INVALID_LOT",
		Message: "lot number out of range",
	}

	ErrInvalidSequence = &Error{
		Code:    "INVALID_SEQUENCE",
		Message: "sequence number out of range",
	}

	ErrInvalidSeedLength = &Error{
		Code:    "INVALID_SEED_LENGTH",
		Message: "seed must be exactly 24 bytes",
	}

	ErrInvalidOwnerSaltLength = &Error{
		Code:    "INVALID_OWNER_SALT_LENGTH",
		Message: "owner salt must be exactly 8 bytes",
	}

	ErrNetworkMismatch = &Error{
		Code:    "NETWORK_MISMATCH",
		Message: "version byte does not belong to the declared network",
	}

	ErrInvalidPrivateKey = &Error{
		Code:    "INVALID_PRIVATE_KEY",
		Message: "private key must be 32 bytes of hex",
	}

	ErrInvalidPublicKey = &Error{
		Code:    "INVALID_PUBLIC_KEY",
		Message: "not a valid secp256k1 point",
	}

	ErrEntropyUnavailable = &Error{
		Code:    "ENTROPY_UNAVAILABLE",
		Message: "random source failed",
	}
)

// New creates a new Error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context. The code of a wrapped
// *Error is preserved so errors.Is keeps matching the sentinel.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var e *Error
	if errors.As(err, &e) {
		return &Error{
			Code:    e.Code,
			Message: fmt.Sprintf("%s: %s", msg, e.Message),
			Details: e.Details,
			Cause:   err,
		}
	}

	return &Error{
		Code:    "GENERAL_ERROR",
		Message: msg,
		Cause:   err,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return &Error{
			Code:    e.Code,
			Message: e.Message,
			Details: details,
			Cause:   e.Cause,
		}
	}

	return &Error{
		Code:    "GENERAL_ERROR",
		Message: err.Error(),
		Details: details,
		Cause:   err,
	}
}

// Code returns the error code for an error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
