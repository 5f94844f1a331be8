package sdk

import (
	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
	"github.com/hypernetlabs/galileo-go/internal/events"
)

// Error is the structured error returned by every SDK call. Use errors.As to
// inspect Code, Field, or the backend Status.
type Error = sdkerrors.AppError

// ErrorCode categorises an Error.
type ErrorCode = sdkerrors.ErrorCode

// Error codes.
const (
	ErrCodeNotFound     = sdkerrors.ErrCodeNotFound
	ErrCodeConflict     = sdkerrors.ErrCodeConflict
	ErrCodeValidation   = sdkerrors.ErrCodeValidation
	ErrCodeUnauthorized = sdkerrors.ErrCodeUnauthorized
	ErrCodeForbidden    = sdkerrors.ErrCodeForbidden
	ErrCodeInternal     = sdkerrors.ErrCodeInternal
	ErrCodeTimeout      = sdkerrors.ErrCodeTimeout
	ErrCodeCanceled     = sdkerrors.ErrCodeCanceled
)

// ErrUnknownEvent is returned by Dispatch for unrecognised event names.
var ErrUnknownEvent = events.ErrUnknownEvent

func IsNotFound(err error) bool     { return sdkerrors.IsNotFound(err) }
func IsConflict(err error) bool     { return sdkerrors.IsConflict(err) }
func IsValidation(err error) bool   { return sdkerrors.IsValidation(err) }
func IsUnauthorized(err error) bool { return sdkerrors.IsUnauthorized(err) }
func IsForbidden(err error) bool    { return sdkerrors.IsForbidden(err) }
func IsInternal(err error) bool     { return sdkerrors.IsInternal(err) }
func IsTimeout(err error) bool      { return sdkerrors.IsTimeout(err) }
func IsCanceled(err error) bool     { return sdkerrors.IsCanceled(err) }

// StatusCode returns the backend HTTP status carried by err, or 0.
func StatusCode(err error) int { return sdkerrors.GetStatus(err) }
