package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// maxBodyInMessage bounds how much of an error response body is copied into the message.
const maxBodyInMessage = 512

// FromHTTPStatus builds an AppError for a non-2xx backend response.
// The body is trimmed and truncated; it is informational only.
func FromHTTPStatus(status int, op string, body []byte) *AppError {
	msg := fmt.Sprintf("%s: backend returned %d %s", op, status, http.StatusText(status))
	if detail := strings.TrimSpace(string(body)); detail != "" {
		if len(detail) > maxBodyInMessage {
			detail = detail[:maxBodyInMessage] + "..."
		}
		msg += ": " + detail
	}
	return &AppError{
		Code:    codeForStatus(status),
		Message: msg,
		Status:  status,
	}
}

func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// FromTransport classifies an error returned by the HTTP client before any response was read.
func FromTransport(err error, op string) *AppError {
	if err == nil {
		return nil
	}
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return Wrap(err, ErrCodeCanceled, op)
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, op)
	case errors.As(err, &netErr) && netErr.Timeout():
		return Wrap(err, ErrCodeTimeout, op)
	default:
		return Wrap(err, ErrCodeInternal, op)
	}
}
