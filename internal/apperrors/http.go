package apperrors

import (
	"errors"
	"net/http"
)

// Reason codes carried in failure envelopes alongside the policy deny reasons.
const (
	CodeValidation         = "validation_error"
	CodeInvalidCredentials = "invalid_credentials"
	CodeNotFound           = "not_found"
	CodeDuplicate          = "duplicate"
	CodeRateLimited        = "rate_limited"
	CodeInternal           = "internal_error"
)

const internalMessage = "internal server error"

// ToHTTP translates an error into a status, a reason code and a user-safe message.
// Anything unrecognised becomes a 500 whose message never includes the cause.
func ToHTTP(err error) (int, string, string) {
	var deny *DenyError
	if errors.As(err, &deny) {
		status := http.StatusForbidden
		if errors.Is(deny, ErrUnauthorized) {
			status = http.StatusUnauthorized
		}
		return status, string(deny.Reason), deny.Message()
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, CodeValidation, verr.Error()
	}

	switch {
	case errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized, string(ReasonUnauthenticated), "token expired"
	case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenUnknown):
		return http.StatusUnauthorized, string(ReasonUnauthenticated), "invalid token"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, CodeInvalidCredentials, ErrInvalidCredentials.Error()
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if appErr.Code >= http.StatusInternalServerError {
			msg = internalMessage
		}
		return appErr.Code, codeForStatus(appErr.Code), msg
	}

	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, CodeValidation, ErrValidation.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, CodeNotFound, ErrNotFound.Error()
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict, CodeDuplicate, ErrDuplicate.Error()
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, string(ReasonUnauthenticated), "authentication required"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "forbidden", "forbidden"
	}
	return http.StatusInternalServerError, CodeInternal, internalMessage
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return string(ReasonUnauthenticated)
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeDuplicate
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}
