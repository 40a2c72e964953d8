package apperrors

// DenyReason is the reason code attached to a DENY policy decision.
type DenyReason string

const (
	ReasonUnauthenticated        DenyReason = "unauthenticated"
	ReasonInactiveAccount        DenyReason = "inactive-account"
	ReasonNotOwner               DenyReason = "not-owner"
	ReasonAdminRequired          DenyReason = "admin-required"
	ReasonProtectedAdminResource DenyReason = "protected-admin-resource"
)

var denyMessages = map[DenyReason]string{
	ReasonUnauthenticated:        "authentication required",
	ReasonInactiveAccount:        "account disabled, contact an administrator",
	ReasonNotOwner:               "forbidden: not resource owner",
	ReasonAdminRequired:          "forbidden: admin required",
	ReasonProtectedAdminResource: "cannot modify admin",
}

// DenyError is the error form of a DENY decision.
type DenyError struct {
	Reason DenyReason
}

// NewDenyError wraps a reason code.
func NewDenyError(reason DenyReason) *DenyError {
	return &DenyError{Reason: reason}
}

func (e *DenyError) Error() string {
	return e.Message()
}

// Message returns the stable user-facing text for the reason.
func (e *DenyError) Message() string {
	if msg, ok := denyMessages[e.Reason]; ok {
		return msg
	}
	return "access denied"
}

// Is maps unauthenticated/inactive denials to ErrUnauthorized and the rest to ErrForbidden,
// so the boundary can tell "log in" apart from "you lack permission".
func (e *DenyError) Is(target error) bool {
	switch e.Reason {
	case ReasonUnauthenticated, ReasonInactiveAccount:
		return target == ErrUnauthorized
	default:
		return target == ErrForbidden
	}
}
