package lifecycle

import "errors"

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindQuotaExceeded   Kind = "quota_exceeded"
	KindUnauthenticated Kind = "unauthenticated"
	KindUnauthorized    Kind = "unauthorized"
	KindOtpInvalid      Kind = "otp_invalid"
	KindValidation      Kind = "validation"
)

// Error is a business rule violation with a stable machine-readable kind.
type Error struct {
	Kind Kind
	Msg  string
	base *Error
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches errors derived from a sentinel with WithMsg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.base != nil && e.base == t
}

// WithMsg returns a copy of a sentinel carrying a more specific message.
func (e *Error) WithMsg(msg string) *Error {
	return &Error{Kind: e.Kind, Msg: msg, base: e}
}

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrDeviceNotFound  = newErr(KindNotFound, "device not found")
	ErrTabTypeNotFound = newErr(KindNotFound, "tab not found")
	ErrUserNotFound    = newErr(KindNotFound, "user not found")

	ErrDeviceNotAvailable     = newErr(KindConflict, "device is not available for checkout")
	ErrDeviceNotAssigned      = newErr(KindConflict, "device is not currently assigned")
	ErrDeviceNotPendingReturn = newErr(KindConflict, "device has no pending return")
	ErrDeviceNotInRepair      = newErr(KindConflict, "device is not in repair")
	ErrNotHolder              = newErr(KindConflict, "device is assigned to another user")
	ErrNothingToReturn        = newErr(KindConflict, "you cannot return this tab because you haven't logged any usage for it")
	ErrSerialTaken            = newErr(KindConflict, "serial number already registered")

	ErrOutOfStock         = newErr(KindQuotaExceeded, "insufficient stock")
	ErrDailyLimitExceeded = newErr(KindQuotaExceeded, "daily limit reached")
	ErrTooManyAttempts    = newErr(KindQuotaExceeded, "too many failed verification attempts, try again later")

	ErrUnauthenticated = newErr(KindUnauthenticated, "authentication required")
	ErrAdminOnly       = newErr(KindUnauthorized, "admin privileges required")

	// OTP failures share a kind and message; the values stay distinct for logs.
	ErrOtpMismatch = newErr(KindOtpInvalid, "invalid or expired OTP")
	ErrOtpExpired  = newErr(KindOtpInvalid, "invalid or expired OTP")
	ErrOtpNotFound = newErr(KindOtpInvalid, "invalid or expired OTP")
	ErrOtpConsumed = newErr(KindOtpInvalid, "invalid or expired OTP")

	ErrInvalidAction = newErr(KindValidation, "action must be 'log' or 'return'")
	ErrInvalidLimit  = newErr(KindValidation, "daily limit must be at least 1")
)

// KindOf returns the kind of a domain error, or "" for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Reason names an OTP failure for diagnostics.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrOtpMismatch):
		return "mismatch"
	case errors.Is(err, ErrOtpExpired):
		return "expired"
	case errors.Is(err, ErrOtpNotFound):
		return "not_found"
	case errors.Is(err, ErrOtpConsumed):
		return "consumed"
	case errors.Is(err, ErrDeviceNotPendingReturn):
		return "not_pending"
	case errors.Is(err, ErrTooManyAttempts):
		return "too_many_attempts"
	default:
		return "other"
	}
}
