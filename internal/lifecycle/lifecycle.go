// Package lifecycle holds the device possession state machine and the ledger
// rules. Functions here validate and apply transitions on loaded rows; the
// repositories are responsible for loading those rows under a lock and for
// persisting the result in the same transaction.
package lifecycle

import (
	"crypto/subtle"
	"time"

	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
)

// Checkout moves an available device to its new holder.
func Checkout(d *md.Device, userID uuid.UUID, now time.Time) error {
	if d.Status != md.StatusAvailable {
		return ErrDeviceNotAvailable
	}

	d.Status = md.StatusAssigned
	d.AssignedTo = &userID
	d.IssuedAt = &now
	return nil
}

// InitiateReturn puts an assigned device into pending return. Calling it again
// while pending is allowed so that a fresh code can be issued.
func InitiateReturn(d *md.Device, p md.Principal) error {
	if d.Status != md.StatusAssigned && d.Status != md.StatusPendingReturn {
		return ErrDeviceNotAssigned
	}

	if !p.IsAdmin() && (d.AssignedTo == nil || *d.AssignedTo != p.UserID) {
		return ErrNotHolder
	}

	d.Status = md.StatusPendingReturn
	return nil
}

// VerifyReturn checks the code against the device's challenge and, on
// success, consumes it and releases the device.
func VerifyReturn(d *md.Device, ch *md.ReturnChallenge, code string, now time.Time) error {
	if ch != nil && ch.Consumed {
		return ErrOtpConsumed
	}

	if d.Status != md.StatusPendingReturn {
		return ErrDeviceNotPendingReturn
	}

	if err := CheckChallenge(ch, code, now); err != nil {
		return err
	}

	ch.Consumed = true
	release(d)
	return nil
}

// CheckChallenge validates a code without consuming it. Expiry is evaluated
// lazily against now.
func CheckChallenge(ch *md.ReturnChallenge, code string, now time.Time) error {
	if ch == nil {
		return ErrOtpNotFound
	}

	if ch.Consumed {
		return ErrOtpConsumed
	}

	if !now.Before(ch.ExpiresAt) {
		return ErrOtpExpired
	}

	if subtle.ConstantTimeCompare([]byte(ch.Code), []byte(code)) != 1 {
		return ErrOtpMismatch
	}

	return nil
}

// CancelPendingReturn restores an abandoned return to assigned.
func CancelPendingReturn(d *md.Device) error {
	if d.Status != md.StatusPendingReturn {
		return ErrDeviceNotPendingReturn
	}

	d.Status = md.StatusAssigned
	return nil
}

// ForceReturn releases an assigned or pending device without a challenge.
// Only admin paths call it.
func ForceReturn(d *md.Device) error {
	if d.Status != md.StatusAssigned && d.Status != md.StatusPendingReturn {
		return ErrDeviceNotAssigned
	}

	release(d)
	return nil
}

// SetRepair toggles the repair flag. It reports whether the device was held
// and therefore needs its assignment closed.
func SetRepair(d *md.Device, repair bool) (wasHeld bool, err error) {
	if !repair {
		if d.Status != md.StatusRepair {
			return false, ErrDeviceNotInRepair
		}
		d.Status = md.StatusAvailable
		return false, nil
	}

	if d.Status == md.StatusRepair {
		return false, nil
	}

	wasHeld = IsHeld(d.Status)
	release(d)
	d.Status = md.StatusRepair
	return wasHeld, nil
}

// IsHeld reports whether a device in status s has a holder.
func IsHeld(s md.DeviceStatus) bool {
	return s == md.StatusAssigned || s == md.StatusPendingReturn
}

func release(d *md.Device) {
	d.Status = md.StatusAvailable
	d.AssignedTo = nil
	d.IssuedAt = nil
}
