package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	metrics "github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const (
	checkInLog    = "log"
	checkInReturn = "return"
)

func (c *Controller) Assign(ctx context.Context, p md.Principal, req *dto.DeviceRequest) (*dto.AssignResponse, error) {
	const op = "engine.Assign.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireUser(p); err != nil {
		return nil, err
	}

	now := c.now()
	res, err := c.repo.Checkout(ctx, req.DeviceID, p.UserID, c.dayStart(now), now)
	if err != nil {
		if errors.Is(err, lifecycle.ErrOutOfStock) {
			metrics.ObserveStockExhausted(string(md.ActionCheckout))
		}
		return nil, fail(span, op, err, zap.String("device", req.DeviceID), zap.String("user", p.UserID.String()))
	}

	c.invalidate(ctx)
	metrics.ObserveLedger(string(md.ActionCheckout))
	zap.L().Info(
		"device assigned",
		zap.String("op", op),
		zap.String("serial", res.Device.SerialNumber),
		zap.String("user", p.UserID.String()),
		zap.Int("remaining_stock", res.RemainingStock),
	)

	return &dto.AssignResponse{
		Message:        fmt.Sprintf("%s %s assigned successfully", res.TabName, res.Device.SerialNumber),
		AssignmentID:   res.AssignmentID,
		RemainingStock: res.RemainingStock,
	}, nil
}

// CheckIn logs usage of a tab type or, for admins, returns a unit held by
// the target user without a challenge.
func (c *Controller) CheckIn(ctx context.Context, p md.Principal, req *dto.CheckInRequest) (*dto.CheckInResponse, error) {
	const op = "engine.CheckIn.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireUser(p); err != nil {
		return nil, err
	}

	action := req.Action
	if action == "" {
		action = checkInLog
	}
	if action != checkInLog && action != checkInReturn {
		return nil, lifecycle.ErrInvalidAction
	}

	target, err := c.resolveTarget(ctx, p, req.EmployeeID)
	if err != nil {
		return nil, fail(span, op, err, zap.String("employee_id", req.EmployeeID))
	}

	now := c.now()
	switch action {
	case checkInLog:
		res, err := c.repo.LogUsage(ctx, req.TabID, target, c.dayStart(now), now)
		if err != nil {
			if errors.Is(err, lifecycle.ErrOutOfStock) {
				metrics.ObserveStockExhausted(string(md.ActionLog))
			}
			return nil, fail(span, op, err, zap.String("tab", req.TabID.String()), zap.String("user", target.String()))
		}

		c.invalidate(ctx)
		metrics.ObserveLedger(string(md.ActionLog))
		zap.L().Info(
			"usage logged",
			zap.String("op", op),
			zap.String("serial", res.Device.SerialNumber),
			zap.String("user", target.String()),
		)

		return &dto.CheckInResponse{
			Message:        "Tab logged successfully!",
			RemainingStock: res.RemainingStock,
			Timestamp:      res.IssuedAt,
		}, nil
	default:
		if err = requireAdmin(p); err != nil {
			return nil, err
		}

		res, err := c.repo.ReturnDirect(ctx, req.TabID, target, p.UserID, now)
		if err != nil {
			return nil, fail(span, op, err, zap.String("tab", req.TabID.String()), zap.String("user", target.String()))
		}

		c.invalidate(ctx)
		metrics.ObserveLedger(string(md.ActionReturn))
		zap.L().Info(
			"direct return",
			zap.String("op", op),
			zap.String("serial", res.Device.SerialNumber),
			zap.String("user", target.String()),
			zap.String("admin", p.UserID.String()),
		)

		return &dto.CheckInResponse{
			Message:        "Tab returned successfully!",
			RemainingStock: res.RemainingStock,
			Timestamp:      res.ReturnedAt,
		}, nil
	}
}

// InitiateReturn issues a fresh challenge for a held device. Re-initiation
// supersedes the previous code and clears its failed attempts.
func (c *Controller) InitiateReturn(ctx context.Context, p md.Principal, req *dto.DeviceRequest) (*dto.MessageResponse, error) {
	const op = "engine.InitiateReturn.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireUser(p); err != nil {
		return nil, err
	}

	// the repository binds the challenge to the locked device
	ch, err := c.otp.Issue(uuid.Nil, c.now())
	if err != nil {
		return nil, fail(span, op, err)
	}

	d, err := c.repo.InitiateReturn(ctx, req.DeviceID, p, ch)
	if err != nil {
		return nil, fail(span, op, err, zap.String("device", req.DeviceID), zap.String("user", p.UserID.String()))
	}

	c.resetAttempts(ctx, d.ID)
	c.invalidate(ctx)
	zap.L().Info(
		"return initiated",
		zap.String("op", op),
		zap.String("serial", d.SerialNumber),
		zap.String("user", p.UserID.String()),
		zap.Time("expires_at", ch.ExpiresAt),
	)

	return &dto.MessageResponse{
		Message: "Return initiated. Please ask an admin for the verification code.",
	}, nil
}

func (c *Controller) VerifyReturn(
	ctx context.Context,
	p md.Principal,
	req *dto.VerifyReturnRequest,
) (*dto.VerifyReturnResponse, error) {
	const op = "engine.VerifyReturn.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireUser(p); err != nil {
		return nil, err
	}

	d, err := c.repo.GetDevice(ctx, req.DeviceID)
	if err != nil {
		return nil, fail(span, op, err, zap.String("device", req.DeviceID))
	}

	key := attemptsKey(d.ID)
	n, err := c.cache.Attempts(ctx, key)
	if err != nil {
		zap.L().Warn("failed to read verification attempts", zap.String("op", op), zap.Error(err))
	}
	if int(n) >= c.conf.OTP.MaxAttempts {
		metrics.ObserveOTPFailure(lifecycle.Reason(lifecycle.ErrTooManyAttempts))
		return nil, fail(span, op, lifecycle.ErrTooManyAttempts, zap.String("device", req.DeviceID), zap.Int64("attempts", n))
	}

	res, err := c.repo.VerifyReturn(ctx, d.ID.String(), req.OTPCode, c.now())
	if err != nil {
		if lifecycle.KindOf(err) == lifecycle.KindOtpInvalid {
			if _, cerr := c.cache.IncrAttempts(ctx, key, c.conf.OTP.AttemptWindow); cerr != nil {
				zap.L().Warn("failed to count verification attempt", zap.String("op", op), zap.Error(cerr))
			}
		}

		reason := lifecycle.Reason(err)
		metrics.ObserveOTPFailure(reason)
		return nil, fail(span, op, err, zap.String("device", req.DeviceID), zap.String("reason", reason))
	}

	c.resetAttempts(ctx, res.Device.ID)
	c.invalidate(ctx)
	metrics.ObserveLedger(string(md.ActionReturn))
	zap.L().Info(
		"return verified",
		zap.String("op", op),
		zap.String("serial", res.Device.SerialNumber),
		zap.String("holder", res.HolderID.String()),
		zap.String("condition", req.Condition),
		zap.Int("remaining_stock", res.RemainingStock),
	)

	return &dto.VerifyReturnResponse{Success: true}, nil
}

// resetAttempts clears the failed verification counter of a device.
func (c *Controller) resetAttempts(ctx context.Context, id uuid.UUID) {
	c.cache.Delete(ctx, attemptsKey(id))
}

func attemptsKey(id uuid.UUID) string {
	return fmt.Sprintf(attemptsKeyPattern, id)
}
