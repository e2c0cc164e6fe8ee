package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const (
	dashboardKey       = "reports:dashboard"
	tabTypesKey        = "reports:tab-types"
	reportsKeyPattern  = "reports:*"
	attemptsKeyPattern = "otp-attempts:%s"
)

func requireUser(p md.Principal) error {
	if p.UserID == uuid.Nil {
		return lifecycle.ErrUnauthenticated
	}
	return nil
}

func requireAdmin(p md.Principal) error {
	if err := requireUser(p); err != nil {
		return err
	}
	if !p.IsAdmin() {
		return lifecycle.ErrAdminOnly
	}
	return nil
}

func (c *Controller) dayStart(now time.Time) time.Time {
	return lifecycle.DayStart(now, c.loc)
}

// invalidate drops every cached projection after a committed mutation.
func (c *Controller) invalidate(ctx context.Context) {
	c.cache.InvalidateKeysByPattern(ctx, reportsKeyPattern)
}

// fail logs err once and returns it. Business rule violations are expected
// traffic and logged at Info; anything else marks the span and logs at Error.
func fail(span opentracing.Span, op string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	if kind := lifecycle.KindOf(err); kind != "" {
		zap.L().Info("operation rejected", append(fields, zap.String("kind", string(kind)))...)
		return err
	}

	span.SetTag(config.ErrorSpanTag, true)
	zap.L().Error("operation failed", fields...)
	return err
}

// resolveTarget returns the user an operation acts for. Only admins may act
// for someone else.
func (c *Controller) resolveTarget(ctx context.Context, p md.Principal, employeeID string) (uuid.UUID, error) {
	if employeeID == "" {
		return p.UserID, nil
	}

	u, err := c.repo.GetUserByEmployeeID(ctx, employeeID)
	if err != nil && errors.Is(err, repo.ErrNotFound) {
		return uuid.Nil, lifecycle.ErrUserNotFound
	} else if err != nil {
		return uuid.Nil, err
	}

	if u.ID != p.UserID && !p.IsAdmin() {
		return uuid.Nil, lifecycle.ErrAdminOnly
	}
	return u.ID, nil
}
