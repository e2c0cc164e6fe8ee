package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	metrics "github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (c *Controller) UpsertTabType(ctx context.Context, p md.Principal, req *dto.AddTabRequest) (*dto.AddTabResponse, error) {
	const op = "admin.UpsertTabType.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	if req.Limit < 1 {
		return nil, lifecycle.ErrInvalidLimit
	}

	tab, created, err := c.repo.UpsertTabType(ctx, md.TabTypeInput{
		Name:              req.Name,
		DailyLimitPerUser: req.Limit,
		LowStockThreshold: req.LowStockThreshold,
	}, p.UserID, c.now())
	if err != nil {
		return nil, fail(span, op, err, zap.String("name", req.Name))
	}

	c.invalidate(ctx)
	zap.L().Info(
		"tab type saved",
		zap.String("op", op),
		zap.String("name", tab.Name),
		zap.Bool("created", created),
		zap.Int("limit", tab.DailyLimitPerUser),
	)

	return &dto.AddTabResponse{
		Message: fmt.Sprintf("Successfully updated %s", tab.Name),
		Created: created,
		Tab:     *tab,
	}, nil
}

func (c *Controller) ProvisionDevice(ctx context.Context, p md.Principal, req *dto.ProvisionRequest) (*dto.ProvisionResponse, error) {
	const op = "admin.ProvisionDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	res, err := c.repo.ProvisionDevice(ctx, req.SerialNumber, req.TabID, p.UserID, c.now())
	if err != nil && errors.Is(err, repo.ErrAlreadyExists) {
		return nil, fail(span, op, lifecycle.ErrSerialTaken, zap.String("serial", req.SerialNumber))
	} else if err != nil {
		return nil, fail(span, op, err, zap.String("serial", req.SerialNumber))
	}

	c.invalidate(ctx)
	zap.L().Info(
		"device provisioned",
		zap.String("op", op),
		zap.String("serial", res.Device.SerialNumber),
		zap.String("tab", res.TabName),
		zap.Int("new_stock", res.NewStock),
	)

	return &dto.ProvisionResponse{
		Message:  fmt.Sprintf("Provisioned %s as %s", res.Device.SerialNumber, res.TabName),
		Device:   res.Device,
		NewStock: res.NewStock,
	}, nil
}

func (c *Controller) SetRepair(ctx context.Context, p md.Principal, req *dto.RepairRequest) (*dto.DeviceResponse, error) {
	const op = "admin.SetRepair.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	d, err := c.repo.SetRepair(ctx, req.DeviceID, req.Repair, p.UserID, c.now())
	if err != nil {
		return nil, fail(span, op, err, zap.String("device", req.DeviceID), zap.Bool("repair", req.Repair))
	}

	c.resetAttempts(ctx, d.ID)
	c.invalidate(ctx)
	zap.L().Warn(
		"repair status changed",
		zap.String("op", op),
		zap.String("serial", d.SerialNumber),
		zap.Bool("repair", req.Repair),
		zap.String("admin", p.UserID.String()),
	)

	msg := fmt.Sprintf("%s is back in service", d.SerialNumber)
	if req.Repair {
		msg = fmt.Sprintf("%s sent to repair", d.SerialNumber)
	}
	return &dto.DeviceResponse{Message: msg, Device: *d}, nil
}

func (c *Controller) CancelPendingReturn(
	ctx context.Context,
	p md.Principal,
	req *dto.DeviceRequest,
) (*dto.MessageResponse, error) {
	const op = "admin.CancelPendingReturn.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	d, err := c.repo.CancelPendingReturn(ctx, req.DeviceID, p.UserID, c.now())
	if err != nil {
		return nil, fail(span, op, err, zap.String("device", req.DeviceID))
	}

	c.resetAttempts(ctx, d.ID)
	c.invalidate(ctx)
	zap.L().Info("pending return cancelled", zap.String("op", op), zap.String("serial", d.SerialNumber))

	return &dto.MessageResponse{Message: fmt.Sprintf("Return of %s cancelled", d.SerialNumber)}, nil
}

func (c *Controller) ForceReturn(ctx context.Context, p md.Principal, req *dto.DeviceRequest) (*dto.ForceReturnResponse, error) {
	const op = "admin.ForceReturn.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	res, err := c.repo.ForceReturn(ctx, req.DeviceID, p.UserID, c.now())
	if err != nil {
		return nil, fail(span, op, err, zap.String("device", req.DeviceID))
	}

	c.resetAttempts(ctx, res.Device.ID)
	c.invalidate(ctx)
	metrics.ObserveLedger(string(md.ActionReturn))
	zap.L().Warn(
		"device force returned",
		zap.String("op", op),
		zap.String("serial", res.Device.SerialNumber),
		zap.String("holder", res.HolderID.String()),
		zap.String("admin", p.UserID.String()),
	)

	return &dto.ForceReturnResponse{
		Message:        fmt.Sprintf("%s force returned", res.Device.SerialNumber),
		RemainingStock: res.RemainingStock,
	}, nil
}
