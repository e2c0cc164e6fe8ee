package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/auth/jwt"
	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/dto"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (c *Controller) Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	const op = "auth.Authenticate.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmployeeID(ctx, req.EmployeeID)
	if err != nil && errors.Is(err, repo.ErrNotFound) {
		zap.L().Info("login for unknown employee", zap.String("op", op), zap.String("employee_id", req.EmployeeID))
		return nil, auth.ErrInvalidCredentials
	} else if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	if err = c.au.ComparePasswords([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	access, refresh, err := c.au.GenPair(ctx, u.ID, u.Role)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	return &dto.LoginResponse{
		Access:  access,
		Refresh: refresh,
		User: dto.UserInfo{
			ID:         u.ID,
			Username:   u.Username,
			Role:       u.Role,
			EmployeeID: u.EmployeeID,
		},
	}, nil
}

// Refresh issues a new access token. The role is re-read so that a demoted
// user does not keep admin rights until the refresh token expires.
func (c *Controller) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	const op = "auth.Refresh.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseClaims(ctx, req.Refresh, jwt.TokenRefresh)
	if err != nil {
		return nil, err
	}

	u, err := c.repo.GetUserByID(ctx, claims.UID)
	if err != nil && errors.Is(err, repo.ErrNotFound) {
		return nil, jwt.ErrInvalidToken
	} else if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	access, err := c.au.NewToken(ctx, u.ID, u.Role, jwt.TokenAccess)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	return &dto.RefreshResponse{Access: access}, nil
}

func (c *Controller) RegisterUser(ctx context.Context, p md.Principal, req *dto.RegisterUserRequest) (*dto.UserInfo, error) {
	const op = "users.RegisterUser.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	hash, err := c.au.HashPassword(req.Password)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to hash password", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = md.RoleStaff
	}

	id, err := c.repo.CreateUser(ctx, &md.User{
		EmployeeID: req.EmployeeID,
		Username:   req.Username,
		Password:   hash,
		Role:       role,
		CreatedAt:  c.now(),
	})
	if err != nil && errors.Is(err, repo.ErrAlreadyExists) {
		return nil, ErrAlreadyExists
	} else if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	zap.L().Info(
		"user registered",
		zap.String("op", op),
		zap.String("employee_id", req.EmployeeID),
		zap.String("admin", p.UserID.String()),
	)

	return &dto.UserInfo{ID: id, Username: req.Username, Role: role, EmployeeID: req.EmployeeID}, nil
}
