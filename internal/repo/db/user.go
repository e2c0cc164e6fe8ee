package db

import (
	"context"

	"github.com/JMURv/tab-audit/internal/config"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// CreateUser stores u, whose Password must already be hashed.
func (r *Repository) CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error) {
	const op = "users.CreateUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	role, status := u.Role, u.Status
	if role == "" {
		role = md.RoleStaff
	}
	if status == "" {
		status = "active"
	}

	var id uuid.UUID
	err := r.conn.QueryRowxContext(ctx, userRegisterQ, u.EmployeeID, u.Username, u.Password, role, status).Scan(&id)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}

		zap.L().Error("failed to create user", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}
