package db

import (
	"context"
	"strings"

	"github.com/JMURv/tab-audit/internal/config"
	md "github.com/JMURv/tab-audit/internal/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// likeEscaper makes LIKE wildcards in user input match literally. Postgres
// treats backslash as the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func buildAssignmentRecordsQuery(ctx context.Context, f md.LogFilter) (string, []any, error) {
	const op = "logs.buildAssignmentRecordsQuery.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select(
		"a.id",
		"a.user_id",
		"u.username",
		"u.employee_id",
		"a.device_id",
		"d.serial_number",
		"t.name AS tab_model",
		"a.status",
		"a.issued_at",
		"a.returned_at",
	).
		From("assignments a").
		Join("devices d ON d.id = a.device_id").
		Join("tab_types t ON t.id = d.tab_type_id").
		Join("users u ON u.id = a.user_id").
		OrderBy("a.issued_at DESC", "a.id").
		PlaceholderFormat(sq.Dollar)

	if f.UserID != nil {
		query = query.Where(sq.Eq{"a.user_id": *f.UserID})
	}

	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"u.employee_id": pattern},
			sq.ILike{"u.username": pattern},
			sq.ILike{"d.serial_number": pattern},
			sq.ILike{"t.name": pattern},
			sq.ILike{"a.status": pattern},
		})
	}

	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}

	q, args, err := query.ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build assignment records query", zap.String("op", op), zap.Error(err))
		return "", nil, err
	}
	return q, args, nil
}

func buildActivityQuery(ctx context.Context, f md.ActivityFilter) (string, []any, error) {
	const op = "logs.buildActivityQuery.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select(
		"e.id",
		"u.username",
		"u.employee_id",
		"t.name AS tab_name",
		"d.serial_number",
		"e.quantity_delta",
		"e.action",
		"e.timestamp",
	).
		From("activity_events e").
		Join("users u ON u.id = e.user_id").
		Join("tab_types t ON t.id = e.tab_type_id").
		Join("devices d ON d.id = e.device_id").
		OrderBy("e.timestamp DESC", "e.quantity_delta").
		PlaceholderFormat(sq.Dollar)

	if f.UserID != nil {
		query = query.Where(sq.Eq{"e.user_id": *f.UserID})
	}

	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}

	q, args, err := query.ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build activity query", zap.String("op", op), zap.Error(err))
		return "", nil, err
	}
	return q, args, nil
}
