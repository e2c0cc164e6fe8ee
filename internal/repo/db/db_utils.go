package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

func applyMigrations(db *sql.DB, conf config.Config) error {
	driver, err := pgx.WithInstance(db, &pgx.Config{})
	if err != nil {
		return err
	}

	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = filepath.ToSlash(
			filepath.Join("internal", "repo", "db", "migration"),
		)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, conf.DB.Database, driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			zap.L().Info("No migrations to apply")
			return nil
		} else {
			zap.L().Error("Failed to apply migrations", zap.Error(err))
			return err
		}
	}

	zap.L().Info("Applied migrations")
	return nil
}

// mustPrecreate creates the seed admin unless an account with the same
// employee id exists.
func mustPrecreate(conf config.Config, db *sqlx.DB) {
	if conf.Seed.Password == "" {
		zap.L().Warn("Seed admin password is empty, skipping precreate")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(conf.Seed.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Fatal("failed to hash seed password", zap.Error(err))
	}

	res, err := db.Exec(userCreateQ, conf.Seed.EmployeeID, conf.Seed.Username, string(hash), md.RoleAdmin)
	if err != nil {
		zap.L().Fatal("failed to precreate admin", zap.Error(err))
	}

	if n, _ := res.RowsAffected(); n > 0 {
		zap.L().Info("Precreated admin", zap.String("employee_id", conf.Seed.EmployeeID))
	}
}

func rollback(tx *sqlx.Tx, op string) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		zap.L().Error("failed to rollback tx", zap.String("op", op), zap.Error(err))
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func lockDevice(ctx context.Context, tx *sqlx.Tx, ref string) (*md.Device, error) {
	return findDevice(ctx, tx, ref, lockDeviceByIDQ, lockDeviceBySerialQ)
}

// findDevice resolves ref as a device id first and as a serial number
// otherwise, so each lookup stays on an index.
func findDevice(ctx context.Context, q sqlx.QueryerContext, ref, byIDQ, bySerialQ string) (*md.Device, error) {
	d := &md.Device{}
	if id, err := uuid.Parse(ref); err == nil {
		err = sqlx.GetContext(ctx, q, d, byIDQ, id)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	if err := sqlx.GetContext(ctx, q, d, bySerialQ, ref); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lifecycle.ErrDeviceNotFound
		}
		return nil, err
	}
	return d, nil
}

func lockUser(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*md.User, error) {
	u := &md.User{}
	if err := tx.GetContext(ctx, u, lockUserQ, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lifecycle.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func getTabType(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*md.TabType, error) {
	t := &md.TabType{}
	if err := tx.GetContext(ctx, t, getTabTypeQ, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lifecycle.ErrTabTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

func saveDevice(ctx context.Context, tx *sqlx.Tx, d *md.Device) error {
	_, err := tx.ExecContext(ctx, updateDeviceQ, d.Status, d.AssignedTo, d.IssuedAt, d.ID)
	return err
}

// reserve checks the daily limit of the locked user and takes one unit of stock.
func reserve(ctx context.Context, tx *sqlx.Tx, t *md.TabType, userID uuid.UUID, dayStart time.Time) (int, error) {
	var used int
	if err := tx.GetContext(ctx, &used, countUsedTodayQ, userID, t.ID, dayStart); err != nil {
		return 0, err
	}

	if err := lifecycle.CheckDailyLimit(t, used); err != nil {
		return 0, err
	}

	var remaining int
	if err := tx.GetContext(ctx, &remaining, reserveStockQ, t.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, lifecycle.ErrOutOfStock
		}
		return 0, err
	}
	return remaining, nil
}

func releaseStock(ctx context.Context, tx *sqlx.Tx, tabID uuid.UUID) (int, error) {
	var remaining int
	if err := tx.GetContext(ctx, &remaining, releaseStockQ, tabID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, lifecycle.ErrTabTypeNotFound
		}
		return 0, err
	}
	return remaining, nil
}

// assign persists a checkout applied to d and records its event.
func assign(ctx context.Context, tx *sqlx.Tx, d *md.Device, userID uuid.UUID, action md.Action, now time.Time) (uuid.UUID, error) {
	if err := saveDevice(ctx, tx, d); err != nil {
		return uuid.Nil, err
	}

	var assignmentID uuid.UUID
	if err := tx.GetContext(ctx, &assignmentID, createAssignmentQ, d.ID, userID, now); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, lifecycle.ErrDeviceNotAvailable
		}
		return uuid.Nil, err
	}

	if err := writeEvent(ctx, tx, userID, d, assignmentID, 1, action, now); err != nil {
		return uuid.Nil, err
	}
	return assignmentID, nil
}

// closeReturn persists a released device, closes its active assignment,
// returns one unit to stock and records the return event.
func closeReturn(ctx context.Context, tx *sqlx.Tx, d *md.Device, now time.Time) (*md.ReturnResult, error) {
	if err := saveDevice(ctx, tx, d); err != nil {
		return nil, err
	}

	var closed struct {
		ID     uuid.UUID `db:"id"`
		UserID uuid.UUID `db:"user_id"`
	}
	if err := tx.GetContext(ctx, &closed, closeAssignmentQ, now, d.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lifecycle.ErrDeviceNotAssigned
		}
		return nil, err
	}

	remaining, err := releaseStock(ctx, tx, d.TabTypeID)
	if err != nil {
		return nil, err
	}

	if err = writeEvent(ctx, tx, closed.UserID, d, closed.ID, -1, md.ActionReturn, now); err != nil {
		return nil, err
	}

	return &md.ReturnResult{
		AssignmentID:   closed.ID,
		Device:         *d,
		HolderID:       closed.UserID,
		RemainingStock: remaining,
		ReturnedAt:     now,
	}, nil
}

func writeEvent(
	ctx context.Context,
	tx *sqlx.Tx,
	userID uuid.UUID,
	d *md.Device,
	assignmentID uuid.UUID,
	delta int,
	action md.Action,
	now time.Time,
) error {
	_, err := tx.ExecContext(ctx, createEventQ, userID, d.TabTypeID, d.ID, assignmentID, delta, action, now)
	return err
}

func writeAudit(ctx context.Context, tx sqlx.ExecerContext, a *md.AuditTrail) error {
	if a == nil {
		return nil
	}
	_, err := tx.ExecContext(ctx, createAuditQ, a.AdminID, a.ActionType, a.Description, a.Timestamp)
	return err
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	}
	return err
}
