package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	deviceCols  = []string{"id", "serial_number", "tab_type_id", "status", "assigned_to", "issued_at"}
	userCols    = []string{"id", "employee_id", "username", "role"}
	tabTypeCols = []string{
		"id", "name", "daily_limit_per_user", "stock_remaining",
		"total_provisioned", "low_stock_threshold", "created_at",
	}
	challengeCols = []string{"device_id", "code", "created_at", "expires_at", "consumed"}
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	return &Repository{conn: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestRepository_Checkout(t *testing.T) {
	r, mock := newMockRepo(t)

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	dayStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	devID := uuid.New()
	tabID := uuid.New()
	userID := uuid.New()
	assignmentID := uuid.New()
	other := uuid.New()

	lockDev := func(status md.DeviceStatus, holder any) {
		mock.ExpectQuery(regexp.QuoteMeta(lockDeviceBySerialQ)).
			WithArgs("TAB-001").
			WillReturnRows(sqlmock.NewRows(deviceCols).AddRow(devID.String(), "TAB-001", tabID.String(), status, holder, nil))
	}
	lockUsr := func() {
		mock.ExpectQuery(regexp.QuoteMeta(lockUserQ)).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(userID.String(), "E-1", "alice", md.RoleStaff))
	}
	getTab := func(limit, stock int) {
		mock.ExpectQuery(regexp.QuoteMeta(getTabTypeQ)).
			WithArgs(tabID).
			WillReturnRows(sqlmock.NewRows(tabTypeCols).AddRow(tabID.String(), "iPad", limit, stock, 5, 1, now))
	}
	countUsed := func(n int) {
		mock.ExpectQuery(regexp.QuoteMeta(countUsedTodayQ)).
			WithArgs(userID, tabID, dayStart).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
	}

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectBegin()
				lockDev(md.StatusAvailable, nil)
				lockUsr()
				getTab(2, 5)
				countUsed(1)
				mock.ExpectQuery(regexp.QuoteMeta(reserveStockQ)).
					WithArgs(tabID).
					WillReturnRows(sqlmock.NewRows([]string{"stock_remaining"}).AddRow(4))
				mock.ExpectExec(regexp.QuoteMeta(updateDeviceQ)).
					WithArgs(md.StatusAssigned, userID, now, devID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(regexp.QuoteMeta(createAssignmentQ)).
					WithArgs(devID, userID, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assignmentID.String()))
				mock.ExpectExec(regexp.QuoteMeta(createEventQ)).
					WithArgs(userID, tabID, devID, assignmentID, 1, md.ActionCheckout, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "BeginTxError",
			mock: func() {
				mock.ExpectBegin().WillReturnError(errors.New("tx begin error"))
			},
			expectedErr: errors.New("tx begin error"),
		},
		{
			name: "DeviceNotFound",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(lockDeviceBySerialQ)).
					WithArgs("TAB-001").
					WillReturnRows(sqlmock.NewRows(deviceCols))
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrDeviceNotFound,
		},
		{
			name: "DeviceNotAvailable",
			mock: func() {
				mock.ExpectBegin()
				lockDev(md.StatusAssigned, other.String())
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrDeviceNotAvailable,
		},
		{
			name: "DailyLimitExceeded",
			mock: func() {
				mock.ExpectBegin()
				lockDev(md.StatusAvailable, nil)
				lockUsr()
				getTab(2, 5)
				countUsed(2)
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrDailyLimitExceeded,
		},
		{
			name: "OutOfStock",
			mock: func() {
				mock.ExpectBegin()
				lockDev(md.StatusAvailable, nil)
				lockUsr()
				getTab(2, 0)
				countUsed(0)
				mock.ExpectQuery(regexp.QuoteMeta(reserveStockQ)).
					WithArgs(tabID).
					WillReturnRows(sqlmock.NewRows([]string{"stock_remaining"}))
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrOutOfStock,
		},
		{
			name: "EventInsertError",
			mock: func() {
				mock.ExpectBegin()
				lockDev(md.StatusAvailable, nil)
				lockUsr()
				getTab(2, 5)
				countUsed(0)
				mock.ExpectQuery(regexp.QuoteMeta(reserveStockQ)).
					WithArgs(tabID).
					WillReturnRows(sqlmock.NewRows([]string{"stock_remaining"}).AddRow(4))
				mock.ExpectExec(regexp.QuoteMeta(updateDeviceQ)).
					WithArgs(md.StatusAssigned, userID, now, devID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(regexp.QuoteMeta(createAssignmentQ)).
					WithArgs(devID, userID, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assignmentID.String()))
				mock.ExpectExec(regexp.QuoteMeta(createEventQ)).
					WithArgs(userID, tabID, devID, assignmentID, 1, md.ActionCheckout, now).
					WillReturnError(errors.New("insert error"))
				mock.ExpectRollback()
			},
			expectedErr: errors.New("insert error"),
		},
		{
			name: "CommitError",
			mock: func() {
				mock.ExpectBegin()
				lockDev(md.StatusAvailable, nil)
				lockUsr()
				getTab(2, 5)
				countUsed(0)
				mock.ExpectQuery(regexp.QuoteMeta(reserveStockQ)).
					WithArgs(tabID).
					WillReturnRows(sqlmock.NewRows([]string{"stock_remaining"}).AddRow(4))
				mock.ExpectExec(regexp.QuoteMeta(updateDeviceQ)).
					WithArgs(md.StatusAssigned, userID, now, devID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(regexp.QuoteMeta(createAssignmentQ)).
					WithArgs(devID, userID, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assignmentID.String()))
				mock.ExpectExec(regexp.QuoteMeta(createEventQ)).
					WithArgs(userID, tabID, devID, assignmentID, 1, md.ActionCheckout, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectedErr: errors.New("commit error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.Checkout(ctx, "TAB-001", userID, dayStart, now)
			if tt.expectedErr != nil {
				assert.Nil(t, res)
				var domainErr *lifecycle.Error
				if errors.As(tt.expectedErr, &domainErr) {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, assignmentID, res.AssignmentID)
				assert.Equal(t, 4, res.RemainingStock)
				assert.Equal(t, "iPad", res.TabName)
				assert.Equal(t, md.StatusAssigned, res.Device.Status)
				assert.Equal(t, userID, *res.Device.AssignedTo)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_VerifyReturn(t *testing.T) {
	r, mock := newMockRepo(t)

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	devID := uuid.New()
	tabID := uuid.New()
	holder := uuid.New()
	assignmentID := uuid.New()
	issued := now.Add(-time.Hour)

	lockPending := func() {
		mock.ExpectQuery(regexp.QuoteMeta(lockDeviceByIDQ)).
			WithArgs(devID).
			WillReturnRows(sqlmock.NewRows(deviceCols).
				AddRow(devID.String(), "TAB-001", tabID.String(), md.StatusPendingReturn, holder.String(), issued))
	}

	tests := []struct {
		name        string
		code        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			code: "123456",
			mock: func() {
				mock.ExpectBegin()
				lockPending()
				mock.ExpectQuery(regexp.QuoteMeta(lockChallengeQ)).
					WithArgs(devID).
					WillReturnRows(sqlmock.NewRows(challengeCols).
						AddRow(devID.String(), "123456", now.Add(-time.Minute), now.Add(14*time.Minute), false))
				mock.ExpectExec(regexp.QuoteMeta(consumeChallengeQ)).
					WithArgs(devID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(updateDeviceQ)).
					WithArgs(md.StatusAvailable, nil, nil, devID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(regexp.QuoteMeta(closeAssignmentQ)).
					WithArgs(now, devID).
					WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(assignmentID.String(), holder.String()))
				mock.ExpectQuery(regexp.QuoteMeta(releaseStockQ)).
					WithArgs(tabID).
					WillReturnRows(sqlmock.NewRows([]string{"stock_remaining"}).AddRow(3))
				mock.ExpectExec(regexp.QuoteMeta(createEventQ)).
					WithArgs(holder, tabID, devID, assignmentID, -1, md.ActionReturn, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Mismatch",
			code: "000000",
			mock: func() {
				mock.ExpectBegin()
				lockPending()
				mock.ExpectQuery(regexp.QuoteMeta(lockChallengeQ)).
					WithArgs(devID).
					WillReturnRows(sqlmock.NewRows(challengeCols).
						AddRow(devID.String(), "123456", now.Add(-time.Minute), now.Add(14*time.Minute), false))
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrOtpMismatch,
		},
		{
			name: "Expired",
			code: "123456",
			mock: func() {
				mock.ExpectBegin()
				lockPending()
				mock.ExpectQuery(regexp.QuoteMeta(lockChallengeQ)).
					WithArgs(devID).
					WillReturnRows(sqlmock.NewRows(challengeCols).
						AddRow(devID.String(), "123456", now.Add(-time.Hour), now.Add(-time.Second), false))
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrOtpExpired,
		},
		{
			name: "NoChallenge",
			code: "123456",
			mock: func() {
				mock.ExpectBegin()
				lockPending()
				mock.ExpectQuery(regexp.QuoteMeta(lockChallengeQ)).
					WithArgs(devID).
					WillReturnRows(sqlmock.NewRows(challengeCols))
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrOtpNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.VerifyReturn(ctx, devID.String(), tt.code, now)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, assignmentID, res.AssignmentID)
				assert.Equal(t, holder, res.HolderID)
				assert.Equal(t, 3, res.RemainingStock)
				assert.Equal(t, md.StatusAvailable, res.Device.Status)
				assert.Nil(t, res.Device.AssignedTo)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_InitiateReturn(t *testing.T) {
	r, mock := newMockRepo(t)

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	devID := uuid.New()
	tabID := uuid.New()
	holder := uuid.New()
	admin := uuid.New()
	ch := md.ReturnChallenge{Code: "654321", CreatedAt: now, ExpiresAt: now.Add(15 * time.Minute)}

	tests := []struct {
		name        string
		p           md.Principal
		mock        func()
		expectedErr error
	}{
		{
			name: "HolderSuccess",
			p:    md.Principal{UserID: holder, Role: md.RoleStaff},
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(lockDeviceBySerialQ)).
					WithArgs("TAB-001").
					WillReturnRows(sqlmock.NewRows(deviceCols).
						AddRow(devID.String(), "TAB-001", tabID.String(), md.StatusAssigned, holder.String(), now))
				mock.ExpectExec(regexp.QuoteMeta(updateDeviceQ)).
					WithArgs(md.StatusPendingReturn, holder, now, devID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(upsertChallengeQ)).
					WithArgs(devID, ch.Code, ch.CreatedAt, ch.ExpiresAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "AdminOnBehalfWritesAudit",
			p:    md.Principal{UserID: admin, Role: md.RoleAdmin},
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(lockDeviceBySerialQ)).
					WithArgs("TAB-001").
					WillReturnRows(sqlmock.NewRows(deviceCols).
						AddRow(devID.String(), "TAB-001", tabID.String(), md.StatusAssigned, holder.String(), now))
				mock.ExpectExec(regexp.QuoteMeta(updateDeviceQ)).
					WithArgs(md.StatusPendingReturn, holder, now, devID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(upsertChallengeQ)).
					WithArgs(devID, ch.Code, ch.CreatedAt, ch.ExpiresAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(createAuditQ)).
					WithArgs(admin, md.AuditReturnInitiated, sqlmock.AnyArg(), now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "NotHolder",
			p:    md.Principal{UserID: uuid.New(), Role: md.RoleStaff},
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(lockDeviceBySerialQ)).
					WithArgs("TAB-001").
					WillReturnRows(sqlmock.NewRows(deviceCols).
						AddRow(devID.String(), "TAB-001", tabID.String(), md.StatusAssigned, holder.String(), now))
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrNotHolder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			d, err := r.InitiateReturn(ctx, "TAB-001", tt.p, ch)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, d)
			} else {
				require.NoError(t, err)
				assert.Equal(t, md.StatusPendingReturn, d.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
