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
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ProvisionDevice(t *testing.T) {
	r, mock := newMockRepo(t)

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tabID := uuid.New()
	adminID := uuid.New()
	devID := uuid.New()
	pgErr := &pgconn.PgError{Code: "23505"}

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(provisionStockQ)).
					WithArgs(tabID).
					WillReturnRows(sqlmock.NewRows([]string{"name", "stock_remaining"}).AddRow("iPad", 6))
				mock.ExpectQuery(regexp.QuoteMeta(createDeviceQ)).
					WithArgs("TAB-010", tabID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(devID.String()))
				mock.ExpectExec(regexp.QuoteMeta(createAuditQ)).
					WithArgs(adminID, md.AuditInventoryUpdate, "Provisioned TAB-010 as iPad, stock now 6", now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "TabTypeNotFound",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(provisionStockQ)).
					WithArgs(tabID).
					WillReturnRows(sqlmock.NewRows([]string{"name", "stock_remaining"}))
				mock.ExpectRollback()
			},
			expectedErr: lifecycle.ErrTabTypeNotFound,
		},
		{
			name: "SerialTaken",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(provisionStockQ)).
					WithArgs(tabID).
					WillReturnRows(sqlmock.NewRows([]string{"name", "stock_remaining"}).AddRow("iPad", 6))
				mock.ExpectQuery(regexp.QuoteMeta(createDeviceQ)).
					WithArgs("TAB-010", tabID).
					WillReturnError(pgErr)
				mock.ExpectRollback()
			},
			expectedErr: repo.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.ProvisionDevice(ctx, "TAB-010", tabID, adminID, now)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, devID, res.Device.ID)
				assert.Equal(t, md.StatusAvailable, res.Device.Status)
				assert.Equal(t, 6, res.NewStock)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpsertTabType(t *testing.T) {
	r, mock := newMockRepo(t)

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	adminID := uuid.New()
	tabID := uuid.New()
	threshold := 3

	tests := []struct {
		name        string
		in          md.TabTypeInput
		mock        func()
		created     bool
		threshold   int
		expectedErr error
	}{
		{
			name: "Create",
			in:   md.TabTypeInput{Name: "iPad", DailyLimitPerUser: 2},
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(lockTabTypeByNameQ)).
					WithArgs("iPad").
					WillReturnRows(sqlmock.NewRows(tabTypeCols))
				mock.ExpectQuery(regexp.QuoteMeta(createTabTypeQ)).
					WithArgs("iPad", 2, md.DefaultLowStockThreshold, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(tabID.String()))
				mock.ExpectExec(regexp.QuoteMeta(createAuditQ)).
					WithArgs(adminID, md.AuditInventoryUpdate, sqlmock.AnyArg(), now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			created:   true,
			threshold: md.DefaultLowStockThreshold,
		},
		{
			name: "UpdateLimit",
			in:   md.TabTypeInput{Name: "iPad", DailyLimitPerUser: 4, LowStockThreshold: &threshold},
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(lockTabTypeByNameQ)).
					WithArgs("iPad").
					WillReturnRows(sqlmock.NewRows(tabTypeCols).AddRow(tabID.String(), "iPad", 2, 5, 5, 10, now))
				mock.ExpectExec(regexp.QuoteMeta(updateTabTypeQ)).
					WithArgs(4, 3, tabID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(createAuditQ)).
					WithArgs(adminID, md.AuditLimitChange, "Daily limit of iPad changed from 2 to 4", now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			threshold: 3,
		},
		{
			name: "LockError",
			in:   md.TabTypeInput{Name: "iPad", DailyLimitPerUser: 4},
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(lockTabTypeByNameQ)).
					WithArgs("iPad").
					WillReturnError(errors.New("lock error"))
				mock.ExpectRollback()
			},
			expectedErr: errors.New("lock error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, created, err := r.UpsertTabType(ctx, tt.in, adminID, now)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.created, created)
				assert.Equal(t, tabID, res.ID)
				assert.Equal(t, tt.in.DailyLimitPerUser, res.DailyLimitPerUser)
				assert.Equal(t, tt.threshold, res.LowStockThreshold)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ForceReturn(t *testing.T) {
	r, mock := newMockRepo(t)

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	adminID := uuid.New()
	devID := uuid.New()
	tabID := uuid.New()
	holder := uuid.New()
	assignmentID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockDeviceBySerialQ)).
		WithArgs("TAB-001").
		WillReturnRows(sqlmock.NewRows(deviceCols).
			AddRow(devID.String(), "TAB-001", tabID.String(), md.StatusAssigned, holder.String(), now.Add(-time.Hour)))
	mock.ExpectExec(regexp.QuoteMeta(deleteChallengeQ)).
		WithArgs(devID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(updateDeviceQ)).
		WithArgs(md.StatusAvailable, nil, nil, devID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(closeAssignmentQ)).
		WithArgs(now, devID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(assignmentID.String(), holder.String()))
	mock.ExpectQuery(regexp.QuoteMeta(releaseStockQ)).
		WithArgs(tabID).
		WillReturnRows(sqlmock.NewRows([]string{"stock_remaining"}).AddRow(5))
	mock.ExpectExec(regexp.QuoteMeta(createEventQ)).
		WithArgs(holder, tabID, devID, assignmentID, -1, md.ActionReturn, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(createAuditQ)).
		WithArgs(adminID, md.AuditForceReturn, "Force returned TAB-001", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := r.ForceReturn(ctx, "TAB-001", adminID, now)
	require.NoError(t, err)
	assert.Equal(t, holder, res.HolderID)
	assert.Equal(t, 5, res.RemainingStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetRepair(t *testing.T) {
	r, mock := newMockRepo(t)

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	adminID := uuid.New()
	devID := uuid.New()
	tabID := uuid.New()
	holder := uuid.New()
	assignmentID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockDeviceBySerialQ)).
		WithArgs("TAB-001").
		WillReturnRows(sqlmock.NewRows(deviceCols).
			AddRow(devID.String(), "TAB-001", tabID.String(), md.StatusAssigned, holder.String(), now.Add(-time.Hour)))
	mock.ExpectExec(regexp.QuoteMeta(deleteChallengeQ)).
		WithArgs(devID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(updateDeviceQ)).
		WithArgs(md.StatusRepair, nil, nil, devID).
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
	mock.ExpectExec(regexp.QuoteMeta(createAuditQ)).
		WithArgs(adminID, md.AuditRepairStatus, "Device TAB-001 sent to repair", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	d, err := r.SetRepair(ctx, "TAB-001", true, adminID, now)
	require.NoError(t, err)
	assert.Equal(t, md.StatusRepair, d.Status)
	assert.Nil(t, d.AssignedTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
