package ctrl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/JMURv/tab-audit/internal/cache"
	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo/s3"
	"github.com/JMURv/tab-audit/internal/report"
	"github.com/JMURv/tab-audit/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_Dashboard(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, nil, nil, testConfig()).
		WithClock(func() time.Time { return now })

	admin := md.Principal{UserID: uuid.New(), Role: md.RoleAdmin}

	t.Run("CacheHit", func(t *testing.T) {
		cached := &dto.DashboardResponse{Stats: dto.DashboardStats{TotalStock: 42}}
		mockCache.EXPECT().GetToStruct(gomock.Any(), dashboardKey, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dest any) error {
				*dest.(*dto.DashboardResponse) = *cached
				return nil
			},
		)

		res, err := ctrl.Dashboard(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, 42, res.Stats.TotalStock)
	})

	t.Run("CacheMiss", func(t *testing.T) {
		tabs := []md.TabType{
			{Name: "iPad", StockRemaining: 3, TotalProvisioned: 12, LowStockThreshold: 10},
			{Name: "Galaxy", StockRemaining: 20, TotalProvisioned: 20, LowStockThreshold: 10},
		}
		loans := []md.ActiveLoan{
			{EmployeeID: "E-1", TabName: "iPad", SerialNumber: "TAB-001"},
			{EmployeeID: "E-1", TabName: "iPad", SerialNumber: "TAB-002"},
			{EmployeeID: "E-2", TabName: "iPad", SerialNumber: "TAB-003"},
		}
		pending := []md.PendingReturn{
			{SerialNumber: "TAB-004", ExpiresAt: now.Add(time.Minute)},
			{SerialNumber: "TAB-005", ExpiresAt: now.Add(-time.Minute)},
		}

		mockCache.EXPECT().GetToStruct(gomock.Any(), dashboardKey, gomock.Any()).Return(cache.ErrNotFoundInCache)
		mockRepo.EXPECT().ListTabTypes(gomock.Any()).Return(tabs, nil)
		mockRepo.EXPECT().ListActiveLoans(gomock.Any()).Return(loans, nil)
		mockRepo.EXPECT().ListPendingReturns(gomock.Any()).Return(pending, nil)
		mockRepo.EXPECT().ListActivity(gomock.Any(), md.ActivityFilter{Limit: config.RecentActivityLimit}).
			Return([]md.ActivityRecord{}, nil)
		mockRepo.EXPECT().ListAuditTrails(gomock.Any(), config.AuditTrailLimit).Return([]md.AuditRecord{}, nil)
		mockRepo.EXPECT().UsageStats(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&md.UsageStats{UsedToday: 4, UsedThisMonth: 30}, nil)
		mockCache.EXPECT().Set(gomock.Any(), config.DashboardCacheTime, dashboardKey, gomock.Any())

		res, err := ctrl.Dashboard(ctx, admin)
		require.NoError(t, err)

		assert.Equal(t, 23, res.Stats.TotalStock)
		assert.Equal(t, 32, res.Stats.TotalProvisioned)
		assert.Equal(t, 4, res.Stats.UsedToday)
		assert.Equal(t, 30, res.Stats.UsedThisMonth)
		assert.Equal(t, 3, res.Stats.ActiveLoans)
		assert.Equal(t, 2, res.Stats.PendingReturns)
		require.Len(t, res.Stats.LowStock, 1)
		assert.Equal(t, "iPad", res.Stats.LowStock[0].Name)
		assert.Equal(t, 9, res.Stats.InventoryBreakdown[0].InUse)

		assert.Equal(t, 2, res.ActiveLoans[0].Balance)
		assert.Equal(t, 1, res.ActiveLoans[2].Balance)
		assert.False(t, res.PendingReturns[0].Expired)
		assert.True(t, res.PendingReturns[1].Expired)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockCache.EXPECT().GetToStruct(gomock.Any(), dashboardKey, gomock.Any()).Return(cache.ErrNotFoundInCache)
		mockRepo.EXPECT().ListTabTypes(gomock.Any()).Return(nil, errors.New("database error")).AnyTimes()
		mockRepo.EXPECT().ListActiveLoans(gomock.Any()).Return(nil, nil).AnyTimes()
		mockRepo.EXPECT().ListPendingReturns(gomock.Any()).Return(nil, nil).AnyTimes()
		mockRepo.EXPECT().ListActivity(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		mockRepo.EXPECT().ListAuditTrails(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		mockRepo.EXPECT().UsageStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(&md.UsageStats{}, nil).AnyTimes()

		_, err := ctrl.Dashboard(ctx, admin)
		assert.EqualError(t, err, "database error")
	})
}

func TestController_Logs(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, nil, nil, testConfig())

	staff := md.Principal{UserID: uuid.New(), Role: md.RoleStaff}
	admin := md.Principal{UserID: uuid.New(), Role: md.RoleAdmin}
	returned := now.Add(time.Hour)
	records := []md.AssignmentRecord{
		{ID: uuid.New(), SerialNumber: "TAB-001", Status: md.AssignmentReturned, IssuedAt: now, ReturnedAt: &returned},
	}

	t.Run("StaffOwnOnly", func(t *testing.T) {
		mockRepo.EXPECT().ListAssignmentRecords(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f md.LogFilter) ([]md.AssignmentRecord, error) {
				require.NotNil(t, f.UserID)
				assert.Equal(t, staff.UserID, *f.UserID)
				assert.Equal(t, "TAB", f.Search)
				assert.Equal(t, config.LogsLimit, f.Limit)
				return records, nil
			},
		)

		rows, err := ctrl.ClassicLogs(ctx, staff, "TAB")
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("AdminDetailed", func(t *testing.T) {
		mockRepo.EXPECT().ListAssignmentRecords(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f md.LogFilter) ([]md.AssignmentRecord, error) {
				assert.Nil(t, f.UserID)
				return records, nil
			},
		)

		rows, err := ctrl.DetailedLogs(ctx, admin, "")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, report.Returned, rows[0].ActionType)
	})

	t.Run("ExportAdminOnly", func(t *testing.T) {
		err := ctrl.ExportCSV(ctx, staff, report.ViewClassic, &bytes.Buffer{})
		assert.ErrorIs(t, err, lifecycle.ErrAdminOnly)
	})

	t.Run("Export", func(t *testing.T) {
		mockRepo.EXPECT().ListAssignmentRecords(gomock.Any(), md.LogFilter{}).Return(records, nil)

		buf := &bytes.Buffer{}
		require.NoError(t, ctrl.ExportCSV(ctx, admin, report.ViewClassic, buf))
		assert.Contains(t, buf.String(), "TAB-001")
		assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
	})
}

func TestController_ArchiveCSV(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	admin := md.Principal{UserID: uuid.New(), Role: md.RoleAdmin}

	t.Run("Disabled", func(t *testing.T) {
		ctrl := New(mockAuth, mockRepo, mockCache, nil, nil, testConfig())
		_, err := ctrl.ArchiveCSV(ctx, admin, report.ViewClassic)
		assert.ErrorIs(t, err, ErrArchiveDisabled)
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil, testConfig()).
			WithClock(func() time.Time { return now })

		mockRepo.EXPECT().ListAssignmentRecords(gomock.Any(), md.LogFilter{}).Return([]md.AssignmentRecord{}, nil)
		mockS3.EXPECT().UploadFile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *s3.UploadFileRequest) (string, error) {
				assert.Equal(t, "exports/detailed-20250301-100000.csv", req.Key)
				assert.Equal(t, "text/csv", req.ContentType)
				return "http://minio/bucket/" + req.Key, nil
			},
		)
		mockRepo.EXPECT().CreateAuditTrail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *md.AuditTrail) error {
				assert.Equal(t, md.AuditExportArchived, a.ActionType)
				assert.Equal(t, admin.UserID, a.AdminID)
				return nil
			},
		)
		mockCache.EXPECT().Delete(gomock.Any(), dashboardKey)

		res, err := ctrl.ArchiveCSV(ctx, admin, report.ViewDetailed)
		require.NoError(t, err)
		assert.Equal(t, "http://minio/bucket/exports/detailed-20250301-100000.csv", res.URL)
	})

	t.Run("UploadError", func(t *testing.T) {
		ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil, testConfig())

		mockRepo.EXPECT().ListAssignmentRecords(gomock.Any(), md.LogFilter{}).Return([]md.AssignmentRecord{}, nil)
		mockS3.EXPECT().UploadFile(gomock.Any(), gomock.Any()).Return("", errors.New("s3 error"))

		_, err := ctrl.ArchiveCSV(ctx, admin, report.ViewClassic)
		assert.EqualError(t, err, "s3 error")
	})
}
