package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func dayStart() time.Time {
	return lifecycle.DayStart(now, time.UTC)
}

type fixture struct {
	r      *Repository
	admin  uuid.UUID
	staff  uuid.UUID
	tab    *md.TabType
	serial string
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	r := New()

	admin, err := r.CreateUser(ctx, &md.User{EmployeeID: "ADMIN-001", Username: "admin", Role: md.RoleAdmin})
	require.NoError(t, err)
	staff, err := r.CreateUser(ctx, &md.User{EmployeeID: "E-1", Username: "alice"})
	require.NoError(t, err)

	tab, created, err := r.UpsertTabType(ctx, md.TabTypeInput{Name: "iPad", DailyLimitPerUser: 2}, admin, now)
	require.NoError(t, err)
	require.True(t, created)

	_, err = r.ProvisionDevice(ctx, "TAB-001", tab.ID, admin, now)
	require.NoError(t, err)

	return fixture{r: r, admin: admin, staff: staff, tab: tab, serial: "TAB-001"}
}

func TestNewWithSeed(t *testing.T) {
	conf := config.Config{Seed: config.SeedConfig{EmployeeID: "ADMIN-001", Username: "admin", Password: "secret"}}
	r := NewWithSeed(conf)

	u, err := r.GetUserByEmployeeID(context.Background(), "ADMIN-001")
	require.NoError(t, err)
	assert.Equal(t, md.RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))

	empty := NewWithSeed(config.Config{})
	_, err = empty.GetUserByEmployeeID(context.Background(), "ADMIN-001")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestRepository_CreateUserDuplicate(t *testing.T) {
	f := setup(t)
	_, err := f.r.CreateUser(context.Background(), &md.User{EmployeeID: "E-1", Username: "other"})
	assert.ErrorIs(t, err, repo.ErrAlreadyExists)
}

func TestRepository_CheckoutAndVerify(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	res, err := f.r.Checkout(ctx, f.serial, f.staff, dayStart(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, res.RemainingStock)
	assert.Equal(t, md.StatusAssigned, res.Device.Status)

	_, err = f.r.Checkout(ctx, f.serial, f.admin, dayStart(), now)
	assert.ErrorIs(t, err, lifecycle.ErrDeviceNotAvailable)

	ch := md.ReturnChallenge{Code: "111111", CreatedAt: now, ExpiresAt: now.Add(15 * time.Minute)}
	d, err := f.r.InitiateReturn(ctx, f.serial, md.Principal{UserID: f.staff, Role: md.RoleStaff}, ch)
	require.NoError(t, err)
	assert.Equal(t, md.StatusPendingReturn, d.Status)

	pending, err := f.r.ListPendingReturns(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "111111", pending[0].OTPCode)

	_, err = f.r.VerifyReturn(ctx, f.serial, "222222", now.Add(time.Minute))
	assert.ErrorIs(t, err, lifecycle.ErrOtpMismatch)

	ret, err := f.r.VerifyReturn(ctx, res.Device.ID.String(), "111111", now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, f.staff, ret.HolderID)
	assert.Equal(t, 1, ret.RemainingStock)

	_, err = f.r.VerifyReturn(ctx, f.serial, "111111", now.Add(time.Minute))
	assert.ErrorIs(t, err, lifecycle.ErrOtpConsumed)

	records, err := f.r.ListAssignmentRecords(ctx, md.LogFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, md.AssignmentReturned, records[0].Status)
	require.NotNil(t, records[0].ReturnedAt)

	activity, err := f.r.ListActivity(ctx, md.ActivityFilter{UserID: &f.staff})
	require.NoError(t, err)
	require.Len(t, activity, 2)
	assert.Equal(t, -1, activity[0].QuantityDelta)
	assert.Equal(t, 1, activity[1].QuantityDelta)
}

func TestRepository_LogUsagePicksLowestSerial(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.r.ProvisionDevice(ctx, "TAB-000", f.tab.ID, f.admin, now)
	require.NoError(t, err)

	res, err := f.r.LogUsage(ctx, f.tab.ID, f.staff, dayStart(), now)
	require.NoError(t, err)
	assert.Equal(t, "TAB-000", res.Device.SerialNumber)
	assert.Equal(t, 1, res.RemainingStock)

	res, err = f.r.LogUsage(ctx, f.tab.ID, f.staff, dayStart(), now)
	require.NoError(t, err)
	assert.Equal(t, "TAB-001", res.Device.SerialNumber)

	_, err = f.r.LogUsage(ctx, f.tab.ID, f.staff, dayStart(), now)
	assert.ErrorIs(t, err, lifecycle.ErrDailyLimitExceeded)

	_, err = f.r.LogUsage(ctx, f.tab.ID, f.admin, dayStart(), now)
	assert.ErrorIs(t, err, lifecycle.ErrOutOfStock)
}

func TestRepository_ReturnDirect(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.r.ReturnDirect(ctx, f.tab.ID, f.staff, f.admin, now)
	assert.ErrorIs(t, err, lifecycle.ErrNothingToReturn)

	_, err = f.r.Checkout(ctx, f.serial, f.staff, dayStart(), now)
	require.NoError(t, err)

	res, err := f.r.ReturnDirect(ctx, f.tab.ID, f.staff, f.admin, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, res.RemainingStock)
	assert.Equal(t, md.StatusAvailable, res.Device.Status)

	audits, err := f.r.ListAuditTrails(ctx, 20)
	require.NoError(t, err)
	require.NotEmpty(t, audits)
	assert.Equal(t, md.AuditDirectReturn, audits[0].ActionType)
	assert.Equal(t, "admin", audits[0].AdminUsername)
}

func TestRepository_SetRepairClosesAssignment(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.r.Checkout(ctx, f.serial, f.staff, dayStart(), now)
	require.NoError(t, err)

	d, err := f.r.SetRepair(ctx, f.serial, true, f.admin, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, md.StatusRepair, d.Status)

	loans, err := f.r.ListActiveLoans(ctx)
	require.NoError(t, err)
	assert.Empty(t, loans)

	_, err = f.r.Checkout(ctx, f.serial, f.staff, dayStart(), now)
	assert.ErrorIs(t, err, lifecycle.ErrDeviceNotAvailable)

	tabs, err := f.r.ListTabTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, tabs[0].StockRemaining)

	_, err = f.r.SetRepair(ctx, f.serial, false, f.admin, now.Add(2*time.Hour))
	require.NoError(t, err)

	res, err := f.r.Checkout(ctx, f.serial, f.staff, dayStart(), now.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, res.RemainingStock)
}

func TestRepository_GetDevice(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	d, err := f.r.GetDevice(ctx, f.serial)
	require.NoError(t, err)

	for _, ref := range []string{d.ID.String(), strings.ToUpper(d.ID.String()), "urn:uuid:" + d.ID.String()} {
		got, err := f.r.GetDevice(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)
	}

	_, err = f.r.GetDevice(ctx, "TAB-404")
	assert.ErrorIs(t, err, lifecycle.ErrDeviceNotFound)
}

func TestRepository_UpsertTabTypeUpdates(t *testing.T) {
	f := setup(t)
	threshold := 1

	tab, created, err := f.r.UpsertTabType(
		context.Background(),
		md.TabTypeInput{Name: "iPad", DailyLimitPerUser: 5, LowStockThreshold: &threshold},
		f.admin, now,
	)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, f.tab.ID, tab.ID)
	assert.Equal(t, 5, tab.DailyLimitPerUser)
	assert.Equal(t, 1, tab.LowStockThreshold)
	assert.Equal(t, 1, tab.StockRemaining)
}

func TestRepository_ProvisionDuplicateSerial(t *testing.T) {
	f := setup(t)
	_, err := f.r.ProvisionDevice(context.Background(), f.serial, f.tab.ID, f.admin, now)
	assert.ErrorIs(t, err, repo.ErrAlreadyExists)

	_, err = f.r.ProvisionDevice(context.Background(), "TAB-999", uuid.New(), f.admin, now)
	assert.ErrorIs(t, err, lifecycle.ErrTabTypeNotFound)
}
