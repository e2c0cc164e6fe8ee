package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/dto"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/otp"
	"github.com/JMURv/tab-audit/internal/repo/s3"
	"github.com/JMURv/tab-audit/internal/report"
	"github.com/google/uuid"
)

type AppRepo interface {
	userRepo
	engineRepo
	adminRepo
	reportRepo
}

type AppCtrl interface {
	authCtrl
	engineCtrl
	adminCtrl
	reportCtrl
}

type userRepo interface {
	GetUserByEmployeeID(ctx context.Context, employeeID string) (*md.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*md.User, error)
	CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error)
}

type engineRepo interface {
	GetDevice(ctx context.Context, ref string) (*md.Device, error)
	Checkout(ctx context.Context, ref string, userID uuid.UUID, dayStart, now time.Time) (*md.CheckoutResult, error)
	LogUsage(ctx context.Context, tabID, userID uuid.UUID, dayStart, now time.Time) (*md.CheckoutResult, error)
	ReturnDirect(ctx context.Context, tabID, userID, adminID uuid.UUID, now time.Time) (*md.ReturnResult, error)
	InitiateReturn(ctx context.Context, ref string, p md.Principal, ch md.ReturnChallenge) (*md.Device, error)
	VerifyReturn(ctx context.Context, ref, code string, now time.Time) (*md.ReturnResult, error)
}

type adminRepo interface {
	CancelPendingReturn(ctx context.Context, ref string, adminID uuid.UUID, now time.Time) (*md.Device, error)
	ForceReturn(ctx context.Context, ref string, adminID uuid.UUID, now time.Time) (*md.ReturnResult, error)
	SetRepair(ctx context.Context, ref string, repair bool, adminID uuid.UUID, now time.Time) (*md.Device, error)
	ProvisionDevice(ctx context.Context, serial string, tabID, adminID uuid.UUID, now time.Time) (*md.ProvisionResult, error)
	UpsertTabType(ctx context.Context, in md.TabTypeInput, adminID uuid.UUID, now time.Time) (*md.TabType, bool, error)
	CreateAuditTrail(ctx context.Context, a *md.AuditTrail) error
}

type reportRepo interface {
	ListTabTypes(ctx context.Context) ([]md.TabType, error)
	ListPossessions(ctx context.Context, userID uuid.UUID) ([]md.Possession, error)
	ListActiveLoans(ctx context.Context) ([]md.ActiveLoan, error)
	ListPendingReturns(ctx context.Context) ([]md.PendingReturn, error)
	ListActivity(ctx context.Context, f md.ActivityFilter) ([]md.ActivityRecord, error)
	ListAuditTrails(ctx context.Context, limit int) ([]md.AuditRecord, error)
	ListAssignmentRecords(ctx context.Context, f md.LogFilter) ([]md.AssignmentRecord, error)
	UsageStats(ctx context.Context, dayStart, monthStart time.Time) (*md.UsageStats, error)
}

type authCtrl interface {
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
}

type engineCtrl interface {
	Assign(ctx context.Context, p md.Principal, req *dto.DeviceRequest) (*dto.AssignResponse, error)
	CheckIn(ctx context.Context, p md.Principal, req *dto.CheckInRequest) (*dto.CheckInResponse, error)
	InitiateReturn(ctx context.Context, p md.Principal, req *dto.DeviceRequest) (*dto.MessageResponse, error)
	VerifyReturn(ctx context.Context, p md.Principal, req *dto.VerifyReturnRequest) (*dto.VerifyReturnResponse, error)
}

type adminCtrl interface {
	RegisterUser(ctx context.Context, p md.Principal, req *dto.RegisterUserRequest) (*dto.UserInfo, error)
	UpsertTabType(ctx context.Context, p md.Principal, req *dto.AddTabRequest) (*dto.AddTabResponse, error)
	ProvisionDevice(ctx context.Context, p md.Principal, req *dto.ProvisionRequest) (*dto.ProvisionResponse, error)
	SetRepair(ctx context.Context, p md.Principal, req *dto.RepairRequest) (*dto.DeviceResponse, error)
	CancelPendingReturn(ctx context.Context, p md.Principal, req *dto.DeviceRequest) (*dto.MessageResponse, error)
	ForceReturn(ctx context.Context, p md.Principal, req *dto.DeviceRequest) (*dto.ForceReturnResponse, error)
}

type reportCtrl interface {
	ListTabTypes(ctx context.Context) ([]dto.TabTypeResponse, error)
	ListPossessions(ctx context.Context, p md.Principal) ([]md.Possession, error)
	UserHistory(ctx context.Context, p md.Principal) ([]report.HistoryRow, error)
	Dashboard(ctx context.Context, p md.Principal) (*dto.DashboardResponse, error)
	ClassicLogs(ctx context.Context, p md.Principal, search string) ([]report.ClassicRow, error)
	DetailedLogs(ctx context.Context, p md.Principal, search string) ([]report.DetailedRow, error)
	ExportCSV(ctx context.Context, p md.Principal, view report.View, w io.Writer) error
	ArchiveCSV(ctx context.Context, p md.Principal, view report.View) (*dto.ArchiveResponse, error)
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
	Attempts(ctx context.Context, key string) (int64, error)
	IncrAttempts(ctx context.Context, key string, window time.Duration) (int64, error)
}

type S3Service interface {
	UploadFile(ctx context.Context, req *s3.UploadFileRequest) (string, error)
}

type Controller struct {
	au    auth.Core
	repo  AppRepo
	cache CacheService
	s3    S3Service
	otp   otp.Port
	conf  config.Config
	loc   *time.Location
	now   func() time.Time
}

// New builds the controller. s3 may be nil when archiving is disabled.
func New(au auth.Core, repo AppRepo, cache CacheService, s3 S3Service, otp otp.Port, conf config.Config) *Controller {
	return &Controller{
		au:    au,
		repo:  repo,
		cache: cache,
		s3:    s3,
		otp:   otp,
		conf:  conf,
		loc:   conf.Server.Location(),
		now:   time.Now,
	}
}

// WithClock replaces the time source.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}
