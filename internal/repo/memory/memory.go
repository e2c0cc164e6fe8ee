// Package memory is an in-process implementation of the engine repository.
// A single mutex serializes every operation, which gives each call the same
// all-or-nothing behaviour as a database transaction.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	mu sync.Mutex

	users       map[uuid.UUID]*md.User
	tabTypes    map[uuid.UUID]*md.TabType
	devices     map[uuid.UUID]*md.Device
	assignments map[uuid.UUID]*md.Assignment
	challenges  map[uuid.UUID]*md.ReturnChallenge
	events      []md.ActivityEvent
	audits      []md.AuditTrail
}

func New() *Repository {
	return &Repository{
		users:       make(map[uuid.UUID]*md.User),
		tabTypes:    make(map[uuid.UUID]*md.TabType),
		devices:     make(map[uuid.UUID]*md.Device),
		assignments: make(map[uuid.UUID]*md.Assignment),
		challenges:  make(map[uuid.UUID]*md.ReturnChallenge),
	}
}

// NewWithSeed returns a repository holding the configured admin.
func NewWithSeed(conf config.Config) *Repository {
	r := New()
	if conf.Seed.Password == "" {
		zap.L().Warn("Seed admin password is empty, skipping precreate")
		return r
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(conf.Seed.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Fatal("failed to hash seed password", zap.Error(err))
	}

	if _, err = r.CreateUser(context.Background(), &md.User{
		EmployeeID: conf.Seed.EmployeeID,
		Username:   conf.Seed.Username,
		Password:   string(hash),
		Role:       md.RoleAdmin,
	}); err != nil {
		zap.L().Fatal("failed to precreate admin", zap.Error(err))
	}
	return r
}

func (r *Repository) Close(_ context.Context) error {
	return nil
}

// CreateUser stores u with a generated id.
func (r *Repository) CreateUser(_ context.Context, u *md.User) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.EmployeeID == u.EmployeeID {
			return uuid.Nil, repo.ErrAlreadyExists
		}
	}

	cp := *u
	cp.ID = uuid.New()
	if cp.Role == "" {
		cp.Role = md.RoleStaff
	}
	if cp.Status == "" {
		cp.Status = "active"
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.users[cp.ID] = &cp
	return cp.ID, nil
}

func (r *Repository) GetUserByEmployeeID(_ context.Context, employeeID string) (*md.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.EmployeeID == employeeID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *Repository) GetUserByID(_ context.Context, id uuid.UUID) (*md.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	cp.Password = ""
	return &cp, nil
}

func (r *Repository) findDevice(ref string) *md.Device {
	if id, err := uuid.Parse(ref); err == nil {
		if d, ok := r.devices[id]; ok {
			return d
		}
	}
	for _, d := range r.devices {
		if d.SerialNumber == ref {
			return d
		}
	}
	return nil
}

func (r *Repository) findTabTypeByName(name string) *md.TabType {
	for _, t := range r.tabTypes {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (r *Repository) usedSince(userID, tabID uuid.UUID, since time.Time) int {
	n := 0
	for i := range r.events {
		e := &r.events[i]
		if e.UserID == userID && e.TabTypeID == tabID && e.QuantityDelta > 0 && !e.Timestamp.Before(since) {
			n++
		}
	}
	return n
}

func (r *Repository) activeAssignment(deviceID uuid.UUID) *md.Assignment {
	for _, a := range r.assignments {
		if a.DeviceID == deviceID && a.Status == md.AssignmentActive {
			return a
		}
	}
	return nil
}

func (r *Repository) appendEvent(userID uuid.UUID, d *md.Device, assignmentID uuid.UUID, delta int, action md.Action, now time.Time) {
	r.events = append(r.events, md.ActivityEvent{
		ID:            uuid.New(),
		UserID:        userID,
		TabTypeID:     d.TabTypeID,
		DeviceID:      d.ID,
		AssignmentID:  assignmentID,
		QuantityDelta: delta,
		Action:        action,
		Timestamp:     now,
	})
}

func (r *Repository) appendAudit(a *md.AuditTrail) {
	if a == nil {
		return
	}
	cp := *a
	cp.ID = uuid.New()
	r.audits = append(r.audits, cp)
}

func (r *Repository) username(id uuid.UUID) (string, string) {
	if u, ok := r.users[id]; ok {
		return u.Username, u.EmployeeID
	}
	return "", ""
}
