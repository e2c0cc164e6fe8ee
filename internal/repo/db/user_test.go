package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateUser(t *testing.T) {
	r, mock := newMockRepo(t)

	id := uuid.New()
	u := &md.User{EmployeeID: "E-1", Username: "alice", Password: "hash"}

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userRegisterQ)).
					WithArgs("E-1", "alice", "hash", md.RoleStaff, "active").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
			},
		},
		{
			name: "AlreadyExists",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userRegisterQ)).
					WithArgs("E-1", "alice", "hash", md.RoleStaff, "active").
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			expectedErr: repo.ErrAlreadyExists,
		},
		{
			name: "QueryError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userRegisterQ)).
					WithArgs("E-1", "alice", "hash", md.RoleStaff, "active").
					WillReturnError(errors.New("query error"))
			},
			expectedErr: errors.New("query error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			res, err := r.CreateUser(context.Background(), u)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, res)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
