package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/auth/jwt"
	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/hdl"
	"github.com/JMURv/tab-audit/internal/hdl/http/utils"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Login(t *testing.T) {
	const uri = "/api/token/"
	mock := gomock.NewController(t)
	defer mock.Finish()

	testErr := errors.New("testErr")
	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	uid := uuid.New()
	creds := &dto.LoginRequest{EmployeeID: "E-1", Password: "secret"}

	tests := []struct {
		name       string
		payload    any
		status     int
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "ErrDecodeRequest",
			payload: map[string]any{"employee_id": 1, "password": "secret"},
			status:  http.StatusBadRequest,
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrDecodeRequest.Error(), res.Error)
				assert.Equal(t, "validation", res.Code)
			},
			expect: func() {},
		},
		{
			name:    "ErrMissingPassword",
			payload: map[string]any{"employee_id": "E-1"},
			status:  http.StatusBadRequest,
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Contains(t, res.Error, "password failed on the required rule")
			},
			expect: func() {},
		},
		{
			name:    "ErrInvalidCredentials",
			payload: creds,
			status:  http.StatusUnauthorized,
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, auth.ErrInvalidCredentials.Error(), res.Error)
				assert.Equal(t, "unauthenticated", res.Code)
			},
			expect: func() {
				mctrl.EXPECT().Authenticate(gomock.Any(), creds).Return(nil, auth.ErrInvalidCredentials)
			},
		},
		{
			name:    "StatusInternalServerError",
			payload: creds,
			status:  http.StatusInternalServerError,
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrInternal.Error(), res.Error)
			},
			expect: func() {
				mctrl.EXPECT().Authenticate(gomock.Any(), creds).Return(nil, testErr)
			},
		},
		{
			name:    "Success",
			payload: creds,
			status:  http.StatusOK,
			assertions: func(r *httptest.ResponseRecorder) {
				res := map[string]any{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(&res))
				assert.Equal(t, "access", res["access"])
				assert.Equal(t, "refresh", res["refresh"])
				user, ok := res["user"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "admin", user["role"])
				assert.Equal(t, "E-1", user["employee_id"])
			},
			expect: func() {
				mctrl.EXPECT().Authenticate(gomock.Any(), creds).Return(&dto.LoginResponse{
					Access:  "access",
					Refresh: "refresh",
					User:    dto.UserInfo{ID: uid, Username: "alice", Role: md.RoleAdmin, EmployeeID: "E-1"},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()
			b, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBuffer(b))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			defer func() {
				assert.Nil(t, w.Result().Body.Close())
			}()

			tt.assertions(w)
		})
	}
}

func TestHandler_Refresh(t *testing.T) {
	const uri = "/api/token/refresh/"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	t.Run("InvalidToken", func(t *testing.T) {
		mctrl.EXPECT().Refresh(gomock.Any(), &dto.RefreshRequest{Refresh: "bad"}).Return(nil, jwt.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBufferString(`{"refresh":"bad"}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		mctrl.EXPECT().Refresh(gomock.Any(), &dto.RefreshRequest{Refresh: "good"}).
			Return(&dto.RefreshResponse{Access: "new_access"}, nil)

		req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBufferString(`{"refresh":"good"}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Result().StatusCode)

		res := &dto.RefreshResponse{}
		require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
		assert.Equal(t, "new_access", res.Access)
	})
}
