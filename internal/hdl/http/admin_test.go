package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/hdl/http/utils"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_ProvisionDevice(t *testing.T) {
	const uri = "/api/admin/devices/"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	admin := md.Principal{UserID: uuid.New(), Role: md.RoleAdmin}
	tabID := uuid.New()
	payload := &dto.ProvisionRequest{SerialNumber: "TAB-010", TabID: tabID}

	tests := []struct {
		name       string
		payload    any
		status     int
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "ErrMissingTab",
			payload: map[string]any{"serial_number": "TAB-010"},
			status:  http.StatusBadRequest,
			expect:  func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, "tab_id failed on the required rule", res.Error)
			},
		},
		{
			name:    "SerialTaken",
			payload: payload,
			status:  http.StatusConflict,
			expect: func() {
				mctrl.EXPECT().ProvisionDevice(gomock.Any(), admin, payload).Return(nil, lifecycle.ErrSerialTaken)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, lifecycle.ErrSerialTaken.Error(), res.Error)
				assert.Equal(t, "conflict", res.Code)
			},
		},
		{
			name:    "TabNotFound",
			payload: payload,
			status:  http.StatusNotFound,
			expect: func() {
				mctrl.EXPECT().ProvisionDevice(gomock.Any(), admin, payload).Return(nil, lifecycle.ErrTabTypeNotFound)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "Created",
			payload: payload,
			status:  http.StatusCreated,
			expect: func() {
				mctrl.EXPECT().ProvisionDevice(gomock.Any(), admin, payload).Return(&dto.ProvisionResponse{
					Message:  "Provisioned TAB-010 as iPad",
					Device:   md.Device{SerialNumber: "TAB-010", TabTypeID: tabID, Status: md.StatusAvailable},
					NewStock: 6,
				}, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &dto.ProvisionResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, 6, res.NewStock)
				assert.Equal(t, "TAB-010", res.Device.SerialNumber)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorize(mauth, "admin", admin)
			tt.expect()

			b, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBuffer(b))
			req.Header.Set("Authorization", "Bearer admin")

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

func TestHandler_AdminOnly(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	staff := md.Principal{UserID: uuid.New(), Role: md.RoleStaff}

	tests := []struct {
		name   string
		method string
		uri    string
		body   string
		expect func()
	}{
		{
			name:   "AddTab",
			method: http.MethodPost,
			uri:    "/api/admin/add-tab/",
			body:   `{"name":"iPad","limit":2}`,
			expect: func() {
				mctrl.EXPECT().UpsertTabType(gomock.Any(), staff, gomock.Any()).Return(nil, lifecycle.ErrAdminOnly)
			},
		},
		{
			name:   "Repair",
			method: http.MethodPost,
			uri:    "/api/admin/devices/repair/",
			body:   `{"device_id":"TAB-001","repair":true}`,
			expect: func() {
				mctrl.EXPECT().SetRepair(gomock.Any(), staff, gomock.Any()).Return(nil, lifecycle.ErrAdminOnly)
			},
		},
		{
			name:   "CancelReturn",
			method: http.MethodPost,
			uri:    "/api/admin/return/cancel/",
			body:   `{"device_id":"TAB-001"}`,
			expect: func() {
				mctrl.EXPECT().CancelPendingReturn(gomock.Any(), staff, gomock.Any()).Return(nil, lifecycle.ErrAdminOnly)
			},
		},
		{
			name:   "ForceReturn",
			method: http.MethodPost,
			uri:    "/api/admin/return/force/",
			body:   `{"device_id":"TAB-001"}`,
			expect: func() {
				mctrl.EXPECT().ForceReturn(gomock.Any(), staff, gomock.Any()).Return(nil, lifecycle.ErrAdminOnly)
			},
		},
		{
			name:   "RegisterUser",
			method: http.MethodPost,
			uri:    "/api/admin/users/",
			body:   `{"employee_id":"E-9","username":"dave","password":"secret1"}`,
			expect: func() {
				mctrl.EXPECT().RegisterUser(gomock.Any(), staff, gomock.Any()).Return(nil, lifecycle.ErrAdminOnly)
			},
		},
		{
			name:   "Dashboard",
			method: http.MethodGet,
			uri:    "/api/admin/dashboard/",
			expect: func() {
				mctrl.EXPECT().Dashboard(gomock.Any(), staff).Return(nil, lifecycle.ErrAdminOnly)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorize(mauth, "staff", staff)
			tt.expect()

			req := httptest.NewRequest(tt.method, tt.uri, bytes.NewBufferString(tt.body))
			req.Header.Set("Authorization", "Bearer staff")

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			require.Equal(t, http.StatusForbidden, w.Result().StatusCode)

			res := &utils.ErrorResponse{}
			require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
			assert.Equal(t, lifecycle.ErrAdminOnly.Error(), res.Error)
			assert.Equal(t, "unauthorized", res.Code)
		})
	}
}
