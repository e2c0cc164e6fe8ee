package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t     *testing.T
	base  string
	token string
}

func (c *client) do(method, uri string, body any, dst any) int {
	c.t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.base+uri, buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if dst != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp.StatusCode
}

func login(t *testing.T, base, employeeID, password string) *client {
	c := &client{t: t, base: base}
	res := map[string]any{}
	status := c.do(http.MethodPost, "/api/token/", map[string]string{
		"employee_id": employeeID,
		"password":    password,
	}, &res)
	require.Equal(t, http.StatusOK, status)

	c.token = res["access"].(string)
	return c
}

func TestVerifiedReturnFlow(t *testing.T) {
	ts, conf, cleanup := setupTestServer()
	t.Cleanup(func() {
		cleanup(t)
	})

	t.Run("Health", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	admin := login(t, ts.URL, conf.Seed.EmployeeID, conf.Seed.Password)

	tab := map[string]any{}
	require.Equal(t, http.StatusOK, admin.do(http.MethodPost, "/api/admin/add-tab/", map[string]any{
		"name":  "iPad",
		"limit": 1,
	}, &tab))
	tabID := tab["tab"].(map[string]any)["id"].(string)

	for _, serial := range []string{"TAB-001", "TAB-002"} {
		require.Equal(t, http.StatusCreated, admin.do(http.MethodPost, "/api/admin/devices/", map[string]any{
			"serial_number": serial,
			"tab_id":        tabID,
		}, nil))
	}

	require.Equal(t, http.StatusConflict, admin.do(http.MethodPost, "/api/admin/devices/", map[string]any{
		"serial_number": "TAB-001",
		"tab_id":        tabID,
	}, nil))

	require.Equal(t, http.StatusCreated, admin.do(http.MethodPost, "/api/admin/users/", map[string]any{
		"employee_id": "E-100",
		"username":    "alice",
		"password":    "alice-secret",
	}, nil))
	staff := login(t, ts.URL, "E-100", "alice-secret")

	t.Run("Assign", func(t *testing.T) {
		res := map[string]any{}
		require.Equal(t, http.StatusOK, staff.do(http.MethodPost, "/api/assign/", map[string]string{"device_id": "TAB-001"}, &res))
		assert.Equal(t, "iPad TAB-001 assigned successfully", res["message"])
		assert.EqualValues(t, 1, res["remaining_stock"])

		errRes := map[string]any{}
		require.Equal(t, http.StatusBadRequest, staff.do(http.MethodPost, "/api/assign/", map[string]string{"device_id": "TAB-002"}, &errRes))
		assert.Equal(t, "quota_exceeded", errRes["code"])
		assert.Equal(t, "Daily limit of 1 reached.", errRes["error"])
	})

	t.Run("StaffCannotReadDashboard", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, staff.do(http.MethodGet, "/api/admin/dashboard/", nil, nil))
	})

	t.Run("VerifiedReturn", func(t *testing.T) {
		require.Equal(t, http.StatusOK, staff.do(http.MethodPost, "/api/return/initiate/", map[string]string{"device_id": "TAB-001"}, nil))

		dash := map[string]any{}
		require.Equal(t, http.StatusOK, admin.do(http.MethodGet, "/api/admin/dashboard/", nil, &dash))
		pending := dash["pending_returns"].([]any)
		require.Len(t, pending, 1)
		code := pending[0].(map[string]any)["otp_code"].(string)
		require.Len(t, code, conf.OTP.Length)

		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}
		errRes := map[string]any{}
		require.Equal(t, http.StatusBadRequest, admin.do(http.MethodPost, "/api/return/verify/", map[string]string{
			"device_id": "TAB-001",
			"otp_code":  wrong,
		}, &errRes))
		assert.Equal(t, "otp_invalid", errRes["code"])

		res := map[string]any{}
		require.Equal(t, http.StatusOK, admin.do(http.MethodPost, "/api/return/verify/", map[string]string{
			"device_id": "TAB-001",
			"otp_code":  code,
			"condition": "good",
		}, &res))
		assert.Equal(t, true, res["success"])

		require.Equal(t, http.StatusBadRequest, admin.do(http.MethodPost, "/api/return/verify/", map[string]string{
			"device_id": "TAB-001",
			"otp_code":  code,
		}, nil))
	})

	t.Run("Dashboard", func(t *testing.T) {
		dash := map[string]any{}
		require.Equal(t, http.StatusOK, admin.do(http.MethodGet, "/api/admin/dashboard/", nil, &dash))
		stats := dash["stats"].(map[string]any)
		assert.EqualValues(t, 2, stats["total_stock"])
		assert.EqualValues(t, 2, stats["total_provisioned"])
		assert.EqualValues(t, 1, stats["used_today"])
		assert.EqualValues(t, 0, stats["active_loans"])
	})

	t.Run("Logs", func(t *testing.T) {
		rows := make([]map[string]any, 0)
		require.Equal(t, http.StatusOK, staff.do(http.MethodGet, "/api/logs/?view=detailed", nil, &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Returned", rows[0]["action_type"])
		assert.Equal(t, "Checked Out", rows[1]["action_type"])
	})

	t.Run("ExportCSV", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/admin/export-csv/", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+admin.token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(string(body), "\n"))
		assert.Contains(t, string(body), "TAB-001")
	})

	t.Run("Archive", func(t *testing.T) {
		res := map[string]any{}
		require.Equal(t, http.StatusOK, admin.do(http.MethodPost, "/api/admin/export-csv/archive/", nil, &res))
		assert.Contains(t, res["url"], "/"+conf.S3.Bucket+"/exports/classic-")
	})
}
