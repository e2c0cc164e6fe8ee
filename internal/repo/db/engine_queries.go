package db

const lockDeviceByIDQ = `
SELECT d.id, d.serial_number, d.tab_type_id, d.status, d.assigned_to, d.issued_at
FROM devices d
WHERE d.id = $1
FOR UPDATE
`

const lockDeviceBySerialQ = `
SELECT d.id, d.serial_number, d.tab_type_id, d.status, d.assigned_to, d.issued_at
FROM devices d
WHERE d.serial_number = $1
FOR UPDATE
`

const getDeviceByIDQ = `
SELECT d.id, d.serial_number, d.tab_type_id, d.status, d.assigned_to, d.issued_at
FROM devices d
WHERE d.id = $1
`

const getDeviceBySerialQ = `
SELECT d.id, d.serial_number, d.tab_type_id, d.status, d.assigned_to, d.issued_at
FROM devices d
WHERE d.serial_number = $1
`

const lockAvailableDeviceQ = `
SELECT d.id, d.serial_number, d.tab_type_id, d.status, d.assigned_to, d.issued_at
FROM devices d
WHERE d.tab_type_id = $1 AND d.status = 'available'
ORDER BY d.serial_number
LIMIT 1
FOR UPDATE SKIP LOCKED
`

const lockOldestHeldDeviceQ = `
SELECT d.id, d.serial_number, d.tab_type_id, d.status, d.assigned_to, d.issued_at
FROM devices d
WHERE d.assigned_to = $1 AND d.tab_type_id = $2
ORDER BY d.issued_at, d.serial_number
LIMIT 1
FOR UPDATE
`

const lockUserQ = `
SELECT u.id, u.employee_id, u.username, u.role
FROM users u
WHERE u.id = $1
FOR UPDATE
`

const getTabTypeQ = `
SELECT
	t.id,
	t.name,
	t.daily_limit_per_user,
	t.stock_remaining,
	t.total_provisioned,
	t.low_stock_threshold,
	t.created_at
FROM tab_types t
WHERE t.id = $1
`

const countUsedTodayQ = `
SELECT COUNT(*)
FROM activity_events e
WHERE e.user_id = $1 AND e.tab_type_id = $2 AND e.quantity_delta > 0 AND e.timestamp >= $3
`

const reserveStockQ = `
UPDATE tab_types
SET stock_remaining = stock_remaining - 1
WHERE id = $1 AND stock_remaining > 0
RETURNING stock_remaining
`

const releaseStockQ = `
UPDATE tab_types
SET stock_remaining = LEAST(stock_remaining + 1, total_provisioned)
WHERE id = $1
RETURNING stock_remaining
`

const updateDeviceQ = `
UPDATE devices
SET status = $1, assigned_to = $2, issued_at = $3
WHERE id = $4
`

const createAssignmentQ = `
INSERT INTO assignments (device_id, user_id, issued_at, status)
VALUES ($1, $2, $3, 'active')
RETURNING id
`

const closeAssignmentQ = `
UPDATE assignments
SET status = 'returned', returned_at = $1
WHERE device_id = $2 AND status = 'active'
RETURNING id, user_id
`

const createEventQ = `
INSERT INTO activity_events (user_id, tab_type_id, device_id, assignment_id, quantity_delta, action, timestamp)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const createAuditQ = `
INSERT INTO admin_audit_logs (admin_id, action_type, description, timestamp)
VALUES ($1, $2, $3, $4)
`

const upsertChallengeQ = `
INSERT INTO return_challenges (device_id, code, created_at, expires_at, consumed)
VALUES ($1, $2, $3, $4, FALSE)
ON CONFLICT (device_id) DO UPDATE
SET code = EXCLUDED.code,
	created_at = EXCLUDED.created_at,
	expires_at = EXCLUDED.expires_at,
	consumed = FALSE
`

const lockChallengeQ = `
SELECT c.device_id, c.code, c.created_at, c.expires_at, c.consumed
FROM return_challenges c
WHERE c.device_id = $1
FOR UPDATE
`

const consumeChallengeQ = `
UPDATE return_challenges
SET consumed = TRUE
WHERE device_id = $1
`

const deleteChallengeQ = `
DELETE FROM return_challenges
WHERE device_id = $1
`
