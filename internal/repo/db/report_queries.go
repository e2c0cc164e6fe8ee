package db

const userGetByEmployeeIDQ = `
SELECT u.id, u.employee_id, u.username, u.password, u.role, u.status, u.created_at
FROM users u
WHERE u.employee_id = $1
`

const userGetByIDQ = `
SELECT u.id, u.employee_id, u.username, u.role, u.status, u.created_at
FROM users u
WHERE u.id = $1
`

const userCreateQ = `
INSERT INTO users (employee_id, username, password, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (employee_id) DO NOTHING
`

const listTabTypesQ = `
SELECT
	t.id,
	t.name,
	t.daily_limit_per_user,
	t.stock_remaining,
	t.total_provisioned,
	t.low_stock_threshold,
	t.created_at
FROM tab_types t
ORDER BY t.name
`

const listPossessionsQ = `
SELECT
	d.id AS device_id,
	d.serial_number,
	t.id AS tab_type_id,
	t.name AS tab_name,
	d.status,
	d.issued_at
FROM devices d
JOIN tab_types t ON t.id = d.tab_type_id
WHERE d.assigned_to = $1
ORDER BY d.issued_at DESC, d.serial_number
`

const listActiveLoansQ = `
SELECT
	a.id AS assignment_id,
	u.username,
	u.employee_id,
	t.name AS tab_name,
	d.serial_number,
	d.status AS device_status,
	a.issued_at
FROM assignments a
JOIN devices d ON d.id = a.device_id
JOIN tab_types t ON t.id = d.tab_type_id
JOIN users u ON u.id = a.user_id
WHERE a.status = 'active'
ORDER BY a.issued_at DESC
`

const listPendingReturnsQ = `
SELECT
	d.id AS device_id,
	d.serial_number,
	t.name AS tab_name,
	u.username,
	u.employee_id,
	c.code,
	c.created_at,
	c.expires_at
FROM devices d
JOIN tab_types t ON t.id = d.tab_type_id
JOIN users u ON u.id = d.assigned_to
JOIN return_challenges c ON c.device_id = d.id AND c.consumed = FALSE
WHERE d.status = 'pending_return'
ORDER BY c.created_at DESC
`

const listAuditTrailsQ = `
SELECT
	u.username AS admin_username,
	l.action_type,
	l.description,
	l.timestamp
FROM admin_audit_logs l
JOIN users u ON u.id = l.admin_id
ORDER BY l.timestamp DESC
LIMIT $1
`

const usageStatsQ = `
SELECT
	COUNT(*) FILTER (WHERE e.timestamp >= $1) AS used_today,
	COUNT(*) FILTER (WHERE e.timestamp >= $2) AS used_this_month
FROM activity_events e
WHERE e.quantity_delta > 0
`

const userRegisterQ = `
INSERT INTO users (employee_id, username, password, role, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
