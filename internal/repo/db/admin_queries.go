package db

const provisionStockQ = `
UPDATE tab_types
SET total_provisioned = total_provisioned + 1,
	stock_remaining = stock_remaining + 1
WHERE id = $1
RETURNING name, stock_remaining
`

const createDeviceQ = `
INSERT INTO devices (serial_number, tab_type_id, status)
VALUES ($1, $2, 'available')
RETURNING id
`

const lockTabTypeByNameQ = `
SELECT
	t.id,
	t.name,
	t.daily_limit_per_user,
	t.stock_remaining,
	t.total_provisioned,
	t.low_stock_threshold,
	t.created_at
FROM tab_types t
WHERE t.name = $1
FOR UPDATE
`

const createTabTypeQ = `
INSERT INTO tab_types (name, daily_limit_per_user, low_stock_threshold, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

const updateTabTypeQ = `
UPDATE tab_types
SET daily_limit_per_user = $1, low_stock_threshold = $2
WHERE id = $3
`
