package config

import "time"

type ctxKey string

const PrincipalKey ctxKey = "principal"

const (
	DashboardCacheTime = time.Second * 5
	TabTypesCacheTime  = time.Minute
	MaxMemory          = 10 << 20 // request body limit
)

const (
	RecentActivityLimit = 10
	AuditTrailLimit     = 20
	UserHistoryLimit    = 20
	LogsLimit           = 100
)

const (
	CSVTimeLayout = "2006-01-02 15:04:05"
	ErrorSpanTag  = "error"
)
