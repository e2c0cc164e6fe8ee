package dto

import md "github.com/JMURv/tab-audit/internal/models"

type InventoryRow struct {
	Name             string `json:"name"`
	StockRemaining   int    `json:"stock_remaining"`
	TotalProvisioned int    `json:"total_provisioned"`
	InUse            int    `json:"in_use"`
}

type LowStockRow struct {
	Name              string `json:"name"`
	StockRemaining    int    `json:"stock_remaining"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

type DashboardStats struct {
	TotalStock         int            `json:"total_stock"`
	TotalProvisioned   int            `json:"total_provisioned"`
	UsedToday          int            `json:"used_today"`
	UsedThisMonth      int            `json:"used_this_month"`
	ActiveLoans        int            `json:"active_loans"`
	PendingReturns     int            `json:"pending_returns"`
	LowStock           []LowStockRow  `json:"low_stock"`
	InventoryBreakdown []InventoryRow `json:"inventory_breakdown"`
}

type DashboardResponse struct {
	Stats          DashboardStats      `json:"stats"`
	Stock          []md.TabType        `json:"stock"`
	ActiveLoans    []md.ActiveLoan     `json:"active_loans"`
	PendingReturns []md.PendingReturn  `json:"pending_returns"`
	RecentActivity []md.ActivityRecord `json:"recent_activity"`
	AuditTrails    []md.AuditRecord    `json:"audit_trails"`
}
