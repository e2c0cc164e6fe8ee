package lifecycle

import (
	"fmt"
	"time"

	md "github.com/JMURv/tab-audit/internal/models"
)

// CheckDailyLimit fails when the user already used the type limit times today.
func CheckDailyLimit(t *md.TabType, usedToday int) error {
	if usedToday >= t.DailyLimitPerUser {
		return ErrDailyLimitExceeded.WithMsg(
			fmt.Sprintf("Daily limit of %d reached.", t.DailyLimitPerUser),
		)
	}
	return nil
}

// Reserve applies the in-process form of the ledger reservation. SQL
// repositories do the same with a conditional UPDATE.
func Reserve(t *md.TabType, usedToday int) error {
	if err := CheckDailyLimit(t, usedToday); err != nil {
		return err
	}

	if t.StockRemaining <= 0 {
		return ErrOutOfStock
	}

	t.StockRemaining--
	return nil
}

// Release returns one unit to stock, never above the provisioned total.
func Release(t *md.TabType) {
	if t.StockRemaining < t.TotalProvisioned {
		t.StockRemaining++
	}
}

// Provision registers one more physical unit of the type.
func Provision(t *md.TabType) {
	t.TotalProvisioned++
	t.StockRemaining++
}

// DayStart returns local midnight of now in loc.
func DayStart(now time.Time, loc *time.Location) time.Time {
	l := now.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

// MonthStart returns local midnight of the first day of now's month in loc.
func MonthStart(now time.Time, loc *time.Location) time.Time {
	l := now.In(loc)
	return time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, loc)
}
