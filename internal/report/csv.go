package report

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	md "github.com/JMURv/tab-audit/internal/models"
)

type View string

const (
	ViewClassic  View = "classic"
	ViewDetailed View = "detailed"
)

// ParseView falls back to the classic view for anything unknown.
func ParseView(s string) View {
	if View(s) == ViewDetailed {
		return ViewDetailed
	}
	return ViewClassic
}

var (
	ClassicHeader  = []string{"Status", "Employee Name", "Employee ID", "Device Serial", "Model", "Issued At", "Returned At"}
	DetailedHeader = []string{"Action", "Timestamp", "Employee Name", "Employee ID", "Device Serial", "Model"}
)

// WriteCSV renders records in the requested view. Timestamps are formatted in loc.
func WriteCSV(w io.Writer, view View, records []md.AssignmentRecord, loc *time.Location) error {
	cw := csv.NewWriter(w)

	if view == ViewDetailed {
		if err := cw.Write(DetailedHeader); err != nil {
			return err
		}
		for _, r := range Detailed(records) {
			if err := cw.Write([]string{
				string(r.ActionType),
				formatTime(r.EventTime, loc),
				r.Username,
				r.EmployeeID,
				r.SerialNumber,
				r.TabModel,
			}); err != nil {
				return err
			}
		}
	} else {
		if err := cw.Write(ClassicHeader); err != nil {
			return err
		}
		for _, r := range Classic(records) {
			status, returned := "Active", "Pending"
			if r.Status == md.AssignmentReturned {
				status = "Returned"
			}
			if r.ReturnedAt != nil {
				returned = formatTime(*r.ReturnedAt, loc)
			}

			if err := cw.Write([]string{
				status,
				r.Username,
				r.EmployeeID,
				r.SerialNumber,
				r.TabModel,
				formatTime(r.IssuedAt, loc),
				returned,
			}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(config.CSVTimeLayout)
}
