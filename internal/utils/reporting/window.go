package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// DefaultWindow is used when a request names no window.
const DefaultWindow = domain.WindowMonthly

// ParseWindowKind maps a query value onto a window kind. Empty selects DefaultWindow.
func ParseWindowKind(raw string) (domain.WindowKind, error) {
	switch k := domain.WindowKind(strings.ToLower(strings.TrimSpace(raw))); k {
	case "":
		return DefaultWindow, nil
	case domain.WindowDaily, domain.WindowWeekly, domain.WindowMonthly, domain.WindowYearly, domain.WindowCustom:
		return k, nil
	default:
		return "", apperrors.NewValidationFailedError("window", fmt.Sprintf("unknown window %q", raw))
	}
}

// ParseISODate accepts only strict YYYY-MM-DD calendar days.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(domain.ISODateLayout, s)
	if err != nil || t.Format(domain.ISODateLayout) != s {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

// ValidateWindow checks the custom bounds. Other kinds carry no parameters.
func ValidateWindow(w domain.TimeWindow) error {
	if w.Kind != domain.WindowCustom {
		return nil
	}
	if w.StartDate == "" || w.EndDate == "" {
		return apperrors.NewValidationFailedError("window", "custom window needs both start and end dates")
	}
	start, err := ParseISODate(w.StartDate)
	if err != nil {
		return apperrors.NewValidationFailedError("startDate", err.Error())
	}
	end, err := ParseISODate(w.EndDate)
	if err != nil {
		return apperrors.NewValidationFailedError("endDate", err.Error())
	}
	if end.Before(start) {
		return apperrors.NewValidationFailedError("window", "end date is before start date")
	}
	return nil
}

// StartOfWeek returns midnight of the Sunday on or before now, in now's location.
func StartOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Resolve turns a window into an inclusive date range relative to now.
// Weekly, monthly and yearly ranges are open-ended: they admit every date from
// their start onward, future-dated logs included.
func Resolve(w domain.TimeWindow, now time.Time) (domain.DateRange, error) {
	if err := ValidateWindow(w); err != nil {
		return domain.DateRange{}, err
	}
	today := now.Format(domain.ISODateLayout)
	switch w.Kind {
	case domain.WindowDaily:
		return domain.DateRange{From: today, To: today}, nil
	case domain.WindowWeekly:
		return domain.DateRange{From: StartOfWeek(now).Format(domain.ISODateLayout)}, nil
	case domain.WindowMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return domain.DateRange{From: first.Format(domain.ISODateLayout)}, nil
	case domain.WindowYearly:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return domain.DateRange{From: first.Format(domain.ISODateLayout)}, nil
	case domain.WindowCustom:
		return domain.DateRange{From: w.StartDate, To: w.EndDate}, nil
	default:
		return domain.DateRange{}, apperrors.NewValidationFailedError("window", fmt.Sprintf("unknown window %q", w.Kind))
	}
}

// Contains reports whether an ISO date falls inside the range.
// ISO dates order lexically, so plain string comparison is exact.
func Contains(r domain.DateRange, date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

// WindowLabel is the human label printed on reports and exports.
func WindowLabel(w domain.TimeWindow) string {
	switch w.Kind {
	case domain.WindowCustom:
		return fmt.Sprintf("%s to %s", w.StartDate, w.EndDate)
	case domain.WindowDaily:
		return "Daily"
	case domain.WindowWeekly:
		return "Weekly"
	case domain.WindowMonthly:
		return "Monthly"
	case domain.WindowYearly:
		return "Yearly"
	default:
		return string(w.Kind)
	}
}
