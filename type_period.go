package scout

import (
	"fmt"
	"strings"
)

// Period identifies a reporting window ending "now": a fixed offset
// (day, week, month, quarter-ish multiples), the calendar year to date,
// or the whole history of the portfolio.
type Period int

const (
	OneDay Period = iota
	OneWeek
	OneMonth
	ThreeMonths
	SixMonths
	OneYear
	YearToDate
	InceptionToDate
)

// Periods lists every reporting period, in display order.
func Periods() []Period {
	return []Period{OneDay, OneWeek, OneMonth, ThreeMonths, SixMonths, OneYear, YearToDate, InceptionToDate}
}

// String returns the period key as used by the dashboard ("1d", "ytd", ...).
func (p Period) String() string {
	switch p {
	case OneDay:
		return "1d"
	case OneWeek:
		return "1w"
	case OneMonth:
		return "1m"
	case ThreeMonths:
		return "3m"
	case SixMonths:
		return "6m"
	case OneYear:
		return "1y"
	case YearToDate:
		return "ytd"
	case InceptionToDate:
		return "itd"
	default:
		return "ytd"
	}
}

// Name returns a human readable name for the period.
func (p Period) Name() string {
	switch p {
	case OneDay:
		return "Day"
	case OneWeek:
		return "Week"
	case OneMonth:
		return "Month"
	case ThreeMonths:
		return "3 Months"
	case SixMonths:
		return "6 Months"
	case OneYear:
		return "Year"
	case YearToDate:
		return "Year-to-Date"
	case InceptionToDate:
		return "Inception-to-Date"
	default:
		return "Period"
	}
}

// MarshalText implements encoding.TextMarshaler so maps keyed by Period
// serialize with the dashboard keys.
func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Cutoff returns the last day strictly before the reporting window ending on
// asOf. The window then spans (cutoff, asOf]. For InceptionToDate there is no
// cutoff and ok is false.
//
// For YearToDate the cutoff is December 31st of the previous year, so
// transactions dated January 1st belong to the window.
func (p Period) Cutoff(asOf Date) (cutoff Date, ok bool) {
	switch p {
	case OneDay:
		return asOf.Add(-1), true
	case OneWeek:
		return asOf.Add(-7), true
	case OneMonth:
		return asOf.AddMonth(-1), true
	case ThreeMonths:
		return asOf.AddMonth(-3), true
	case SixMonths:
		return asOf.AddMonth(-6), true
	case OneYear:
		return asOf.AddYear(-1), true
	case YearToDate:
		return asOf.StartOfYear().Add(-1), true
	case InceptionToDate:
		return Date{}, false
	default:
		return asOf.StartOfYear().Add(-1), true
	}
}

// ParsePeriod parses a period key. An unknown key yields YearToDate along with
// an error: callers that only care about rendering can ignore the error and
// still get a safe default, one bad key must not blank the whole dashboard.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1d", "day":
		return OneDay, nil
	case "1w", "week":
		return OneWeek, nil
	case "1m", "month":
		return OneMonth, nil
	case "3m":
		return ThreeMonths, nil
	case "6m":
		return SixMonths, nil
	case "1y", "year":
		return OneYear, nil
	case "ytd":
		return YearToDate, nil
	case "itd", "all", "inception":
		return InceptionToDate, nil
	default:
		return YearToDate, fmt.Errorf("unknown period %q", s)
	}
}
