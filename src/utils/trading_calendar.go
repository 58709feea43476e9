package utils

import (
	"log"
	"time"

	"github.com/scmhub/calendar"
)

// TradingCalendar answers trading-day questions using scmhub/calendar.
// The simulated universe is US equities, so only XNYS is consulted.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

func NewTradingCalendar() *TradingCalendar {
	// scmhub/calendar.GetCalendar returns a calendar by MIC (ISO 10383)
	cal := calendar.GetCalendar("xnys")
	if cal == nil {
		log.Printf("WARNING: Failed to load calendar for MIC 'xnys'. Using simple fallback (Mon-Fri).")
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC // Worst case
		}
		return &TradingCalendar{Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{Calendar: cal, Fallback: false, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

// IsTradingDay reports whether the exchange trades on the given date.
// Weekends are always closed; holidays are closed when the calendar loaded.
func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsHoliday reports a weekday on which the exchange is nonetheless closed.
func (tc *TradingCalendar) IsHoliday(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	return !tc.IsTradingDay(date)
}
