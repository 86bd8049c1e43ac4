package search

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Relative period tokens accepted by the search tool.
const (
	PeriodLast7Days              = "last_7_days"
	PeriodLast30Days             = "last_30_days"
	PeriodCurrentMonth           = "current_month"
	PeriodLastMonth              = "last_month"
	PeriodCurrentAccountingMonth = "current_accounting_month"
	PeriodLastAccountingMonth    = "last_accounting_month"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateFormat is returned when an explicit bound does not parse as
// YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("invalid date format, please use YYYY-MM-DD")

// ResolveDateRange maps a relative period token, or an explicit start/end
// date pair, to the (created_at:gt, created_at:lt) bounds of the JotForm
// submission filter. Bounds are formatted as "YYYY-MM-DD 00:00:00"; an
// absent bound is returned as the empty string.
//
// The lt bound is exclusive: one day is added to the inclusive end date so
// that a strict less-than comparison covers the full last day. That
// adjustment happens exactly once, here.
//
// The accounting periods treat startDay as the day-of-month that opens an
// accounting month; values outside [1,28] fall back to 1. today only needs
// its date part and is injected by the caller so period resolution stays
// deterministic under test.
func ResolveDateRange(period, startDate, endDate string, startDay int, today time.Time) (string, string, error) {
	if period != "" {
		start, end, err := resolvePeriod(strings.ToLower(period), startDay, midnight(today))
		if err != nil {
			return "", "", err
		}
		return formatBound(start), formatBound(end.AddDate(0, 0, 1)), nil
	}

	var gt, lt string
	if startDate != "" {
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return "", "", ErrInvalidDateFormat
		}
		gt = formatBound(start)
	}
	if endDate != "" {
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return "", "", ErrInvalidDateFormat
		}
		lt = formatBound(end.AddDate(0, 0, 1))
	}
	return gt, lt, nil
}

// resolvePeriod returns the inclusive [start, end] date range for a period
// token.
func resolvePeriod(period string, startDay int, today time.Time) (time.Time, time.Time, error) {
	if startDay < 1 || startDay > 28 {
		startDay = 1
	}
	switch period {
	case PeriodLast7Days:
		return today.AddDate(0, 0, -7), today, nil
	case PeriodLast30Days:
		return today.AddDate(0, 0, -30), today, nil
	case PeriodCurrentMonth:
		return firstOfMonth(today), today, nil
	case PeriodLastMonth:
		end := firstOfMonth(today).AddDate(0, 0, -1)
		return firstOfMonth(end), end, nil
	case PeriodCurrentAccountingMonth:
		// The end bound is "today", not the true end of the accounting
		// period, mirroring the behavior callers already depend on.
		return accountingMonthStart(today, startDay), today, nil
	case PeriodLastAccountingMonth:
		current := accountingMonthStart(today, startDay)
		return current.AddDate(0, -1, 0), current.AddDate(0, 0, -1), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period specified: %s", period)
	}
}

// accountingMonthStart returns the start date of the accounting month that
// contains today. With startDay capped at 28 the month arithmetic never
// overflows into a neighboring month.
func accountingMonthStart(today time.Time, startDay int) time.Time {
	start := time.Date(today.Year(), today.Month(), startDay, 0, 0, 0, 0, today.Location())
	if today.Day() < startDay {
		start = start.AddDate(0, -1, 0)
	}
	return start
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func formatBound(t time.Time) string {
	return t.Format(dateLayout) + " 00:00:00"
}
