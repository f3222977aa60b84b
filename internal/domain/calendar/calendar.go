// Package calendar holds the only date comparison logic of the bot.
//
// Every component that needs to know whether a record falls on a given day,
// or how far away its next occurrence is, must go through this package.
// Feb 29 records are observed on Feb 28 in non-leap years.
package calendar

import (
	"fmt"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

// daysInMonth uses a leap year so Feb 29 is accepted.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ValidMonthDay reports whether (month, day) is a storable birthday.
func ValidMonthDay(month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth[month]
}

// OccurrenceIn returns the day the record is celebrated in year, at midnight UTC.
func OccurrenceIn(record entity.AnniversaryRecord, year int) time.Time {
	month, day := record.Month, record.Day
	if record.IsLeapDay() && !IsLeap(year) {
		day = 28
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// IsAnniversaryOn reports whether the record is celebrated on ref's calendar day.
// The calendar day of ref is taken in ref's own location.
func IsAnniversaryOn(record entity.AnniversaryRecord, ref time.Time) bool {
	occ := OccurrenceIn(record, ref.Year())
	return occ.Month() == ref.Month() && occ.Day() == ref.Day()
}

// DaysUntilNext returns the number of days from ref to the next occurrence,
// 0 when the occurrence is today.
func DaysUntilNext(record entity.AnniversaryRecord, ref time.Time) int {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	next := OccurrenceIn(record, ref.Year())
	if next.Before(today) {
		next = OccurrenceIn(record, ref.Year()+1)
	}
	return int(next.Sub(today).Hours() / 24)
}

// Display formats a month/day pair as "4th July".
func Display(month, day int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%02d-%02d", month, day)
	}
	return fmt.Sprintf("%d%s %s", day, ordinalSuffix(day), time.Month(month).String())
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
