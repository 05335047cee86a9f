/*
Copyright 2025 The Astrodate Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package datetime parses and converts civil dates and times of day on
// the proleptic Gregorian calendar: ISO 8601 calendar, ordinal and week
// dates, times with fractional seconds, and Julian Date / Modified
// Julian Date literals. All values are immutable and validated on
// construction; every rejection wraps ErrRejectedInput.
package datetime

import (
	"errors"
	"fmt"

	"astrodate.io/astrodate/go/astro/digits"
)

// ErrRejectedInput is wrapped by every error returned for an input that
// is not a valid representation in any supported grammar. There are no
// partial results: whenever it is returned, the accompanying value is
// the zero value.
var ErrRejectedInput = errors.New("rejected input")

func rejectf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrRejectedInput)...)
}

// The Modified Julian Date epoch, 1858-11-17. The Julian Date of the
// midnight starting that day is 2400000.5.
const (
	mjdEpochYear = 1858
	jdMJDOffset  = 2400000
)

var mjdEpoch = Date{mjdEpochYear, 11, 17}

// A Date is a day on the proleptic Gregorian calendar, between
// 1583-01-01 and 9999-12-31 inclusive. The zero value is not a valid
// date; Dates are obtained from the New*Date and DateFrom* factories or
// from the parsers.
type Date struct {
	year  uint16
	month uint8
	day   uint8
}

// NewDate returns the calendar date year-month-day.
func NewDate(year, month, day int) (Date, error) {
	if year < 1583 || year > 9999 || month < 1 || month > 12 ||
		day < 1 || day > monthLength(year, month) {
		return Date{}, rejectf("invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return Date{uint16(year), uint8(month), uint8(day)}, nil
}

// NewOrdinalDate returns the dayth day of year.
func NewOrdinalDate(year, day int) (Date, error) {
	if day < 1 || day > yearLength(year) {
		return Date{}, rejectf("invalid ordinal date %04d-%03d", year, day)
	}
	jan1, err := NewDate(year, 1, 1)
	if err != nil {
		return Date{}, err
	}
	return addDaysWithinYear(jan1, day-1), nil
}

// NewWeekDate returns the ISO week date year-Wweek-day, with day 1
// being Monday. The result may lie in the year before or after the
// week-numbering year.
func NewWeekDate(year, week, day int) (Date, error) {
	if year < 1583 || year > 9999 || week < 1 || week > weeksInYear(year) || day < 1 || day > 7 {
		return Date{}, rejectf("invalid week date %04d-W%02d-%d", year, week, day)
	}
	return arbitraryOrdinal(year, (week-1)*7+day-1+ordinalOfW011(year))
}

// DateFromYYYYMMDD splits the packed numeral n into its calendar
// fields, so that DateFromYYYYMMDD(20150714) is 2015-07-14.
func DateFromYYYYMMDD(n int64) (Date, error) {
	if n < 0 || n > 9999_99_99 {
		return Date{}, rejectf("packed calendar date %d out of range", n)
	}
	return NewDate(
		int(digits.Range(n, 4, 8)),
		int(digits.Range(n, 2, 4)),
		int(digits.Range(n, 0, 2)))
}

// DateFromYYYYDDD splits the packed numeral n into ordinal date fields.
func DateFromYYYYDDD(n int64) (Date, error) {
	if n < 0 || n > 9999_999 {
		return Date{}, rejectf("packed ordinal date %d out of range", n)
	}
	return NewOrdinalDate(
		int(digits.Range(n, 3, 7)),
		int(digits.Range(n, 0, 3)))
}

// DateFromYYYYWwwD splits the packed numeral n into ISO week date
// fields.
func DateFromYYYYWwwD(n int64) (Date, error) {
	if n < 0 || n > 9999_99_9 {
		return Date{}, rejectf("packed week date %d out of range", n)
	}
	return NewWeekDate(
		int(digits.Range(n, 3, 7)),
		int(digits.Range(n, 1, 3)),
		int(digits.Range(n, 0, 1)))
}

func (d Date) Year() int  { return int(d.year) }
func (d Date) Month() int { return int(d.month) }
func (d Date) Day() int   { return int(d.day) }

// Ordinal returns the day of the year, in [1, 366]. It is recomputed
// from the month and day on every call.
func (d Date) Ordinal() int {
	ordinal := int(d.day)
	for month := 1; month < int(d.month); month++ {
		ordinal += monthLength(int(d.year), month)
	}
	return ordinal
}

// MJD returns the Modified Julian Day number of the date, i.e. the
// number of days since 1858-11-17.
func (d Date) MJD() int {
	return int(daysAtStartOfYear(int(d.year))-daysAtStartOfYear(mjdEpochYear)) +
		d.Ordinal() - mjdEpoch.Ordinal()
}

// NextDay returns the following calendar day, carrying across month and
// year ends.
func (d Date) NextDay() Date {
	if int(d.day) == monthLength(int(d.year), int(d.month)) {
		if d.month == 12 {
			return Date{d.year + 1, 1, 1}
		}
		return Date{d.year, d.month + 1, 1}
	}
	return Date{d.year, d.month, d.day + 1}
}

// ISOWeek returns the ISO 8601 week date of d: the week-numbering year,
// the week in [1, 53] and the weekday in [1, 7] with 1 being Monday.
// The week-numbering year may differ from d.Year() by one around
// January 1st. This is the inverse of NewWeekDate.
func (d Date) ISOWeek() (year, week, day int) {
	year = int(d.year)
	ordinal := d.Ordinal()
	day = modInto(dayOfWeekOnJan1(year)+ordinal-1, 7, 1)
	offset := ordinal - ordinalOfW011(year)
	switch {
	case offset < 0:
		return year - 1, weeksInYear(year - 1), day
	case offset/7+1 > weeksInYear(year):
		return year + 1, 1, day
	}
	return year, offset/7 + 1, day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// A Time is a time of day with millisecond resolution. Valid values are
// ordinary times (hours in [0, 23], minutes and seconds in [0, 59]),
// leap seconds (23:59:60, with any millisecond), and the end-of-day
// sentinel 24:00:00.000, which denotes the same instant as the next
// day's midnight.
type Time struct {
	hour        uint8
	minute      uint8
	second      uint8
	millisecond uint16
}

// newTime applies the carry that arises when millisecond rounding
// yields ms == 1000: it propagates into seconds, and across the 59:59
// boundary into minutes and hours, turning 23:59:59 into the end-of-day
// sentinel.
func newTime(hour, minute, second, millisecond int) Time {
	if millisecond == 1000 {
		millisecond = 0
		second++
		if second == 60 {
			second = 0
			minute++
			if minute == 60 {
				minute = 0
				hour++
			}
		}
	}
	return Time{uint8(hour), uint8(minute), uint8(second), uint16(millisecond)}
}

func (t Time) checked() (Time, error) {
	switch {
	case t.hour == 24 && t.minute == 0 && t.second == 0 && t.millisecond == 0:
		return t, nil
	case t.millisecond <= 999 && t.hour == 23 && t.minute == 59 && t.second == 60:
		return t, nil
	case t.millisecond <= 999 && t.hour <= 23 && t.minute <= 59 && t.second <= 59:
		return t, nil
	}
	return Time{}, rejectf("invalid time %02d:%02d:%02d.%03d", t.hour, t.minute, t.second, t.millisecond)
}

// NewTimeHHMMSS splits the 6-digit packed numeral hhmmss into hours,
// minutes and seconds, applies the millisecond carry rule (ms may be
// 1000, in which case the carry chain can produce the next minute, the
// next hour, or the end-of-day sentinel), and validates the result.
func NewTimeHHMMSS(hhmmss, ms int) (Time, error) {
	if hhmmss < 0 || hhmmss > 99_99_99 {
		return Time{}, rejectf("packed time %d out of range", hhmmss)
	}
	if ms < 0 || ms > 1000 {
		return Time{}, rejectf("millisecond %d out of range", ms)
	}
	n := int64(hhmmss)
	return newTime(
		int(digits.Range(n, 4, 6)),
		int(digits.Range(n, 2, 4)),
		int(digits.Range(n, 0, 2)),
		ms).checked()
}

func (t Time) Hour() int        { return int(t.hour) }
func (t Time) Minute() int      { return int(t.minute) }
func (t Time) Second() int      { return int(t.second) }
func (t Time) Millisecond() int { return int(t.millisecond) }

// IsLeapSecond reports whether t falls within an inserted 61st second.
func (t Time) IsLeapSecond() bool { return t.second == 60 }

// IsEndOfDay reports whether t is the 24:00:00.000 sentinel.
func (t Time) IsEndOfDay() bool { return t.hour == 24 }

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.hour, t.minute, t.second, t.millisecond)
}

// A DateTime is a Date paired with a Time. The julian flag records
// whether the value was written in JD/MJD fractional-day notation; it
// is carried for round-trip fidelity and affects neither validity nor
// equality.
type DateTime struct {
	date   Date
	time   Time
	julian bool
}

// NewDateTime pairs a date with a time. A leap-second time is accepted
// only when date is the last day of its month; this is a simplification
// of real UTC leap-second scheduling, which inserts them only at the
// end of particular months.
func NewDateTime(date Date, t Time) (DateTime, error) {
	return DateTime{date: date, time: t}.checked()
}

// BeginningOfDay returns midnight at the start of date.
func BeginningOfDay(date Date) DateTime {
	return DateTime{date: date}
}

func (dt DateTime) Date() Date   { return dt.date }
func (dt DateTime) Time() Time   { return dt.time }
func (dt DateTime) Julian() bool { return dt.julian }

// NormalizedEndOfDay folds the end-of-day sentinel into the next day's
// midnight; any other value is returned unchanged. This is the
// canonical form used for equality.
func (dt DateTime) NormalizedEndOfDay() DateTime {
	if dt.time.IsEndOfDay() {
		return BeginningOfDay(dt.date.NextDay())
	}
	return dt
}

// Equal reports whether the two values denote the same instant, i.e.
// whether their normalized forms have equal dates and times.
func (dt DateTime) Equal(other DateTime) bool {
	a, b := dt.NormalizedEndOfDay(), other.NormalizedEndOfDay()
	return a.date == b.date && a.time == b.time
}

func (dt DateTime) checked() (DateTime, error) {
	if dt.time.IsLeapSecond() &&
		dt.date.Day() != monthLength(dt.date.Year(), dt.date.Month()) {
		return DateTime{}, rejectf("leap second on %v, which is not the last day of a month", dt.date)
	}
	return dt, nil
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%vT%v", dt.date, dt.time)
}
