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

package datetime

import "fmt"

// Arithmetico-calendrical utility functions on the proleptic Gregorian
// calendar. All day counts are 1-based and relative to 0000-01-01; no
// date before 1583-01-01 is ever produced for callers, but the counts
// themselves extend back to year 0 so that the cycle decomposition
// stays simple.

var nonLeapYearMonthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func yearLength(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func monthLength(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return nonLeapYearMonthLengths[month-1]
}

// modInto reduces x modulo m into [offset, offset+m-1].
func modInto(x, m, offset int) int {
	r := (x - offset) % m
	if r < 0 {
		r += m
	}
	return r + offset
}

// dayOfWeekOnJan1 returns the weekday of January 1st of year, in [1, 7]
// with 1 being Monday, using Gauss's congruence.
func dayOfWeekOnJan1(year int) int {
	y := year - 1
	return modInto(1+5*(y%4)+4*(y%100)+6*(y%400), 7, 1)
}

// weeksInYear returns the number of ISO weeks in year: 53 if the year
// starts on a Thursday, or is a leap year starting on a Wednesday,
// otherwise 52.
func weeksInYear(year int) int {
	if dayOfWeekOnJan1(year) == 4 || (isLeapYear(year) && dayOfWeekOnJan1(year) == 3) {
		return 53
	}
	return 52
}

// ordinalOfW011 returns the ordinal in year of the Monday that starts
// ISO week 1 of year. The result is in [-2, 4]; values in [-2, 0] mean
// that week 1 starts in year-1.
func ordinalOfW011(year int) int {
	return modInto(2-dayOfWeekOnJan1(year), 7, -2)
}

const (
	daysIn1Year    = 365
	daysIn4Years   = daysIn1Year*4 + 1
	daysIn100Years = daysIn4Years*25 - 1
	daysIn400Years = daysIn100Years*4 + 1
)

// daysToYearOrdinal returns the Gregorian year containing the dth day
// since 0000-01-01 (1-based, d > 0) and the ordinal of that day within
// the year. It is the exact inverse of daysAtStartOfYear: for every
// d > 0, daysAtStartOfYear(year) + ordinal - 1 == d.
//
// The decomposition works on whole 400-year cycles aligned at year 1;
// within a cycle, the year is recovered by a division corrected for the
// 4-, 100- and 400-year leap irregularities so that the result is exact
// on every day, including the leap days at the cycle seams.
func daysToYearOrdinal(d int64) (year, ordinal int) {
	if d <= 0 {
		panic(fmt.Sprintf("daysToYearOrdinal(%d): non-positive day count", d))
	}
	if d <= daysIn1Year {
		// Year 0 carries no leap day in this day-numbering scheme; it
		// is far outside the supported range and exists only so that
		// the arithmetic below can assume d > daysIn1Year.
		return 0, int(d)
	}
	n := d - daysIn1Year - 1
	cycle := n / daysIn400Years
	r := n % daysIn400Years
	y := (r - r/(daysIn4Years-1) + r/daysIn100Years - r/(daysIn400Years-1)) / daysIn1Year
	ordinal = int(r-(daysIn1Year*y+y/4-y/100)) + 1
	return int(400*cycle + y + 1), ordinal
}

// daysAtStartOfYear returns the number of days since 0000-01-01 on
// January 1st of year. daysToYearOrdinal is its exact inverse.
func daysAtStartOfYear(year int) int64 {
	if year <= 0 {
		panic(fmt.Sprintf("daysAtStartOfYear(%d): non-positive year", year))
	}
	y := int64(year)
	return 1 + y*365 + (y-1)/4 - (y-1)/100 + (y-1)/400
}

// addDaysWithinYear returns date advanced by days, carrying across
// month boundaries. The caller guarantees that the result stays within
// the same year.
func addDaysWithinYear(date Date, days int) Date {
	if days < 0 {
		panic(fmt.Sprintf("addDaysWithinYear(%v, %d): negative day count", date, days))
	}
	year, month, day := date.Year(), date.Month(), date.Day()
	for day+days > monthLength(year, month) {
		if month > 11 {
			panic(fmt.Sprintf("addDaysWithinYear(%v, %d): result leaves the year", date, days))
		}
		days -= monthLength(year, month) - day + 1
		month++
		day = 1
	}
	return Date{uint16(year), uint8(month), uint8(day + days)}
}

// arbitraryOrdinal returns the dayth day of year, where day may be
// non-positive or exceed the length of year, in which case the result
// lies in an adjacent year. It rejects inputs that resolve outside the
// supported date range.
func arbitraryOrdinal(year, day int) (Date, error) {
	d := daysAtStartOfYear(year) + int64(day) - 1
	if d <= 0 {
		return Date{}, rejectf("day %d of year %d is before the supported range", day, year)
	}
	y, ordinal := daysToYearOrdinal(d)
	return NewOrdinalDate(y, ordinal)
}
