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

import (
	"strings"

	"astrodate.io/astrodate/go/astro/digits"
)

// Parsing proceeds in two phases: scanDate/scanTime classify a literal
// (phase 1), and the methods below validate the classified shape
// against one grammar and construct the value (phase 2).

// ParseDate parses an ISO 8601 date literal: a calendar date (YYYYMMDD
// or YYYY-MM-DD), an ordinal date (YYYYDDD or YYYY-DDD), or a week date
// (YYYYWwwD or YYYY-Www-D).
func ParseDate(s string) (Date, error) {
	p, err := scanDate(s)
	if err != nil {
		return Date{}, err
	}
	return p.isoDate(s)
}

// ParseTime parses an ISO 8601 time literal: hhmmss or hh:mm:ss, with
// an optional fractional suffix introduced by '.' or ','. Fractional
// digits beyond the third are truncated; at most 9 are accepted.
func ParseTime(s string) (Time, error) {
	p, err := scanTime(s)
	if err != nil {
		return Time{}, err
	}
	return p.isoTime(s)
}

// ParseDateTime parses a combined date-time literal: "<date>T<time>"
// (ISO 8601), "JD<integer>[.<fraction>]", or "MJD<integer>[.<fraction>]".
// A Julian Date integer denotes noon, a Modified Julian Date integer
// midnight; a missing fraction yields that instant.
func ParseDateTime(s string) (DateTime, error) {
	// Hyphens appear only in extended dates and colons only in extended
	// times, so this rejects literals mixing basic and extended formats.
	if strings.ContainsRune(s, '-') != strings.ContainsRune(s, ':') {
		return DateTime{}, rejectf("mixed basic and extended formats in %q", s)
	}
	switch {
	case strings.HasPrefix(s, "JD"):
		return parseJulianDateTime(s, s[len("JD"):], true)
	case strings.HasPrefix(s, "MJD"):
		return parseJulianDateTime(s, s[len("MJD"):], false)
	}

	ti := strings.IndexByte(s, 'T')
	if ti < 0 {
		return DateTime{}, rejectf("no T separator in date-time %q", s)
	}
	date, err := ParseDate(s[:ti])
	if err != nil {
		return DateTime{}, err
	}
	t, err := ParseTime(s[ti+1:])
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(date, t)
}

// parseJulianDateTime parses the body of a JD or MJD literal. The first
// fractional digit both belongs to the time fraction and decides, for
// JD, which civil day the integer part falls on: the JD epoch is
// noon-based, so fractions below .5 are still on the previous civil
// day.
func parseJulianDateTime(s, body string, jd bool) (DateTime, error) {
	intPart, frac := body, "0"
	ffd := byte('0')
	if dot := strings.IndexByte(body, '.'); dot >= 0 {
		if dot == len(body)-1 {
			return DateTime{}, rejectf("empty day fraction in %q", s)
		}
		intPart, frac = body[:dot], body[dot+1:]
		ffd = frac[0]
	}

	dp, err := scanDate(intPart)
	if err != nil {
		return DateTime{}, err
	}
	tp, err := scanTime(frac)
	if err != nil {
		return DateTime{}, err
	}

	var date Date
	var t Time
	if jd {
		if date, err = dp.jdDate(s, ffd); err != nil {
			return DateTime{}, err
		}
		if t, err = tp.jdTime(s); err != nil {
			return DateTime{}, err
		}
	} else {
		if date, err = dp.mjdDate(s); err != nil {
			return DateTime{}, err
		}
		if t, err = tp.mjdTime(s); err != nil {
			return DateTime{}, err
		}
	}
	return DateTime{date: date, time: t, julian: true}, nil
}

// isoDate validates the classified shape against the three ISO date
// grammars, dispatching on the digit count.
func (p dateParts) isoDate(s string) (Date, error) {
	switch {
	case p.digitCount == 8 && !p.hasW:
		if p.hyphens != 0 && !(p.hyphens == 2 && p.firstHyphen == 4 && p.secondHyphen == 7) {
			return Date{}, rejectf("misplaced hyphens in calendar date %q", s)
		}
		return DateFromYYYYMMDD(p.digits)
	case p.digitCount == 7 && p.hasW:
		basic := p.hyphens == 0 && p.wIndex == 4
		extended := p.hyphens == 2 && p.firstHyphen == 4 && p.wIndex == 5 && p.secondHyphen == 8
		if !basic && !extended {
			return Date{}, rejectf("malformed week date %q", s)
		}
		return DateFromYYYYWwwD(p.digits)
	case p.digitCount == 7:
		if p.hyphens != 0 && !(p.hyphens == 1 && p.firstHyphen == 4) {
			return Date{}, rejectf("misplaced hyphens in ordinal date %q", s)
		}
		return DateFromYYYYDDD(p.digits)
	}
	return Date{}, rejectf("date %q does not match any supported grammar", s)
}

// jdDate interprets the digits as the integer part of a Julian Date.
// ffd is the first fractional digit: at or above '5' the instant has
// passed the midnight following the noon epoch, so it falls on the
// civil day numbered by the integer part; below '5' it is still on the
// previous civil day.
func (p dateParts) jdDate(s string, ffd byte) (Date, error) {
	if p.digitCount == 0 || p.hyphens != 0 || p.hasW || ffd < '0' || ffd > '9' {
		return Date{}, rejectf("malformed Julian Date %q", s)
	}
	offset := p.digits - jdMJDOffset
	if ffd < '5' {
		offset--
	}
	return arbitraryOrdinal(mjdEpochYear, mjdEpoch.Ordinal()+int(offset))
}

// mjdDate interprets the digits as the integer part of a Modified
// Julian Date, a day count from the midnight starting 1858-11-17.
func (p dateParts) mjdDate(s string) (Date, error) {
	if p.digitCount == 0 || p.hyphens != 0 || p.hasW {
		return Date{}, rejectf("malformed Modified Julian Date %q", s)
	}
	return arbitraryOrdinal(mjdEpochYear, mjdEpoch.Ordinal()+int(p.digits))
}

// isoTime validates the classified shape against the ISO time grammar:
// six whole digits, colons absent or at indices 2 and 5, and a decimal
// mark exactly when there are fractional digits, at index 6 (basic) or
// 8 (extended).
func (p timeParts) isoTime(s string) (Time, error) {
	if p.digitCount < 6 || p.digitCount > 15 {
		return Time{}, rejectf("time %q does not match any supported grammar", s)
	}
	if p.colons != 0 && !(p.colons == 2 && p.firstColon == 2 && p.secondColon == 5) {
		return Time{}, rejectf("misplaced colons in time %q", s)
	}
	switch {
	case p.digitCount == 6 && !p.hasMark:
	case p.hasMark && p.colons == 0 && p.markIndex == 6:
	case p.hasMark && p.colons != 0 && p.markIndex == 8:
	default:
		return Time{}, rejectf("misplaced decimal mark in time %q", s)
	}

	// The fractional digits become milliseconds: left-padded when there
	// are fewer than three, truncated when there are more.
	frac := p.digitCount - 6
	var ms int64
	if frac <= 3 {
		ms = digits.ShiftLeft(digits.Range(p.digits, 0, frac), 3-frac)
	} else {
		ms = digits.ShiftRight(digits.Range(p.digits, 0, frac), frac-3)
	}
	return NewTimeHHMMSS(int(digits.Range(p.digits, frac, p.digitCount)), int(ms))
}

// jdTime interprets the digits as the fractional part of a Julian Date.
// The half day separating the noon-based JD epoch from civil midnight
// is folded into the digit string: the leading digit is shifted by 5
// before the fraction is converted.
func (p timeParts) jdTime(s string) (Time, error) {
	if p.colons != 0 || p.hasMark {
		return Time{}, rejectf("malformed Julian Date fraction in %q", s)
	}
	if p.digitCount < 1 || p.digitCount > 14 {
		return Time{}, rejectf("unsupported Julian Date fraction length in %q", s)
	}
	ffd := digits.Range(p.digits, p.digitCount-1, p.digitCount)
	rest := digits.Range(p.digits, 0, p.digitCount-1)
	if ffd >= 5 {
		ffd -= 5
	} else {
		ffd += 5
	}
	return jdFractionToTime(digits.ShiftLeft(ffd, p.digitCount-1)+rest, p.digitCount)
}

// mjdTime interprets the digits as the fractional part of a Modified
// Julian Date, which is already midnight-based.
func (p timeParts) mjdTime(s string) (Time, error) {
	if p.colons != 0 || p.hasMark {
		return Time{}, rejectf("malformed Modified Julian Date fraction in %q", s)
	}
	return jdFractionToTime(p.digits, p.digitCount)
}

// jdFractionToTime converts a day fraction, given as digitCount decimal
// digits with an implicit leading decimal point, into a time of day.
// Each unit is obtained by multiplying the remaining fraction by the
// next conversion factor and splitting off the integer part, on exact
// integers throughout; only the final millisecond is rounded.
func jdFractionToTime(frac int64, digitCount int) (Time, error) {
	if digitCount > 14 {
		return Time{}, rejectf("day fraction of %d digits exceeds the supported precision", digitCount)
	}
	hour := digits.Range(24*frac, digitCount, digitCount+2)
	minute := digits.Range(60*digits.Range(24*frac, 0, digitCount), digitCount, digitCount+2)
	second := digits.Range(60*digits.Range(60*24*frac, 0, digitCount), digitCount, digitCount+2)
	ms := jdRoundedMilliseconds(frac, digitCount)
	return newTime(int(hour), int(minute), int(second), int(ms)).checked()
}

// jdRoundedMilliseconds extracts the millisecond field of a day
// fraction. A day is 86'400'000 ms and 86'400 is a multiple of 100, so
// fractions of up to two digits cannot reach the millisecond place and
// fractions of up to five digits convert exactly; beyond that the
// result is rounded half-up from the next digit.
func jdRoundedMilliseconds(frac int64, digitCount int) int64 {
	seconds := 60 * 60 * 24 * frac
	switch {
	case digitCount <= 2:
		return 0
	case digitCount <= 5:
		return digits.Range(seconds, digitCount-3, digitCount)
	default:
		return (digits.Range(seconds, digitCount-4, digitCount) + 5) / 10
	}
}
