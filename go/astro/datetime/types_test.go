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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	testcases := []struct {
		year, month, day int
		valid            bool
	}{
		{1583, 1, 1, true},
		{1582, 12, 31, false},
		{9999, 12, 31, true},
		{10000, 1, 1, false},
		{2015, 7, 14, true},
		{2015, 0, 14, false},
		{2015, 13, 14, false},
		{2015, 7, 0, false},
		{2015, 7, 32, false},
		{2015, 2, 28, true},
		{2015, 2, 29, false},
		{2016, 2, 29, true},
		{1900, 2, 29, false},
		{2000, 2, 29, true},
		{2015, 4, 31, false},
	}
	for _, tc := range testcases {
		d, err := NewDate(tc.year, tc.month, tc.day)
		if !tc.valid {
			assert.ErrorIs(t, err, ErrRejectedInput, "NewDate(%d, %d, %d)", tc.year, tc.month, tc.day)
			continue
		}
		require.NoError(t, err, "NewDate(%d, %d, %d)", tc.year, tc.month, tc.day)
		assert.Equal(t, tc.year, d.Year())
		assert.Equal(t, tc.month, d.Month())
		assert.Equal(t, tc.day, d.Day())
	}
}

func TestNewOrdinalDate(t *testing.T) {
	d, err := NewOrdinalDate(2015, 195)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 2015, 7, 14), d)

	d, err = NewOrdinalDate(2016, 366)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 2016, 12, 31), d)

	_, err = NewOrdinalDate(2015, 0)
	assert.ErrorIs(t, err, ErrRejectedInput)
	_, err = NewOrdinalDate(2015, 366)
	assert.ErrorIs(t, err, ErrRejectedInput)
	_, err = NewOrdinalDate(2016, 367)
	assert.ErrorIs(t, err, ErrRejectedInput)
}

func TestOrdinalRoundTrip(t *testing.T) {
	for _, year := range []int{2015, 2016} {
		for ordinal := 1; ordinal <= yearLength(year); ordinal++ {
			d, err := NewOrdinalDate(year, ordinal)
			require.NoError(t, err)
			require.Equal(t, ordinal, d.Ordinal(), "%v", d)
		}
	}
}

func TestMJD(t *testing.T) {
	testcases := []struct {
		year, month, day int
		mjd              int
	}{
		{1858, 11, 17, 0},
		{1858, 11, 18, 1},
		{1858, 11, 16, -1},
		{2000, 1, 1, 51544},
		{2010, 1, 4, 55200},
		{2015, 7, 14, 57217},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.mjd, mustDate(t, tc.year, tc.month, tc.day).MJD(),
			"MJD of %04d-%02d-%02d", tc.year, tc.month, tc.day)
	}
}

func TestNextDay(t *testing.T) {
	assert.Equal(t, mustDate(t, 2015, 7, 15), mustDate(t, 2015, 7, 14).NextDay())
	assert.Equal(t, mustDate(t, 2015, 8, 1), mustDate(t, 2015, 7, 31).NextDay())
	assert.Equal(t, mustDate(t, 2016, 1, 1), mustDate(t, 2015, 12, 31).NextDay())
	assert.Equal(t, mustDate(t, 2016, 2, 29), mustDate(t, 2016, 2, 28).NextDay())
	assert.Equal(t, mustDate(t, 2015, 3, 1), mustDate(t, 2015, 2, 28).NextDay())
}

func TestNewWeekDate(t *testing.T) {
	testcases := []struct {
		year, week, day int
		expected        string
	}{
		{2015, 29, 2, "2015-07-14"},
		{2015, 1, 1, "2014-12-29"},
		{2009, 53, 5, "2010-01-01"},
		{2016, 1, 1, "2016-01-04"},
		{2020, 1, 1, "2019-12-30"},
	}
	for _, tc := range testcases {
		d, err := NewWeekDate(tc.year, tc.week, tc.day)
		require.NoError(t, err, "NewWeekDate(%d, %d, %d)", tc.year, tc.week, tc.day)
		assert.Equal(t, tc.expected, d.String(), "NewWeekDate(%d, %d, %d)", tc.year, tc.week, tc.day)
	}

	_, err := NewWeekDate(2016, 53, 1)
	assert.ErrorIs(t, err, ErrRejectedInput, "2016 has 52 weeks")
	_, err = NewWeekDate(2015, 29, 0)
	assert.ErrorIs(t, err, ErrRejectedInput)
	_, err = NewWeekDate(2015, 29, 8)
	assert.ErrorIs(t, err, ErrRejectedInput)
	_, err = NewWeekDate(2015, 0, 1)
	assert.ErrorIs(t, err, ErrRejectedInput)
}

func TestISOWeek(t *testing.T) {
	testcases := []struct {
		date            string
		year, week, day int
	}{
		{"2015-07-14", 2015, 29, 2},
		{"2016-01-01", 2015, 53, 5},
		{"2010-01-01", 2009, 53, 5},
		{"2024-12-30", 2025, 1, 1},
		{"2016-01-04", 2016, 1, 1},
		{"2014-12-29", 2015, 1, 1},
	}
	for _, tc := range testcases {
		d, err := ParseDate(tc.date)
		require.NoError(t, err)
		year, week, day := d.ISOWeek()
		assert.Equal(t, tc.year, year, "%s week-numbering year", tc.date)
		assert.Equal(t, tc.week, week, "%s week", tc.date)
		assert.Equal(t, tc.day, day, "%s weekday", tc.date)
	}
}

func TestISOWeekRoundTrip(t *testing.T) {
	// NewWeekDate inverts ISOWeek on every day of a year straddled by
	// short and long ISO years on both ends.
	d := mustDate(t, 2015, 1, 1)
	for d.Year() < 2017 {
		year, week, day := d.ISOWeek()
		back, err := NewWeekDate(year, week, day)
		require.NoError(t, err, "%v", d)
		require.Equal(t, d, back, "%v", d)
		d = d.NextDay()
	}
}

func TestNewTimeHHMMSS(t *testing.T) {
	testcases := []struct {
		hhmmss, ms int
		valid      bool
		expected   string
	}{
		{0, 0, true, "00:00:00.000"},
		{123456, 789, true, "12:34:56.789"},
		{235959, 999, true, "23:59:59.999"},
		{240000, 0, true, "24:00:00.000"},
		{235960, 500, true, "23:59:60.500"},
		{235960, 999, true, "23:59:60.999"},
		{240000, 1, false, ""},
		{240001, 0, false, ""},
		{250000, 0, false, ""},
		{126000, 0, false, ""},
		{123460, 0, false, ""},
		{123456, -1, false, ""},
		{-1, 0, false, ""},
	}
	for _, tc := range testcases {
		tm, err := NewTimeHHMMSS(tc.hhmmss, tc.ms)
		if !tc.valid {
			assert.ErrorIs(t, err, ErrRejectedInput, "NewTimeHHMMSS(%d, %d)", tc.hhmmss, tc.ms)
			continue
		}
		require.NoError(t, err, "NewTimeHHMMSS(%d, %d)", tc.hhmmss, tc.ms)
		assert.Equal(t, tc.expected, tm.String())
	}
}

func TestNewTimeMillisecondCarry(t *testing.T) {
	// ms == 1000 carries into the seconds, possibly cascading all the
	// way to the end-of-day sentinel.
	tm, err := NewTimeHHMMSS(123456, 1000)
	require.NoError(t, err)
	assert.Equal(t, "12:34:57.000", tm.String())

	tm, err = NewTimeHHMMSS(123459, 1000)
	require.NoError(t, err)
	assert.Equal(t, "12:35:00.000", tm.String())

	tm, err = NewTimeHHMMSS(125959, 1000)
	require.NoError(t, err)
	assert.Equal(t, "13:00:00.000", tm.String())

	tm, err = NewTimeHHMMSS(235959, 1000)
	require.NoError(t, err)
	assert.Equal(t, "24:00:00.000", tm.String())
	assert.True(t, tm.IsEndOfDay())

	// Carrying out of a leap second would need a 25th hour.
	_, err = NewTimeHHMMSS(235960, 1000)
	assert.ErrorIs(t, err, ErrRejectedInput)
}

func TestTimePredicates(t *testing.T) {
	tm, err := NewTimeHHMMSS(235960, 0)
	require.NoError(t, err)
	assert.True(t, tm.IsLeapSecond())
	assert.False(t, tm.IsEndOfDay())

	tm, err = NewTimeHHMMSS(240000, 0)
	require.NoError(t, err)
	assert.False(t, tm.IsLeapSecond())
	assert.True(t, tm.IsEndOfDay())

	tm, err = NewTimeHHMMSS(123456, 789)
	require.NoError(t, err)
	assert.False(t, tm.IsLeapSecond())
	assert.False(t, tm.IsEndOfDay())
	assert.Equal(t, 12, tm.Hour())
	assert.Equal(t, 34, tm.Minute())
	assert.Equal(t, 56, tm.Second())
	assert.Equal(t, 789, tm.Millisecond())
}

func TestNewDateTimeLeapSecond(t *testing.T) {
	leap, err := NewTimeHHMMSS(235960, 0)
	require.NoError(t, err)

	// A leap second is only accepted at the end of the last day of a
	// month.
	for _, date := range []string{"2015-06-30", "2015-07-31", "2016-02-29", "2015-12-31"} {
		d, err := ParseDate(date)
		require.NoError(t, err)
		_, err = NewDateTime(d, leap)
		assert.NoError(t, err, "leap second on %s", date)
	}
	for _, date := range []string{"2015-06-29", "2015-07-01", "2016-02-28", "2015-02-29"} {
		d, derr := ParseDate(date)
		if derr != nil {
			continue
		}
		_, err = NewDateTime(d, leap)
		assert.ErrorIs(t, err, ErrRejectedInput, "leap second on %s", date)
	}
}

func TestNormalizedEndOfDay(t *testing.T) {
	sentinel, err := NewTimeHHMMSS(240000, 0)
	require.NoError(t, err)
	dt, err := NewDateTime(mustDate(t, 2015, 7, 14), sentinel)
	require.NoError(t, err)

	normalized := dt.NormalizedEndOfDay()
	assert.Equal(t, mustDate(t, 2015, 7, 15), normalized.Date())
	assert.Equal(t, Time{}, normalized.Time())

	midnight := BeginningOfDay(mustDate(t, 2015, 7, 14))
	assert.Equal(t, midnight, midnight.NormalizedEndOfDay())
}

func TestDateTimeEqual(t *testing.T) {
	endOfDay, err := ParseDateTime("2015-07-14T24:00:00")
	require.NoError(t, err)
	midnight, err := ParseDateTime("2015-07-15T00:00:00")
	require.NoError(t, err)
	noon, err := ParseDateTime("2015-07-14T12:00:00")
	require.NoError(t, err)

	assert.True(t, endOfDay.Equal(midnight))
	assert.True(t, midnight.Equal(endOfDay))
	assert.True(t, endOfDay.Equal(endOfDay))
	assert.False(t, endOfDay.Equal(noon))
	assert.False(t, midnight.Equal(noon))
}

func TestDateTimeString(t *testing.T) {
	dt, err := ParseDateTime("2015-07-14T12:34:56.789")
	require.NoError(t, err)
	assert.Equal(t, "2015-07-14T12:34:56.789", dt.String())
}
