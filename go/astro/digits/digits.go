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

// Package digits manipulates non-negative decimal integers as sequences
// of digit fields, so that composite numerals like YYYYMMDD can be split
// into their fields without re-parsing substrings.
package digits

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned by Accumulate when appending a digit would
// exceed the int64 range.
var ErrOverflow = errors.New("overflow")

// Range returns the number formed by the end-begin increasingly
// significant digits of x, starting from the digit of the 10**begin
// place. Range(1234, 1, 3) is 23.
//
// The arguments must satisfy x >= 0 and 0 <= begin <= end, with
// end-begin at most 18; violations are programming errors.
func Range(x int64, begin, end int) int64 {
	if x < 0 || begin < 0 || begin > end || end-begin > 18 {
		panic(fmt.Sprintf("digits.Range(%d, %d, %d): invalid digit range", x, begin, end))
	}
	for i := 0; i < begin; i++ {
		x /= 10
	}
	mod := int64(1)
	for i := begin; i < end; i++ {
		mod *= 10
	}
	return x % mod
}

// ShiftLeft returns x * 10**count.
func ShiftLeft(x int64, count int) int64 {
	if count < 0 {
		panic(fmt.Sprintf("digits.ShiftLeft(%d, %d): negative count", x, count))
	}
	for i := 0; i < count; i++ {
		x *= 10
	}
	return x
}

// ShiftRight returns x / 10**count.
func ShiftRight(x int64, count int) int64 {
	if count < 0 {
		panic(fmt.Sprintf("digits.ShiftRight(%d, %d): negative count", x, count))
	}
	for i := 0; i < count; i++ {
		x /= 10
	}
	return x
}

// Accumulate appends the decimal digit c to x, returning x*10 + c.
// It fails with ErrOverflow instead of wrapping around when the result
// would not fit in an int64. c must be an ASCII digit.
func Accumulate(x int64, c byte) (int64, error) {
	if c < '0' || c > '9' {
		panic(fmt.Sprintf("digits.Accumulate: %q is not a digit", c))
	}
	d := int64(c - '0')
	if x > (math.MaxInt64-d)/10 {
		return x, fmt.Errorf("cannot accumulate digit %q onto %d: %w", c, x, ErrOverflow)
	}
	return x*10 + d, nil
}
