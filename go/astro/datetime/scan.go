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

import "astrodate.io/astrodate/go/astro/digits"

// scanner is a forward-only cursor over a literal. Both parsers make a
// single pass; there is no backtracking. Reading or advancing past the
// end is a programming error.
type scanner struct {
	s string
	i int
}

func (sc *scanner) atEnd() bool { return sc.i >= len(sc.s) }

func (sc *scanner) cur() byte {
	if sc.atEnd() {
		panic("scanner: read past end of input")
	}
	return sc.s[sc.i]
}

func (sc *scanner) advance() {
	if sc.atEnd() {
		panic("scanner: advance past end of input")
	}
	sc.i++
}

func (sc *scanner) index() int { return sc.i }

// dateParts classifies a date literal: the number formed by its digits,
// the digit count, and the count and positions of its hyphens and of
// the 'W' marker. Classification is decoupled from shape validation: a
// lexically clean string can still fail to match any date grammar.
type dateParts struct {
	digits       int64
	digitCount   int
	hyphens      int
	firstHyphen  int
	secondHyphen int
	hasW         bool
	wIndex       int
}

// scanDate reads a date literal to its end. It fails if the literal
// contains anything but decimal digits, at most two hyphens and at most
// one 'W', or if the digits overflow an int64.
func scanDate(s string) (dateParts, error) {
	p := dateParts{firstHyphen: -1, secondHyphen: -1, wIndex: -1}
	for sc := (scanner{s: s}); !sc.atEnd(); sc.advance() {
		switch c := sc.cur(); {
		case c == '-':
			switch p.hyphens {
			case 0:
				p.firstHyphen = sc.index()
			case 1:
				p.secondHyphen = sc.index()
			default:
				return dateParts{}, rejectf("more than two hyphens in date %q", s)
			}
			p.hyphens++
		case c == 'W':
			if p.hasW {
				return dateParts{}, rejectf("more than one W in date %q", s)
			}
			p.hasW = true
			p.wIndex = sc.index()
		case c >= '0' && c <= '9':
			var err error
			if p.digits, err = digits.Accumulate(p.digits, c); err != nil {
				return dateParts{}, rejectf("date %q: %v", s, err)
			}
			p.digitCount++
		default:
			return dateParts{}, rejectf("unexpected character %q in date %q", c, s)
		}
	}
	return p, nil
}

// timeParts classifies a time literal: the number formed by its digits,
// the digit count, and the count and positions of its colons and of the
// decimal mark ('.' or ',').
type timeParts struct {
	digits      int64
	digitCount  int
	colons      int
	firstColon  int
	secondColon int
	hasMark     bool
	markIndex   int
}

// scanTime reads a time literal to its end. It fails if the literal
// contains anything but decimal digits, at most two colons and at most
// one decimal mark, or if the digits overflow an int64.
func scanTime(s string) (timeParts, error) {
	p := timeParts{firstColon: -1, secondColon: -1, markIndex: -1}
	for sc := (scanner{s: s}); !sc.atEnd(); sc.advance() {
		switch c := sc.cur(); {
		case c == ':':
			switch p.colons {
			case 0:
				p.firstColon = sc.index()
			case 1:
				p.secondColon = sc.index()
			default:
				return timeParts{}, rejectf("more than two colons in time %q", s)
			}
			p.colons++
		case c == '.' || c == ',':
			if p.hasMark {
				return timeParts{}, rejectf("more than one decimal mark in time %q", s)
			}
			p.hasMark = true
			p.markIndex = sc.index()
		case c >= '0' && c <= '9':
			var err error
			if p.digits, err = digits.Accumulate(p.digits, c); err != nil {
				return timeParts{}, rejectf("time %q: %v", s, err)
			}
			p.digitCount++
		default:
			return timeParts{}, rejectf("unexpected character %q in time %q", c, s)
		}
	}
	return p, nil
}
