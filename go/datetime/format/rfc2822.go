/*
Copyright 2024 The Timefmt Authors.

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

package format

import (
	"timefmt.io/timefmt/go/datetime"
	"timefmt.io/timefmt/go/datetime/format/internal/combinator"
)

// Rfc2822 is the Internet Message Format date, e.g.
// "Sat, 02 Jan 2021 03:04:05 +0607".
//
// Formatting always emits the weekday, a two-digit day, seconds and a
// numeric zone, and refuses years outside 1900..9999 and offsets with a
// seconds component. Parsing additionally accepts the obsolete syntax:
// comments and folding whitespace between tokens, a missing weekday, a
// one-digit day, two- and three-digit years and named or military zones.
type Rfc2822 struct{}

func (Rfc2822) sizeHint() (int, bool) {
	return len("Wed, 02 Jan 2006 15:04:05 +0000"), true
}

func (Rfc2822) appendTo(dst []byte, c components) ([]byte, error) {
	date, err := c.needDate()
	if err != nil {
		return dst, err
	}
	t, err := c.needTime()
	if err != nil {
		return dst, err
	}
	offset, err := c.needOffset()
	if err != nil {
		return dst, err
	}

	year := date.Year()
	if year < 1900 || year > 9999 {
		return dst, &datetime.ComponentRangeError{Name: "year", Min: 1900, Max: 9999, Value: int64(year), Conditional: true}
	}
	if offset.SecondsPastMinute() != 0 {
		return dst, InvalidFormatComponentError("offset_second")
	}

	month, day := date.MonthDay()
	dst = append(dst, weekdaysShort[date.Weekday()]...)
	dst = append(dst, ',', ' ')
	dst = appendInt(dst, day, 2)
	dst = append(dst, ' ')
	dst = append(dst, monthsShort[month-1]...)
	dst = append(dst, ' ')
	dst = appendInt(dst, year, 4)
	dst = append(dst, ' ')
	dst = appendInt(dst, t.Hour(), 2)
	dst = append(dst, ':')
	dst = appendInt(dst, t.Minute(), 2)
	dst = append(dst, ':')
	dst = appendInt(dst, t.Second(), 2)
	dst = append(dst, ' ')
	if offset.IsNegative() {
		dst = append(dst, '-')
	} else {
		dst = append(dst, '+')
	}
	dst = appendInt(dst, abs(offset.WholeHours()), 2)
	dst = appendInt(dst, abs(offset.MinutesPastHour()), 2)
	return dst, nil
}

func (Rfc2822) parseInto(b []byte, p *Parsed) ([]byte, error) {
	p.SetLeapSecondAllowed(true)
	b = skipCFWS(b)

	// [ day-of-week "," ]
	if idx, rest, ok := combinator.FirstMatchOf(b, weekdaysShort, false); ok {
		p.SetWeekday(datetime.Weekday(idx))
		rest = skipCFWS(rest)
		rest, ok = combinator.Byte(rest, ',')
		if !ok {
			return b, InvalidComponentError("weekday")
		}
		b = skipCFWS(rest)
	}

	day, rest, ok := combinator.NToM(b, 1, 2)
	if !ok {
		return b, InvalidComponentError("day")
	}
	if err := p.SetDay(int(day)); err != nil {
		return b, err
	}
	b = skipCFWS(rest)

	month, rest, ok := combinator.FirstMatchOf(b, monthsShort, false)
	if !ok {
		return b, InvalidComponentError("month")
	}
	if err := p.SetMonth(month + 1); err != nil {
		return b, err
	}
	b = skipCFWS(rest)

	year, rest, ok := combinator.NToM(b, 2, 4)
	if !ok {
		return b, InvalidComponentError("year")
	}
	// obs-year: two digits are windowed around 2000, three digits are
	// an offset from 1900.
	digits := len(b) - len(rest)
	switch {
	case digits == 2 && year < 50:
		year += 2000
	case digits <= 3:
		year += 1900
	}
	if err := p.SetYear(int(year)); err != nil {
		return b, err
	}
	b = skipCFWS(rest)

	hour, rest, ok := combinator.ExactlyN(b, 2)
	if !ok {
		return b, InvalidComponentError("hour")
	}
	if err := p.SetHour24(int(hour)); err != nil {
		return b, err
	}
	rest = skipCFWS(rest)
	rest, ok = combinator.Byte(rest, ':')
	if !ok {
		return b, InvalidComponentError("hour")
	}
	rest = skipCFWS(rest)
	minute, rest, ok := combinator.ExactlyN(rest, 2)
	if !ok {
		return b, InvalidComponentError("minute")
	}
	if err := p.SetMinute(int(minute)); err != nil {
		return b, err
	}
	b = rest

	// [ ":" second ]
	if rest := skipCFWS(b); len(rest) != 0 && rest[0] == ':' {
		second, rest, ok := combinator.ExactlyN(skipCFWS(rest[1:]), 2)
		if !ok {
			return b, InvalidComponentError("second")
		}
		if err := p.SetSecond(int(second)); err != nil {
			return b, err
		}
		b = rest
	}
	b = skipCFWS(b)

	return parse2822Zone(b, p)
}

func parse2822Zone(b []byte, p *Parsed) ([]byte, error) {
	if sign, rest, ok := combinator.Sign(b); ok {
		hour, rest, ok := combinator.ExactlyN(rest, 2)
		if !ok {
			return b, InvalidComponentError("offset hour")
		}
		minute, rest, ok := combinator.ExactlyN(rest, 2)
		if !ok || minute > 59 {
			return b, InvalidComponentError("offset minute")
		}
		negative := sign == '-'
		value := int(hour)
		if negative {
			value = -value
		}
		if err := p.SetOffsetHour(value, negative); err != nil {
			return b, err
		}
		if err := p.SetOffsetMinute(int(minute)); err != nil {
			return b, err
		}
		return rest, nil
	}

	// obs-zone: named North American zones, UT/GMT, or a single
	// military letter. Unrecognized or military zones carry no usable
	// offset and resolve to +0000 per RFC 2822 §4.3.
	hours := 0
	var rest []byte
	var ok bool
	for _, zone := range obsZones {
		if rest, ok = combinator.TextIgnoreCase(b, zone.name); ok {
			hours = zone.hours
			break
		}
	}
	if !ok {
		if len(b) == 0 || !isZoneLetter(b[0]) {
			return b, InvalidComponentError("zone")
		}
		rest = b[1:]
	}
	negative := hours < 0
	if err := p.SetOffsetHour(hours, negative); err != nil {
		return b, err
	}
	if err := p.SetOffsetMinute(0); err != nil {
		return b, err
	}
	return rest, nil
}

var obsZones = []struct {
	name  string
	hours int
}{
	{"GMT", 0},
	{"UT", 0},
	{"EST", -5},
	{"EDT", -4},
	{"CST", -6},
	{"CDT", -5},
	{"MST", -7},
	{"MDT", -6},
	{"PST", -8},
	{"PDT", -7},
}

func isZoneLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// skipCFWS consumes folding whitespace and parenthesized comments, which
// the obsolete syntax permits between nearly every pair of tokens.
// Comments nest; a backslash escapes the next byte.
func skipCFWS(b []byte) []byte {
	for len(b) != 0 {
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			b = b[1:]
		case '(':
			rest, ok := skipComment(b[1:])
			if !ok {
				return b
			}
			b = rest
		default:
			return b
		}
	}
	return b
}

func skipComment(b []byte) ([]byte, bool) {
	for len(b) != 0 {
		switch b[0] {
		case ')':
			return b[1:], true
		case '(':
			rest, ok := skipComment(b[1:])
			if !ok {
				return b, false
			}
			b = rest
		case '\\':
			if len(b) < 2 {
				return b, false
			}
			b = b[2:]
		default:
			b = b[1:]
		}
	}
	return b, false
}
