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
	"timefmt.io/timefmt/go/datetime/format/description"
	"timefmt.io/timefmt/go/datetime/format/internal/combinator"
)

// Rfc3339 is the RFC 3339 §5.6 profile of ISO 8601:
// YYYY-MM-DDTHH:MM:SS[.fraction](Z|±HH:MM). The codec is a hand-written
// state machine rather than a compiled description.
//
// On parse, the byte between the date and the time may be anything, not
// just 'T'; real-world producers emit spaces and lowercase letters there.
// Formatting always emits 'T'.
type Rfc3339 struct{}

func (Rfc3339) sizeHint() (int, bool) {
	return len("2006-01-02T15:04:05.999999999+00:00"), true
}

func (Rfc3339) appendTo(dst []byte, c components) ([]byte, error) {
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
	if year < 0 || year > 9999 {
		return dst, &datetime.ComponentRangeError{Name: "year", Min: 0, Max: 9999, Value: int64(year), Conditional: true}
	}
	if offset.SecondsPastMinute() != 0 {
		return dst, InvalidFormatComponentError("offset_second")
	}

	month, day := date.MonthDay()
	dst = appendInt(dst, year, 4)
	dst = append(dst, '-')
	dst = appendInt(dst, int(month), 2)
	dst = append(dst, '-')
	dst = appendInt(dst, day, 2)
	dst = append(dst, 'T')
	dst = appendInt(dst, t.Hour(), 2)
	dst = append(dst, ':')
	dst = appendInt(dst, t.Minute(), 2)
	dst = append(dst, ':')
	dst = appendInt(dst, t.Second(), 2)
	if nanos := t.Nanosecond(); nanos != 0 {
		dst = append(dst, '.')
		dst = appendSubsecond(dst, uint64(nanos), description.SubsecondOneOrMore)
	}
	if offset.IsUTC() {
		return append(dst, 'Z'), nil
	}
	if offset.IsNegative() {
		dst = append(dst, '-')
	} else {
		dst = append(dst, '+')
	}
	dst = appendInt(dst, abs(offset.WholeHours()), 2)
	dst = append(dst, ':')
	dst = appendInt(dst, abs(offset.MinutesPastHour()), 2)
	return dst, nil
}

func (Rfc3339) parseInto(b []byte, p *Parsed) ([]byte, error) {
	p.SetLeapSecondAllowed(true)

	b, err := rfc3339Field(b, 4, "year", p.SetYear)
	if err != nil {
		return b, err
	}
	b, err = rfc3339Byte(b, '-', "year")
	if err != nil {
		return b, err
	}
	b, err = rfc3339Field(b, 2, "month", p.SetMonth)
	if err != nil {
		return b, err
	}
	b, err = rfc3339Byte(b, '-', "month")
	if err != nil {
		return b, err
	}
	b, err = rfc3339Field(b, 2, "day", p.SetDay)
	if err != nil {
		return b, err
	}

	// Date/time separator: any single byte, for interop.
	if len(b) == 0 {
		return b, InvalidComponentError("day")
	}
	b = b[1:]

	b, err = rfc3339Field(b, 2, "hour", p.SetHour24)
	if err != nil {
		return b, err
	}
	b, err = rfc3339Byte(b, ':', "hour")
	if err != nil {
		return b, err
	}
	b, err = rfc3339Field(b, 2, "minute", p.SetMinute)
	if err != nil {
		return b, err
	}
	b, err = rfc3339Byte(b, ':', "minute")
	if err != nil {
		return b, err
	}
	b, err = rfc3339Field(b, 2, "second", p.SetSecond)
	if err != nil {
		return b, err
	}

	if rest, ok := combinator.Byte(b, '.'); ok {
		v, rest, ok := combinator.NToM(rest, 1, 9)
		if !ok {
			return b, InvalidComponentError("subsecond")
		}
		consumed := len(b) - 1 - len(rest)
		if p.leapSecond {
			// The canonical leap-second stand-in keeps nanosecond
			// 999999999 regardless of the written fraction.
		} else if err := p.SetSubsecond(int(v * pow10[9-consumed])); err != nil {
			return b, err
		}
		b = rest
	}

	if rest, ok := combinator.ByteIgnoreCase(b, 'z'); ok {
		if err := p.SetOffsetHour(0, false); err != nil {
			return b, err
		}
		if err := p.SetOffsetMinute(0); err != nil {
			return b, err
		}
		return rest, nil
	}

	sign, rest, ok := combinator.Sign(b)
	if !ok {
		return b, InvalidComponentError("offset hour")
	}
	hour, rest, ok := combinator.ExactlyN(rest, 2)
	if !ok || hour > 23 {
		return b, InvalidComponentError("offset hour")
	}
	rest, err = rfc3339Byte(rest, ':', "offset hour")
	if err != nil {
		return b, err
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

func rfc3339Field(b []byte, width int, name string, set func(int) error) ([]byte, error) {
	v, rest, ok := combinator.ExactlyN(b, width)
	if !ok {
		return b, InvalidComponentError(name)
	}
	if err := set(int(v)); err != nil {
		return b, err
	}
	return rest, nil
}

func rfc3339Byte(b []byte, c byte, name string) ([]byte, error) {
	rest, ok := combinator.Byte(b, c)
	if !ok {
		return b, InvalidComponentError(name)
	}
	return rest, nil
}
