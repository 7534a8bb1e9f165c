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
	"math"

	"timefmt.io/timefmt/go/datetime"
	"timefmt.io/timefmt/go/datetime/format/description"
	"timefmt.io/timefmt/go/datetime/format/internal/combinator"
)

func pad(p description.Padding) combinator.Padding {
	switch p {
	case description.PaddingSpace:
		return combinator.PadSpace
	case description.PaddingNone:
		return combinator.PadNone
	default:
		return combinator.PadZero
	}
}

// parseComponent consumes one component from the input and records its
// value in p. On failure the input is returned unchanged.
func parseComponent(spec description.Spec, b []byte, p *Parsed) ([]byte, error) {
	switch c := spec.(type) {
	case description.Day:
		v, rest, ok := combinator.Padded(b, 2, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("day")
		}
		if err := p.SetDay(int(v)); err != nil {
			return b, err
		}
		return rest, nil

	case description.Month:
		switch c.Repr {
		case description.MonthReprNumerical:
			v, rest, ok := combinator.Padded(b, 2, pad(c.Padding))
			if !ok {
				return b, InvalidComponentError("month")
			}
			if err := p.SetMonth(int(v)); err != nil {
				return b, err
			}
			return rest, nil
		case description.MonthReprLong:
			idx, rest, ok := combinator.FirstMatchOf(b, monthsLong, c.CaseSensitive)
			if !ok {
				return b, InvalidComponentError("month")
			}
			if err := p.SetMonth(idx + 1); err != nil {
				return b, err
			}
			return rest, nil
		default:
			idx, rest, ok := combinator.FirstMatchOf(b, monthsShort, c.CaseSensitive)
			if !ok {
				return b, InvalidComponentError("month")
			}
			if err := p.SetMonth(idx + 1); err != nil {
				return b, err
			}
			return rest, nil
		}

	case description.Ordinal:
		v, rest, ok := combinator.Padded(b, 3, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("ordinal")
		}
		if err := p.SetOrdinal(int(v)); err != nil {
			return b, err
		}
		return rest, nil

	case description.Weekday:
		return parseWeekday(c, b, p)

	case description.WeekNumber:
		v, rest, ok := combinator.Padded(b, 2, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("week number")
		}
		var err error
		switch c.Repr {
		case description.WeekNumberReprIso:
			err = p.SetWeekNumberIso(int(v))
		case description.WeekNumberReprSunday:
			err = p.SetWeekNumberSunday(int(v))
		default:
			err = p.SetWeekNumberMonday(int(v))
		}
		if err != nil {
			return b, err
		}
		return rest, nil

	case description.Year:
		return parseYear(c, b, p)

	case description.Hour:
		v, rest, ok := combinator.Padded(b, 2, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("hour")
		}
		var err error
		if c.Is12Hour {
			err = p.SetHour12(int(v))
		} else {
			err = p.SetHour24(int(v))
		}
		if err != nil {
			return b, err
		}
		return rest, nil

	case description.Minute:
		v, rest, ok := combinator.Padded(b, 2, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("minute")
		}
		if err := p.SetMinute(int(v)); err != nil {
			return b, err
		}
		return rest, nil

	case description.Period:
		table := []string{"AM", "PM"}
		if c.CaseSensitive && !c.Uppercase {
			table = []string{"am", "pm"}
		}
		idx, rest, ok := combinator.FirstMatchOf(b, table, c.CaseSensitive)
		if !ok {
			return b, InvalidComponentError("period")
		}
		p.SetPeriod(idx == 1)
		return rest, nil

	case description.Second:
		v, rest, ok := combinator.Padded(b, 2, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("second")
		}
		if err := p.SetSecond(int(v)); err != nil {
			return b, err
		}
		return rest, nil

	case description.Subsecond:
		var v uint64
		var rest []byte
		var ok bool
		if c.Digits == description.SubsecondOneOrMore {
			v, rest, ok = combinator.NToM(b, 1, 9)
		} else {
			v, rest, ok = combinator.ExactlyN(b, int(c.Digits))
		}
		if !ok {
			return b, InvalidComponentError("subsecond")
		}
		consumed := len(b) - len(rest)
		if err := p.SetSubsecond(int(v * pow10[9-consumed])); err != nil {
			return b, err
		}
		return rest, nil

	case description.OffsetHour:
		sign, afterSign, hasSign := combinator.Sign(b)
		if c.SignMandatory && !hasSign {
			return b, InvalidComponentError("offset hour")
		}
		v, rest, ok := combinator.Padded(afterSign, 2, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("offset hour")
		}
		value := int(v)
		negative := hasSign && sign == '-'
		if negative {
			value = -value
		}
		if err := p.SetOffsetHour(value, negative); err != nil {
			return b, err
		}
		return rest, nil

	case description.OffsetMinute:
		v, rest, ok := combinator.Padded(b, 2, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("offset minute")
		}
		if err := p.SetOffsetMinute(int(v)); err != nil {
			return b, err
		}
		return rest, nil

	case description.OffsetSecond:
		v, rest, ok := combinator.Padded(b, 2, pad(c.Padding))
		if !ok {
			return b, InvalidComponentError("offset second")
		}
		if err := p.SetOffsetSecond(int(v)); err != nil {
			return b, err
		}
		return rest, nil

	case description.UnixTimestamp:
		sign, afterSign, hasSign := combinator.Sign(b)
		if c.SignMandatory && !hasSign {
			return b, InvalidComponentError("unix_timestamp")
		}
		v, rest, ok := combinator.NToM(afterSign, 1, 19)
		if !ok {
			return b, InvalidComponentError("unix_timestamp")
		}
		var unit uint64
		switch c.Precision {
		case description.UnixTimestampPrecisionSecond:
			unit = 1_000_000_000
		case description.UnixTimestampPrecisionMillisecond:
			unit = 1_000_000
		case description.UnixTimestampPrecisionMicrosecond:
			unit = 1_000
		default:
			unit = 1
		}
		if v > math.MaxInt64/unit {
			return b, InvalidComponentError("unix_timestamp")
		}
		nanos := int64(v * unit)
		if hasSign && sign == '-' {
			nanos = -nanos
		}
		p.SetUnixTimestampNanos(nanos)
		return rest, nil

	case description.Ignore:
		if uint(len(b)) < c.Count {
			return b, InvalidComponentError("ignore")
		}
		return b[c.Count:], nil

	case description.End:
		if c.TrailingInput == description.TrailingInputDiscard {
			return b[len(b):], nil
		}
		if len(b) != 0 {
			return b, ErrUnexpectedTrailingCharacters
		}
		return b, nil
	}
	panic("format: unknown component spec")
}

func parseWeekday(c description.Weekday, b []byte, p *Parsed) ([]byte, error) {
	switch c.Repr {
	case description.WeekdayReprLong:
		idx, rest, ok := combinator.FirstMatchOf(b, weekdaysLong, c.CaseSensitive)
		if !ok {
			return b, InvalidComponentError("weekday")
		}
		p.SetWeekday(datetime.Weekday(idx))
		return rest, nil
	case description.WeekdayReprShort:
		idx, rest, ok := combinator.FirstMatchOf(b, weekdaysShort, c.CaseSensitive)
		if !ok {
			return b, InvalidComponentError("weekday")
		}
		p.SetWeekday(datetime.Weekday(idx))
		return rest, nil
	default:
		d, rest, ok := combinator.AnyDigit(b)
		if !ok {
			return b, InvalidComponentError("weekday")
		}
		n := int(d)
		if c.OneIndexed {
			n--
		}
		if n < 0 || n > 6 {
			return b, InvalidComponentError("weekday")
		}
		if c.Repr == description.WeekdayReprSunday {
			p.SetWeekday(datetime.Weekday((n + 6) % 7))
		} else {
			p.SetWeekday(datetime.Weekday(n))
		}
		return rest, nil
	}
}

func parseYear(c description.Year, b []byte, p *Parsed) ([]byte, error) {
	var negative, hasSign bool
	var sign byte
	afterSign := b
	if c.Repr != description.YearReprLastTwo {
		sign, afterSign, hasSign = combinator.Sign(b)
		if c.SignMandatory && !hasSign {
			return b, InvalidComponentError("year")
		}
		negative = hasSign && sign == '-'
	}

	var v uint64
	var rest []byte
	var ok bool
	switch c.Repr {
	case description.YearReprFull:
		// A signed extended-range year may run to six digits; an
		// unsigned one keeps the fixed four-digit layout so that
		// adjacent numeric components stay unambiguous.
		if c.Range == description.YearRangeExtended && hasSign {
			v, rest, ok = combinator.NToM(afterSign, 4, 6)
		} else {
			v, rest, ok = combinator.Padded(afterSign, 4, pad(c.Padding))
		}
	default:
		v, rest, ok = combinator.Padded(afterSign, 2, pad(c.Padding))
	}
	if !ok {
		return b, InvalidComponentError("year")
	}

	value := int(v)
	if negative {
		value = -value
	}
	var err error
	switch {
	case c.Base == description.YearBaseIsoWeek && c.Repr == description.YearReprFull:
		err = p.SetIsoYear(value)
	case c.Base == description.YearBaseIsoWeek && c.Repr == description.YearReprCentury:
		err = p.SetIsoYearCentury(value)
	case c.Base == description.YearBaseIsoWeek:
		err = p.SetIsoYearLastTwo(value)
	case c.Repr == description.YearReprFull:
		err = p.SetYear(value)
	case c.Repr == description.YearReprCentury:
		err = p.SetYearCentury(value)
	default:
		err = p.SetYearLastTwo(value)
	}
	if err != nil {
		return b, err
	}
	return rest, nil
}
