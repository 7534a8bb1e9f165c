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
)

// components is the subset of a full date-time the caller supplied for
// formatting. A component that needs an absent part fails with
// ErrInsufficientTypeInformation.
type components struct {
	date   *datetime.Date
	time   *datetime.Time
	offset *datetime.UtcOffset
}

func (c components) needDate() (datetime.Date, error) {
	if c.date == nil {
		return datetime.Date{}, ErrInsufficientTypeInformation
	}
	return *c.date, nil
}

func (c components) needTime() (datetime.Time, error) {
	if c.time == nil {
		return datetime.Time{}, ErrInsufficientTypeInformation
	}
	return *c.time, nil
}

func (c components) needOffset() (datetime.UtcOffset, error) {
	if c.offset == nil {
		return datetime.UtcOffset{}, ErrInsufficientTypeInformation
	}
	return *c.offset, nil
}

func padByte(p description.Padding) byte {
	if p == description.PaddingSpace {
		return ' '
	}
	return '0'
}

// appendNum appends a non-negative value under the component's padding
// discipline.
func appendNum(dst []byte, v uint64, width int, padding description.Padding) []byte {
	if padding == description.PaddingNone {
		return appendPadded(dst, v, 0, '0')
	}
	return appendPadded(dst, v, width, padByte(padding))
}

// formatComponent appends the text of one component to dst.
func formatComponent(dst []byte, spec description.Spec, c components) ([]byte, error) {
	switch s := spec.(type) {
	case description.Day:
		date, err := c.needDate()
		if err != nil {
			return dst, err
		}
		return appendNum(dst, uint64(date.Day()), 2, s.Padding), nil

	case description.Month:
		date, err := c.needDate()
		if err != nil {
			return dst, err
		}
		month := date.Month()
		switch s.Repr {
		case description.MonthReprNumerical:
			return appendNum(dst, uint64(month), 2, s.Padding), nil
		case description.MonthReprLong:
			return append(dst, monthsLong[month-1]...), nil
		default:
			return append(dst, monthsShort[month-1]...), nil
		}

	case description.Ordinal:
		date, err := c.needDate()
		if err != nil {
			return dst, err
		}
		return appendNum(dst, uint64(date.Ordinal()), 3, s.Padding), nil

	case description.Weekday:
		date, err := c.needDate()
		if err != nil {
			return dst, err
		}
		wd := date.Weekday()
		switch s.Repr {
		case description.WeekdayReprLong:
			return append(dst, weekdaysLong[wd]...), nil
		case description.WeekdayReprShort:
			return append(dst, weekdaysShort[wd]...), nil
		case description.WeekdayReprSunday:
			n := wd.NumberDaysFromSunday()
			if s.OneIndexed {
				n++
			}
			return appendNum(dst, uint64(n), 1, description.PaddingNone), nil
		default:
			n := wd.NumberDaysFromMonday()
			if s.OneIndexed {
				n++
			}
			return appendNum(dst, uint64(n), 1, description.PaddingNone), nil
		}

	case description.WeekNumber:
		date, err := c.needDate()
		if err != nil {
			return dst, err
		}
		var week int
		switch s.Repr {
		case description.WeekNumberReprIso:
			week = date.IsoWeek()
		case description.WeekNumberReprSunday:
			week = date.SundayBasedWeek()
		default:
			week = date.MondayBasedWeek()
		}
		return appendNum(dst, uint64(week), 2, s.Padding), nil

	case description.Year:
		return formatYear(dst, s, c)

	case description.Hour:
		t, err := c.needTime()
		if err != nil {
			return dst, err
		}
		hour := t.Hour()
		if s.Is12Hour {
			hour, _ = t.Hour12()
		}
		return appendNum(dst, uint64(hour), 2, s.Padding), nil

	case description.Minute:
		t, err := c.needTime()
		if err != nil {
			return dst, err
		}
		return appendNum(dst, uint64(t.Minute()), 2, s.Padding), nil

	case description.Period:
		t, err := c.needTime()
		if err != nil {
			return dst, err
		}
		_, pm := t.Hour12()
		period := "AM"
		switch {
		case pm && s.Uppercase:
			period = "PM"
		case pm:
			period = "pm"
		case !s.Uppercase:
			period = "am"
		}
		return append(dst, period...), nil

	case description.Second:
		t, err := c.needTime()
		if err != nil {
			return dst, err
		}
		return appendNum(dst, uint64(t.Second()), 2, s.Padding), nil

	case description.Subsecond:
		t, err := c.needTime()
		if err != nil {
			return dst, err
		}
		return appendSubsecond(dst, uint64(t.Nanosecond()), s.Digits), nil

	case description.OffsetHour:
		offset, err := c.needOffset()
		if err != nil {
			return dst, err
		}
		hours := offset.WholeHours()
		if offset.IsNegative() {
			dst = append(dst, '-')
			hours = -hours
		} else if s.SignMandatory {
			dst = append(dst, '+')
		}
		return appendNum(dst, uint64(hours), 2, s.Padding), nil

	case description.OffsetMinute:
		offset, err := c.needOffset()
		if err != nil {
			return dst, err
		}
		return appendNum(dst, uint64(abs(offset.MinutesPastHour())), 2, s.Padding), nil

	case description.OffsetSecond:
		offset, err := c.needOffset()
		if err != nil {
			return dst, err
		}
		return appendNum(dst, uint64(abs(offset.SecondsPastMinute())), 2, s.Padding), nil

	case description.UnixTimestamp:
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
		odt := datetime.NewOffsetDateTime(datetime.DateTime{Date: date, Time: t}, offset)
		var value int64
		switch s.Precision {
		case description.UnixTimestampPrecisionSecond:
			value = odt.Unix()
		case description.UnixTimestampPrecisionMillisecond:
			value = odt.UnixNano() / 1_000_000
		case description.UnixTimestampPrecisionMicrosecond:
			value = odt.UnixNano() / 1_000
		default:
			value = odt.UnixNano()
		}
		if value < 0 {
			dst = append(dst, '-')
			value = -value
		} else if s.SignMandatory {
			dst = append(dst, '+')
		}
		return appendPadded(dst, uint64(value), 0, '0'), nil

	case description.Ignore:
		return dst, nil

	case description.End:
		return dst, nil
	}
	panic("format: unknown component spec")
}

func formatYear(dst []byte, s description.Year, c components) ([]byte, error) {
	date, err := c.needDate()
	if err != nil {
		return dst, err
	}
	year := date.Year()
	if s.Base == description.YearBaseIsoWeek {
		year, _ = date.IsoYearWeek()
	}

	switch s.Repr {
	case description.YearReprLastTwo:
		return appendNum(dst, uint64(abs(year)%100), 2, s.Padding), nil
	case description.YearReprCentury:
		century := year / 100
		if century < 0 {
			dst = append(dst, '-')
			century = -century
		} else if s.SignMandatory {
			dst = append(dst, '+')
		}
		return appendNum(dst, uint64(century), 2, s.Padding), nil
	default:
		if year < 0 {
			dst = append(dst, '-')
		} else if s.SignMandatory {
			dst = append(dst, '+')
		}
		return appendNum(dst, uint64(abs(year)), 4, s.Padding), nil
	}
}

// appendSubsecond writes the nanosecond fraction with a fixed digit count,
// or, for the one-or-more form, with trailing zeros trimmed down to at
// least one digit.
func appendSubsecond(dst []byte, nanos uint64, digits description.SubsecondDigits) []byte {
	if digits != description.SubsecondOneOrMore {
		return appendPadded(dst, nanos/pow10[9-digits], int(digits), '0')
	}
	n := 9
	for n > 1 && nanos%10 == 0 {
		nanos /= 10
		n--
	}
	return appendPadded(dst, nanos, n, '0')
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
