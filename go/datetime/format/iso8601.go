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

// Iso8601DateKind selects the ISO 8601 date representation.
type Iso8601DateKind uint8

const (
	DateKindCalendar Iso8601DateKind = iota // YYYY-MM-DD
	DateKindWeek                            // YYYY-Www-D
	DateKindOrdinal                         // YYYY-DDD
)

// Iso8601TimePrecision is the smallest clock component formatted. The
// decimal fraction, if any, attaches to that component.
type Iso8601TimePrecision uint8

const (
	TimePrecisionSecond Iso8601TimePrecision = iota
	TimePrecisionMinute
	TimePrecisionHour
)

// Iso8601OffsetPrecision is the smallest offset component formatted.
type Iso8601OffsetPrecision uint8

const (
	OffsetPrecisionMinute Iso8601OffsetPrecision = iota
	OffsetPrecisionHour
)

// Iso8601Config controls which ISO 8601 production Iso8601 emits.
// Parsing is unaffected: the parser accepts both basic and extended forms
// and any combination of present sections.
type Iso8601Config struct {
	DateKind        Iso8601DateKind
	TimePrecision   Iso8601TimePrecision
	OffsetPrecision Iso8601OffsetPrecision

	// DecimalDigits is the fixed number of fraction digits on the
	// final time component, capped at nine. Zero means "as many as
	// needed": trailing zeros are trimmed and an exact value gets no
	// decimal point at all.
	DecimalDigits uint8

	// UseSeparators selects the extended format (dashes and colons).
	UseSeparators bool

	// YearIsSixDigits widens the year to a mandatory sign and six
	// digits, the expanded representation for years outside 0..9999.
	YearIsSixDigits bool

	FormatDate   bool
	FormatTime   bool
	FormatOffset bool
}

// Iso8601 formats and parses ISO 8601 date-times according to its config.
type Iso8601 struct {
	Config Iso8601Config
}

// Iso8601Default is the extended calendar format with second precision,
// an as-needed fraction and a minute-precision offset, e.g.
// "2021-01-02T03:04:05.5+06:07".
var Iso8601Default = Iso8601{Config: Iso8601Config{
	UseSeparators: true,
	FormatDate:    true,
	FormatTime:    true,
	FormatOffset:  true,
}}

func (f Iso8601) sizeHint() (int, bool) {
	n := 0
	if f.Config.FormatDate {
		n += len("+123456-01-02")
	}
	if f.Config.FormatTime {
		n += len("T15:04:05.999999999")
	}
	if f.Config.FormatOffset {
		n += len("+00:00")
	}
	return n, true
}

func (f Iso8601) appendTo(dst []byte, c components) ([]byte, error) {
	cfg := f.Config
	var err error
	if cfg.FormatDate {
		date, derr := c.needDate()
		if derr != nil {
			return dst, derr
		}
		dst, err = cfg.appendDate(dst, date)
		if err != nil {
			return dst, err
		}
	}
	if cfg.FormatTime {
		t, terr := c.needTime()
		if terr != nil {
			return dst, terr
		}
		if cfg.FormatDate {
			dst = append(dst, 'T')
		}
		dst = cfg.appendTime(dst, t)
	}
	if cfg.FormatOffset {
		offset, oerr := c.needOffset()
		if oerr != nil {
			return dst, oerr
		}
		dst, err = cfg.appendOffset(dst, offset)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

func (cfg Iso8601Config) appendDate(dst []byte, date datetime.Date) ([]byte, error) {
	year := date.Year()
	if cfg.DateKind == DateKindWeek {
		year, _ = date.IsoYearWeek()
	}
	dst, err := cfg.appendYear(dst, year)
	if err != nil {
		return dst, err
	}

	switch cfg.DateKind {
	case DateKindWeek:
		_, week := date.IsoYearWeek()
		if cfg.UseSeparators {
			dst = append(dst, '-')
		}
		dst = append(dst, 'W')
		dst = appendInt(dst, week, 2)
		if cfg.UseSeparators {
			dst = append(dst, '-')
		}
		return appendInt(dst, date.Weekday().NumberFromMonday(), 1), nil
	case DateKindOrdinal:
		if cfg.UseSeparators {
			dst = append(dst, '-')
		}
		return appendInt(dst, date.Ordinal(), 3), nil
	default:
		month, day := date.MonthDay()
		if cfg.UseSeparators {
			dst = append(dst, '-')
		}
		dst = appendInt(dst, int(month), 2)
		if cfg.UseSeparators {
			dst = append(dst, '-')
		}
		return appendInt(dst, day, 2), nil
	}
}

func (cfg Iso8601Config) appendYear(dst []byte, year int) ([]byte, error) {
	if cfg.YearIsSixDigits {
		if year < 0 {
			dst = append(dst, '-')
		} else {
			dst = append(dst, '+')
		}
		return appendInt(dst, abs(year), 6), nil
	}
	if year < 0 || year > 9999 {
		return dst, &datetime.ComponentRangeError{Name: "year", Min: 0, Max: 9999, Value: int64(year), Conditional: true}
	}
	return appendInt(dst, year, 4), nil
}

func (cfg Iso8601Config) appendTime(dst []byte, t datetime.Time) []byte {
	dst = appendInt(dst, t.Hour(), 2)
	var frac, unit uint64
	switch cfg.TimePrecision {
	case TimePrecisionHour:
		frac = uint64(t.Minute())*60_000_000_000 +
			uint64(t.Second())*1_000_000_000 + uint64(t.Nanosecond())
		unit = 3_600_000_000_000
	case TimePrecisionMinute:
		if cfg.UseSeparators {
			dst = append(dst, ':')
		}
		dst = appendInt(dst, t.Minute(), 2)
		frac = uint64(t.Second())*1_000_000_000 + uint64(t.Nanosecond())
		unit = 60_000_000_000
	default:
		if cfg.UseSeparators {
			dst = append(dst, ':')
		}
		dst = appendInt(dst, t.Minute(), 2)
		if cfg.UseSeparators {
			dst = append(dst, ':')
		}
		dst = appendInt(dst, t.Second(), 2)
		frac = uint64(t.Nanosecond())
		unit = 1_000_000_000
	}
	return appendIsoFraction(dst, frac, unit, cfg.DecimalDigits)
}

// appendIsoFraction writes value/unit as a decimal fraction, one digit at
// a time so no intermediate product can overflow. A fixed digit count is
// capped at nine; zero digits means as-many-as-needed, also capped, since
// sixtieths do not terminate in decimal.
func appendIsoFraction(dst []byte, value, unit uint64, digits uint8) []byte {
	if digits == 0 {
		if value == 0 {
			return dst
		}
		dst = append(dst, '.')
		for i := 0; i < 9 && value != 0; i++ {
			value *= 10
			dst = append(dst, '0'+byte(value/unit))
			value %= unit
		}
		return dst
	}
	if digits > 9 {
		digits = 9
	}
	dst = append(dst, '.')
	for i := uint8(0); i < digits; i++ {
		value *= 10
		dst = append(dst, '0'+byte(value/unit))
		value %= unit
	}
	return dst
}

func (cfg Iso8601Config) appendOffset(dst []byte, offset datetime.UtcOffset) ([]byte, error) {
	if offset.SecondsPastMinute() != 0 {
		return dst, InvalidFormatComponentError("offset_second")
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
	if cfg.OffsetPrecision == OffsetPrecisionHour {
		if offset.MinutesPastHour() != 0 {
			return dst, InvalidFormatComponentError("offset_minute")
		}
		return dst, nil
	}
	if cfg.UseSeparators {
		dst = append(dst, ':')
	}
	return appendInt(dst, abs(offset.MinutesPastHour()), 2), nil
}

// parseInto accepts any combination of date, time (after 'T') and offset
// sections, in basic or extended form, regardless of the config.
func (f Iso8601) parseInto(b []byte, p *Parsed) ([]byte, error) {
	p.SetLeapSecondAllowed(true)
	in := b
	parsedAny := false

	var dateErr error
	if len(b) != 0 && isoDigit(b[0]) {
		rest, err := parseIsoDate(b, p)
		if err != nil {
			return in, err
		}
		b, parsedAny = rest, true
	} else if len(b) != 0 && (b[0] == '+' || b[0] == '-') {
		// A leading sign opens either an expanded year or a lone
		// offset; try the date and fall through on failure, keeping
		// the date error in case nothing else parses either.
		snapshot := *p
		if rest, err := parseIsoDate(b, p); err == nil {
			b, parsedAny = rest, true
		} else {
			dateErr = err
			*p = snapshot
		}
	}

	if rest, ok := combinator.ByteIgnoreCase(b, 't'); ok {
		rest, err := parseIsoTime(rest, p)
		if err != nil {
			return in, err
		}
		b, parsedAny = rest, true
	}

	if len(b) != 0 && (b[0] == 'Z' || b[0] == 'z' || b[0] == '+' || b[0] == '-') {
		rest, err := parseIsoOffset(b, p)
		if err != nil {
			if dateErr != nil && !parsedAny {
				return in, dateErr
			}
			return in, err
		}
		b, parsedAny = rest, true
	}

	if !parsedAny {
		if dateErr != nil {
			return in, dateErr
		}
		return in, InvalidComponentError("date")
	}
	return b, nil
}

func parseIsoDate(b []byte, p *Parsed) ([]byte, error) {
	in := b
	var year int
	if sign, rest, ok := combinator.Sign(b); ok {
		v, rest, ok := combinator.ExactlyN(rest, 6)
		if !ok {
			return in, InvalidComponentError("year")
		}
		year = int(v)
		if sign == '-' {
			year = -year
		}
		b = rest
	} else {
		v, rest, ok := combinator.ExactlyN(b, 4)
		if !ok {
			return in, InvalidComponentError("year")
		}
		year = int(v)
		b = rest
	}

	extended := false
	if rest, ok := combinator.Byte(b, '-'); ok {
		extended = true
		b = rest
	}

	if rest, ok := combinator.ByteIgnoreCase(b, 'w'); ok {
		week, rest, ok := combinator.ExactlyN(rest, 2)
		if !ok {
			return in, InvalidComponentError("week number")
		}
		if extended {
			rest, ok = combinator.Byte(rest, '-')
			if !ok {
				return in, InvalidComponentError("week number")
			}
		}
		d, rest, ok := combinator.AnyDigit(rest)
		if !ok || d < 1 || d > 7 {
			return in, InvalidComponentError("weekday")
		}
		if err := p.SetIsoYear(year); err != nil {
			return in, err
		}
		if err := p.SetWeekNumberIso(int(week)); err != nil {
			return in, err
		}
		p.SetWeekday(datetime.Weekday(d - 1))
		return rest, nil
	}

	// A three-digit run is an ordinal date; calendar dates have two
	// digits (extended) or four (basic) here.
	run := 0
	for run < len(b) && isoDigit(b[run]) {
		run++
	}
	if run == 3 {
		ordinal, rest, _ := combinator.ExactlyN(b, 3)
		if err := p.SetYear(year); err != nil {
			return in, err
		}
		if err := p.SetOrdinal(int(ordinal)); err != nil {
			return in, err
		}
		return rest, nil
	}

	month, rest, ok := combinator.ExactlyN(b, 2)
	if !ok {
		return in, InvalidComponentError("month")
	}
	if extended {
		rest, ok = combinator.Byte(rest, '-')
		if !ok {
			return in, InvalidComponentError("month")
		}
	}
	day, rest, ok := combinator.ExactlyN(rest, 2)
	if !ok {
		return in, InvalidComponentError("day")
	}
	if err := p.SetYear(year); err != nil {
		return in, err
	}
	if err := p.SetMonth(int(month)); err != nil {
		return in, err
	}
	if err := p.SetDay(int(day)); err != nil {
		return in, err
	}
	return rest, nil
}

func parseIsoTime(b []byte, p *Parsed) ([]byte, error) {
	in := b
	hour, rest, ok := combinator.ExactlyN(b, 2)
	if !ok {
		return in, InvalidComponentError("hour")
	}
	if err := p.SetHour24(int(hour)); err != nil {
		return in, err
	}
	b = rest

	precision := TimePrecisionHour
	if next, haveMinute := isoNextField(b); haveMinute {
		minute, rest, ok := combinator.ExactlyN(next, 2)
		if !ok {
			return in, InvalidComponentError("minute")
		}
		if err := p.SetMinute(int(minute)); err != nil {
			return in, err
		}
		b = rest
		precision = TimePrecisionMinute

		if next, haveSecond := isoNextField(b); haveSecond {
			second, rest, ok := combinator.ExactlyN(next, 2)
			if !ok {
				return in, InvalidComponentError("second")
			}
			if err := p.SetSecond(int(second)); err != nil {
				return in, err
			}
			b = rest
			precision = TimePrecisionSecond
		}
	}

	if len(b) == 0 || (b[0] != '.' && b[0] != ',') {
		return b, nil
	}
	var unit uint64
	switch precision {
	case TimePrecisionHour:
		unit = 3_600_000_000_000
	case TimePrecisionMinute:
		unit = 60_000_000_000
	default:
		unit = 1_000_000_000
	}
	total, rest, ok := parseIsoFraction(b[1:], unit)
	if !ok {
		return in, InvalidComponentError("subsecond")
	}
	b = rest

	switch precision {
	case TimePrecisionHour:
		if err := p.SetMinute(int(total / 60_000_000_000)); err != nil {
			return in, err
		}
		total %= 60_000_000_000
		fallthrough
	case TimePrecisionMinute:
		if err := p.SetSecond(int(total / 1_000_000_000)); err != nil {
			return in, err
		}
		total %= 1_000_000_000
		if err := p.SetSubsecond(int(total)); err != nil {
			return in, err
		}
	default:
		if !p.leapSecond {
			if err := p.SetSubsecond(int(total)); err != nil {
				return in, err
			}
		}
	}
	return b, nil
}

// isoNextField reports whether another two-digit clock field follows,
// skipping the extended format's colon.
func isoNextField(b []byte) ([]byte, bool) {
	if rest, ok := combinator.Byte(b, ':'); ok {
		return rest, true
	}
	if len(b) >= 2 && isoDigit(b[0]) && isoDigit(b[1]) {
		return b, true
	}
	return b, false
}

// parseIsoFraction reads at least one fraction digit and returns the value
// scaled to nanoseconds of the given unit. Digits beyond the ninth are
// consumed but contribute nothing.
func parseIsoFraction(b []byte, unit uint64) (total uint64, rest []byte, ok bool) {
	scale := unit
	n := 0
	for n < len(b) && isoDigit(b[n]) && scale >= 10 {
		scale /= 10
		total += uint64(b[n]-'0') * scale
		n++
	}
	if n == 0 {
		return 0, b, false
	}
	for n < len(b) && isoDigit(b[n]) {
		n++
	}
	return total, b[n:], true
}

func parseIsoOffset(b []byte, p *Parsed) ([]byte, error) {
	in := b
	if rest, ok := combinator.ByteIgnoreCase(b, 'z'); ok {
		if err := p.SetOffsetHour(0, false); err != nil {
			return in, err
		}
		if err := p.SetOffsetMinute(0); err != nil {
			return in, err
		}
		return rest, nil
	}

	sign, rest, ok := combinator.Sign(b)
	if !ok {
		return in, InvalidComponentError("offset hour")
	}
	hour, rest, ok := combinator.ExactlyN(rest, 2)
	if !ok || hour > 23 {
		return in, InvalidComponentError("offset hour")
	}
	negative := sign == '-'
	value := int(hour)
	if negative {
		value = -value
	}
	if err := p.SetOffsetHour(value, negative); err != nil {
		return in, err
	}
	b = rest

	if next, haveMinute := isoNextField(b); haveMinute {
		minute, rest, ok := combinator.ExactlyN(next, 2)
		if !ok || minute > 59 {
			return in, InvalidComponentError("offset minute")
		}
		if err := p.SetOffsetMinute(int(minute)); err != nil {
			return in, err
		}
		b = rest
	}
	return b, nil
}

func isoDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
