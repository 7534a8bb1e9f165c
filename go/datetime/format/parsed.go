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
)

// Field presence bits for Parsed.
const (
	bitYear = 1 << iota
	bitYearCentury
	bitYearLastTwo
	bitIsoYear
	bitIsoYearCentury
	bitIsoYearLastTwo
	bitMonth
	bitWeekday
	bitOrdinal
	bitDay
	bitWeekNumberIso
	bitWeekNumberSunday
	bitWeekNumberMonday
	bitHour24
	bitHour12
	bitPeriod
	bitMinute
	bitSecond
	bitSubsecond
	bitOffsetHour
	bitOffsetMinute
	bitOffsetSecond
	bitUnixTimestampNanos
)

// Parsed accumulates the date-time fields collected during one parse pass.
// Fields are only ever set during a pass, never cleared; a repeated set
// overwrites the earlier value without any cross-check. The accumulator is
// a plain value, so backtracking callers snapshot it by copy and restore it
// by assignment.
//
// The zero value is an empty accumulator, ready for use.
type Parsed struct {
	year           int32
	isoYear        int32
	yearCentury    int16
	isoYearCentury int16
	yearLastTwo    uint8
	isoYearLastTwo uint8

	month   datetime.Month
	weekday datetime.Weekday
	ordinal uint16
	day     uint8

	weekNumberIso    uint8
	weekNumberSunday uint8
	weekNumberMonday uint8

	hour24     uint8
	hour12     uint8
	periodIsPM bool
	minute     uint8
	second     uint8
	subsecond  uint32

	offsetHour       int8
	offsetMinute     int8
	offsetSecond     int8
	offsetIsNegative bool

	unixTimestampNanos int64

	set uint32

	// leapSecondAllowed is only enabled by the well-known format codecs;
	// it lets a literal second 60 through as the canonical stand-in
	// 59.999999999, subject to re-validation during conversion.
	leapSecondAllowed bool
	leapSecond        bool
}

func (p *Parsed) has(bit uint32) bool {
	return p.set&bit != 0
}

// SetLeapSecondAllowed enables acceptance of a textual 60th second.
func (p *Parsed) SetLeapSecondAllowed(allowed bool) {
	p.leapSecondAllowed = allowed
}

// LeapSecondAllowed reports whether a textual 60th second is accepted.
func (p *Parsed) LeapSecondAllowed() bool {
	return p.leapSecondAllowed
}

// SetYear sets the full calendar year.
func (p *Parsed) SetYear(v int) error {
	if v < -999_999 || v > 999_999 {
		return &datetime.ComponentRangeError{Name: "year", Min: -999_999, Max: 999_999, Value: int64(v)}
	}
	p.year = int32(v)
	p.set |= bitYear
	return nil
}

// SetYearCentury sets the century portion of the calendar year.
func (p *Parsed) SetYearCentury(v int) error {
	if v < -9999 || v > 9999 {
		return &datetime.ComponentRangeError{Name: "year", Min: -9999, Max: 9999, Value: int64(v)}
	}
	p.yearCentury = int16(v)
	p.set |= bitYearCentury
	return nil
}

// SetYearLastTwo sets the last two digits of the calendar year.
func (p *Parsed) SetYearLastTwo(v int) error {
	if v < 0 || v > 99 {
		return &datetime.ComponentRangeError{Name: "year", Min: 0, Max: 99, Value: int64(v)}
	}
	p.yearLastTwo = uint8(v)
	p.set |= bitYearLastTwo
	return nil
}

// SetIsoYear sets the full ISO week-based year.
func (p *Parsed) SetIsoYear(v int) error {
	if v < -999_999 || v > 999_999 {
		return &datetime.ComponentRangeError{Name: "year", Min: -999_999, Max: 999_999, Value: int64(v)}
	}
	p.isoYear = int32(v)
	p.set |= bitIsoYear
	return nil
}

// SetIsoYearCentury sets the century portion of the ISO week-based year.
func (p *Parsed) SetIsoYearCentury(v int) error {
	if v < -9999 || v > 9999 {
		return &datetime.ComponentRangeError{Name: "year", Min: -9999, Max: 9999, Value: int64(v)}
	}
	p.isoYearCentury = int16(v)
	p.set |= bitIsoYearCentury
	return nil
}

// SetIsoYearLastTwo sets the last two digits of the ISO week-based year.
func (p *Parsed) SetIsoYearLastTwo(v int) error {
	if v < 0 || v > 99 {
		return &datetime.ComponentRangeError{Name: "year", Min: 0, Max: 99, Value: int64(v)}
	}
	p.isoYearLastTwo = uint8(v)
	p.set |= bitIsoYearLastTwo
	return nil
}

// SetMonth sets the month, rejecting 0 and values above 12.
func (p *Parsed) SetMonth(v int) error {
	m, err := datetime.MonthFromNumber(v)
	if err != nil {
		return err
	}
	p.month = m
	p.set |= bitMonth
	return nil
}

// SetWeekday sets the day of the week.
func (p *Parsed) SetWeekday(v datetime.Weekday) {
	p.weekday = v
	p.set |= bitWeekday
}

// SetOrdinal sets the day of the year.
func (p *Parsed) SetOrdinal(v int) error {
	if v < 1 || v > 366 {
		return &datetime.ComponentRangeError{Name: "ordinal", Min: 1, Max: 366, Value: int64(v)}
	}
	p.ordinal = uint16(v)
	p.set |= bitOrdinal
	return nil
}

// SetDay sets the day of the month.
func (p *Parsed) SetDay(v int) error {
	if v < 1 || v > 31 {
		return &datetime.ComponentRangeError{Name: "day", Min: 1, Max: 31, Value: int64(v)}
	}
	p.day = uint8(v)
	p.set |= bitDay
	return nil
}

// SetWeekNumberIso sets the ISO week number.
func (p *Parsed) SetWeekNumberIso(v int) error {
	if v < 1 || v > 53 {
		return &datetime.ComponentRangeError{Name: "week", Min: 1, Max: 53, Value: int64(v)}
	}
	p.weekNumberIso = uint8(v)
	p.set |= bitWeekNumberIso
	return nil
}

// SetWeekNumberSunday sets the Sunday-based week number.
func (p *Parsed) SetWeekNumberSunday(v int) error {
	if v < 0 || v > 53 {
		return &datetime.ComponentRangeError{Name: "week", Min: 0, Max: 53, Value: int64(v)}
	}
	p.weekNumberSunday = uint8(v)
	p.set |= bitWeekNumberSunday
	return nil
}

// SetWeekNumberMonday sets the Monday-based week number.
func (p *Parsed) SetWeekNumberMonday(v int) error {
	if v < 0 || v > 53 {
		return &datetime.ComponentRangeError{Name: "week", Min: 0, Max: 53, Value: int64(v)}
	}
	p.weekNumberMonday = uint8(v)
	p.set |= bitWeekNumberMonday
	return nil
}

// SetHour24 sets the hour on the 24-hour clock.
func (p *Parsed) SetHour24(v int) error {
	if v < 0 || v > 23 {
		return &datetime.ComponentRangeError{Name: "hour", Min: 0, Max: 23, Value: int64(v)}
	}
	p.hour24 = uint8(v)
	p.set |= bitHour24
	return nil
}

// SetHour12 sets the hour on the 12-hour clock.
func (p *Parsed) SetHour12(v int) error {
	if v < 1 || v > 12 {
		return &datetime.ComponentRangeError{Name: "hour", Min: 1, Max: 12, Value: int64(v)}
	}
	p.hour12 = uint8(v)
	p.set |= bitHour12
	return nil
}

// SetPeriod sets the AM/PM marker.
func (p *Parsed) SetPeriod(isPM bool) {
	p.periodIsPM = isPM
	p.set |= bitPeriod
}

// SetMinute sets the minute within the hour.
func (p *Parsed) SetMinute(v int) error {
	if v < 0 || v > 59 {
		return &datetime.ComponentRangeError{Name: "minute", Min: 0, Max: 59, Value: int64(v)}
	}
	p.minute = uint8(v)
	p.set |= bitMinute
	return nil
}

// SetSecond sets the second within the minute. A value of 60 is accepted
// only when leap seconds are allowed and is canonicalized immediately to
// 59.999999999; the conversion step re-validates that the full instant can
// carry a leap second.
func (p *Parsed) SetSecond(v int) error {
	if v == 60 && p.leapSecondAllowed {
		p.second = 59
		p.subsecond = 999_999_999
		p.set |= bitSecond | bitSubsecond
		p.leapSecond = true
		return nil
	}
	if v < 0 || v > 59 {
		return &datetime.ComponentRangeError{
			Name: "second", Min: 0, Max: 59, Value: int64(v),
			Conditional: v == 60,
		}
	}
	p.second = uint8(v)
	p.set |= bitSecond
	return nil
}

// SetSubsecond sets the fraction of a second, in nanoseconds.
func (p *Parsed) SetSubsecond(nanos int) error {
	if nanos < 0 || nanos > 999_999_999 {
		return &datetime.ComponentRangeError{Name: "subsecond", Min: 0, Max: 999_999_999, Value: int64(nanos)}
	}
	p.subsecond = uint32(nanos)
	p.set |= bitSubsecond
	return nil
}

// SetOffsetHour sets the whole-hour portion of the UTC offset. negative
// records the textual sign, which matters for offsets like -00:30 whose
// hour magnitude is zero.
func (p *Parsed) SetOffsetHour(v int, negative bool) error {
	if v < -25 || v > 25 {
		return &datetime.ComponentRangeError{Name: "offset hour", Min: -25, Max: 25, Value: int64(v)}
	}
	p.offsetHour = int8(v)
	p.offsetIsNegative = negative
	p.set |= bitOffsetHour
	return nil
}

// SetOffsetMinute sets the minute portion of the UTC offset, as a
// magnitude; the sign recorded with the offset hour applies.
func (p *Parsed) SetOffsetMinute(v int) error {
	if v < 0 || v > 59 {
		return &datetime.ComponentRangeError{Name: "offset minute", Min: 0, Max: 59, Value: int64(v)}
	}
	p.offsetMinute = int8(v)
	p.set |= bitOffsetMinute
	return nil
}

// SetOffsetSecond sets the second portion of the UTC offset, as a
// magnitude; the sign recorded with the offset hour applies.
func (p *Parsed) SetOffsetSecond(v int) error {
	if v < 0 || v > 59 {
		return &datetime.ComponentRangeError{Name: "offset second", Min: 0, Max: 59, Value: int64(v)}
	}
	p.offsetSecond = int8(v)
	p.set |= bitOffsetSecond
	return nil
}

// SetUnixTimestampNanos sets the instant as nanoseconds since the Unix
// epoch.
func (p *Parsed) SetUnixTimestampNanos(v int64) {
	p.unixTimestampNanos = v
	p.set |= bitUnixTimestampNanos
}

// Year returns the full calendar year, if set.
func (p *Parsed) Year() (int, bool) {
	return int(p.year), p.has(bitYear)
}

// Month returns the month, if set.
func (p *Parsed) Month() (datetime.Month, bool) {
	return p.month, p.has(bitMonth)
}

// Day returns the day of the month, if set.
func (p *Parsed) Day() (int, bool) {
	return int(p.day), p.has(bitDay)
}

// Ordinal returns the day of the year, if set.
func (p *Parsed) Ordinal() (int, bool) {
	return int(p.ordinal), p.has(bitOrdinal)
}

// Weekday returns the day of the week, if set.
func (p *Parsed) Weekday() (datetime.Weekday, bool) {
	return p.weekday, p.has(bitWeekday)
}

// Hour24 returns the 24-hour clock hour, if set.
func (p *Parsed) Hour24() (int, bool) {
	return int(p.hour24), p.has(bitHour24)
}

// Minute returns the minute, if set.
func (p *Parsed) Minute() (int, bool) {
	return int(p.minute), p.has(bitMinute)
}

// Second returns the second, if set.
func (p *Parsed) Second() (int, bool) {
	return int(p.second), p.has(bitSecond)
}

// Subsecond returns the nanosecond fraction, if set.
func (p *Parsed) Subsecond() (int, bool) {
	return int(p.subsecond), p.has(bitSubsecond)
}

// UnixTimestampNanos returns the unix timestamp, if set.
func (p *Parsed) UnixTimestampNanos() (int64, bool) {
	return p.unixTimestampNanos, p.has(bitUnixTimestampNanos)
}

// resolveYear combines a split century/last-two year when the full year was
// not parsed directly.
func resolveYear(full int32, century int16, lastTwo uint8, set uint32, fullBit, centuryBit, lastTwoBit uint32) (int, bool) {
	if set&fullBit != 0 {
		return int(full), true
	}
	if set&centuryBit != 0 && set&lastTwoBit != 0 {
		if century < 0 {
			return int(century)*100 - int(lastTwo), true
		}
		return int(century)*100 + int(lastTwo), true
	}
	return 0, false
}

// Date resolves the parsed fields into a calendar date. The combinations
// are tried in priority order: year-month-day, then year-ordinal, then the
// ISO week date.
func (p *Parsed) Date() (datetime.Date, error) {
	year, hasYear := resolveYear(p.year, p.yearCentury, p.yearLastTwo, p.set, bitYear, bitYearCentury, bitYearLastTwo)

	switch {
	case hasYear && p.has(bitMonth) && p.has(bitDay):
		return datetime.DateFromCalendarDate(year, p.month, int(p.day))
	case hasYear && p.has(bitOrdinal):
		return datetime.DateFromOrdinalDate(year, int(p.ordinal))
	}

	isoYear, hasIsoYear := resolveYear(p.isoYear, p.isoYearCentury, p.isoYearLastTwo, p.set, bitIsoYear, bitIsoYearCentury, bitIsoYearLastTwo)
	if hasIsoYear && p.has(bitWeekNumberIso) && p.has(bitWeekday) {
		return datetime.DateFromIsoWeekDate(isoYear, int(p.weekNumberIso), p.weekday)
	}
	return datetime.Date{}, ErrInsufficientInformation
}

// Time resolves the parsed fields into a wall-clock time. Omitted finer
// fields default to zero, but a finer field without its coarser one is an
// error rather than an inference.
func (p *Parsed) Time() (datetime.Time, error) {
	var hour int
	switch {
	case p.has(bitHour24):
		hour = int(p.hour24)
	case p.has(bitHour12) && p.has(bitPeriod):
		hour = int(p.hour12) % 12
		if p.periodIsPM {
			hour += 12
		}
	default:
		return datetime.Time{}, ErrInsufficientInformation
	}

	var minute, second, subsecond int
	switch {
	case p.has(bitMinute):
		minute = int(p.minute)
	case p.has(bitSecond) || p.has(bitSubsecond):
		return datetime.Time{}, ErrInsufficientInformation
	}
	switch {
	case p.has(bitSecond):
		second = int(p.second)
	case p.has(bitSubsecond):
		return datetime.Time{}, ErrInsufficientInformation
	}
	if p.has(bitSubsecond) {
		subsecond = int(p.subsecond)
	}
	return datetime.TimeFromHMSNano(hour, minute, second, subsecond)
}

// UtcOffset resolves the parsed fields into a UTC offset. The offset hour
// is required; minutes and seconds default to zero and take the hour's
// textual sign.
func (p *Parsed) UtcOffset() (datetime.UtcOffset, error) {
	if !p.has(bitOffsetHour) {
		return datetime.UtcOffset{}, ErrInsufficientInformation
	}
	hour, minute, second := int(p.offsetHour), 0, 0
	if p.has(bitOffsetMinute) {
		minute = int(p.offsetMinute)
	}
	if p.has(bitOffsetSecond) {
		second = int(p.offsetSecond)
	}
	if p.offsetIsNegative || hour < 0 {
		if hour > 0 {
			hour = -hour
		}
		minute, second = -minute, -second
	}
	return datetime.OffsetFromHMS(hour, minute, second)
}

// DateTime resolves the parsed fields into a date-time without an offset.
func (p *Parsed) DateTime() (datetime.DateTime, error) {
	if p.has(bitUnixTimestampNanos) {
		odt, err := p.offsetDateTimeFromTimestamp()
		if err != nil {
			return datetime.DateTime{}, err
		}
		return odt.DateTime, nil
	}
	date, err := p.Date()
	if err != nil {
		return datetime.DateTime{}, err
	}
	t, err := p.Time()
	if err != nil {
		return datetime.DateTime{}, err
	}
	return datetime.DateTime{Date: date, Time: t}, nil
}

// OffsetDateTime resolves the parsed fields into a full instant. A unix
// timestamp alone resolves to UTC. A canonicalized leap second must land
// on the last second of a UTC month or the conversion fails with a
// conditional range error on the second component.
func (p *Parsed) OffsetDateTime() (datetime.OffsetDateTime, error) {
	if p.has(bitUnixTimestampNanos) {
		return p.offsetDateTimeFromTimestamp()
	}
	date, err := p.Date()
	if err != nil {
		return datetime.OffsetDateTime{}, err
	}
	t, err := p.Time()
	if err != nil {
		return datetime.OffsetDateTime{}, err
	}
	offset, err := p.UtcOffset()
	if err != nil {
		return datetime.OffsetDateTime{}, err
	}
	odt := datetime.NewOffsetDateTime(datetime.DateTime{Date: date, Time: t}, offset)
	if p.leapSecond && !odt.IsLastSecondOfUTCMonth() {
		return datetime.OffsetDateTime{}, &datetime.ComponentRangeError{
			Name: "second", Min: 0, Max: 59, Value: 60, Conditional: true,
		}
	}
	return odt, nil
}

// UtcDateTime resolves the parsed fields into a date-time normalized to
// UTC. Without an explicit offset the parsed wall clock is taken to be
// UTC already.
func (p *Parsed) UtcDateTime() (datetime.DateTime, error) {
	if p.has(bitUnixTimestampNanos) {
		odt, err := p.offsetDateTimeFromTimestamp()
		if err != nil {
			return datetime.DateTime{}, err
		}
		return odt.DateTime, nil
	}
	if !p.has(bitOffsetHour) {
		return p.DateTime()
	}
	odt, err := p.OffsetDateTime()
	if err != nil {
		return datetime.DateTime{}, err
	}
	utc, err := odt.ToOffset(datetime.UTC)
	if err != nil {
		return datetime.DateTime{}, err
	}
	return utc.DateTime, nil
}

func (p *Parsed) offsetDateTimeFromTimestamp() (datetime.OffsetDateTime, error) {
	odt, err := datetime.OffsetDateTimeFromUnixNano(p.unixTimestampNanos)
	if err != nil {
		return datetime.OffsetDateTime{}, err
	}
	if p.leapSecond && !odt.IsLastSecondOfUTCMonth() {
		return datetime.OffsetDateTime{}, &datetime.ComponentRangeError{
			Name: "second", Min: 0, Max: 59, Value: 60, Conditional: true,
		}
	}
	return odt, nil
}
