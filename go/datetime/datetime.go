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

package datetime

// unixEpochDay is the day number of 1970-01-01.
var unixEpochDay = daysBeforeYear(1970) + 1

// DateTime is a calendar date with a wall-clock time and no offset.
type DateTime struct {
	Date Date
	Time Time
}

// OffsetDateTime is a DateTime at a known offset from UTC, identifying a
// single instant.
type OffsetDateTime struct {
	DateTime
	Offset UtcOffset
}

// NewOffsetDateTime pairs a DateTime with an offset.
func NewOffsetDateTime(dt DateTime, offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{DateTime: dt, Offset: offset}
}

// Unix returns the number of seconds since the Unix epoch, ignoring the
// sub-second portion.
func (odt OffsetDateTime) Unix() int64 {
	days := odt.Date.dayNumber() - unixEpochDay
	return days*86400 + odt.Time.secondOfDay() - int64(odt.Offset.WholeSeconds())
}

// UnixNano returns the number of nanoseconds since the Unix epoch.
func (odt OffsetDateTime) UnixNano() int64 {
	return odt.Unix()*1_000_000_000 + int64(odt.Time.Nanosecond())
}

// OffsetDateTimeFromUnix constructs the UTC date-time for the given number
// of seconds since the Unix epoch.
func OffsetDateTimeFromUnix(sec int64) (OffsetDateTime, error) {
	days := floorDiv(sec, 86400)
	rem := floorMod(sec, 86400)
	date, err := dateFromDayNumber(unixEpochDay + days)
	if err != nil {
		return OffsetDateTime{}, err
	}
	t := Time{
		hour:   uint8(rem / 3600),
		minute: uint8(rem / 60 % 60),
		second: uint8(rem % 60),
	}
	return OffsetDateTime{DateTime: DateTime{Date: date, Time: t}}, nil
}

// OffsetDateTimeFromUnixNano constructs the UTC date-time for the given
// number of nanoseconds since the Unix epoch.
func OffsetDateTimeFromUnixNano(nanos int64) (OffsetDateTime, error) {
	odt, err := OffsetDateTimeFromUnix(floorDiv(nanos, 1_000_000_000))
	if err != nil {
		return OffsetDateTime{}, err
	}
	odt.Time.nanosecond = uint32(floorMod(nanos, 1_000_000_000))
	return odt, nil
}

// ToOffset returns the same instant expressed at a different offset.
func (odt OffsetDateTime) ToOffset(offset UtcOffset) (OffsetDateTime, error) {
	if odt.Offset == offset {
		return odt, nil
	}
	shifted, err := OffsetDateTimeFromUnix(odt.Unix() + int64(offset.WholeSeconds()))
	if err != nil {
		return OffsetDateTime{}, err
	}
	shifted.Time.nanosecond = odt.Time.nanosecond
	shifted.Offset = offset
	return shifted, nil
}

// IsLastSecondOfUTCMonth reports whether the instant, viewed in UTC, falls
// on 23:59:59 of the last day of a month. This is the position a textual
// leap second (second 60) is permitted to occupy.
func (odt OffsetDateTime) IsLastSecondOfUTCMonth() bool {
	utc, err := odt.ToOffset(UTC)
	if err != nil {
		return false
	}
	if utc.Time.Hour() != 23 || utc.Time.Minute() != 59 || utc.Time.Second() != 59 {
		return false
	}
	month, day := utc.Date.MonthDay()
	return day == DaysInMonth(month, utc.Date.Year())
}
