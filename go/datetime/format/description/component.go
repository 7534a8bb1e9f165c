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

package description

// Spec is the closed set of component kinds. Each kind is a small struct
// holding its typed modifiers; the engine dispatches on the concrete type.
type Spec interface {
	isSpec()
}

// Padding selects the alignment of numeric fields narrower than their
// declared width.
type Padding uint8

const (
	PaddingZero Padding = iota
	PaddingSpace
	PaddingNone
)

// MonthRepr selects how a month is written.
type MonthRepr uint8

const (
	MonthReprNumerical MonthRepr = iota
	MonthReprLong
	MonthReprShort
)

// WeekdayRepr selects how a weekday is written.
type WeekdayRepr uint8

const (
	WeekdayReprLong WeekdayRepr = iota
	WeekdayReprShort
	WeekdayReprSunday
	WeekdayReprMonday
)

// WeekNumberRepr selects which week-numbering scheme a week number uses.
type WeekNumberRepr uint8

const (
	WeekNumberReprIso WeekNumberRepr = iota
	WeekNumberReprSunday
	WeekNumberReprMonday
)

// YearRepr selects how much of a year is written.
type YearRepr uint8

const (
	YearReprFull YearRepr = iota
	YearReprCentury
	YearReprLastTwo
)

// YearBase selects between the calendar year and the ISO week-based year.
type YearBase uint8

const (
	YearBaseCalendar YearBase = iota
	YearBaseIsoWeek
)

// YearRange bounds the magnitude of a year. Standard is four digits;
// Extended admits up to six.
type YearRange uint8

const (
	YearRangeExtended YearRange = iota
	YearRangeStandard
)

// SubsecondDigits is the number of fractional digits, 1..9, or
// SubsecondOneOrMore for a variable count.
type SubsecondDigits uint8

const SubsecondOneOrMore SubsecondDigits = 0

// UnixTimestampPrecision selects the unit of a unix timestamp component.
type UnixTimestampPrecision uint8

const (
	UnixTimestampPrecisionSecond UnixTimestampPrecision = iota
	UnixTimestampPrecisionMillisecond
	UnixTimestampPrecisionMicrosecond
	UnixTimestampPrecisionNanosecond
)

// TrailingInput is the policy of the end component for input remaining
// after it.
type TrailingInput uint8

const (
	TrailingInputProhibit TrailingInput = iota
	TrailingInputDiscard
)

// Day is the day of the month, 1..31.
type Day struct {
	Padding Padding
}

// Month is the month of the year.
type Month struct {
	Padding       Padding
	Repr          MonthRepr
	CaseSensitive bool
}

// Ordinal is the day of the year, 1..366.
type Ordinal struct {
	Padding Padding
}

// Weekday is the day of the week.
type Weekday struct {
	Repr          WeekdayRepr
	OneIndexed    bool
	CaseSensitive bool
}

// WeekNumber is the week of the year under one of three numbering schemes.
type WeekNumber struct {
	Padding Padding
	Repr    WeekNumberRepr
}

// Year is the calendar or ISO week-based year, full or split.
type Year struct {
	Padding       Padding
	Repr          YearRepr
	Base          YearBase
	SignMandatory bool
	Range         YearRange
}

// Hour is the hour of the day, on the 24-hour or 12-hour clock.
type Hour struct {
	Padding  Padding
	Is12Hour bool
}

// Minute is the minute within the hour.
type Minute struct {
	Padding Padding
}

// Period is the AM/PM marker of the 12-hour clock.
type Period struct {
	Uppercase     bool
	CaseSensitive bool
}

// Second is the second within the minute.
type Second struct {
	Padding Padding
}

// Subsecond is the fraction of a second.
type Subsecond struct {
	Digits SubsecondDigits
}

// OffsetHour is the whole-hour portion of a UTC offset.
type OffsetHour struct {
	Padding       Padding
	SignMandatory bool
}

// OffsetMinute is the minute portion of a UTC offset.
type OffsetMinute struct {
	Padding Padding
}

// OffsetSecond is the second portion of a UTC offset.
type OffsetSecond struct {
	Padding Padding
}

// UnixTimestamp is the count of units since the Unix epoch.
type UnixTimestamp struct {
	Precision     UnixTimestampPrecision
	SignMandatory bool
}

// Ignore skips a fixed number of input bytes when parsing and emits
// nothing when formatting.
type Ignore struct {
	Count uint
}

// End asserts the end of input, either prohibiting or discarding whatever
// remains.
type End struct {
	TrailingInput TrailingInput
}

func (Day) isSpec()           {}
func (Month) isSpec()         {}
func (Ordinal) isSpec()       {}
func (Weekday) isSpec()       {}
func (WeekNumber) isSpec()    {}
func (Year) isSpec()          {}
func (Hour) isSpec()          {}
func (Minute) isSpec()        {}
func (Period) isSpec()        {}
func (Second) isSpec()        {}
func (Subsecond) isSpec()     {}
func (OffsetHour) isSpec()    {}
func (OffsetMinute) isSpec()  {}
func (OffsetSecond) isSpec()  {}
func (UnixTimestamp) isSpec() {}
func (Ignore) isSpec()        {}
func (End) isSpec()           {}
