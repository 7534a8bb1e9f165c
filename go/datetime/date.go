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

// MinYear and MaxYear bound the years representable by Date.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Date is a calendar date in the proleptic Gregorian calendar. It is stored
// as a year and a 1-indexed ordinal day, which keeps ordinal and week math
// cheap; the month/day pair is derived on demand.
type Date struct {
	year    int32
	ordinal uint16
}

// daysBefore[m] counts the days in a non-leap year before month m+1.
var daysBefore = [13]uint16{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	365,
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of the
// given year.
func DaysInMonth(month Month, year int) int {
	if month == February && IsLeapYear(year) {
		return 29
	}
	return int(daysBefore[month] - daysBefore[month-1])
}

// DateFromCalendarDate constructs a Date from a year, month and day,
// validating each component.
func DateFromCalendarDate(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeErr("year", MinYear, MaxYear, int64(year))
	}
	if month < January || month > December {
		return Date{}, rangeErr("month", 1, 12, int64(month))
	}
	if day < 1 || day > DaysInMonth(month, year) {
		return Date{}, &ComponentRangeError{
			Name: "day", Min: 1, Max: int64(DaysInMonth(month, year)), Value: int64(day),
			Conditional: day >= 1 && day <= 31,
		}
	}
	ordinal := int(daysBefore[month-1]) + day
	if month > February && IsLeapYear(year) {
		ordinal++
	}
	return Date{year: int32(year), ordinal: uint16(ordinal)}, nil
}

// DateFromOrdinalDate constructs a Date from a year and a 1-indexed day
// of the year.
func DateFromOrdinalDate(year, ordinal int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeErr("year", MinYear, MaxYear, int64(year))
	}
	if ordinal < 1 || ordinal > DaysInYear(year) {
		return Date{}, &ComponentRangeError{
			Name: "ordinal", Min: 1, Max: int64(DaysInYear(year)), Value: int64(ordinal),
			Conditional: ordinal == 366,
		}
	}
	return Date{year: int32(year), ordinal: uint16(ordinal)}, nil
}

// DateFromIsoWeekDate constructs a Date from an ISO 8601 week-date triple.
// The resulting calendar year may differ from the ISO year at the edges of
// the week-based year.
func DateFromIsoWeekDate(year, week int, weekday Weekday) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeErr("year", MinYear, MaxYear, int64(year))
	}
	if week < 1 || week > weeksInYear(year) {
		return Date{}, &ComponentRangeError{
			Name: "week", Min: 1, Max: int64(weeksInYear(year)), Value: int64(week),
			Conditional: week == 53,
		}
	}
	jan4 := Date{year: int32(year), ordinal: 4}
	correction := jan4.Weekday().NumberFromMonday() + 3
	ordinal := week*7 + weekday.NumberFromMonday() - correction

	switch {
	case ordinal < 1:
		if year-1 < MinYear {
			return Date{}, rangeErr("year", MinYear, MaxYear, int64(year-1))
		}
		return Date{year: int32(year - 1), ordinal: uint16(ordinal + DaysInYear(year-1))}, nil
	case ordinal > DaysInYear(year):
		if year+1 > MaxYear {
			return Date{}, rangeErr("year", MinYear, MaxYear, int64(year+1))
		}
		return Date{year: int32(year + 1), ordinal: uint16(ordinal - DaysInYear(year))}, nil
	default:
		return Date{year: int32(year), ordinal: uint16(ordinal)}, nil
	}
}

// Year returns the calendar year.
func (d Date) Year() int {
	return int(d.year)
}

// Ordinal returns the 1-indexed day of the year.
func (d Date) Ordinal() int {
	return int(d.ordinal)
}

// MonthDay returns the month and the day of the month.
func (d Date) MonthDay() (Month, int) {
	ordinal := int(d.ordinal)
	if IsLeapYear(int(d.year)) {
		switch {
		case ordinal == 31+29:
			return February, 29
		case ordinal > 31+29:
			ordinal--
		}
	}
	month := Month((ordinal-1)/31 + 1)
	if int(daysBefore[month]) < ordinal {
		month++
	}
	return month, ordinal - int(daysBefore[month-1])
}

// Month returns the month of the year.
func (d Date) Month() Month {
	m, _ := d.MonthDay()
	return m
}

// Day returns the day of the month.
func (d Date) Day() int {
	_, day := d.MonthDay()
	return day
}

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	// 0001-01-01 in the proleptic Gregorian calendar is a Monday.
	return Weekday(floorMod(d.dayNumber()-1, 7))
}

// IsoYearWeek returns the ISO 8601 week-based year and week number.
func (d Date) IsoYearWeek() (year, week int) {
	year = int(d.year)
	week = (int(d.ordinal) - d.Weekday().NumberFromMonday() + 10) / 7
	switch {
	case week < 1:
		return year - 1, weeksInYear(year - 1)
	case week > weeksInYear(year):
		return year + 1, 1
	default:
		return year, week
	}
}

// IsoWeek returns the ISO 8601 week number.
func (d Date) IsoWeek() int {
	_, week := d.IsoYearWeek()
	return week
}

// SundayBasedWeek returns the week number with weeks starting on Sunday.
// Days before the first Sunday of the year are week 0.
func (d Date) SundayBasedWeek() int {
	return (int(d.ordinal) - d.Weekday().NumberDaysFromSunday() + 6) / 7
}

// MondayBasedWeek returns the week number with weeks starting on Monday.
// Days before the first Monday of the year are week 0.
func (d Date) MondayBasedWeek() int {
	return (int(d.ordinal) - d.Weekday().NumberDaysFromMonday() + 6) / 7
}

// weeksInYear returns the number of ISO 8601 weeks in the week-based year,
// 52 or 53.
func weeksInYear(year int) int {
	jan1 := Date{year: int32(year), ordinal: 1}.Weekday()
	if jan1 == Thursday || (jan1 == Wednesday && IsLeapYear(year)) {
		return 53
	}
	return 52
}

// daysBeforeYear counts the days strictly before January 1 of year,
// relative to 0001-01-01 having day number 1.
func daysBeforeYear(year int64) int64 {
	y := year - 1
	return 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// dayNumber returns the proleptic Gregorian day number of the date, with
// 0001-01-01 = 1.
func (d Date) dayNumber() int64 {
	return daysBeforeYear(int64(d.year)) + int64(d.ordinal)
}

// dateFromDayNumber is the inverse of dayNumber.
func dateFromDayNumber(n int64) (Date, error) {
	year := floorDiv(n*400, 146097) + 1
	for daysBeforeYear(year) >= n {
		year--
	}
	for daysBeforeYear(year)+int64(DaysInYear(int(year))) < n {
		year++
	}
	if year < MinYear || year > MaxYear {
		return Date{}, rangeErr("year", MinYear, MaxYear, year)
	}
	return Date{year: int32(year), ordinal: uint16(n - daysBeforeYear(year))}, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
