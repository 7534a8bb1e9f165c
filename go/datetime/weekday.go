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

// Weekday is a day of the week. The zero value is Monday, matching the
// ISO 8601 week ordering used by the week-date calendar.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var longWeekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// String returns the full English name of the weekday. The three-letter
// abbreviation used by format components is String()[:3].
func (d Weekday) String() string {
	if d > Sunday {
		return "Weekday(?)"
	}
	return longWeekdayNames[d]
}

// NumberFromMonday returns the 1-indexed weekday number with Monday = 1.
// This is the ISO 8601 weekday number.
func (d Weekday) NumberFromMonday() int {
	return int(d) + 1
}

// NumberFromSunday returns the 1-indexed weekday number with Sunday = 1.
func (d Weekday) NumberFromSunday() int {
	return int(d+1)%7 + 1
}

// NumberDaysFromMonday returns the number of days since Monday, 0..6.
func (d Weekday) NumberDaysFromMonday() int {
	return int(d)
}

// NumberDaysFromSunday returns the number of days since Sunday, 0..6.
func (d Weekday) NumberDaysFromSunday() int {
	return int(d+1) % 7
}

// Previous returns the weekday before d.
func (d Weekday) Previous() Weekday {
	return (d + 6) % 7
}

// Next returns the weekday after d.
func (d Weekday) Next() Weekday {
	return (d + 1) % 7
}
