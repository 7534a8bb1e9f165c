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

// Month is a month of the year, January = 1.
type Month uint8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var longMonthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthFromNumber converts a 1-indexed month number into a Month,
// rejecting 0 and values above 12.
func MonthFromNumber(n int) (Month, error) {
	if n < 1 || n > 12 {
		return 0, rangeErr("month", 1, 12, int64(n))
	}
	return Month(n), nil
}

// String returns the full English name of the month. The three-letter
// abbreviation used by format components is String()[:3].
func (m Month) String() string {
	if m < January || m > December {
		return "Month(?)"
	}
	return longMonthNames[m-1]
}

// Previous returns the month before m, wrapping December before January.
func (m Month) Previous() Month {
	if m == January {
		return December
	}
	return m - 1
}

// Next returns the month after m, wrapping January after December.
func (m Month) Next() Month {
	if m == December {
		return January
	}
	return m + 1
}
