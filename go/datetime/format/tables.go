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

// English name tables, indexed to match datetime.Month (offset by one) and
// datetime.Weekday (Monday first).

var monthsLong = []string{
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

var monthsShort = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var weekdaysLong = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var weekdaysShort = []string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

var pow10 = [10]uint64{
	1, 10, 100, 1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// appendInt appends v zero-padded to at least width digits. A negative v
// is given a leading '-' before the padding.
func appendInt(b []byte, v, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	return appendPadded(b, uint64(v), width, '0')
}

// appendPadded appends v padded to at least width digits with the given
// pad byte. v must be non-negative.
func appendPadded(b []byte, v uint64, width int, pad byte) []byte {
	n := 1
	for x := v; x >= 10; x /= 10 {
		n++
	}
	for ; n < width; width-- {
		b = append(b, pad)
	}
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return append(b, buf[i:]...)
}
