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

// Time is a wall-clock time with nanosecond precision.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// Midnight is 00:00:00.0.
var Midnight = Time{}

// TimeFromHMS constructs a Time from hour, minute and second.
func TimeFromHMS(hour, minute, second int) (Time, error) {
	return TimeFromHMSNano(hour, minute, second, 0)
}

// TimeFromHMSNano constructs a Time from hour, minute, second and
// nanosecond, validating each component.
func TimeFromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, rangeErr("hour", 0, 23, int64(hour))
	}
	if minute < 0 || minute > 59 {
		return Time{}, rangeErr("minute", 0, 59, int64(minute))
	}
	if second < 0 || second > 59 {
		return Time{}, rangeErr("second", 0, 59, int64(second))
	}
	if nanosecond < 0 || nanosecond > 999_999_999 {
		return Time{}, rangeErr("nanosecond", 0, 999_999_999, int64(nanosecond))
	}
	return Time{
		hour:       uint8(hour),
		minute:     uint8(minute),
		second:     uint8(second),
		nanosecond: uint32(nanosecond),
	}, nil
}

func (t Time) Hour() int {
	return int(t.hour)
}

func (t Time) Minute() int {
	return int(t.minute)
}

func (t Time) Second() int {
	return int(t.second)
}

func (t Time) Nanosecond() int {
	return int(t.nanosecond)
}

// Hour12 returns the hour on the 12-hour clock and whether it is PM.
func (t Time) Hour12() (hour int, pm bool) {
	hour = int(t.hour) % 12
	if hour == 0 {
		hour = 12
	}
	return hour, t.hour >= 12
}

// secondOfDay returns the number of whole seconds since midnight.
func (t Time) secondOfDay() int64 {
	return int64(t.hour)*3600 + int64(t.minute)*60 + int64(t.second)
}
