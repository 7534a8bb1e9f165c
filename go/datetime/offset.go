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

// maxOffsetSeconds is one second short of 26 hours, the widest offset the
// engine will represent. Real-world offsets stay within +-14:00 but RFC
// parsing is deliberately more permissive.
const maxOffsetSeconds = 26*3600 - 1

// UtcOffset is an offset from UTC, stored as a signed number of whole
// seconds east of UTC.
type UtcOffset struct {
	seconds int32
}

// UTC is the zero offset.
var UTC = UtcOffset{}

// OffsetFromHMS constructs a UtcOffset from hour, minute and second
// components. Nonzero components must not disagree in sign; components with
// value zero take the sign of the first nonzero component.
func OffsetFromHMS(hours, minutes, seconds int) (UtcOffset, error) {
	if hours < -25 || hours > 25 {
		return UtcOffset{}, rangeErr("hours", -25, 25, int64(hours))
	}
	if minutes < -59 || minutes > 59 {
		return UtcOffset{}, rangeErr("minutes", -59, 59, int64(minutes))
	}
	if seconds < -59 || seconds > 59 {
		return UtcOffset{}, rangeErr("seconds", -59, 59, int64(seconds))
	}
	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return UtcOffset{}, rangeErr("minutes", -59, 59, int64(minutes))
	}
	return UtcOffset{seconds: int32(hours*3600 + minutes*60 + seconds)}, nil
}

// OffsetFromWholeSeconds constructs a UtcOffset from a number of seconds
// east of UTC.
func OffsetFromWholeSeconds(seconds int) (UtcOffset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return UtcOffset{}, rangeErr("seconds", -maxOffsetSeconds, maxOffsetSeconds, int64(seconds))
	}
	return UtcOffset{seconds: int32(seconds)}, nil
}

// WholeHours returns the whole-hour portion of the offset.
func (o UtcOffset) WholeHours() int {
	return int(o.seconds / 3600)
}

// MinutesPastHour returns the minutes component, carrying the offset's sign.
func (o UtcOffset) MinutesPastHour() int {
	return int(o.seconds / 60 % 60)
}

// SecondsPastMinute returns the seconds component, carrying the offset's sign.
func (o UtcOffset) SecondsPastMinute() int {
	return int(o.seconds % 60)
}

// WholeSeconds returns the offset as a total number of seconds east of UTC.
func (o UtcOffset) WholeSeconds() int {
	return int(o.seconds)
}

// IsNegative reports whether the offset is west of UTC.
func (o UtcOffset) IsNegative() bool {
	return o.seconds < 0
}

// IsUTC reports whether the offset is exactly UTC.
func (o UtcOffset) IsUTC() bool {
	return o.seconds == 0
}
