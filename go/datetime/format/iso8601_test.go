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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timefmt.io/timefmt/go/datetime"
)

func TestIso8601DefaultFormat(t *testing.T) {
	date := mustDate(t, 2021, datetime.January, 2)
	offset := mustOffset(t, 6, 7, 0)

	tm := mustTime(t, 3, 4, 5, 0)
	got, err := Format(Iso8601Default, &date, &tm, &offset)
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02T03:04:05+06:07", got)

	tm = mustTime(t, 3, 4, 5, 500000000)
	got, err = Format(Iso8601Default, &date, &tm, &offset)
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02T03:04:05.5+06:07", got)

	utc := datetime.UTC
	got, err = Format(Iso8601Default, &date, &tm, &utc)
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02T03:04:05.5Z", got)
}

func TestIso8601ConfiguredFormat(t *testing.T) {
	date := mustDate(t, 2021, datetime.January, 2)
	tm := mustTime(t, 3, 4, 5, 123456789)
	offset := mustOffset(t, 6, 7, 0)

	cases := []struct {
		config Iso8601Config
		want   string
	}{
		{
			Iso8601Config{FormatDate: true, FormatTime: true, FormatOffset: true},
			"20210102T030405.123456789+0607",
		},
		{
			Iso8601Config{FormatDate: true, UseSeparators: true, DateKind: DateKindOrdinal},
			"2021-002",
		},
		{
			Iso8601Config{FormatDate: true, UseSeparators: true, DateKind: DateKindWeek},
			"2020-W53-6",
		},
		{
			Iso8601Config{FormatDate: true, DateKind: DateKindWeek},
			"2020W536",
		},
		{
			Iso8601Config{FormatDate: true, UseSeparators: true, YearIsSixDigits: true},
			"+002021-01-02",
		},
		{
			Iso8601Config{FormatTime: true, UseSeparators: true, DecimalDigits: 3},
			"03:04:05.123",
		},
		{
			Iso8601Config{FormatTime: true, UseSeparators: true, TimePrecision: TimePrecisionMinute},
			"03:04.085390946",
		},
		{
			Iso8601Config{FormatTime: true, TimePrecision: TimePrecisionHour, DecimalDigits: 2},
			"03.06",
		},
		{
			Iso8601Config{FormatOffset: true, OffsetPrecision: OffsetPrecisionHour},
			"+06",
		},
	}
	for _, tc := range cases {
		var offsetArg *datetime.UtcOffset
		if tc.config.FormatOffset {
			offsetArg = &offset
		}
		got, err := Format(Iso8601{Config: tc.config}, &date, &tm, offsetArg)
		require.NoError(t, err, "%+v", tc.config)
		assert.Equal(t, tc.want, got, "%+v", tc.config)
	}
}

func TestIso8601FormatErrors(t *testing.T) {
	date := mustDate(t, 2021, datetime.January, 2)
	tm := mustTime(t, 3, 4, 5, 0)

	halfHour := mustOffset(t, 6, 30, 0)
	_, err := Format(Iso8601{Config: Iso8601Config{FormatOffset: true, OffsetPrecision: OffsetPrecisionHour}},
		&date, &tm, &halfHour)
	assert.ErrorIs(t, err, InvalidFormatComponentError("offset_minute"))

	withSeconds := mustOffset(t, 6, 7, 8)
	_, err = Format(Iso8601Default, &date, &tm, &withSeconds)
	assert.ErrorIs(t, err, InvalidFormatComponentError("offset_second"))

	utc := datetime.UTC
	bce := mustDate(t, -44, datetime.March, 15)
	_, err = Format(Iso8601Default, &bce, &tm, &utc)
	require.Error(t, err)
	rangeErr, ok := err.(*datetime.ComponentRangeError)
	require.True(t, ok, "%v", err)
	assert.Equal(t, "year", rangeErr.Name)

	sixDigits := Iso8601Default
	sixDigits.Config.YearIsSixDigits = true
	got, err := Format(sixDigits, &bce, &tm, &utc)
	require.NoError(t, err)
	assert.Equal(t, "-000044-03-15T03:04:05Z", got)
}

func TestIso8601Parse(t *testing.T) {
	cases := []struct {
		input  string
		date   datetime.Date
		time   datetime.Time
		offset datetime.UtcOffset
	}{
		{
			"2021-01-02T03:04:05+06:07",
			mustDate(t, 2021, datetime.January, 2),
			mustTime(t, 3, 4, 5, 0),
			mustOffset(t, 6, 7, 0),
		},
		{
			"20210102T030405+0607",
			mustDate(t, 2021, datetime.January, 2),
			mustTime(t, 3, 4, 5, 0),
			mustOffset(t, 6, 7, 0),
		},
		{
			"2021-002T03:04:05Z",
			mustDate(t, 2021, datetime.January, 2),
			mustTime(t, 3, 4, 5, 0),
			datetime.UTC,
		},
		{
			"2020-W53-6T03:04:05Z",
			mustDate(t, 2021, datetime.January, 2),
			mustTime(t, 3, 4, 5, 0),
			datetime.UTC,
		},
		{
			"2020W536T030405Z",
			mustDate(t, 2021, datetime.January, 2),
			mustTime(t, 3, 4, 5, 0),
			datetime.UTC,
		},
		{
			"+002021-01-02T03:04:05.123456789Z",
			mustDate(t, 2021, datetime.January, 2),
			mustTime(t, 3, 4, 5, 123456789),
			datetime.UTC,
		},
	}
	for _, tc := range cases {
		odt, err := ParseOffsetDateTime(Iso8601Default, tc.input)
		require.NoError(t, err, "%q", tc.input)
		assert.Equal(t, tc.date, odt.Date, "%q", tc.input)
		assert.Equal(t, tc.time, odt.Time, "%q", tc.input)
		assert.Equal(t, tc.offset, odt.Offset, "%q", tc.input)
	}
}

func TestIso8601ParseSections(t *testing.T) {
	// date only
	date, err := ParseDate(Iso8601Default, "2021-01-02")
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 2021, datetime.January, 2), date)

	// time only
	tm, err := ParseTime(Iso8601Default, "T03:04:05.25")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 3, 4, 5, 250000000), tm)

	// offset only
	offset, err := ParseUtcOffset(Iso8601Default, "-00:30")
	require.NoError(t, err)
	assert.Equal(t, mustOffset(t, 0, -30, 0), offset)

	offset, err = ParseUtcOffset(Iso8601Default, "Z")
	require.NoError(t, err)
	assert.Equal(t, datetime.UTC, offset)
}

func TestIso8601ParseFractions(t *testing.T) {
	// a fraction attaches to the smallest component present
	tm, err := ParseTime(Iso8601Default, "T03:04.5")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 3, 4, 30, 0), tm)

	tm, err = ParseTime(Iso8601Default, "T03.5")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 3, 30, 0, 0), tm)

	// the comma is an accepted decimal sign
	tm, err = ParseTime(Iso8601Default, "T03:04:05,5")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 3, 4, 5, 500000000), tm)

	// digits beyond nanosecond resolution are consumed, not counted
	tm, err = ParseTime(Iso8601Default, "T03:04:05.1234567891234")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 3, 4, 5, 123456789), tm)
}

func TestIso8601ParseLeapSecond(t *testing.T) {
	odt, err := ParseOffsetDateTime(Iso8601Default, "2021-12-31T23:59:60Z")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 23, 59, 59, 999999999), odt.Time)
}

func TestIso8601ParseKeepsDateError(t *testing.T) {
	// a signed prefix that is neither an expanded year nor an offset
	// reports the date section's error, not the offset section's
	_, err := Parse(Iso8601Default, "+1x")
	assert.ErrorIs(t, err, InvalidComponentError("year"))
}

func TestIso8601ParseErrors(t *testing.T) {
	cases := []string{
		"",
		"xyz",
		"2021-",
		"2021-1-02",
		"2021-01-02Txx",
		"T03:",
		"2021-01-02T03:04:05+24:00",
	}
	for _, input := range cases {
		_, err := Parse(Iso8601Default, input)
		assert.Error(t, err, "%q", input)
	}
}
