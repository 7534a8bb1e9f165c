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
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timefmt.io/timefmt/go/datetime"
	"timefmt.io/timefmt/go/datetime/format/description"
)

func mustDate(t *testing.T, year int, month datetime.Month, day int) datetime.Date {
	t.Helper()
	d, err := datetime.DateFromCalendarDate(year, month, day)
	require.NoError(t, err)
	return d
}

func mustTime(t *testing.T, hour, minute, second, nanosecond int) datetime.Time {
	t.Helper()
	tm, err := datetime.TimeFromHMSNano(hour, minute, second, nanosecond)
	require.NoError(t, err)
	return tm
}

func mustOffset(t *testing.T, hours, minutes, seconds int) datetime.UtcOffset {
	t.Helper()
	o, err := datetime.OffsetFromHMS(hours, minutes, seconds)
	require.NoError(t, err)
	return o
}

func compile(t *testing.T, desc string) Items {
	t.Helper()
	items, err := description.Parse(desc)
	require.NoError(t, err)
	return Items(items)
}

func compileOwned(t *testing.T, desc string) Items {
	t.Helper()
	item, err := description.ParseOwned(desc)
	require.NoError(t, err)
	return OwnedItems(item)
}

func TestFormatDescriptions(t *testing.T) {
	date := mustDate(t, 2021, datetime.January, 2)
	tm := mustTime(t, 3, 4, 5, 123456789)
	offset := mustOffset(t, 6, 7, 0)

	cases := []struct {
		desc string
		want string
	}{
		{"[year]-[month]-[day]", "2021-01-02"},
		{"[year repr:last_two]", "21"},
		{"[year repr:century]", "20"},
		{"[year sign:mandatory]", "+2021"},
		{"[year base:iso_week]-W[week_number]-[weekday repr:monday]", "2020-W53-6"},
		{"[month repr:long] [day padding:none], [year]", "January 2, 2021"},
		{"[month repr:short]", "Jan"},
		{"[weekday]", "Saturday"},
		{"[weekday repr:short]", "Sat"},
		{"[weekday repr:sunday]", "7"},
		{"[weekday repr:sunday one_indexed:false]", "6"},
		{"[ordinal]", "002"},
		{"[ordinal padding:space]", "  2"},
		{"[week_number repr:sunday]", "00"},
		{"[hour]:[minute]:[second]", "03:04:05"},
		{"[hour padding:none]", "3"},
		{"[hour repr:12] [period]", "03 AM"},
		{"[hour repr:12] [period case:lower]", "03 am"},
		{"[second].[subsecond]", "05.123456789"},
		{"[subsecond digits:3]", "123"},
		{"[offset_hour sign:mandatory]:[offset_minute]", "+06:07"},
		{"[unix_timestamp]", "1609534625"},
		{"[unix_timestamp precision:millisecond]", "1609534625123"},
		{"plain text", "plain text"},
	}
	for _, tc := range cases {
		got, err := Format(compile(t, tc.desc), &date, &tm, &offset)
		require.NoError(t, err, "%q", tc.desc)
		assert.Equal(t, tc.want, got, "%q", tc.desc)
	}
}

func TestFormatNegativeOffset(t *testing.T) {
	offset := mustOffset(t, 0, -30, 0)
	got, err := Format(compile(t, "[offset_hour sign:mandatory]:[offset_minute]"), nil, nil, &offset)
	require.NoError(t, err)
	assert.Equal(t, "-00:30", got)
}

// Zero and space padding always produce exactly the declared width.
func TestPaddingWidth(t *testing.T) {
	tm := mustTime(t, 3, 0, 0, 0)
	cases := []struct {
		desc string
		want string
	}{
		{"[hour]", "03"},
		{"[hour padding:zero]", "03"},
		{"[hour padding:space]", " 3"},
		{"[hour padding:none]", "3"},
	}
	for _, tc := range cases {
		got, err := Format(compile(t, tc.desc), nil, &tm, nil)
		require.NoError(t, err, "%q", tc.desc)
		assert.Equal(t, tc.want, got, "%q", tc.desc)
	}
}

func TestFormatSubsecondTrimsTrailingZeros(t *testing.T) {
	cases := []struct {
		nanos int
		want  string
	}{
		{0, "0"},
		{500000000, "5"},
		{123000000, "123"},
		{1, "000000001"},
	}
	for _, tc := range cases {
		tm := mustTime(t, 0, 0, 0, tc.nanos)
		got, err := Format(compile(t, "[subsecond]"), nil, &tm, nil)
		require.NoError(t, err, "%d", tc.nanos)
		assert.Equal(t, tc.want, got, "%d", tc.nanos)
	}
}

func TestFormatMissingComponents(t *testing.T) {
	tm := mustTime(t, 3, 4, 5, 0)

	_, err := Format(compile(t, "[year]"), nil, &tm, nil)
	assert.ErrorIs(t, err, ErrInsufficientTypeInformation)

	_, err = Format(compile(t, "[offset_hour]"), nil, &tm, nil)
	assert.ErrorIs(t, err, ErrInsufficientTypeInformation)

	got, err := Format(compile(t, "[hour]:[minute]"), nil, &tm, nil)
	require.NoError(t, err)
	assert.Equal(t, "03:04", got)
}

func TestFormatFirstUsesFirstAlternative(t *testing.T) {
	date := mustDate(t, 2021, datetime.January, 2)
	f := compileOwned(t, "[first [[year]] [[month]]]")
	got, err := Format(f, &date, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "2021", got)
}

func TestSizeHint(t *testing.T) {
	date := mustDate(t, 2021, datetime.September, 29)
	tm := mustTime(t, 13, 4, 5, 999999999)
	offset := mustOffset(t, -25, -59, 0)

	descs := []string{
		"[year]-[month]-[day]T[hour]:[minute]:[second].[subsecond]",
		"[month repr:long] [weekday] [offset_hour sign:mandatory]:[offset_minute]",
		"[year sign:mandatory][ordinal]",
		"[unix_timestamp precision:nanosecond]",
	}
	for _, desc := range descs {
		f := compile(t, desc)
		maxLen, validUTF8 := SizeHint(f)
		assert.True(t, validUTF8, "%q", desc)

		got, err := Format(f, &date, &tm, &offset)
		require.NoError(t, err, "%q", desc)
		assert.LessOrEqual(t, len(got), maxLen, "%q -> %q", desc, got)
	}

	f := Items{description.Literal("héllo")}
	maxLen, validUTF8 := SizeHint(f)
	assert.False(t, validUTF8)
	assert.Equal(t, len("héllo"), maxLen)
	assert.True(t, utf8.ValidString("héllo"))
}

func TestFormatInto(t *testing.T) {
	date := mustDate(t, 2021, datetime.January, 2)
	var sb strings.Builder
	n, err := FormatInto(&sb, compile(t, "[year]-[month]-[day]"), &date, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "2021-01-02", sb.String())
}

func TestFormatDateTimeHelpers(t *testing.T) {
	dt := datetime.DateTime{
		Date: mustDate(t, 2021, datetime.January, 2),
		Time: mustTime(t, 3, 4, 5, 0),
	}
	got, err := FormatDateTime(compile(t, "[year]-[month]-[day] [hour]:[minute]:[second]"), dt)
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02 03:04:05", got)

	odt := datetime.NewOffsetDateTime(dt, mustOffset(t, 6, 7, 0))
	got, err = FormatOffsetDateTime(compile(t, "[hour][offset_hour sign:mandatory]"), odt)
	require.NoError(t, err)
	assert.Equal(t, "03+06", got)
}

func TestAppendFormat(t *testing.T) {
	date := mustDate(t, 2021, datetime.January, 2)
	dst := []byte("date=")
	dst, err := AppendFormat(dst, compile(t, "[year]"), &date, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "date=2021", string(dst))
}
