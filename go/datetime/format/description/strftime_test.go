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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// %F and %T must compile to the same items as their native spellings.
func TestStrftimeMatchesNativeDescription(t *testing.T) {
	cases := []struct {
		strftime string
		native   string
	}{
		{"%F %T", "[year]-[month]-[day] [hour]:[minute]:[second]"},
		{"%Y/%j", "[year]/[ordinal]"},
		{"%H:%M", "[hour]:[minute]"},
		{"%d.%m.%y", "[day].[month].[year repr:last_two]"},
	}
	for _, tc := range cases {
		fromStrftime, err := ParseStrftime(tc.strftime)
		require.NoError(t, err, "%q", tc.strftime)
		fromNative, err := Parse(tc.native)
		require.NoError(t, err, "%q", tc.native)
		assert.Empty(t, cmp.Diff(fromNative, fromStrftime), "%q vs %q", tc.strftime, tc.native)
	}
}

func TestStrftimeDirectives(t *testing.T) {
	cases := []struct {
		input string
		want  []Item
	}{
		{"%a", []Item{Component{Spec: Weekday{Repr: WeekdayReprShort, OneIndexed: true, CaseSensitive: true}}}},
		{"%u", []Item{Component{Spec: Weekday{Repr: WeekdayReprMonday, OneIndexed: true, CaseSensitive: true}}}},
		{"%w", []Item{Component{Spec: Weekday{Repr: WeekdayReprSunday, CaseSensitive: true}}}},
		{"%e", []Item{Component{Spec: Day{Padding: PaddingSpace}}}},
		{"%I", []Item{Component{Spec: Hour{Is12Hour: true}}}},
		{"%G", []Item{Component{Spec: Year{Base: YearBaseIsoWeek}}}},
		{"%V", []Item{Component{Spec: WeekNumber{Repr: WeekNumberReprIso}}}},
		{"%U", []Item{Component{Spec: WeekNumber{Repr: WeekNumberReprSunday}}}},
		{"%s", []Item{Component{Spec: UnixTimestamp{}}}},
		{"%z", []Item{
			Component{Spec: OffsetHour{SignMandatory: true}},
			Component{Spec: OffsetMinute{}},
		}},
		{"100%%", []Item{Literal("100%")}},
		{"%n%t", []Item{Literal("\n\t")}},
	}
	for _, tc := range cases {
		items, err := ParseStrftime(tc.input)
		require.NoError(t, err, "%q", tc.input)
		assert.Empty(t, cmp.Diff(tc.want, items), "%q", tc.input)
	}
}

func TestStrftimeComposite(t *testing.T) {
	items, err := ParseStrftime("%r")
	require.NoError(t, err)

	want := []Item{
		Component{Spec: Hour{Is12Hour: true}},
		Literal(":"),
		Component{Spec: Minute{}},
		Literal(":"),
		Component{Spec: Second{}},
		Literal(" "),
		Component{Spec: Period{Uppercase: true, CaseSensitive: true}},
	}
	assert.Empty(t, cmp.Diff(want, items))
}

func TestStrftimeErrors(t *testing.T) {
	_, err := ParseStrftime("%q")
	require.Error(t, err)
	assert.Empty(t, cmp.Diff(&InvalidComponentNameError{Name: "%q", Index: 0}, err))

	_, err = ParseStrftime("%Z")
	require.Error(t, err)
	var notSupported *NotSupportedError
	assert.ErrorAs(t, err, &notSupported)

	_, err = ParseStrftime("%Ey")
	require.Error(t, err)
	assert.ErrorAs(t, err, &notSupported)

	_, err = ParseStrftime("trailing %")
	require.Error(t, err)
	var expected *ExpectedError
	assert.ErrorAs(t, err, &expected)
}
