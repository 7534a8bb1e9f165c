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

func TestParseBasicDescription(t *testing.T) {
	items, err := Parse("[year]-[month]-[day]")
	require.NoError(t, err)

	want := []Item{
		Component{Spec: Year{}},
		Literal("-"),
		Component{Spec: Month{CaseSensitive: true}},
		Literal("-"),
		Component{Spec: Day{}},
	}
	assert.Empty(t, cmp.Diff(want, items))
}

func TestParseModifiers(t *testing.T) {
	cases := []struct {
		input string
		want  Spec
	}{
		{"[year repr:last_two]", Year{Repr: YearReprLastTwo}},
		{"[year base:iso_week sign:mandatory range:standard]",
			Year{Base: YearBaseIsoWeek, SignMandatory: true, Range: YearRangeStandard}},
		{"[month repr:long case_sensitive:false]", Month{Repr: MonthReprLong}},
		{"[month padding:space]", Month{Padding: PaddingSpace, CaseSensitive: true}},
		{"[weekday repr:sunday one_indexed:false]",
			Weekday{Repr: WeekdayReprSunday, CaseSensitive: true}},
		{"[week_number repr:monday]", WeekNumber{Repr: WeekNumberReprMonday}},
		{"[hour repr:12 padding:none]", Hour{Is12Hour: true, Padding: PaddingNone}},
		{"[period case:lower]", Period{CaseSensitive: true}},
		{"[subsecond digits:3]", Subsecond{Digits: 3}},
		{"[subsecond digits:1+]", Subsecond{Digits: SubsecondOneOrMore}},
		{"[offset_hour sign:mandatory]", OffsetHour{SignMandatory: true}},
		{"[unix_timestamp precision:millisecond]",
			UnixTimestamp{Precision: UnixTimestampPrecisionMillisecond}},
		{"[ignore count:4]", Ignore{Count: 4}},
		{"[end trailing_input:discard]", End{TrailingInput: TrailingInputDiscard}},
	}
	for _, tc := range cases {
		items, err := Parse(tc.input)
		require.NoError(t, err, "%q", tc.input)
		require.Len(t, items, 1, "%q", tc.input)
		component, ok := items[0].(Component)
		require.True(t, ok, "%q", tc.input)
		assert.Empty(t, cmp.Diff(tc.want, component.Spec), "%q", tc.input)
	}
}

func TestParseLiteralEscape(t *testing.T) {
	items, err := Parse("a[[b[[[year]")
	require.NoError(t, err)

	want := []Item{
		Literal("a[b["),
		Component{Spec: Year{}},
	}
	assert.Empty(t, cmp.Diff(want, items))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		want  any
	}{
		{"[ignore]", &MissingRequiredModifierError{Name: "count", Index: 1}},
		{"[bad]", &InvalidComponentNameError{Name: "bad", Index: 1}},
		{"x[]", &MissingComponentNameError{Index: 2}},
		{"[year", &UnclosedOpeningBracketError{Index: 0}},
		{"ab[", &UnclosedOpeningBracketError{Index: 2}},
		{"[year repr:nope]", &InvalidModifierError{Value: "repr:nope", Index: 6}},
		{"[year nonsense]", &InvalidModifierError{Value: "nonsense", Index: 6}},
		{"[day padding:diagonal]", &InvalidModifierError{Value: "padding:diagonal", Index: 5}},
		{"[optional [[year]]]", &NotSupportedError{
			What: "optional item", Context: "runtime-parsed format descriptions", Index: 0}},
		{"[first [[year]] [[month]]]", &NotSupportedError{
			What: "first item", Context: "runtime-parsed format descriptions", Index: 0}},
	}
	for _, tc := range cases {
		_, err := Parse(tc.input)
		require.Error(t, err, "%q", tc.input)
		assert.Empty(t, cmp.Diff(tc.want, err), "%q", tc.input)

		var invalid InvalidFormatDescription
		assert.ErrorAs(t, err, &invalid, "%q", tc.input)
	}
}

func TestParseOwnedOptional(t *testing.T) {
	item, err := ParseOwned("[year][optional [-[month]]]")
	require.NoError(t, err)

	want := Compound{
		Component{Spec: Year{}},
		Optional{Items: []Item{
			Literal("-"),
			Component{Spec: Month{CaseSensitive: true}},
		}},
	}
	assert.Empty(t, cmp.Diff(want, item))
}

func TestParseOwnedFirst(t *testing.T) {
	item, err := ParseOwned("[first [[year]] [[month]]]")
	require.NoError(t, err)

	want := First{
		{Component{Spec: Year{}}},
		{Component{Spec: Month{CaseSensitive: true}}},
	}
	assert.Empty(t, cmp.Diff(want, item))
}

func TestParseOwnedCollapsesSingleItem(t *testing.T) {
	item, err := ParseOwned("[year]")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(Component{Spec: Year{}}, item))
}

func TestParseOwnedErrors(t *testing.T) {
	cases := []struct {
		input string
		want  any
	}{
		{"[optional[year]]", &ExpectedError{What: "whitespace after `optional`", Index: 9}},
		{"[optional x]", &ExpectedError{What: "opening bracket", Index: 10}},
		{"[optional [[year]", &UnclosedOpeningBracketError{Index: 10}},
		{"[first ]", &ExpectedError{What: "opening bracket", Index: 7}},
		{"[first [[year]]", &UnclosedOpeningBracketError{Index: 0}},
	}
	for _, tc := range cases {
		_, err := ParseOwned(tc.input)
		require.Error(t, err, "%q", tc.input)
		assert.Empty(t, cmp.Diff(tc.want, err), "%q", tc.input)
	}
}

// Compiling the same description twice must yield structurally identical
// trees.
func TestParseDeterministic(t *testing.T) {
	const desc = "[year]-[month repr:short]-[day] [hour]:[minute] [offset_hour sign:mandatory]"
	first, err := Parse(desc)
	require.NoError(t, err)
	second, err := Parse(desc)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
}
