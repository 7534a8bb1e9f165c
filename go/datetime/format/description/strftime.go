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

// ParseStrftime translates a POSIX strftime layout into the same item
// sequence a native format description would compile to. Composite
// directives such as %T expand in place. Directives whose semantics the
// component set cannot express (%Z, and the %E / %O alternative forms)
// fail with NotSupportedError.
func ParseStrftime(s string) ([]Item, error) {
	var items []Item
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			items = append(items, Literal(lit))
			lit = nil
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			lit = append(lit, s[i])
			continue
		}
		if i+1 >= len(s) {
			return nil, &ExpectedError{What: "directive after `%`", Index: i}
		}
		i++
		switch c := s[i]; c {
		case '%':
			lit = append(lit, '%')
		case 'n':
			lit = append(lit, '\n')
		case 't':
			lit = append(lit, '\t')
		case 'E', 'O':
			return nil, &NotSupportedError{
				What: "`%" + string(c) + "` modified directive", Context: "strftime descriptions", Index: i - 1,
			}
		case 'Z':
			return nil, &NotSupportedError{
				What: "`%Z` directive", Context: "strftime descriptions", Index: i - 1,
			}
		default:
			expanded, ok := strftimeDirective(c)
			if !ok {
				return nil, &InvalidComponentNameError{Name: "%" + string(c), Index: i - 1}
			}
			flush()
			items = append(items, expanded...)
		}
	}
	flush()
	return items, nil
}

func strftimeDirective(c byte) ([]Item, bool) {
	one := func(s Spec) []Item { return []Item{Component{Spec: s}} }
	expand := func(layout string) []Item {
		items, err := ParseStrftime(layout)
		if err != nil {
			panic("strftime: composite directive failed to expand: " + err.Error())
		}
		return items
	}

	switch c {
	case 'a':
		return one(Weekday{Repr: WeekdayReprShort, OneIndexed: true, CaseSensitive: true}), true
	case 'A':
		return one(Weekday{Repr: WeekdayReprLong, OneIndexed: true, CaseSensitive: true}), true
	case 'b', 'h':
		return one(Month{Repr: MonthReprShort, CaseSensitive: true}), true
	case 'B':
		return one(Month{Repr: MonthReprLong, CaseSensitive: true}), true
	case 'c':
		return expand("%a %b %e %H:%M:%S %Y"), true
	case 'C':
		return one(Year{Repr: YearReprCentury}), true
	case 'd':
		return one(Day{}), true
	case 'D', 'x':
		return expand("%m/%d/%y"), true
	case 'e':
		return one(Day{Padding: PaddingSpace}), true
	case 'F':
		return expand("%Y-%m-%d"), true
	case 'g':
		return one(Year{Repr: YearReprLastTwo, Base: YearBaseIsoWeek}), true
	case 'G':
		return one(Year{Base: YearBaseIsoWeek}), true
	case 'H':
		return one(Hour{}), true
	case 'I':
		return one(Hour{Is12Hour: true}), true
	case 'j':
		return one(Ordinal{}), true
	case 'k':
		return one(Hour{Padding: PaddingSpace}), true
	case 'l':
		return one(Hour{Is12Hour: true, Padding: PaddingSpace}), true
	case 'm':
		return one(Month{CaseSensitive: true}), true
	case 'M':
		return one(Minute{}), true
	case 'p':
		return one(Period{Uppercase: true, CaseSensitive: true}), true
	case 'P':
		return one(Period{Uppercase: false, CaseSensitive: true}), true
	case 'r':
		return expand("%I:%M:%S %p"), true
	case 'R':
		return expand("%H:%M"), true
	case 's':
		return one(UnixTimestamp{}), true
	case 'S':
		return one(Second{}), true
	case 'T', 'X':
		return expand("%H:%M:%S"), true
	case 'u':
		return one(Weekday{Repr: WeekdayReprMonday, OneIndexed: true, CaseSensitive: true}), true
	case 'U':
		return one(WeekNumber{Repr: WeekNumberReprSunday}), true
	case 'V':
		return one(WeekNumber{Repr: WeekNumberReprIso}), true
	case 'w':
		return one(Weekday{Repr: WeekdayReprSunday, CaseSensitive: true}), true
	case 'W':
		return one(WeekNumber{Repr: WeekNumberReprMonday}), true
	case 'y':
		return one(Year{Repr: YearReprLastTwo}), true
	case 'Y':
		return one(Year{}), true
	case 'z':
		return []Item{
			Component{Spec: OffsetHour{SignMandatory: true}},
			Component{Spec: OffsetMinute{}},
		}, true
	default:
		return nil, false
	}
}
