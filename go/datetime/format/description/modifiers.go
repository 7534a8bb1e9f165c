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

import "strconv"

var knownNames = map[string]struct{}{
	"day": {}, "month": {}, "ordinal": {}, "weekday": {}, "week_number": {},
	"year": {}, "hour": {}, "minute": {}, "period": {}, "second": {},
	"subsecond": {}, "offset_hour": {}, "offset_minute": {}, "offset_second": {},
	"unix_timestamp": {}, "ignore": {}, "end": {},
}

func isKnownName(name string) bool {
	_, ok := knownNames[name]
	return ok
}

// buildComponent constructs the spec for a component name, starting from
// its defaults and applying each modifier; unknown (name, key, value)
// combinations are invalid modifiers.
func buildComponent(name string, index int, mods []modifier) (Spec, error) {
	apply := func(spec Spec, f func(m modifier) (Spec, bool)) (Spec, error) {
		for _, m := range mods {
			next, ok := f(m)
			if !ok {
				return nil, &InvalidModifierError{Value: m.raw, Index: m.index}
			}
			spec = next
		}
		return spec, nil
	}

	switch name {
	case "day":
		c := Day{}
		return apply(c, func(m modifier) (Spec, bool) {
			ok := applyPadding(&c.Padding, m)
			return c, ok
		})
	case "month":
		c := Month{CaseSensitive: true}
		return apply(c, func(m modifier) (Spec, bool) {
			switch m.key {
			case "padding":
				return c, applyPadding(&c.Padding, m)
			case "repr":
				switch m.value {
				case "numerical":
					c.Repr = MonthReprNumerical
				case "long":
					c.Repr = MonthReprLong
				case "short":
					c.Repr = MonthReprShort
				default:
					return c, false
				}
				return c, true
			case "case_sensitive":
				return c, applyBool(&c.CaseSensitive, m)
			}
			return c, false
		})
	case "ordinal":
		c := Ordinal{}
		return apply(c, func(m modifier) (Spec, bool) {
			ok := applyPadding(&c.Padding, m)
			return c, ok
		})
	case "weekday":
		c := Weekday{OneIndexed: true, CaseSensitive: true}
		return apply(c, func(m modifier) (Spec, bool) {
			switch m.key {
			case "repr":
				switch m.value {
				case "short":
					c.Repr = WeekdayReprShort
				case "long":
					c.Repr = WeekdayReprLong
				case "sunday":
					c.Repr = WeekdayReprSunday
				case "monday":
					c.Repr = WeekdayReprMonday
				default:
					return c, false
				}
				return c, true
			case "one_indexed":
				return c, applyBool(&c.OneIndexed, m)
			case "case_sensitive":
				return c, applyBool(&c.CaseSensitive, m)
			}
			return c, false
		})
	case "week_number":
		c := WeekNumber{}
		return apply(c, func(m modifier) (Spec, bool) {
			switch m.key {
			case "padding":
				return c, applyPadding(&c.Padding, m)
			case "repr":
				switch m.value {
				case "iso":
					c.Repr = WeekNumberReprIso
				case "sunday":
					c.Repr = WeekNumberReprSunday
				case "monday":
					c.Repr = WeekNumberReprMonday
				default:
					return c, false
				}
				return c, true
			}
			return c, false
		})
	case "year":
		c := Year{}
		return apply(c, func(m modifier) (Spec, bool) {
			switch m.key {
			case "padding":
				return c, applyPadding(&c.Padding, m)
			case "repr":
				switch m.value {
				case "full":
					c.Repr = YearReprFull
				case "century":
					c.Repr = YearReprCentury
				case "last_two":
					c.Repr = YearReprLastTwo
				default:
					return c, false
				}
				return c, true
			case "base":
				switch m.value {
				case "calendar":
					c.Base = YearBaseCalendar
				case "iso_week":
					c.Base = YearBaseIsoWeek
				default:
					return c, false
				}
				return c, true
			case "sign":
				return c, applySign(&c.SignMandatory, m)
			case "range":
				switch m.value {
				case "standard":
					c.Range = YearRangeStandard
				case "extended":
					c.Range = YearRangeExtended
				default:
					return c, false
				}
				return c, true
			}
			return c, false
		})
	case "hour":
		c := Hour{}
		return apply(c, func(m modifier) (Spec, bool) {
			switch m.key {
			case "padding":
				return c, applyPadding(&c.Padding, m)
			case "repr":
				switch m.value {
				case "24":
					c.Is12Hour = false
				case "12":
					c.Is12Hour = true
				default:
					return c, false
				}
				return c, true
			}
			return c, false
		})
	case "minute":
		c := Minute{}
		return apply(c, func(m modifier) (Spec, bool) {
			ok := applyPadding(&c.Padding, m)
			return c, ok
		})
	case "period":
		c := Period{Uppercase: true, CaseSensitive: true}
		return apply(c, func(m modifier) (Spec, bool) {
			switch m.key {
			case "case":
				switch m.value {
				case "upper":
					c.Uppercase = true
				case "lower":
					c.Uppercase = false
				default:
					return c, false
				}
				return c, true
			case "case_sensitive":
				return c, applyBool(&c.CaseSensitive, m)
			}
			return c, false
		})
	case "second":
		c := Second{}
		return apply(c, func(m modifier) (Spec, bool) {
			ok := applyPadding(&c.Padding, m)
			return c, ok
		})
	case "subsecond":
		c := Subsecond{Digits: SubsecondOneOrMore}
		return apply(c, func(m modifier) (Spec, bool) {
			if m.key != "digits" {
				return c, false
			}
			if m.value == "1+" {
				c.Digits = SubsecondOneOrMore
				return c, true
			}
			if len(m.value) == 1 && m.value[0] >= '1' && m.value[0] <= '9' {
				c.Digits = SubsecondDigits(m.value[0] - '0')
				return c, true
			}
			return c, false
		})
	case "offset_hour":
		c := OffsetHour{}
		return apply(c, func(m modifier) (Spec, bool) {
			switch m.key {
			case "padding":
				return c, applyPadding(&c.Padding, m)
			case "sign":
				return c, applySign(&c.SignMandatory, m)
			}
			return c, false
		})
	case "offset_minute":
		c := OffsetMinute{}
		return apply(c, func(m modifier) (Spec, bool) {
			ok := applyPadding(&c.Padding, m)
			return c, ok
		})
	case "offset_second":
		c := OffsetSecond{}
		return apply(c, func(m modifier) (Spec, bool) {
			ok := applyPadding(&c.Padding, m)
			return c, ok
		})
	case "unix_timestamp":
		c := UnixTimestamp{}
		return apply(c, func(m modifier) (Spec, bool) {
			switch m.key {
			case "precision":
				switch m.value {
				case "second":
					c.Precision = UnixTimestampPrecisionSecond
				case "millisecond":
					c.Precision = UnixTimestampPrecisionMillisecond
				case "microsecond":
					c.Precision = UnixTimestampPrecisionMicrosecond
				case "nanosecond":
					c.Precision = UnixTimestampPrecisionNanosecond
				default:
					return c, false
				}
				return c, true
			case "sign":
				return c, applySign(&c.SignMandatory, m)
			}
			return c, false
		})
	case "ignore":
		c := Ignore{}
		spec, err := apply(c, func(m modifier) (Spec, bool) {
			if m.key != "count" {
				return c, false
			}
			n, err := strconv.Atoi(m.value)
			if err != nil || n < 1 {
				return c, false
			}
			c.Count = uint(n)
			return c, true
		})
		if err != nil {
			return nil, err
		}
		if spec.(Ignore).Count == 0 {
			return nil, &MissingRequiredModifierError{Name: "count", Index: index}
		}
		return spec, nil
	case "end":
		c := End{}
		return apply(c, func(m modifier) (Spec, bool) {
			if m.key != "trailing_input" {
				return c, false
			}
			switch m.value {
			case "prohibit":
				c.TrailingInput = TrailingInputProhibit
			case "discard":
				c.TrailingInput = TrailingInputDiscard
			default:
				return c, false
			}
			return c, true
		})
	}
	return nil, &InvalidComponentNameError{Name: name, Index: index}
}

func applyPadding(dst *Padding, m modifier) bool {
	if m.key != "padding" {
		return false
	}
	switch m.value {
	case "zero":
		*dst = PaddingZero
	case "space":
		*dst = PaddingSpace
	case "none":
		*dst = PaddingNone
	default:
		return false
	}
	return true
}

func applyBool(dst *bool, m modifier) bool {
	switch m.value {
	case "true":
		*dst = true
	case "false":
		*dst = false
	default:
		return false
	}
	return true
}

func applySign(mandatory *bool, m modifier) bool {
	switch m.value {
	case "automatic":
		*mandatory = false
	case "mandatory":
		*mandatory = true
	default:
		return false
	}
	return true
}
