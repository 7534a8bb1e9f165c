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

// Package format renders date-time values as text and parses text back
// into date-time values, driven either by a compiled format description or
// by one of the well-known formats (RFC 3339, RFC 2822, ISO 8601).
package format

import (
	"fmt"
	"io"

	"timefmt.io/timefmt/go/datetime"
	"timefmt.io/timefmt/go/datetime/format/description"
)

// Formattable is the capability of rendering date-time values to text.
// The implementing set is closed: Items, Rfc3339, Rfc2822 and Iso8601.
type Formattable interface {
	appendTo(dst []byte, c components) ([]byte, error)
	sizeHint() (maxLen int, asciiOnly bool)
}

// Items adapts a compiled description to the Formattable and Parsable
// capabilities.
type Items []description.Item

// OwnedItems adapts the result of description.ParseOwned, flattening a
// top-level Compound.
func OwnedItems(item description.Item) Items {
	if compound, ok := item.(description.Compound); ok {
		return Items(compound)
	}
	return Items{item}
}

func (items Items) appendTo(dst []byte, c components) ([]byte, error) {
	var err error
	for _, item := range items {
		dst, err = appendItem(dst, item, c)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

func appendItem(dst []byte, item description.Item, c components) ([]byte, error) {
	switch it := item.(type) {
	case description.Literal:
		return append(dst, it...), nil
	case description.Component:
		return formatComponent(dst, it.Spec, c)
	case description.Optional:
		return Items(it.Items).appendTo(dst, c)
	case description.First:
		// Formatting uses the first alternative.
		if len(it) == 0 {
			return dst, nil
		}
		return Items(it[0]).appendTo(dst, c)
	case description.Compound:
		return Items(it).appendTo(dst, c)
	}
	panic("format: unknown item")
}

func (items Items) sizeHint() (int, bool) {
	maxLen, ascii := 0, true
	for _, item := range items {
		n, a := itemSizeHint(item)
		maxLen += n
		ascii = ascii && a
	}
	return maxLen, ascii
}

// itemSizeHint returns a conservative maximum byte count for one item and
// whether its output is guaranteed ASCII (and therefore valid UTF-8).
func itemSizeHint(item description.Item) (int, bool) {
	switch it := item.(type) {
	case description.Literal:
		ascii := true
		for _, b := range it {
			if b >= 0x80 {
				ascii = false
				break
			}
		}
		return len(it), ascii
	case description.Component:
		return specSizeHint(it.Spec), true
	case description.Optional:
		return Items(it.Items).sizeHint()
	case description.First:
		maxLen, ascii := 0, true
		for _, alt := range it {
			n, a := Items(alt).sizeHint()
			if n > maxLen {
				maxLen = n
			}
			ascii = ascii && a
		}
		return maxLen, ascii
	case description.Compound:
		return Items(it).sizeHint()
	}
	panic("format: unknown item")
}

func specSizeHint(spec description.Spec) int {
	switch s := spec.(type) {
	case description.Day, description.WeekNumber, description.Minute,
		description.Second, description.Period, description.OffsetMinute,
		description.OffsetSecond, description.Hour:
		return 2
	case description.Month:
		if s.Repr == description.MonthReprLong {
			return len("September")
		}
		if s.Repr == description.MonthReprShort {
			return 3
		}
		return 2
	case description.Ordinal:
		return 3
	case description.Weekday:
		switch s.Repr {
		case description.WeekdayReprLong:
			return len("Wednesday")
		case description.WeekdayReprShort:
			return 3
		default:
			return 1
		}
	case description.Year:
		// sign plus six digits in the extended range
		return 7
	case description.Subsecond:
		if s.Digits == description.SubsecondOneOrMore {
			return 9
		}
		return int(s.Digits)
	case description.OffsetHour:
		return 3
	case description.UnixTimestamp:
		return 20
	case description.Ignore, description.End:
		return 0
	}
	panic("format: unknown component spec")
}

// SizeHint returns a conservative maximum output length for the format and
// whether the output is guaranteed to be valid UTF-8. Callers can size an
// output buffer once and never reallocate.
func SizeHint(f Formattable) (maxLen int, validUTF8 bool) {
	return f.sizeHint()
}

// Format renders the supplied parts of a date-time. Parts a format does
// not mention may be nil; a component that needs a nil part fails with
// ErrInsufficientTypeInformation.
func Format(f Formattable, date *datetime.Date, t *datetime.Time, offset *datetime.UtcOffset) (string, error) {
	maxLen, _ := f.sizeHint()
	dst, err := f.appendTo(make([]byte, 0, maxLen), components{date: date, time: t, offset: offset})
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

// AppendFormat is like Format but appends to dst.
func AppendFormat(dst []byte, f Formattable, date *datetime.Date, t *datetime.Time, offset *datetime.UtcOffset) ([]byte, error) {
	return f.appendTo(dst, components{date: date, time: t, offset: offset})
}

// FormatInto renders into w and returns the number of bytes written.
// Output already handed to the writer before an error is detected is not
// unwritten.
func FormatInto(w io.Writer, f Formattable, date *datetime.Date, t *datetime.Time, offset *datetime.UtcOffset) (int, error) {
	dst, err := AppendFormat(nil, f, date, t, offset)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(dst)
	if err != nil {
		return n, fmt.Errorf("writing formatted value: %w", err)
	}
	return n, nil
}

// FormatDateTime renders a date-time without an offset.
func FormatDateTime(f Formattable, dt datetime.DateTime) (string, error) {
	return Format(f, &dt.Date, &dt.Time, nil)
}

// FormatOffsetDateTime renders a full instant.
func FormatOffsetDateTime(f Formattable, odt datetime.OffsetDateTime) (string, error) {
	return Format(f, &odt.Date, &odt.Time, &odt.Offset)
}
