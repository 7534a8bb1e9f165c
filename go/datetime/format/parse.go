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
	"timefmt.io/timefmt/go/datetime"
	"timefmt.io/timefmt/go/datetime/format/description"
	"timefmt.io/timefmt/go/datetime/format/internal/combinator"
)

// Parsable is the capability of parsing text into the Parsed accumulator.
// The implementing set is closed: Items, Rfc3339, Rfc2822 and Iso8601.
type Parsable interface {
	parseInto(b []byte, p *Parsed) (rest []byte, err error)
}

func (items Items) parseInto(b []byte, p *Parsed) ([]byte, error) {
	var err error
	for _, item := range items {
		b, err = parseItem(item, b, p)
		if err != nil {
			return b, err
		}
	}
	return b, nil
}

// parseItem consumes one item. Optional and First are all-or-nothing: a
// failed attempt restores the accumulator from a snapshot and consumes no
// input.
func parseItem(item description.Item, b []byte, p *Parsed) ([]byte, error) {
	switch it := item.(type) {
	case description.Literal:
		rest, ok := combinator.Text(b, string(it))
		if !ok {
			return b, ErrInvalidLiteral
		}
		return rest, nil

	case description.Component:
		return parseComponent(it.Spec, b, p)

	case description.Optional:
		snapshot := *p
		rest, err := Items(it.Items).parseInto(b, p)
		if err != nil {
			*p = snapshot
			return b, nil
		}
		return rest, nil

	case description.First:
		if len(it) == 0 {
			return b, nil
		}
		var firstErr error
		for _, alt := range it {
			snapshot := *p
			rest, err := Items(alt).parseInto(b, p)
			if err == nil {
				return rest, nil
			}
			*p = snapshot
			if firstErr == nil {
				firstErr = err
			}
		}
		return b, firstErr

	case description.Compound:
		return Items(it).parseInto(b, p)
	}
	panic("format: unknown item")
}

// ParseInto runs the parser against input, accumulating into p, and
// returns the unconsumed remainder. Most callers want Parse or one of the
// typed Parse* functions instead.
func ParseInto(f Parsable, input string, p *Parsed) (rest string, err error) {
	remaining, err := f.parseInto([]byte(input), p)
	return string(remaining), err
}

// Parse runs the parser against the complete input and returns the filled
// accumulator. Input remaining after the format has matched is an error
// unless an end component discarded it.
func Parse(f Parsable, input string) (*Parsed, error) {
	p := new(Parsed)
	rest, err := f.parseInto([]byte(input), p)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, ErrUnexpectedTrailingCharacters
	}
	return p, nil
}

// ParseDate parses the complete input and resolves it into a Date.
func ParseDate(f Parsable, input string) (datetime.Date, error) {
	p, err := Parse(f, input)
	if err != nil {
		return datetime.Date{}, err
	}
	return p.Date()
}

// ParseTime parses the complete input and resolves it into a Time.
func ParseTime(f Parsable, input string) (datetime.Time, error) {
	p, err := Parse(f, input)
	if err != nil {
		return datetime.Time{}, err
	}
	return p.Time()
}

// ParseUtcOffset parses the complete input and resolves it into a
// UtcOffset.
func ParseUtcOffset(f Parsable, input string) (datetime.UtcOffset, error) {
	p, err := Parse(f, input)
	if err != nil {
		return datetime.UtcOffset{}, err
	}
	return p.UtcOffset()
}

// ParseDateTime parses the complete input and resolves it into a DateTime.
func ParseDateTime(f Parsable, input string) (datetime.DateTime, error) {
	p, err := Parse(f, input)
	if err != nil {
		return datetime.DateTime{}, err
	}
	return p.DateTime()
}

// ParseOffsetDateTime parses the complete input and resolves it into a
// full instant.
func ParseOffsetDateTime(f Parsable, input string) (datetime.OffsetDateTime, error) {
	p, err := Parse(f, input)
	if err != nil {
		return datetime.OffsetDateTime{}, err
	}
	return p.OffsetDateTime()
}

// ParseUtcDateTime parses the complete input and resolves it into a
// date-time normalized to UTC.
func ParseUtcDateTime(f Parsable, input string) (datetime.DateTime, error) {
	p, err := Parse(f, input)
	if err != nil {
		return datetime.DateTime{}, err
	}
	return p.UtcDateTime()
}
