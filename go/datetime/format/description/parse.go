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

import "strings"

// Parse compiles a format description string into a flat item sequence.
// This is the runtime entry point: it allocates nothing beyond the
// top-level slice, and consequently rejects [optional ...] and
// [first ...], which require heap-allocated alternatives, with
// NotSupportedError. Use ParseOwned for the full grammar.
func Parse(s string) ([]Item, error) {
	p := &parser{src: s}
	return p.parseSequence(-1)
}

// ParseOwned compiles a format description string supporting the full
// grammar, including [optional [...]] and [first [...] [...]]. A
// single-item result collapses to that item rather than a one-element
// Compound.
func ParseOwned(s string) (Item, error) {
	p := &parser{src: s, owned: true}
	items, err := p.parseSequence(-1)
	if err != nil {
		return nil, err
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return Compound(items), nil
}

type parser struct {
	src   string
	idx   int
	owned bool
}

// parseSequence consumes items until end of input, or, when groupOpen >= 0,
// until the ']' closing the group that began at byte groupOpen.
func (p *parser) parseSequence(groupOpen int) ([]Item, error) {
	var items []Item
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			items = append(items, Literal(lit))
			lit = nil
		}
	}
	for p.idx < len(p.src) {
		c := p.src[p.idx]
		switch {
		case c == '[' && p.idx+1 < len(p.src) && p.src[p.idx+1] == '[':
			lit = append(lit, '[')
			p.idx += 2
		case c == '[':
			flush()
			item, err := p.parseBracket()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case c == ']' && groupOpen >= 0:
			flush()
			p.idx++
			return items, nil
		default:
			lit = append(lit, c)
			p.idx++
		}
	}
	if groupOpen >= 0 {
		return nil, &UnclosedOpeningBracketError{Index: groupOpen}
	}
	flush()
	return items, nil
}

// parseBracket consumes one bracketed spec; p.idx is on the '['.
func (p *parser) parseBracket() (Item, error) {
	open := p.idx
	p.idx++
	start := p.idx
	for p.idx < len(p.src) && isNameByte(p.src[p.idx]) {
		p.idx++
	}
	name := p.src[start:p.idx]
	if name == "" {
		if strings.IndexByte(p.src[open:], ']') < 0 {
			return nil, &UnclosedOpeningBracketError{Index: open}
		}
		return nil, &MissingComponentNameError{Index: start}
	}

	switch name {
	case "optional":
		if !p.owned {
			return nil, &NotSupportedError{
				What: "optional item", Context: "runtime-parsed format descriptions", Index: open,
			}
		}
		return p.parseOptional(open)
	case "first":
		if !p.owned {
			return nil, &NotSupportedError{
				What: "first item", Context: "runtime-parsed format descriptions", Index: open,
			}
		}
		return p.parseFirst(open)
	}

	if !isKnownName(name) {
		return nil, &InvalidComponentNameError{Name: name, Index: start}
	}
	mods, err := p.parseModifiers(open)
	if err != nil {
		return nil, err
	}
	spec, err := buildComponent(name, start, mods)
	if err != nil {
		return nil, err
	}
	return Component{Spec: spec}, nil
}

// parseOptional consumes the remainder of "[optional [...]]"; p.idx is
// just past the word "optional".
func (p *parser) parseOptional(open int) (Item, error) {
	if !p.skipWhitespace() {
		return nil, &ExpectedError{What: "whitespace after `optional`", Index: p.idx}
	}
	if p.idx >= len(p.src) || p.src[p.idx] != '[' {
		return nil, &ExpectedError{What: "opening bracket", Index: p.idx}
	}
	groupOpen := p.idx
	p.idx++
	items, err := p.parseSequence(groupOpen)
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.idx >= len(p.src) || p.src[p.idx] != ']' {
		return nil, &UnclosedOpeningBracketError{Index: open}
	}
	p.idx++
	return Optional{Items: items}, nil
}

// parseFirst consumes the remainder of "[first [...] [...] ...]"; p.idx is
// just past the word "first".
func (p *parser) parseFirst(open int) (Item, error) {
	if !p.skipWhitespace() {
		return nil, &ExpectedError{What: "whitespace after `first`", Index: p.idx}
	}
	var alternatives First
	for p.idx < len(p.src) && p.src[p.idx] == '[' {
		groupOpen := p.idx
		p.idx++
		items, err := p.parseSequence(groupOpen)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, items)
		p.skipWhitespace()
	}
	if len(alternatives) == 0 {
		return nil, &ExpectedError{What: "opening bracket", Index: p.idx}
	}
	if p.idx >= len(p.src) || p.src[p.idx] != ']' {
		return nil, &UnclosedOpeningBracketError{Index: open}
	}
	p.idx++
	return alternatives, nil
}

type modifier struct {
	key   string
	value string
	raw   string
	index int
}

// parseModifiers consumes whitespace-separated key:value tokens up to and
// including the closing ']'.
func (p *parser) parseModifiers(open int) ([]modifier, error) {
	var mods []modifier
	for {
		p.skipWhitespace()
		if p.idx >= len(p.src) {
			return nil, &UnclosedOpeningBracketError{Index: open}
		}
		if p.src[p.idx] == ']' {
			p.idx++
			return mods, nil
		}
		start := p.idx
		for p.idx < len(p.src) && p.src[p.idx] != ' ' && p.src[p.idx] != ']' {
			p.idx++
		}
		raw := p.src[start:p.idx]
		key, value, found := strings.Cut(raw, ":")
		if !found || key == "" || value == "" {
			return nil, &InvalidModifierError{Value: raw, Index: start}
		}
		mods = append(mods, modifier{key: key, value: value, raw: raw, index: start})
	}
}

// skipWhitespace reports whether at least one space was consumed.
func (p *parser) skipWhitespace() bool {
	start := p.idx
	for p.idx < len(p.src) && p.src[p.idx] == ' ' {
		p.idx++
	}
	return p.idx > start
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c == '_'
}
