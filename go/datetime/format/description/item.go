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

// Package description implements the bracketed format description language:
// the AST a description compiles to, the component kinds and their
// modifiers, the parser for the grammar, and a strftime translation layer.
//
// A compiled description is immutable and may be shared freely across
// goroutines.
package description

// Item is a single node of a compiled format description. The set of
// implementations is closed: Literal, Component, Optional, First and
// Compound.
type Item interface {
	isItem()
}

// Literal is a run of bytes reproduced verbatim when formatting and
// matched exactly when parsing.
type Literal []byte

// Component is one semantic field, parameterized by its modifiers.
type Component struct {
	Spec Spec
}

// Optional wraps an item sequence that is parsed if possible and consumes
// nothing otherwise. When formatting it is always emitted. Only available
// through ParseOwned.
type Optional struct {
	Items []Item
}

// First holds alternatives tried in order; the first that parses wins.
// Formatting uses the first alternative. Only available through ParseOwned.
type First [][]Item

// Compound is a flat sequence of items.
type Compound []Item

func (Literal) isItem()   {}
func (Component) isItem() {}
func (Optional) isItem()  {}
func (First) isItem()     {}
func (Compound) isItem()  {}
