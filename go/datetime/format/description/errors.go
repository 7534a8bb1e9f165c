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

import "fmt"

// InvalidFormatDescription is the category implemented by every error this
// package returns for a malformed description string. Each carries the byte
// index the scan was positioned at.
type InvalidFormatDescription interface {
	error
	invalidFormatDescription()
}

// InvalidComponentNameError reports an unrecognized component name.
type InvalidComponentNameError struct {
	Name  string
	Index int
}

func (e *InvalidComponentNameError) Error() string {
	return fmt.Sprintf("invalid component name %q at byte index %d", e.Name, e.Index)
}

// InvalidModifierError reports an unrecognized or malformed modifier.
type InvalidModifierError struct {
	Value string
	Index int
}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("invalid modifier %q at byte index %d", e.Value, e.Index)
}

// MissingComponentNameError reports a bracket with no component name.
type MissingComponentNameError struct {
	Index int
}

func (e *MissingComponentNameError) Error() string {
	return fmt.Sprintf("missing component name at byte index %d", e.Index)
}

// MissingRequiredModifierError reports a component lacking a modifier it
// cannot default, such as ignore's count.
type MissingRequiredModifierError struct {
	Name  string
	Index int
}

func (e *MissingRequiredModifierError) Error() string {
	return fmt.Sprintf("missing required modifier %q at byte index %d", e.Name, e.Index)
}

// UnclosedOpeningBracketError reports a '[' with no matching ']'.
type UnclosedOpeningBracketError struct {
	Index int
}

func (e *UnclosedOpeningBracketError) Error() string {
	return fmt.Sprintf("unclosed opening bracket at byte index %d", e.Index)
}

// NotSupportedError reports a construct that the requested API cannot
// provide, such as optional items in a runtime-parsed description.
type NotSupportedError struct {
	What    string
	Context string
	Index   int
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not supported in %s at byte index %d", e.What, e.Context, e.Index)
}

// ExpectedError reports required syntax that was absent.
type ExpectedError struct {
	What  string
	Index int
}

func (e *ExpectedError) Error() string {
	return fmt.Sprintf("expected %s at byte index %d", e.What, e.Index)
}

func (*InvalidComponentNameError) invalidFormatDescription()    {}
func (*InvalidModifierError) invalidFormatDescription()         {}
func (*MissingComponentNameError) invalidFormatDescription()    {}
func (*MissingRequiredModifierError) invalidFormatDescription() {}
func (*UnclosedOpeningBracketError) invalidFormatDescription()  {}
func (*NotSupportedError) invalidFormatDescription()            {}
func (*ExpectedError) invalidFormatDescription()                {}
