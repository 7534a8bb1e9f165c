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
	"errors"
	"fmt"
)

// Errors returned while parsing input against a format description.
var (
	// ErrInvalidLiteral is returned when input does not match a literal
	// item of the description.
	ErrInvalidLiteral = errors.New("a character literal was not valid")

	// ErrUnexpectedTrailingCharacters is returned when input remains
	// after the whole description has matched.
	ErrUnexpectedTrailingCharacters = errors.New("unexpected trailing characters")
)

// Errors returned while converting a Parsed accumulator into a concrete
// value.
var (
	// ErrInsufficientInformation is returned when the parsed fields do
	// not determine the requested value.
	ErrInsufficientInformation = errors.New("insufficient information to create the requested value")
)

// Errors returned while formatting.
var (
	// ErrInsufficientTypeInformation is returned when a component needs
	// data the caller did not supply, such as an offset component when
	// formatting a bare time.
	ErrInsufficientTypeInformation = errors.New("insufficient type information to format the requested value")
)

// InvalidComponentError is a runtime parse failure of one named component.
type InvalidComponentError string

func (e InvalidComponentError) Error() string {
	return fmt.Sprintf("the %q component could not be parsed", string(e))
}

// InvalidFormatComponentError reports a value that a well-known format
// cannot represent, such as a sub-minute offset in RFC 3339.
type InvalidFormatComponentError string

func (e InvalidFormatComponentError) Error() string {
	return fmt.Sprintf("the %q component cannot be represented in the requested format", string(e))
}
