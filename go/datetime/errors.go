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

package datetime

import "fmt"

// ComponentRangeError is returned when a single component of a date or time
// value is outside its permitted range. Conditional marks values that would
// have been valid for some other combination of components, e.g. second=60
// at an instant that is not the last second of a UTC month.
type ComponentRangeError struct {
	Name        string
	Min, Max    int64
	Value       int64
	Conditional bool
}

func (e *ComponentRangeError) Error() string {
	if e.Conditional {
		return fmt.Sprintf("%s must be in the range %d..=%d, given the values of other components", e.Name, e.Min, e.Max)
	}
	return fmt.Sprintf("%s must be in the range %d..=%d", e.Name, e.Min, e.Max)
}

func rangeErr(name string, min, max, value int64) *ComponentRangeError {
	return &ComponentRangeError{Name: name, Min: min, Max: max, Value: value}
}
