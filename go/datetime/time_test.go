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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeFromHMS(t *testing.T) {
	tm, err := TimeFromHMSNano(23, 59, 59, 999999999)
	require.NoError(t, err)
	assert.Equal(t, 23, tm.Hour())
	assert.Equal(t, 59, tm.Minute())
	assert.Equal(t, 59, tm.Second())
	assert.Equal(t, 999999999, tm.Nanosecond())

	cases := []struct {
		hour, minute, second int
		name                 string
	}{
		{24, 0, 0, "hour"},
		{-1, 0, 0, "hour"},
		{0, 60, 0, "minute"},
		{0, 0, 60, "second"},
	}
	for _, tc := range cases {
		_, err := TimeFromHMS(tc.hour, tc.minute, tc.second)
		require.Error(t, err)
		assert.Equal(t, tc.name, err.(*ComponentRangeError).Name)
	}
}

func TestHour12(t *testing.T) {
	cases := []struct {
		hour24 int
		hour12 int
		pm     bool
	}{
		{0, 12, false},
		{1, 1, false},
		{11, 11, false},
		{12, 12, true},
		{13, 1, true},
		{23, 11, true},
	}
	for _, tc := range cases {
		tm, err := TimeFromHMS(tc.hour24, 0, 0)
		require.NoError(t, err)
		hour, pm := tm.Hour12()
		assert.Equal(t, tc.hour12, hour, "hour %d", tc.hour24)
		assert.Equal(t, tc.pm, pm, "hour %d", tc.hour24)
	}
}
