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

func TestOffsetFromHMS(t *testing.T) {
	cases := []struct {
		hours, minutes, seconds int
		wholeSeconds            int
	}{
		{0, 0, 0, 0},
		{1, 2, 3, 3723},
		{-1, -2, -3, -3723},
		{0, 30, 0, 1800},
		{0, -30, 0, -1800},
		{25, 59, 59, 93599},
		{-25, -59, -59, -93599},
	}
	for _, tc := range cases {
		o, err := OffsetFromHMS(tc.hours, tc.minutes, tc.seconds)
		require.NoError(t, err)
		assert.Equal(t, tc.wholeSeconds, o.WholeSeconds())

		o2, err := OffsetFromWholeSeconds(tc.wholeSeconds)
		require.NoError(t, err)
		assert.Equal(t, o, o2)
	}
}

func TestOffsetSignAgreement(t *testing.T) {
	_, err := OffsetFromHMS(1, -2, 0)
	assert.Error(t, err)
	_, err = OffsetFromHMS(-1, 0, 3)
	assert.Error(t, err)
	_, err = OffsetFromHMS(26, 0, 0)
	assert.Error(t, err)
	_, err = OffsetFromWholeSeconds(26 * 3600)
	assert.Error(t, err)
}

func TestOffsetAccessors(t *testing.T) {
	o, err := OffsetFromHMS(-5, -30, -15)
	require.NoError(t, err)
	assert.Equal(t, -5, o.WholeHours())
	assert.Equal(t, -30, o.MinutesPastHour())
	assert.Equal(t, -15, o.SecondsPastMinute())
	assert.True(t, o.IsNegative())
	assert.False(t, o.IsUTC())

	assert.True(t, UTC.IsUTC())
	assert.False(t, UTC.IsNegative())
}
