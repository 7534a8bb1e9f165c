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

package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactlyN(t *testing.T) {
	cases := []struct {
		input string
		n     int
		value uint64
		rest  string
		ok    bool
	}{
		{"12345", 3, 123, "45", true},
		{"0001", 4, 1, "", true},
		{"123456789", 9, 123456789, "", true},
		{"1234567890123456789", 19, 1234567890123456789, "", true},
		{"12", 3, 0, "12", false},
		{"1a3", 3, 0, "1a3", false},
		{"", 1, 0, "", false},
	}
	for _, tc := range cases {
		value, rest, ok := ExactlyN([]byte(tc.input), tc.n)
		assert.Equal(t, tc.ok, ok, "%q/%d", tc.input, tc.n)
		assert.Equal(t, tc.value, value, "%q/%d", tc.input, tc.n)
		assert.Equal(t, tc.rest, string(rest), "%q/%d", tc.input, tc.n)
	}
}

func TestNToM(t *testing.T) {
	cases := []struct {
		input string
		n, m  int
		value uint64
		rest  string
		ok    bool
	}{
		{"007x", 1, 9, 7, "x", true},
		{"123456", 1, 4, 1234, "56", true},
		{"5", 1, 9, 5, "", true},
		{"x", 1, 9, 0, "x", false},
		{"12", 3, 4, 0, "12", false},
		// 2^64 exactly; one past the largest uint64
		{"18446744073709551616", 1, 20, 0, "18446744073709551616", false},
		{"18446744073709551615", 1, 20, 18446744073709551615, "", true},
	}
	for _, tc := range cases {
		value, rest, ok := NToM([]byte(tc.input), tc.n, tc.m)
		assert.Equal(t, tc.ok, ok, "%q", tc.input)
		assert.Equal(t, tc.value, value, "%q", tc.input)
		assert.Equal(t, tc.rest, string(rest), "%q", tc.input)
	}
}

func TestPadded(t *testing.T) {
	cases := []struct {
		input   string
		width   int
		padding Padding
		value   uint64
		rest    string
		ok      bool
	}{
		{"007", 3, PadZero, 7, "", true},
		{"07x", 2, PadZero, 7, "x", true},
		{"7", 2, PadZero, 0, "7", false},
		{"  7", 3, PadSpace, 7, "", true},
		{" 17", 3, PadSpace, 17, "", true},
		{"117", 3, PadSpace, 117, "", true},
		{"   ", 3, PadSpace, 0, "   ", false},
		{"7x", 2, PadNone, 7, "x", true},
		{"17x", 2, PadNone, 17, "x", true},
		{"170", 2, PadNone, 17, "0", true},
		{"x", 2, PadNone, 0, "x", false},
	}
	for _, tc := range cases {
		value, rest, ok := Padded([]byte(tc.input), tc.width, tc.padding)
		assert.Equal(t, tc.ok, ok, "%q width=%d pad=%d", tc.input, tc.width, tc.padding)
		assert.Equal(t, tc.value, value, "%q", tc.input)
		assert.Equal(t, tc.rest, string(rest), "%q", tc.input)
	}
}

func TestText(t *testing.T) {
	rest, ok := Text([]byte("Januaryx"), "January")
	assert.True(t, ok)
	assert.Equal(t, "x", string(rest))

	_, ok = Text([]byte("JANUARY"), "January")
	assert.False(t, ok)

	rest, ok = TextIgnoreCase([]byte("jAnUaRy!"), "January")
	assert.True(t, ok)
	assert.Equal(t, "!", string(rest))

	// case folding must not equate punctuation that differs by 0x20
	_, ok = TextIgnoreCase([]byte("@"), "`")
	assert.False(t, ok)
}

func TestFirstMatchOf(t *testing.T) {
	table := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	idx, rest, ok := FirstMatchOf([]byte("Satx"), table, true)
	assert.True(t, ok)
	assert.Equal(t, 5, idx)
	assert.Equal(t, "x", string(rest))

	_, _, ok = FirstMatchOf([]byte("sat"), table, true)
	assert.False(t, ok)

	idx, _, ok = FirstMatchOf([]byte("sat"), table, false)
	assert.True(t, ok)
	assert.Equal(t, 5, idx)

	_, rest, ok = FirstMatchOf([]byte("Xyz"), table, false)
	assert.False(t, ok)
	assert.Equal(t, "Xyz", string(rest))
}

func TestSignByteDigit(t *testing.T) {
	sign, rest, ok := Sign([]byte("-12"))
	assert.True(t, ok)
	assert.Equal(t, byte('-'), sign)
	assert.Equal(t, "12", string(rest))

	_, _, ok = Sign([]byte("12"))
	assert.False(t, ok)

	rest, ok = Byte([]byte(":05"), ':')
	assert.True(t, ok)
	assert.Equal(t, "05", string(rest))

	_, ok = ByteIgnoreCase([]byte("Z"), 'z')
	assert.True(t, ok)

	d, rest, ok := AnyDigit([]byte("7a"))
	assert.True(t, ok)
	assert.Equal(t, uint8(7), d)
	assert.Equal(t, "a", string(rest))

	_, _, ok = AnyDigit([]byte("a"))
	assert.False(t, ok)
}
