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

// Package combinator provides the primitive byte-slice parsers the format
// engine is built from. Every parser takes an input slice and returns the
// parsed value together with the unconsumed remainder; on failure the input
// is returned unchanged with ok == false, so callers can compose parsers
// with all-or-nothing backtracking by simply not committing the remainder.
package combinator

// Padding selects how a numeric field narrower than its declared width is
// aligned in text.
type Padding uint8

const (
	PadZero Padding = iota
	PadSpace
	PadNone
)

// Sign consumes a leading '+' or '-'.
func Sign(b []byte) (sign byte, rest []byte, ok bool) {
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		return b[0], b[1:], true
	}
	return 0, b, false
}

// Byte consumes c.
func Byte(b []byte, c byte) (rest []byte, ok bool) {
	if len(b) > 0 && b[0] == c {
		return b[1:], true
	}
	return b, false
}

// ByteIgnoreCase consumes c, folding ASCII case.
func ByteIgnoreCase(b []byte, c byte) (rest []byte, ok bool) {
	if len(b) > 0 && foldEqual(b[0], c) {
		return b[1:], true
	}
	return b, false
}

// AnyDigit consumes a single ASCII digit.
func AnyDigit(b []byte) (digit uint8, rest []byte, ok bool) {
	if len(b) > 0 && b[0] >= '0' && b[0] <= '9' {
		return b[0] - '0', b[1:], true
	}
	return 0, b, false
}

// fixed1 through fixed9 decode exactly n digits with the loop unrolled.
// Subtracting '0' from a non-digit wraps above 9, so a single comparison
// rejects it.

func fixed1(b []byte) (uint64, bool) {
	d0 := b[0] - '0'
	return uint64(d0), d0 <= 9
}

func fixed2(b []byte) (uint64, bool) {
	d0, d1 := b[0]-'0', b[1]-'0'
	return uint64(d0)*10 + uint64(d1), d0 <= 9 && d1 <= 9
}

func fixed3(b []byte) (uint64, bool) {
	d0, d1, d2 := b[0]-'0', b[1]-'0', b[2]-'0'
	return uint64(d0)*100 + uint64(d1)*10 + uint64(d2),
		d0 <= 9 && d1 <= 9 && d2 <= 9
}

func fixed4(b []byte) (uint64, bool) {
	hi, okHi := fixed2(b)
	lo, okLo := fixed2(b[2:])
	return hi*100 + lo, okHi && okLo
}

func fixed5(b []byte) (uint64, bool) {
	hi, okHi := fixed2(b)
	lo, okLo := fixed3(b[2:])
	return hi*1000 + lo, okHi && okLo
}

func fixed6(b []byte) (uint64, bool) {
	hi, okHi := fixed3(b)
	lo, okLo := fixed3(b[3:])
	return hi*1000 + lo, okHi && okLo
}

func fixed7(b []byte) (uint64, bool) {
	hi, okHi := fixed4(b)
	lo, okLo := fixed3(b[4:])
	return hi*1000 + lo, okHi && okLo
}

func fixed8(b []byte) (uint64, bool) {
	hi, okHi := fixed4(b)
	lo, okLo := fixed4(b[4:])
	return hi*10000 + lo, okHi && okLo
}

func fixed9(b []byte) (uint64, bool) {
	hi, okHi := fixed5(b)
	lo, okLo := fixed4(b[5:])
	return hi*10000 + lo, okHi && okLo
}

var fixed = [...]func([]byte) (uint64, bool){
	nil, fixed1, fixed2, fixed3, fixed4, fixed5, fixed6, fixed7, fixed8, fixed9,
}

// ExactlyN decodes exactly n ASCII digits, 1 <= n <= 19.
func ExactlyN(b []byte, n int) (value uint64, rest []byte, ok bool) {
	if len(b) < n {
		return 0, b, false
	}
	if n <= 9 {
		v, ok := fixed[n](b)
		if !ok {
			return 0, b, false
		}
		return v, b[n:], true
	}
	return NToM(b, n, n)
}

// NToM greedily decodes between n and m ASCII digits, failing on overflow
// of uint64.
func NToM(b []byte, n, m int) (value uint64, rest []byte, ok bool) {
	var i int
	for i < len(b) && i < m {
		d := b[i] - '0'
		if d > 9 {
			break
		}
		v := value*10 + uint64(d)
		if v/10 != value {
			return 0, b, false
		}
		value = v
		i++
	}
	if i < n {
		return 0, b, false
	}
	return value, b[i:], true
}

// Padded decodes a numeric field of the given width under the given
// padding discipline. PadZero requires exactly width digits. PadSpace
// consumes up to width-1 leading spaces and then exactly the remaining
// digits. PadNone accepts any 1..width digits.
func Padded(b []byte, width int, padding Padding) (value uint64, rest []byte, ok bool) {
	switch padding {
	case PadZero:
		return ExactlyN(b, width)
	case PadSpace:
		spaces := 0
		for spaces < width-1 && spaces < len(b) && b[spaces] == ' ' {
			spaces++
		}
		value, rest, ok = ExactlyN(b[spaces:], width-spaces)
		if !ok {
			return 0, b, false
		}
		return value, rest, true
	default:
		return NToM(b, 1, width)
	}
}

// Text matches a literal byte string.
func Text(b []byte, text string) (rest []byte, ok bool) {
	if len(b) < len(text) || string(b[:len(text)]) != text {
		return b, false
	}
	return b[len(text):], true
}

// TextIgnoreCase matches a literal byte string, folding ASCII case.
func TextIgnoreCase(b []byte, text string) (rest []byte, ok bool) {
	if len(b) < len(text) {
		return b, false
	}
	for i := 0; i < len(text); i++ {
		if !foldEqual(b[i], text[i]) {
			return b, false
		}
	}
	return b[len(text):], true
}

// FirstMatchOf consumes the first entry of table that prefixes the input
// and returns its index.
func FirstMatchOf(b []byte, table []string, caseSensitive bool) (index int, rest []byte, ok bool) {
	for i, entry := range table {
		if caseSensitive {
			if rest, ok = Text(b, entry); ok {
				return i, rest, true
			}
		} else {
			if rest, ok = TextIgnoreCase(b, entry); ok {
				return i, rest, true
			}
		}
	}
	return 0, b, false
}

// foldEqual compares two ASCII bytes ignoring case. 'a'-'A' is a single
// bit, so folding is one OR.
func foldEqual(a, b byte) bool {
	if a == b {
		return true
	}
	a |= 'a' - 'A'
	b |= 'a' - 'A'
	return a == b && a >= 'a' && a <= 'z'
}
