package num

import (
	"fmt"
)

const hexUpper = "0123456789ABCDEF"

// FormatError is returned when a string cannot be parsed as a Wide.
type FormatError struct {
	Input string

	// Offset is the byte offset of the first invalid character in Input, or
	// -1 if Input was empty.
	Offset int
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return "num: wide hex string is empty"
	}
	return fmt.Sprintf("num: wide hex string %q invalid at offset %d", e.Input, e.Offset)
}

// WideFromHex creates a Wide from a string of hex digits, most significant
// digit first. Upper and lower case digits are accepted; a "0x" prefix is
// not.
//
// The result has exactly as many limbs as are needed to hold len(s) digits.
// Leading zero digits still count towards the width, so "0001" and "1" are
// both one limb, but a 17 digit string of zeros is two.
func WideFromHex(s string) (out Wide, err error) {
	ln := len(s)
	if ln == 0 {
		return out, &FormatError{Input: s, Offset: -1}
	}

	out.limbs = make([]uint64, (ln+limbDigits-1)/limbDigits)

	// Each limb is accumulated from its own chunk of digits, counting chunks
	// from the right-hand end of s; the leftmost chunk may be short.
	for i := range out.limbs {
		end := ln - i*limbDigits
		start := end - limbDigits
		if start < 0 {
			start = 0
		}

		var limb uint64
		for j := start; j < end; j++ {
			d, ok := hexDigit(s[j])
			if !ok {
				return Wide{}, &FormatError{Input: s, Offset: firstInvalidHex(s)}
			}
			limb = (limb << 4) | d
		}
		out.limbs[i] = limb
	}

	return out, nil
}

// Hex renders u as uppercase hex digits, most significant limb first. Every
// limb is rendered as 16 digits including leading zeros, so the result is
// always 16 * u.Len() bytes long.
func (u Wide) Hex() string {
	buf := make([]byte, len(u.limbs)*limbDigits)
	pos := 0
	for i := len(u.limbs) - 1; i >= 0; i-- {
		l := u.limbs[i]
		for shift := uint(limbBits - 4); ; shift -= 4 {
			buf[pos] = hexUpper[(l>>shift)&0xF]
			pos++
			if shift == 0 {
				break
			}
		}
	}
	return string(buf)
}

func (u Wide) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

func (u *Wide) UnmarshalText(bts []byte) (err error) {
	v, err := WideFromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Wide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

func (u *Wide) UnmarshalJSON(bts []byte) (err error) {
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return fmt.Errorf("num: wide invalid JSON %q", string(bts))
	}

	v, err := WideFromHex(string(bts[1 : ln-1]))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func hexDigit(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// firstInvalidHex finds the leftmost bad digit in s. WideFromHex walks s in
// chunks from the right, so the first bad digit it trips over is not
// necessarily the first one in the string.
func firstInvalidHex(s string) int {
	for i := 0; i < len(s); i++ {
		if _, ok := hexDigit(s[i]); !ok {
			return i
		}
	}
	return -1
}
