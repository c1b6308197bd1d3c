package num

import (
	"fmt"
	"math/big"
)

// Wide is an unsigned integer of fixed width, stored as a sequence of 64-bit
// limbs. Limb 0 holds the least significant 64 bits.
//
// The width of a Wide is decided when it is created and is never changed by
// an operation except where documented: binary operations produce the width
// of the wider operand, everything else preserves the width of the receiver.
type Wide struct {
	limbs []uint64
}

// WideFromLimbs creates a Wide from raw limbs, least significant first. The
// input slice is copied. See Limbs() for the counterpart.
func WideFromLimbs(limbs ...uint64) Wide {
	return Wide{limbs: copyLimbs(limbs, len(limbs))}
}

// WideZero returns a Wide of the given number of limbs with every bit clear.
func WideZero(limbs int) Wide {
	if limbs < 0 {
		panic("num: negative limb count")
	}
	return Wide{limbs: make([]uint64, limbs)}
}

// WideMax returns a Wide of the given number of limbs with every bit set.
func WideMax(limbs int) Wide {
	out := WideZero(limbs)
	for i := range out.limbs {
		out.limbs[i] = maxUint64
	}
	return out
}

// WideFromBigInt creates a Wide with the given number of limbs from a
// big.Int. Values too wide to fit are truncated to the low bits and set
// accurate to 'false'. Negative values return zero and set accurate to
// 'false'.
func WideFromBigInt(v *big.Int, limbs int) (out Wide, accurate bool) {
	out = WideZero(limbs)
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()
	accurate = true

	switch intSize {
	case 64:
		for i, w := range words {
			if i >= limbs {
				if w != 0 {
					accurate = false
				}
				continue
			}
			out.limbs[i] = uint64(w)
		}

	case 32:
		for i, w := range words {
			li := i / 2
			if li >= limbs {
				if w != 0 {
					accurate = false
				}
				continue
			}
			out.limbs[li] |= uint64(w) << (32 * uint(i%2))
		}

	default:
		panic("num: unsupported bit size")
	}

	return out, accurate
}

// Len returns the number of limbs in u.
func (u Wide) Len() int { return len(u.limbs) }

// BitWidth returns the number of bits u can hold, which is always a multiple
// of 64.
func (u Wide) BitWidth() int { return len(u.limbs) * limbBits }

// Limbs returns a copy of the limbs of u, least significant first.
func (u Wide) Limbs() []uint64 { return copyLimbs(u.limbs, len(u.limbs)) }

func (u Wide) IsZero() bool {
	for _, l := range u.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// Bit returns the value of the i'th bit of u. Bits outside the width of u
// are 0.
func (u Wide) Bit(i int) uint {
	if i < 0 {
		panic("num: negative bit index")
	}
	li := i / limbBits
	if li >= len(u.limbs) {
		return 0
	}
	return uint(u.limbs[li]>>uint(i%limbBits)) & 1
}

// Extend returns a copy of u zero-extended to the given number of limbs. If
// u is already at least that wide, the copy has the width of u; Extend never
// truncates.
func (u Wide) Extend(limbs int) Wide {
	return Wide{limbs: copyLimbs(u.limbs, maxInt(limbs, len(u.limbs)))}
}

func (u Wide) String() string {
	return u.Hex()
}

// Format renders u for the fmt package. '%s' and '%v' use the fixed-width
// hex form returned by Hex(); the integer verbs are passed to big.Int.
func (u Wide) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		fmt.Fprint(s, u.Hex())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u Wide) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := make([]big.Word, len(u.limbs))
		for i, l := range u.limbs {
			bits[i] = big.Word(l)
		}
		b.SetBits(bits)

	case 32:
		bits := make([]big.Word, len(u.limbs)*2)
		for i, l := range u.limbs {
			bits[i*2] = big.Word(l & 0xFFFFFFFF)
			bits[i*2+1] = big.Word(l >> 32)
		}
		b.SetBits(bits)

	default:
		panic("num: unsupported bit size")
	}
}

func (u Wide) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Not returns the bitwise complement of u, at the width of u.
func (u Wide) Not() (out Wide) {
	out.limbs = make([]uint64, len(u.limbs))
	for i, l := range u.limbs {
		out.limbs[i] = ^l
	}
	return out
}

// And, Or, Xor and AndNot produce a result as wide as the wider of u and v.
// The narrower operand is treated as if its missing high limbs were zero.

func (u Wide) And(v Wide) (out Wide) {
	out.limbs = make([]uint64, maxInt(len(u.limbs), len(v.limbs)))
	for i := range out.limbs {
		out.limbs[i] = u.limb(i) & v.limb(i)
	}
	return out
}

func (u Wide) AndNot(v Wide) (out Wide) {
	out.limbs = make([]uint64, maxInt(len(u.limbs), len(v.limbs)))
	for i := range out.limbs {
		out.limbs[i] = u.limb(i) &^ v.limb(i)
	}
	return out
}

func (u Wide) Or(v Wide) (out Wide) {
	out.limbs = make([]uint64, maxInt(len(u.limbs), len(v.limbs)))
	for i := range out.limbs {
		out.limbs[i] = u.limb(i) | v.limb(i)
	}
	return out
}

func (u Wide) Xor(v Wide) (out Wide) {
	out.limbs = make([]uint64, maxInt(len(u.limbs), len(v.limbs)))
	for i := range out.limbs {
		out.limbs[i] = u.limb(i) ^ v.limb(i)
	}
	return out
}

// Lsh shifts u left by n bits. The result has the width of u; bits shifted
// past the most significant limb are lost.
func (u Wide) Lsh(n uint) (v Wide) {
	ln := len(u.limbs)
	v.limbs = make([]uint64, ln)

	limbShift, bitShift := n/limbBits, n%limbBits
	if limbShift >= uint(ln) {
		return v
	}
	shift := int(limbShift)

	for i := ln - 1; i >= shift; i-- {
		v.limbs[i] = u.limbs[i-shift] << bitShift
		if bitShift != 0 && i-shift-1 >= 0 {
			v.limbs[i] |= u.limbs[i-shift-1] >> (limbBits - bitShift)
		}
	}
	return v
}

// Rsh shifts u right by n bits. The result has the width of u; vacated high
// bits are zero.
func (u Wide) Rsh(n uint) (v Wide) {
	ln := len(u.limbs)
	v.limbs = make([]uint64, ln)

	limbShift, bitShift := n/limbBits, n%limbBits
	if limbShift >= uint(ln) {
		return v
	}
	shift := int(limbShift)

	for i := 0; i+shift < ln; i++ {
		v.limbs[i] = u.limbs[i+shift] >> bitShift
		if bitShift != 0 && i+shift+1 < ln {
			v.limbs[i] |= u.limbs[i+shift+1] << (limbBits - bitShift)
		}
	}
	return v
}

// limb returns the i'th limb of u, or 0 if u has no such limb.
func (u Wide) limb(i int) uint64 {
	if i < len(u.limbs) {
		return u.limbs[i]
	}
	return 0
}

func copyLimbs(limbs []uint64, ln int) []uint64 {
	out := make([]uint64, ln)
	copy(out, limbs)
	return out
}
