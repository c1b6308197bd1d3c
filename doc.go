/*
Package num provides Wide, an unsigned integer of arbitrary but fixed width
stored as a little-endian sequence of 64-bit limbs, with hexadecimal
conversion and bitwise operations.

Wide is a value type; all operations return new values and never write to
their operands, so a Wide can be shared between goroutines freely.

Simple example:

	a, _ := WideFromHex("ffffffffffffffff0000000000000000")
	b, _ := WideFromHex("1")
	fmt.Println(a.Rsh(4).Or(b))
	// Output: 0FFFFFFFFFFFFFFFF000000000000001

Wide can be created from a variety of sources:

	WideFromHex(s string) (out Wide, err error)
	WideFromLimbs(limbs ...uint64) Wide
	WideFromBigInt(v *big.Int, limbs int) (out Wide, accurate bool)
	WideZero(limbs int) Wide
	WideMax(limbs int) Wide
	RandWide(source RandSource, limbs int) Wide

The width of a Wide is fixed when it is created. Binary operations on
values of different widths zero-extend the narrower operand, and shifts
truncate to the width of the value being shifted.

Wide supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
