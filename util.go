package num

type RandSource interface {
	Uint64() uint64
}

// RandWide generates a random Wide with the given number of limbs from an
// external source. Limbs are drawn from least to most significant.
func RandWide(source RandSource, limbs int) (out Wide) {
	if limbs < 0 {
		panic("num: negative limb count")
	}
	out.limbs = make([]uint64, limbs)
	for i := range out.limbs {
		out.limbs[i] = source.Uint64()
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
