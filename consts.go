package num

const (
	maxUint64 = 1<<64 - 1

	// limbBits is the number of bits held by each limb:
	limbBits = 64

	// limbDigits is the number of hex digits needed to render one limb:
	limbDigits = limbBits / 4

	intSize = 32 << (^uint(0) >> 63)
)
