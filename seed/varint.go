package seed

import "math/big"

// zigzag maps a signed integer onto an unsigned one so that small
// magnitudes stay small: non-negative n becomes 2n, negative n becomes
// 2|n| - 1.
func zigzag(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// appendUvarint appends the 7-bit varint encoding of u: low-order groups
// first, continuation bit set on every byte except the last.
func appendUvarint(dst []byte, u uint64) []byte {
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// zigzagBig is zigzag generalized to arbitrary magnitude.
func zigzagBig(n *big.Int) *big.Int {
	out := new(big.Int)
	if n.Sign() >= 0 {
		return out.Lsh(n, 1)
	}
	out.Neg(n)
	out.Lsh(out, 1)
	return out.Sub(out, big.NewInt(1))
}

// appendUvarintBig appends the varint encoding of a non-negative big
// integer, byte-compatible with appendUvarint for values that fit in 64
// bits.
func appendUvarintBig(dst []byte, u *big.Int) []byte {
	if u.IsUint64() {
		return appendUvarint(dst, u.Uint64())
	}
	rest := new(big.Int).Set(u)
	low := new(big.Int)
	for {
		low.And(rest, big.NewInt(0x7f))
		rest.Rsh(rest, 7)
		if rest.Sign() == 0 {
			return append(dst, byte(low.Uint64()))
		}
		dst = append(dst, byte(low.Uint64())|0x80)
	}
}
