package seed

// 64-bit FNV-1a parameters and the final 31-bit mask. The mask guarantees a
// non-negative value on consumers whose PRNG seed is a signed 32-bit
// integer; it is part of the contract, not a tunable.
const (
	fnvOffset uint64 = 0xcbf29ce484222325
	fnvPrime  uint64 = 0x100000001b3
	seedMask  uint32 = 0x7fffffff
)

// Reduce hashes a canonical byte sequence down to a 31-bit seed: FNV-1a
// over every byte, xor-fold to 32 bits, mask to 31.
func Reduce(data []byte) uint32 {
	h := fnvOffset
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime
	}
	return fold(h)
}

func fold(h uint64) uint32 {
	return uint32(h^(h>>32)) & seedMask
}
