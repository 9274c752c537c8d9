package random

// Fixed output alphabets. Character order is part of the output contract.
const (
	hexAlphabet          = "0123456789abcdef"
	alphabeticAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	alphanumericAlphabet = alphabeticAlphabet + "0123456789"
)

// Chunk sizes: how many output characters each uniform draw expands into.
// These are contract constants, not derived limits; changing one changes
// the number and arguments of draws and therefore every output for a fixed
// seed.
const (
	hexChunk          = 8 // 16^8 = 2^32
	alphabeticChunk   = 3 // 52^3 = 140608
	alphanumericChunk = 5 // 62^5 = 916132832
)

// sampleChunked produces exactly length characters from alphabet, consuming
// one uniform draw in [0, |alphabet|^k) per chunk of k characters. The
// final partial chunk of r = length mod k characters draws from
// [0, |alphabet|^r). Within a chunk the first character is the most
// significant digit of the draw.
func sampleChunked(alphabet string, chunk, length int, draw func(int64) int64) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	if length == 0 {
		return "", nil
	}
	out := make([]byte, 0, length)
	for remaining := length; remaining > 0; {
		k := chunk
		if remaining < k {
			k = remaining
		}
		out = appendChunk(out, alphabet, k, draw(intPow(int64(len(alphabet)), k)))
		remaining -= k
	}
	return string(out), nil
}

// appendChunk expands one draw into k characters, least significant digit
// written last.
func appendChunk(dst []byte, alphabet string, k int, v int64) []byte {
	base := int64(len(alphabet))
	start := len(dst)
	dst = append(dst, make([]byte, k)...)
	for i := k - 1; i >= 0; i-- {
		dst[start+i] = alphabet[v%base]
		v /= base
	}
	return dst
}

// intPow is base**exp for the small exponents used by the chunk sizes.
// 16^8 is the largest span and fits comfortably in an int64.
func intPow(base int64, exp int) int64 {
	out := int64(1)
	for range exp {
		out *= base
	}
	return out
}
