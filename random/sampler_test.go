package random

import (
	"errors"
	"strings"
	"testing"
)

func TestSampleChunkedLengthExact(t *testing.T) {
	draw := func(n int64) int64 { return n - 1 }
	for _, length := range []int{0, 1, 2, 7, 8, 9, 16, 100} {
		got, err := sampleChunked(hexAlphabet, hexChunk, length, draw)
		if err != nil {
			t.Fatalf("length %d: %v", length, err)
		}
		if len(got) != length {
			t.Errorf("length %d: got %d characters", length, len(got))
		}
	}
}

func TestSampleChunkedNegativeLength(t *testing.T) {
	_, err := sampleChunked(hexAlphabet, hexChunk, -1, func(int64) int64 { return 0 })
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("err = %v, want ErrInvalidLength", err)
	}
}

func TestSampleChunkedMostSignificantFirst(t *testing.T) {
	// 0x12345678 expanded over the hex alphabet must read back as its own
	// big-endian digits.
	draw := func(n int64) int64 {
		if n != 1<<32 {
			t.Fatalf("draw span = %d, want %d", n, int64(1)<<32)
		}
		return 0x12345678
	}
	got, err := sampleChunked(hexAlphabet, hexChunk, 8, draw)
	if err != nil {
		t.Fatal(err)
	}
	if got != "12345678" {
		t.Errorf("got %q, want %q", got, "12345678")
	}
}

func TestSampleChunkedDrawSpans(t *testing.T) {
	// 7 alphanumeric characters = one full chunk of 5 (span 62^5) then a
	// partial chunk of 2 (span 62^2).
	var spans []int64
	draw := func(n int64) int64 {
		spans = append(spans, n)
		return 0
	}
	got, err := sampleChunked(alphanumericAlphabet, alphanumericChunk, 7, draw)
	if err != nil {
		t.Fatal(err)
	}
	if got != "AAAAAAA" {
		t.Errorf("zero draws should map to the first character, got %q", got)
	}
	if len(spans) != 2 || spans[0] != 916132832 || spans[1] != 3844 {
		t.Errorf("draw spans = %v, want [916132832 3844]", spans)
	}
}

func TestSampleChunkedAlphabetClosure(t *testing.T) {
	seq := int64(0)
	draw := func(n int64) int64 {
		seq = (seq*2862933555777941757 + 3037000493) % n
		if seq < 0 {
			seq += n
		}
		return seq
	}
	for _, tt := range []struct {
		alphabet string
		chunk    int
	}{
		{hexAlphabet, hexChunk},
		{alphabeticAlphabet, alphabeticChunk},
		{alphanumericAlphabet, alphanumericChunk},
	} {
		got, err := sampleChunked(tt.alphabet, tt.chunk, 64, draw)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range got {
			if !strings.ContainsRune(tt.alphabet, c) {
				t.Errorf("character %q outside alphabet %q", c, tt.alphabet)
			}
		}
	}
}

func TestAlphabets(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		size     int
	}{
		{"hex", hexAlphabet, 16},
		{"alphabetic", alphabeticAlphabet, 52},
		{"alphanumeric", alphanumericAlphabet, 62},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.alphabet) != tt.size {
				t.Errorf("alphabet has %d characters, want %d", len(tt.alphabet), tt.size)
			}
			seen := make(map[byte]bool)
			for i := 0; i < len(tt.alphabet); i++ {
				if seen[tt.alphabet[i]] {
					t.Errorf("duplicate character %q", tt.alphabet[i])
				}
				seen[tt.alphabet[i]] = true
			}
		})
	}
}

func TestIntPow(t *testing.T) {
	if got := intPow(16, 8); got != 1<<32 {
		t.Errorf("intPow(16, 8) = %d", got)
	}
	if got := intPow(52, 3); got != 140608 {
		t.Errorf("intPow(52, 3) = %d", got)
	}
	if got := intPow(62, 5); got != 916132832 {
		t.Errorf("intPow(62, 5) = %d", got)
	}
}
