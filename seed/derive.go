package seed

import (
	"encoding/binary"
	"math"
	"math/big"
)

// Implementation selects how a seed is computed from a value. Both
// implementations are bit-for-bit identical in output; Accelerated streams
// bytes straight into the hash accumulator instead of materializing the
// encoding first, the way the original native extension did.
type Implementation uint8

const (
	// Reference encodes the value to a buffer, then reduces it.
	Reference Implementation = iota
	// Accelerated folds each byte into the hash as it is produced.
	Accelerated
)

// String returns the implementation name.
func (i Implementation) String() string {
	switch i {
	case Reference:
		return "reference"
	case Accelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// Derive computes the 31-bit seed for v using the accelerated path.
func Derive(v Value) uint32 {
	return DeriveWith(v, Accelerated)
}

// DeriveWith computes the 31-bit seed for v with an explicit implementation
// choice. The choice never changes the result; it exists so callers can pin
// the reference path when validating a port.
func DeriveWith(v Value, impl Implementation) uint32 {
	if impl == Reference {
		return Reduce(Encode(v))
	}
	var h streamHash
	h.acc = fnvOffset
	h.writeValue(v)
	return fold(h.acc)
}

// streamHash folds canonical bytes into an FNV-1a accumulator without ever
// building the full encoding. Its write order must mirror appendValue
// exactly; seed tests cross-check the two paths.
type streamHash struct {
	acc uint64
}

func (h *streamHash) writeByte(b byte) {
	h.acc ^= uint64(b)
	h.acc *= fnvPrime
}

func (h *streamHash) writeString(s string) {
	for i := 0; i < len(s); i++ {
		h.writeByte(s[i])
	}
}

func (h *streamHash) writeUvarint(u uint64) {
	for u >= 0x80 {
		h.writeByte(byte(u) | 0x80)
		u >>= 7
	}
	h.writeByte(byte(u))
}

func (h *streamHash) writeUvarintBig(u *big.Int) {
	if u.IsUint64() {
		h.writeUvarint(u.Uint64())
		return
	}
	rest := new(big.Int).Set(u)
	low := new(big.Int)
	for {
		low.And(rest, big.NewInt(0x7f))
		rest.Rsh(rest, 7)
		if rest.Sign() == 0 {
			h.writeByte(byte(low.Uint64()))
			return
		}
		h.writeByte(byte(low.Uint64()) | 0x80)
	}
}

func (h *streamHash) writeLengthPrefixed(disc byte, s string) {
	h.writeByte(disc)
	h.writeUvarint(uint64(len(s)))
	h.writeString(s)
}

func (h *streamHash) writeValue(v Value) {
	switch v.kind {
	case KindNull:
		h.writeByte(discNull)
	case KindBool:
		if v.boolVal {
			h.writeByte(discTrue)
		} else {
			h.writeByte(discFalse)
		}
	case KindInteger:
		h.writeByte(discInteger)
		if v.bigVal != nil {
			h.writeUvarintBig(zigzagBig(v.bigVal))
		} else {
			h.writeUvarint(zigzag(v.intVal))
		}
	case KindFloat:
		h.writeByte(discFloat)
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v.floatVal))
		for _, b := range buf {
			h.writeByte(b)
		}
	case KindText:
		h.writeLengthPrefixed(discText, v.strVal)
	case KindTag:
		h.writeLengthPrefixed(discTag, v.strVal)
	case KindSequence:
		h.writeByte(discSequence)
		h.writeUvarint(uint64(len(v.seqVal)))
		for _, e := range v.seqVal {
			h.writeValue(e)
		}
	case KindMapping:
		h.writeByte(discMapping)
		h.writeUvarint(uint64(len(v.mapVal)))
		for _, e := range sortedEntries(v.mapVal) {
			h.writeLengthPrefixed(discText, e.key)
			h.writeValue(e.val)
		}
	case KindInstant:
		h.writeByte(discInstant)
		h.writeUvarint(uint64(v.timeVal.Unix()))
		h.writeUvarint(uint64(v.timeVal.Nanosecond()))
	case KindOpaque:
		h.writeLengthPrefixed(discOpaque, v.typeName+":"+v.strVal)
	default:
		h.writeByte(discNull)
	}
}
