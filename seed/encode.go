package seed

import (
	"encoding/binary"
	"math"
)

// Discriminator bytes, one per variant. Fixed by the wire contract; a
// distinct discriminator in front of every payload is what keeps integer 1
// and text "1" from ever sharing an encoding.
const (
	discNull     = 'n'
	discTrue     = 't'
	discFalse    = 'f'
	discInteger  = 'i'
	discFloat    = 'd'
	discText     = 's'
	discTag      = 'y'
	discSequence = 'a'
	discMapping  = 'h'
	discInstant  = 'T'
	discOpaque   = 'o'
)

// Encode returns the canonical byte encoding of v. Encoding is total and
// deterministic: it depends only on the logical content of v, never on
// memory layout or mapping insertion order. Mapping entries are sorted by
// the display string of their keys; two distinct keys with equal display
// strings keep their construction order (order-dependent, see Mapping).
func Encode(v Value) []byte {
	return appendValue(nil, v)
}

func appendValue(dst []byte, v Value) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, discNull)
	case KindBool:
		if v.boolVal {
			return append(dst, discTrue)
		}
		return append(dst, discFalse)
	case KindInteger:
		dst = append(dst, discInteger)
		if v.bigVal != nil {
			return appendUvarintBig(dst, zigzagBig(v.bigVal))
		}
		return appendUvarint(dst, zigzag(v.intVal))
	case KindFloat:
		// Big-endian bit pattern so the bytes match on any host.
		dst = append(dst, discFloat)
		return binary.BigEndian.AppendUint64(dst, math.Float64bits(v.floatVal))
	case KindText:
		return appendLengthPrefixed(dst, discText, v.strVal)
	case KindTag:
		return appendLengthPrefixed(dst, discTag, v.strVal)
	case KindSequence:
		dst = append(dst, discSequence)
		dst = appendUvarint(dst, uint64(len(v.seqVal)))
		for _, e := range v.seqVal {
			dst = appendValue(dst, e)
		}
		return dst
	case KindMapping:
		dst = append(dst, discMapping)
		dst = appendUvarint(dst, uint64(len(v.mapVal)))
		for _, e := range sortedEntries(v.mapVal) {
			// Keys are re-encoded as text of their display string.
			dst = appendLengthPrefixed(dst, discText, e.key)
			dst = appendValue(dst, e.val)
		}
		return dst
	case KindInstant:
		dst = append(dst, discInstant)
		dst = appendUvarint(dst, uint64(v.timeVal.Unix()))
		return appendUvarint(dst, uint64(v.timeVal.Nanosecond()))
	case KindOpaque:
		return appendLengthPrefixed(dst, discOpaque, v.typeName+":"+v.strVal)
	default:
		// The union is closed; an unknown kind is unreachable from the
		// exported constructors.
		return append(dst, discNull)
	}
}

func appendLengthPrefixed(dst []byte, disc byte, s string) []byte {
	dst = append(dst, disc)
	dst = appendUvarint(dst, uint64(len(s)))
	return append(dst, s...)
}
