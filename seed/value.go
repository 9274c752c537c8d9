// Package seed derives deterministic 31-bit seeds from arbitrary structured
// values. A value is first normalized into a closed union of variants, then
// canonically encoded to bytes, then reduced with 64-bit FNV-1a. The byte
// encoding and the reduction are a versioned contract: any conforming
// implementation must produce the same seed for the same logical value,
// regardless of platform, process or insertion order.
package seed

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind identifies a Value variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindText
	KindTag
	KindSequence
	KindMapping
	KindInstant
	KindOpaque
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindTag:
		return "tag"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindInstant:
		return "instant"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Value is one member of the closed union the encoder accepts. Values are
// immutable once constructed; the zero Value is Null.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	bigVal   *big.Int // set instead of intVal when the magnitude exceeds int64
	floatVal float64
	strVal   string // Text and Tag content, Opaque display string
	typeName string // Opaque only
	timeVal  time.Time
	seqVal   []Value
	mapVal   []Entry
}

// Entry is a single Mapping key/value pair. Keys are Values themselves;
// ordering of entries is irrelevant to the encoding.
type Entry struct {
	Key Value
	Val Value
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Integer returns an integer Value.
func Integer(n int64) Value { return Value{kind: KindInteger, intVal: n} }

// BigInteger returns an integer Value of arbitrary magnitude. Values that
// fit in an int64 are stored in the compact form so equal integers always
// encode identically.
func BigInteger(n *big.Int) Value {
	if n.IsInt64() {
		return Integer(n.Int64())
	}
	return Value{kind: KindInteger, bigVal: new(big.Int).Set(n)}
}

// Float returns a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, floatVal: f} }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, strVal: s} }

// Tag returns a tag Value. Tags carry the same payload as text but encode
// with a distinct discriminator, mirroring interned symbols.
func Tag(s string) Value { return Value{kind: KindTag, strVal: s} }

// Sequence returns an ordered sequence Value. Element order is significant.
func Sequence(elems ...Value) Value {
	return Value{kind: KindSequence, seqVal: elems}
}

// Mapping returns a mapping Value. Entry order is irrelevant; the encoder
// sorts entries by the display string of their keys.
func Mapping(entries ...Entry) Value {
	return Value{kind: KindMapping, mapVal: entries}
}

// Instant returns a point-in-time Value with nanosecond precision.
func Instant(t time.Time) Value { return Value{kind: KindInstant, timeVal: t} }

// Opaque returns the fallback Value for anything not otherwise representable.
// It degrades to a type name and a display string; this path is best-effort
// and not covered by the cross-implementation determinism contract.
func Opaque(typeName, display string) Value {
	return Value{kind: KindOpaque, typeName: typeName, strVal: display}
}

// Normalize converts an arbitrary Go value into the closed union. nil maps
// to Null. Recognised inputs are booleans, all integer widths, big.Int,
// floats, strings, byte slices, time.Time, json-style number literals,
// slices, arrays and maps (recursively). Anything else becomes Opaque.
func Normalize(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Integer(int64(t))
	case int8:
		return Integer(int64(t))
	case int16:
		return Integer(int64(t))
	case int32:
		return Integer(int64(t))
	case int64:
		return Integer(t)
	case uint:
		return normalizeUint(uint64(t))
	case uint8:
		return Integer(int64(t))
	case uint16:
		return Integer(int64(t))
	case uint32:
		return Integer(int64(t))
	case uint64:
		return normalizeUint(t)
	case *big.Int:
		return BigInteger(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case string:
		return Text(t)
	case []byte:
		return Text(string(t))
	case time.Time:
		return Instant(t)
	case interface{ String() string }:
		if v, ok := normalizeNumberLiteral(x); ok {
			return v
		}
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			elems[i] = Normalize(e)
		}
		return Sequence(elems...)
	case map[string]any:
		entries := make([]Entry, 0, len(t))
		for k, val := range t {
			entries = append(entries, Entry{Key: Text(k), Val: Normalize(val)})
		}
		return Mapping(entries...)
	}
	return normalizeReflect(x)
}

// normalizeUint keeps unsigned values above math.MaxInt64 exact via big.Int.
func normalizeUint(u uint64) Value {
	if u <= uint64(1<<63-1) {
		return Integer(int64(u))
	}
	return BigInteger(new(big.Int).SetUint64(u))
}

// normalizeNumberLiteral handles json.Number and similar textual numbers
// without importing encoding/json here: integers stay integers instead of
// collapsing to floats, which would change the seed.
func normalizeNumberLiteral(x any) (Value, bool) {
	s, ok := x.(interface{ String() string })
	if !ok {
		return Value{}, false
	}
	lit := s.String()
	if lit == "" {
		return Value{}, false
	}
	if !strings.ContainsAny(lit, ".eE") {
		if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Integer(n), true
		}
		if b, bok := new(big.Int).SetString(lit, 10); bok {
			return BigInteger(b), true
		}
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return Float(f), true
	}
	return Value{}, false
}

func normalizeReflect(x any) Value {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return Normalize(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := range elems {
			elems[i] = Normalize(rv.Index(i).Interface())
		}
		return Sequence(elems...)
	case reflect.Map:
		entries := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, Entry{
				Key: Normalize(iter.Key().Interface()),
				Val: Normalize(iter.Value().Interface()),
			})
		}
		return Mapping(entries...)
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return Text(rv.String())
	}
	// Named scalar types normalize like their underlying kind.
	switch {
	case rv.CanInt():
		return Integer(rv.Int())
	case rv.CanUint():
		return normalizeUint(rv.Uint())
	case rv.CanFloat():
		return Float(rv.Float())
	}
	return Opaque(fmt.Sprintf("%T", x), fmt.Sprint(x))
}

// displayString renders a Value as text. It feeds canonical map-key ordering
// and the Opaque fallback only; the rendering is this implementation's own
// and is documented rather than guaranteed for non-text keys.
func displayString(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindInteger:
		if v.bigVal != nil {
			return v.bigVal.String()
		}
		return strconv.FormatInt(v.intVal, 10)
	case KindFloat:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case KindText, KindTag:
		return v.strVal
	case KindSequence:
		parts := make([]string, len(v.seqVal))
		for i, e := range v.seqVal {
			parts[i] = displayString(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		entries := sortedEntries(v.mapVal)
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = e.key + ": " + displayString(e.val)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindInstant:
		return v.timeVal.UTC().Format(time.RFC3339Nano)
	case KindOpaque:
		return v.typeName + ":" + v.strVal
	default:
		return ""
	}
}

type sortedEntry struct {
	key string
	val Value
}

// sortedEntries orders mapping entries by the display string of their keys,
// ascending. The sort is stable, so two distinct keys with the same display
// string keep their normalization order; that case is order-dependent by
// contract.
func sortedEntries(entries []Entry) []sortedEntry {
	out := make([]sortedEntry, len(entries))
	for i, e := range entries {
		out[i] = sortedEntry{key: displayString(e.Key), val: e.Val}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}
