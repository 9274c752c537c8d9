package seed

import (
	"math"
	"math/big"
	"testing"
	"time"
)

func TestReduceGolden(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want uint32
	}{
		{"null", Null(), 694295357},
		{"true", Bool(true), 694283247},
		{"text hello", Text("hello"), 869365218},
		{"int 42", Integer(42), 1038864983},
		{"text 42", Text("42"), 1317028434},
		{"float 1.5", Float(1.5), 737413044},
		{"seq 1 2 3", Sequence(Integer(1), Integer(2), Integer(3)), 1172251188},
		{"seq 1 2 4", Sequence(Integer(1), Integer(2), Integer(4)), 1172251958},
		{"tag foo", Tag("foo"), 897538005},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(Encode(tt.in)); got != tt.want {
				t.Errorf("Reduce(Encode()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReduceEmpty(t *testing.T) {
	// The folded, masked FNV-1a offset basis.
	if got := Reduce(nil); got != 1339080641 {
		t.Errorf("Reduce(nil) = %d, want 1339080641", got)
	}
}

func TestReduceIs31Bit(t *testing.T) {
	for _, v := range sampleValues() {
		if s := Reduce(Encode(v)); s > 0x7fffffff {
			t.Errorf("seed %d for %s exceeds 31 bits", s, v.Kind())
		}
	}
}

func TestImplementationsAgree(t *testing.T) {
	for _, v := range sampleValues() {
		ref := DeriveWith(v, Reference)
		acc := DeriveWith(v, Accelerated)
		if ref != acc {
			t.Errorf("implementations disagree for %s value: reference=%d accelerated=%d",
				v.Kind(), ref, acc)
		}
	}
}

func TestDeriveDefaultsToAccelerated(t *testing.T) {
	v := Text("hello")
	if Derive(v) != DeriveWith(v, Accelerated) {
		t.Error("Derive does not match the accelerated path")
	}
}

// sampleValues covers every variant plus nesting, so cross-implementation
// checks exercise each encoder branch.
func sampleValues() []Value {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	return []Value{
		Null(),
		Bool(true),
		Bool(false),
		Integer(0),
		Integer(-1),
		Integer(math.MaxInt64),
		Integer(math.MinInt64),
		BigInteger(huge),
		BigInteger(new(big.Int).Neg(huge)),
		Float(0),
		Float(-1.5),
		Float(math.Inf(1)),
		Float(math.NaN()),
		Text(""),
		Text("hello"),
		Text("héllo→world"),
		Tag("symbol"),
		Sequence(),
		Sequence(Integer(1), Text("two"), Sequence(Bool(true))),
		Mapping(),
		Mapping(
			Entry{Key: Text("a"), Val: Integer(1)},
			Entry{Key: Integer(10), Val: Null()},
			Entry{Key: Text("nested"), Val: Mapping(Entry{Key: Text("x"), Val: Float(2.5)})},
		),
		Instant(time.Date(2021, 1, 2, 3, 4, 5, 6, time.UTC)),
		Instant(time.Date(1960, 6, 1, 0, 0, 0, 0, time.UTC)),
		Opaque("net.IP", "127.0.0.1"),
	}
}
