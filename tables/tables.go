// Package tables builds and serves the process-lifetime-immutable lookup
// tables the rest of this module's arithmetic is built on: a 256-entry
// decode table, 256-entry negation/absolute-value/reciprocal tables, and
// four 256x256 binary-operation tables (add, sub, mul, div). The tables
// are derived entirely from codec.Decode and codec.Encode and are built
// exactly once, on first use, guarded by sync.Once so concurrent first
// use can never observe a torn table.
package tables

import (
	"sync"

	"github.com/sarchlab/posit8/codec"
	"github.com/sarchlab/posit8/plog"
)

// Tables holds the full set of P8 lookup tables. A *Tables value is
// immutable once returned by Get and safe for unsynchronized concurrent
// reads from any number of goroutines.
type Tables struct {
	// ToDouble maps every P8 octet to its binary64 value.
	// ToDouble[0x80] is a quiet NaN standing in for NaR.
	ToDouble [256]float64

	// Neg, Abs and Recip are the single-operand tables.
	Neg   [256]byte
	Abs   [256]byte
	Recip [256]byte

	// Add, Sub, Mul and Div are the binary-operation tables, indexed
	// [a][b].
	Add [256][256]byte
	Sub [256][256]byte
	Mul [256][256]byte
	Div [256][256]byte
}

var (
	once  sync.Once
	built *Tables
)

// Get returns the shared *Tables value, building it on the first call.
func Get() *Tables {
	once.Do(build)
	return built
}

func build() {
	t := &Tables{}

	for p := 0; p < 256; p++ {
		t.ToDouble[p] = codec.Decode(byte(p))
	}

	for p := 0; p < 256; p++ {
		t.Neg[p] = negate(byte(p))
	}

	for p := 0; p < 256; p++ {
		b := byte(p)
		if b&0x80 == 0 {
			t.Abs[p] = b
		} else {
			t.Abs[p] = t.Neg[p]
		}
	}

	for p := 0; p < 256; p++ {
		b := byte(p)
		if b == codec.Zero || b == codec.NaR {
			t.Recip[p] = codec.NaR
			continue
		}
		t.Recip[p] = codec.Encode(1 / t.ToDouble[p])
	}

	buildBinary(&t.Add, &t.ToDouble, func(x, y float64) float64 { return x + y })
	buildBinary(&t.Sub, &t.ToDouble, func(x, y float64) float64 { return x - y })
	buildBinary(&t.Mul, &t.ToDouble, func(x, y float64) float64 { return x * y })
	buildBinary(&t.Div, &t.ToDouble, func(x, y float64) float64 { return x / y })

	built = t

	const footprint = 256*8 + 3*256 + 4*65536
	plog.L().V(1).Info("posit8 lookup tables built", "bytes", footprint)
}

// buildBinary fills a 256x256 operation table by applying op to every
// pair of decoded operands, honoring the NaR-propagation sentinel: any
// operand equal to NaR forces the result to NaR regardless of op.
func buildBinary(dst *[256][256]byte, dec *[256]float64, op func(x, y float64) float64) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if a == int(codec.NaR) || b == int(codec.NaR) {
				dst[a][b] = codec.NaR
				continue
			}
			dst[a][b] = codec.Encode(op(dec[a], dec[b]))
		}
	}
}

// negate computes P8 negation via two's complement on the full octet,
// which also satisfies neg(0x00) = 0x00 and neg(0x80) = 0x80 without
// needing to special-case either.
func negate(p byte) byte {
	return byte(-int8(p))
}
