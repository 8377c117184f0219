package codec_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/posit8/codec"
)

var _ = Describe("Codec", func() {
	Describe("Decode", func() {
		It("maps the zero octet to exact zero", func() {
			Expect(codec.Decode(0x00)).To(Equal(0.0))
		})

		It("maps the NaR octet to NaN", func() {
			Expect(math.IsNaN(codec.Decode(0x80))).To(BeTrue())
		})

		It("decodes every other octet to a finite, non-zero value", func() {
			for p := 0; p < 256; p++ {
				if p == 0x00 || p == 0x80 {
					continue
				}
				d := codec.Decode(byte(p))
				Expect(math.IsNaN(d)).To(BeFalse(), "p=0x%02X", p)
				Expect(math.IsInf(d, 0)).To(BeFalse(), "p=0x%02X", p)
				Expect(d).NotTo(Equal(0.0), "p=0x%02X", p)
			}
		})

		It("decodes the documented literal scenarios", func() {
			Expect(codec.Decode(0x40)).To(Equal(1.0))
			Expect(codec.Decode(0x50)).To(Equal(2.0))
			Expect(codec.Decode(0xC0)).To(Equal(-1.0))
		})
	})

	Describe("Encode", func() {
		It("encodes zero to the zero octet", func() {
			Expect(codec.Encode(0.0)).To(Equal(byte(0x00)))
			Expect(codec.Encode(math.Copysign(0, -1))).To(Equal(byte(0x00)))
		})

		It("encodes NaN and infinities to NaR", func() {
			Expect(codec.Encode(math.NaN())).To(Equal(byte(0x80)))
			Expect(codec.Encode(math.Inf(1))).To(Equal(byte(0x80)))
			Expect(codec.Encode(math.Inf(-1))).To(Equal(byte(0x80)))
		})

		It("encodes the documented literal scenarios", func() {
			Expect(codec.Encode(1.0)).To(Equal(byte(0x40)))
			Expect(codec.Encode(2.0)).To(Equal(byte(0x50)))
			Expect(codec.Encode(-1.0)).To(Equal(byte(0xC0)))
		})

		It("saturates at the representable extremes", func() {
			Expect(codec.Encode(1e100)).To(Equal(byte(0x7F)))
			Expect(codec.Encode(-1e100)).To(Equal(byte(0x81)))
			Expect(codec.Encode(1e-100)).To(Equal(byte(0x00)))
		})

		It("underflows binary64 subnormals to zero", func() {
			Expect(codec.Encode(math.SmallestNonzeroFloat64)).To(Equal(byte(0x00)))
		})
	})

	Describe("round trip", func() {
		It("recovers every octet from its decoded value", func() {
			for p := 0; p < 256; p++ {
				d := codec.Decode(byte(p))
				if p == 0x80 {
					Expect(math.IsNaN(d)).To(BeTrue())
				}
				Expect(codec.Encode(d)).To(Equal(byte(p)), "p=0x%02X decoded to %v", p, d)
			}
		})
	})

	Describe("sign symmetry", func() {
		It("negates decoded magnitudes via two's complement", func() {
			for p := 0; p < 256; p++ {
				if p == 0x80 {
					continue
				}
				neg := byte(-int8(byte(p)))
				Expect(codec.Decode(neg)).To(Equal(-codec.Decode(byte(p))), "p=0x%02X", p)
			}
		})
	})

	Describe("order consistency", func() {
		It("preserves numeric order under signed two's-complement comparison", func() {
			for p := 0; p < 256; p++ {
				for q := 0; q < 256; q++ {
					if p == 0x80 || q == 0x80 {
						continue
					}
					dp, dq := codec.Decode(byte(p)), codec.Decode(byte(q))
					if int8(byte(p)) < int8(byte(q)) {
						Expect(dp).To(BeNumerically("<=", dq), "p=0x%02X q=0x%02X", p, q)
					}
				}
			}
		})
	})
})
