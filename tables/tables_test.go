package tables_test

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/posit8/codec"
	"github.com/sarchlab/posit8/tables"
)

var _ = Describe("Tables", func() {
	It("agrees with codec.Decode on every octet", func() {
		t := tables.Get()
		for p := 0; p < 256; p++ {
			want := codec.Decode(byte(p))
			got := t.ToDouble[p]
			if math.IsNaN(want) {
				Expect(math.IsNaN(got)).To(BeTrue(), "p=0x%02X", p)
				continue
			}
			Expect(got).To(Equal(want), "p=0x%02X", p)
		}
	})

	It("propagates NaR through every binary table", func() {
		t := tables.Get()
		for p := 0; p < 256; p++ {
			Expect(t.Add[0x80][p]).To(Equal(byte(0x80)))
			Expect(t.Add[p][0x80]).To(Equal(byte(0x80)))
			Expect(t.Sub[0x80][p]).To(Equal(byte(0x80)))
			Expect(t.Mul[0x80][p]).To(Equal(byte(0x80)))
			Expect(t.Div[0x80][p]).To(Equal(byte(0x80)))
		}
	})

	It("treats zero divisor as NaR", func() {
		t := tables.Get()
		for p := 0; p < 256; p++ {
			if p == 0x80 {
				continue
			}
			Expect(t.Div[p][0x00]).To(Equal(byte(0x80)), "p=0x%02X", p)
		}
	})

	It("is commutative for add and mul", func() {
		t := tables.Get()
		for a := 0; a < 256; a++ {
			for b := 0; b < 256; b++ {
				Expect(t.Add[a][b]).To(Equal(t.Add[b][a]), "a=0x%02X b=0x%02X", a, b)
				Expect(t.Mul[a][b]).To(Equal(t.Mul[b][a]), "a=0x%02X b=0x%02X", a, b)
			}
		}
	})

	It("builds exactly once under concurrent first use", func() {
		var wg sync.WaitGroup
		results := make([]*tables.Tables, 32)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = tables.Get()
			}(i)
		}
		wg.Wait()

		for _, got := range results {
			Expect(got).To(BeIdenticalTo(results[0]))
		}
	})
})
