package compat

import (
	"math/big"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestUDivMod64Big(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	bn, bd, bq, br := new(big.Int), new(big.Int), new(big.Int), new(big.Int)

	for i := 0; i < 50000; i++ {
		num, den := randUint64(rng), randUint64(rng)
		if den == 0 {
			continue
		}
		q, r := udivmod64(num, den)

		bn.SetUint64(num)
		bd.SetUint64(den)
		bq.QuoRem(bn, bd, br)

		tt.MustEqual(bq.String(), new(big.Int).SetUint64(q).String(), "quo failed at index %d (%d / %d)", i, num, den)
		tt.MustEqual(br.String(), new(big.Int).SetUint64(r).String(), "rem failed at index %d (%d %% %d)", i, num, den)
	}
}

func TestUDivMod64EveryDivisorWidth(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	// One divisor of every bit length against dividends of every bit length.
	for dbits := 0; dbits < wordBits; dbits++ {
		den := rng.Uint64()&masks[dbits] | 1<<uint(dbits)
		for nbits := 0; nbits < wordBits; nbits++ {
			num := rng.Uint64()&masks[nbits] | 1<<uint(nbits)
			eq, er := bits.Div64(0, num, den)
			q, r := udivmod64(num, den)
			tt.MustEqual(eq, q, "quo failed for %d / %d", num, den)
			tt.MustEqual(er, r, "rem failed for %d %% %d", num, den)
		}
	}
}
