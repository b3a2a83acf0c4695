package engine

import (
	"math"
	"math/big"
	"strconv"

	"github.com/ranok/entro/mask"
)

// DefaultHashRate is the illustrative cracking rig speed used for
// time-to-crack estimates, in hashes per second.
const DefaultHashRate int64 = 623_000_000_000

// Possibilities computes the size of a mask's candidate space, the product
// of every position's member-list size. It goes through the same resolver
// cache as cracking and generation, so the estimate always agrees with what
// would actually be enumerated. Word masks overflow uint64 quickly, hence
// the big.Int.
func (e *Engine) Possibilities(m mask.Mask) (*big.Int, error) {
	total := big.NewInt(1)
	for _, token := range m {
		members, err := e.Resolve(token)
		if err != nil {
			return nil, err
		}
		total.Mul(total, big.NewInt(int64(len(members))))
	}
	return total, nil
}

// Bits converts a possibility count to approximate bits of entropy,
// log2(possibilities). Defined only for counts >= 1.
func Bits(possibilities *big.Int) (float64, error) {
	if possibilities == nil || possibilities.Sign() <= 0 {
		return 0, ErrInvalidDomain
	}

	// MantExp keeps precision for counts far beyond float64 range
	mant := new(big.Float)
	exp := new(big.Float).SetInt(possibilities).MantExp(mant)
	m, _ := mant.Float64()

	return float64(exp) + math.Log2(m), nil
}

// CrackEstimate is the time to exhaust a candidate space at a fixed hash
// rate.
type CrackEstimate struct {
	Hours float64
	Days  float64
}

// EstimateCrackTime computes how long exhausting the possibilities takes at
// rate hashes per second.
func EstimateCrackTime(possibilities *big.Int, rate int64) (CrackEstimate, error) {
	if possibilities == nil || possibilities.Sign() <= 0 || rate <= 0 {
		return CrackEstimate{}, ErrInvalidDomain
	}

	seconds := new(big.Float).Quo(
		new(big.Float).SetInt(possibilities),
		new(big.Float).SetInt64(rate),
	)
	s, _ := seconds.Float64()

	hours := s / (60 * 60)
	return CrackEstimate{Hours: hours, Days: hours / 24}, nil
}

// FormatRate renders a raw hash rate as the value shown next to "M h/s".
func FormatRate(rate int64) string {
	return strconv.FormatInt(rate/1_000_000, 10)
}
