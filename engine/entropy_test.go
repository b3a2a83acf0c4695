package engine

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranok/entro/catalog"
	"github.com/ranok/entro/mask"
)

func TestPossibilitiesCharMask(t *testing.T) {
	eng := New(catalog.NewCharset())

	poss, err := eng.Possibilities(mask.Parse("digit digit digit"))
	require.NoError(t, err)

	assert.Equal(t, int64(1000), poss.Int64())
}

func TestPossibilitiesMixedMask(t *testing.T) {
	eng := New(catalog.NewCharset())

	poss, err := eng.Possibilities(mask.Parse("lower upper digit punc"))
	require.NoError(t, err)

	assert.Equal(t, int64(26*26*10*32), poss.Int64())
}

func TestPossibilitiesWordMask(t *testing.T) {
	lex := catalog.NewLexicon()
	lex.Insert("cat", []string{"noun"})
	lex.Insert("dog", []string{"noun"})
	lex.Insert("runs", []string{"verb"})
	eng := New(lex)

	poss, err := eng.Possibilities(mask.Parse("noun verb noun"))
	require.NoError(t, err)

	assert.Equal(t, int64(4), poss.Int64())
}

func TestPossibilitiesEmptyClass(t *testing.T) {
	eng := New(catalog.NewCharset())

	_, err := eng.Possibilities(mask.Parse("digit noun"))
	assert.ErrorIs(t, err, ErrEmptyClass)
}

func TestBits(t *testing.T) {
	bits, err := Bits(big.NewInt(1000))
	require.NoError(t, err)
	assert.InDelta(t, 9.9658, bits, 0.0001)

	bits, err = Bits(big.NewInt(1))
	require.NoError(t, err)
	assert.Zero(t, bits)
}

func TestBitsHugeCount(t *testing.T) {
	// 2^100, far past uint64
	poss := new(big.Int).Lsh(big.NewInt(1), 100)

	bits, err := Bits(poss)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, bits, 0.0001)
}

func TestBitsInvalidDomain(t *testing.T) {
	_, err := Bits(big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = Bits(big.NewInt(-5))
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = Bits(nil)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestEstimateCrackTime(t *testing.T) {
	// Exactly one hour of work at the default rate
	poss := new(big.Int).Mul(big.NewInt(DefaultHashRate), big.NewInt(3600))

	est, err := EstimateCrackTime(poss, DefaultHashRate)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, est.Hours, 0.0001)
	assert.InDelta(t, 1.0/24, est.Days, 0.0001)
}

func TestEstimateCrackTimeInvalid(t *testing.T) {
	_, err := EstimateCrackTime(big.NewInt(0), DefaultHashRate)
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = EstimateCrackTime(big.NewInt(1000), 0)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "623000", FormatRate(DefaultHashRate))
	assert.Equal(t, "1", FormatRate(1_000_000))
}
