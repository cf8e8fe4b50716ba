package arith_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"rsacore/internal/arith"
	"rsacore/internal/domain"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"textbook", 48, 18, 6},
		{"coprime", 17, 5, 1},
		{"zero dividend", 0, 7, 7},
		{"equal", 7, 7, 7},
		{"a smaller", 18, 48, 6},
		{"negative input", -12, 18, 6},
		{"totient and exponent", 3120, 17, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := arith.GCD(big.NewInt(tt.a), big.NewInt(tt.b))
			require.NoError(t, err)
			require.Equal(t, 0, got.Cmp(big.NewInt(tt.want)), "gcd(%d, %d) = %s", tt.a, tt.b, got)
		})
	}
}

func TestGCD_DivisionByZero(t *testing.T) {
	_, err := arith.GCD(big.NewInt(10), big.NewInt(0))
	require.ErrorIs(t, err, domain.ErrDivisionByZero)

	var opErr *domain.Error
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, "gcd", opErr.Op)
}

func TestGCD_DoesNotMutateInputs(t *testing.T) {
	a, b := big.NewInt(48), big.NewInt(18)
	_, err := arith.GCD(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(48), a.Int64())
	require.Equal(t, int64(18), b.Int64())
}

func TestGCD_Properties(t *testing.T) {
	for a := int64(0); a <= 60; a++ {
		for b := int64(1); b <= 60; b++ {
			g, err := arith.GCD(big.NewInt(a), big.NewInt(b))
			require.NoError(t, err)
			gv := g.Int64()

			require.Zero(t, a%gv, "gcd(%d,%d)=%d does not divide a", a, b, gv)
			require.Zero(t, b%gv, "gcd(%d,%d)=%d does not divide b", a, b, gv)
			for d := gv + 1; d <= b; d++ {
				require.Falsef(t, a%d == 0 && b%d == 0, "gcd(%d,%d)=%d but %d divides both", a, b, gv, d)
			}

			if r := a % b; r != 0 {
				g2, err := arith.GCD(big.NewInt(b), big.NewInt(r))
				require.NoError(t, err)
				require.Equal(t, gv, g2.Int64())
			}
		}
	}
}

func TestGCD_MatchesMathBig(t *testing.T) {
	rng, err := arith.NewSeededSource([]byte("gcd"))
	require.NoError(t, err)
	bound := new(big.Int).Lsh(big.NewInt(1), 512)
	for i := 0; i < 50; i++ {
		a, err := rng.Int(bound)
		require.NoError(t, err)
		b, err := rng.Int(bound)
		require.NoError(t, err)
		b.Add(b, big.NewInt(1))

		got, err := arith.GCD(a, b)
		require.NoError(t, err)
		want := new(big.Int).GCD(nil, nil, a, b)
		require.Equal(t, 0, got.Cmp(want))
	}
}

func TestCoprime(t *testing.T) {
	ok, err := arith.Coprime(big.NewInt(3120), big.NewInt(17))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = arith.Coprime(big.NewInt(40), big.NewInt(4))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = arith.Coprime(big.NewInt(40), big.NewInt(0))
	require.ErrorIs(t, err, domain.ErrDivisionByZero)
}
