package rsa_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"rsacore/internal/domain"
	"rsacore/internal/protocol/rsa"
)

func textbookKey(t *testing.T) domain.KeyPair {
	t.Helper()
	p, q, n := big.NewInt(61), big.NewInt(53), big.NewInt(17)
	d, err := rsa.DerivePrivateKey(p, q, n)
	require.NoError(t, err)
	return domain.NewKeyPair(p, q, n, d)
}

func TestRoundTrip_Textbook(t *testing.T) {
	key := textbookKey(t)
	require.Equal(t, int64(3233), key.Modulus.Int64())
	require.Equal(t, int64(3120), key.Totient.Int64())

	m := big.NewInt(65)
	for _, mode := range []rsa.Mode{rsa.ModeSignature, rsa.ModeConfidentiality} {
		t.Run(string(mode), func(t *testing.T) {
			c, err := rsa.Encrypt(key, m, mode)
			require.NoError(t, err)
			require.NotEqual(t, 0, c.Cmp(m))

			got, err := rsa.Decrypt(key, c, mode)
			require.NoError(t, err)
			require.Equal(t, int64(65), got.Int64())
		})
	}
}

func TestModes_UseExpectedExponent(t *testing.T) {
	key := textbookKey(t)
	m := big.NewInt(65)

	// 65^17 mod 3233 = 2790 is the public-exponent image.
	c, err := rsa.Encrypt(key, m, rsa.ModeConfidentiality)
	require.NoError(t, err)
	require.Equal(t, int64(2790), c.Int64())

	s, err := rsa.Encrypt(key, m, rsa.ModeSignature)
	require.NoError(t, err)
	want := new(big.Int).Exp(m, big.NewInt(2753), big.NewInt(3233))
	require.Equal(t, 0, s.Cmp(want))
}

func TestRoundTrip_AllResidues(t *testing.T) {
	key := textbookKey(t)
	for v := int64(0); v < key.Modulus.Int64(); v += 7 {
		c, err := rsa.Encrypt(key, big.NewInt(v), rsa.ModeSignature)
		require.NoError(t, err)
		got, err := rsa.Decrypt(key, c, rsa.ModeSignature)
		require.NoError(t, err)
		require.Equal(t, v, got.Int64())
	}
}

func TestTransform_Range(t *testing.T) {
	key := textbookKey(t)
	for _, v := range []int64{-1, 3233, 5000} {
		_, err := rsa.Encrypt(key, big.NewInt(v), rsa.ModeSignature)
		require.ErrorIs(t, err, domain.ErrMessageOutOfRange, "v=%d", v)
		_, err = rsa.Decrypt(key, big.NewInt(v), rsa.ModeSignature)
		require.ErrorIs(t, err, domain.ErrMessageOutOfRange, "v=%d", v)
	}

	_, err := rsa.Transform(nil, big.NewInt(1), big.NewInt(7))
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTransform_InvalidModulus(t *testing.T) {
	for _, m := range []int64{0, -7} {
		_, err := rsa.Transform(big.NewInt(0), big.NewInt(1), big.NewInt(m))
		require.ErrorIs(t, err, domain.ErrInvalidModulus, "modulus=%d", m)
		require.NotErrorIs(t, err, domain.ErrMessageOutOfRange)
	}
}

func TestParseMode(t *testing.T) {
	m, err := rsa.ParseMode("confidentiality")
	require.NoError(t, err)
	require.Equal(t, rsa.ModeConfidentiality, m)

	_, err = rsa.ParseMode("sideways")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestKeyPair_Wipe(t *testing.T) {
	key := textbookKey(t)
	require.True(t, key.Valid())
	key.Wipe()
	require.Zero(t, key.PrivateExponent.Sign())
	require.False(t, key.Valid())
}
