package arith

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"
	"sync"

	"golang.org/x/crypto/chacha20"

	"rsacore/internal/domain"
	"rsacore/internal/util/memzero"
)

// ReaderSource draws uniform integers from an io.Reader.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource returns a RandomSource reading entropy from r.
func NewReaderSource(r io.Reader) *ReaderSource { return &ReaderSource{r: r} }

// SystemSource returns a RandomSource backed by the operating system CSPRNG.
func SystemSource() *ReaderSource { return NewReaderSource(rand.Reader) }

// Int returns a uniform value in [0, bound).
func (s *ReaderSource) Int(bound *big.Int) (*big.Int, error) {
	if bound.Sign() <= 0 {
		return nil, domain.Errorf("random", domain.ErrInvalidArgument, "bound %s must be positive", bound)
	}
	v, err := rand.Int(s.r, bound)
	if err != nil {
		return nil, domain.Errorf("random", domain.ErrRandomSource, "%v", err)
	}
	return v, nil
}

// NewSeededSource returns a deterministic RandomSource. The seed is hashed into
// a ChaCha20 key and the keystream feeds the sampler, so equal seeds replay the
// same witness sequence.
func NewSeededSource(seed []byte) (*ReaderSource, error) {
	key := sha256.Sum256(seed)
	defer memzero.Zero(key[:])

	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, domain.Wrap("random", err)
	}
	return NewReaderSource(&keystream{c: c}), nil
}

// keystream exposes a ChaCha20 keystream as an io.Reader.
type keystream struct {
	mu sync.Mutex
	c  *chacha20.Cipher
}

func (k *keystream) Read(p []byte) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	memzero.Zero(p)
	k.c.XORKeyStream(p, p)
	return len(p), nil
}

// Compile-time assertion that ReaderSource implements domain.RandomSource.
var _ domain.RandomSource = (*ReaderSource)(nil)
