package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	mathrand "math/rand/v2"
)

// ErrInvalidBound is returned by a Source asked for a value in an empty range.
var ErrInvalidBound = errors.New("random bound must be positive")

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

// IntN returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic Source for reproducible batches.
// It is not safe for concurrent use; create one per generation call.
type SeededSource struct {
	rng *mathrand.Rand
}

// NewSeededSource returns a PCG-backed source seeded with seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform int in [0, n).
func (s *SeededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	return s.rng.IntN(n), nil
}
