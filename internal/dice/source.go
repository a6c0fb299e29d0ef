package dice

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// Source is the entropy provider behind the uniform die. It is the only
// injection point for randomness in this package; everything above it is
// deterministic arithmetic.
type Source interface {
	// Intn returns a uniform random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand. Use it when rolls
// must not be reproducible.
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Intn returns a uniform random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics if crypto/rand fails.
func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(v.Int64())
}

// seededSource implements Source with a seeded math/rand generator, for
// deterministic tests and reproducible self-test runs.
type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a deterministic Source: two sources built from the
// same seed produce identical sequences.
func NewSeededSource(seed int64) Source {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return s.r.Intn(n)
}
