package nanoid

import (
	"crypto/rand"
	mrand "math/rand/v2"
	"sync"

	"github.com/pkg/errors"
)

// Random returns size random bytes. Implementations used from several
// goroutines at once must be safe for concurrent use; the generators in this
// package never call a source concurrently themselves.
type Random func(size int) ([]byte, error)

// DefaultRandom reads size bytes from the operating system's secure random
// number generator.
func DefaultRandom(size int) ([]byte, error) {
	bytes := make([]byte, size)

	if _, err := rand.Read(bytes); err != nil {
		return nil, errors.Wrap(err, "could not retrieve random bytes")
	}

	return bytes, nil
}

// NonSecureRandom returns size bytes from math/rand/v2. It is fast and safe
// for concurrent use, but the output is predictable and must not be used for
// ids that need to be hard to guess.
func NonSecureRandom(size int) ([]byte, error) {
	bytes := make([]byte, size)

	for i := 0; i < size; i += 8 {
		v := mrand.Uint64()

		for j := 0; j < 8 && i+j < size; j++ {
			bytes[i+j] = byte(v >> (8 * j))
		}
	}

	return bytes, nil
}

// RandomFor returns NonSecureRandom if nonSecure is set and DefaultRandom otherwise.
func RandomFor(nonSecure bool) Random {
	if nonSecure {
		return NonSecureRandom
	}

	return DefaultRandom
}

// CyclicRandom returns a deterministic source that repeats seq forever.
// The position is kept between calls, so consecutive requests continue the
// cycle where the previous one stopped.
func CyclicRandom(seq ...byte) Random {
	if len(seq) == 0 {
		panic("nanoid: cyclic random needs at least one byte")
	}

	var (
		mu  sync.Mutex
		pos int
	)

	return func(size int) ([]byte, error) {
		mu.Lock()
		defer mu.Unlock()

		bytes := make([]byte, size)
		for i := range bytes {
			bytes[i] = seq[pos]
			pos = (pos + 1) % len(seq)
		}

		return bytes, nil
	}
}
