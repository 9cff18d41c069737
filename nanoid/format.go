package nanoid

import (
	"github.com/pkg/errors"
)

// Strategy names the algorithm Format uses for a given alphabet.
type Strategy int

const (
	// StrategyUniversal masks bytes and rejects the ones outside the alphabet.
	StrategyUniversal Strategy = iota

	// StrategyFast maps every byte onto the alphabet directly. Only unbiased
	// for power-of-two alphabets.
	StrategyFast
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyFast:
		return "fast"
	case StrategyUniversal:
		return "universal"
	default:
		return "unknown"
	}
}

// StrategyFor returns the strategy Format picks for an alphabet of the given size.
func StrategyFor(alphabetSize int) Strategy {
	if isPowerOfTwo(alphabetSize) {
		return StrategyFast
	}

	return StrategyUniversal
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidateAlphabet checks that alphabet can be addressed by a single byte.
func ValidateAlphabet(alphabet []rune) error {
	if len(alphabet) == 0 || len(alphabet) > MaxAlphabetSize {
		return errors.Wrapf(ErrInvalidAlphabet, "got %d symbols", len(alphabet))
	}

	return nil
}

// Format returns an id of size symbols drawn uniformly from alphabet, using
// bytes from random.
//
// The alphabet must hold 1 to 256 symbols, otherwise ErrInvalidAlphabet is
// returned before random is called. A size of 0 yields an empty id without
// touching random. Errors from random are returned as is.
func Format(random Random, alphabet []rune, size int) (string, error) {
	if err := ValidateAlphabet(alphabet); err != nil {
		return "", err
	}

	if size < 0 {
		return "", errors.Wrapf(ErrInvalidSize, "got %d", size)
	}

	if random == nil {
		return "", ErrNilRandom
	}

	if size == 0 {
		return "", nil
	}

	if StrategyFor(len(alphabet)) == StrategyFast {
		return Fast(random, alphabet, size)
	}

	return Universal(random, alphabet, size)
}
