package nanoid

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// A batch of 8*size/5 bytes is requested per round. With a masked byte
	// accepted in at least 5 of 8 cases for typical alphabets, one round
	// usually fills the id.
	stepNumerator   = 8
	stepDenominator = 5
)

// nextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// mask returns the smallest bitmask covering every index of an alphabet of the given size.
func mask(alphabetSize int) int {
	return nextPowerOfTwo(alphabetSize) - 1
}

// step returns how many random bytes Universal requests per round.
func step(size int) int {
	s := stepNumerator * size / stepDenominator
	if s < 1 {
		s = 1
	}

	return s
}

// Universal generates an id of size symbols for an alphabet of any size
// from 1 to 256 using rejection sampling.
//
// Each byte is masked with the smallest power-of-two-minus-one covering the
// alphabet. Values that still fall outside the alphabet are dropped, so every
// symbol is equally likely. Bytes are requested in batches until the id is
// complete; there is no retry limit.
//
// Universal panics if the alphabet is empty or longer than 256 symbols.
// Use Format to get an error instead.
func Universal(random Random, alphabet []rune, size int) (string, error) {
	if len(alphabet) == 0 || len(alphabet) > MaxAlphabetSize {
		panic("nanoid: alphabet must contain between 1 and 256 symbols")
	}

	if size <= 0 {
		return "", nil
	}

	var (
		m     = mask(len(alphabet))
		n     = step(size)
		id    strings.Builder
		count int
	)

	id.Grow(size)

	for {
		bytes, err := random(n)
		if err != nil {
			return "", err
		}

		if len(bytes) < n {
			return "", errors.Wrapf(ErrShortRandom, "requested %d, got %d", n, len(bytes))
		}

		for _, b := range bytes[:n] {
			idx := int(b) & m
			if idx >= len(alphabet) {
				continue
			}

			id.WriteRune(alphabet[idx])
			count++

			if count == size {
				return id.String(), nil
			}
		}
	}
}

// Fast generates an id of size symbols with one random byte per symbol.
//
// The alphabet size must be a power of two (1, 2, 4, ..., 256). This is not
// checked: any other size still returns an id, but its symbols are no longer
// uniformly distributed. Format only calls Fast for power-of-two alphabets.
func Fast(random Random, alphabet []rune, size int) (string, error) {
	if len(alphabet) == 0 {
		panic("nanoid: alphabet must not be empty")
	}

	if size <= 0 {
		return "", nil
	}

	bytes, err := random(size)
	if err != nil {
		return "", err
	}

	if len(bytes) < size {
		return "", errors.Wrapf(ErrShortRandom, "requested %d, got %d", size, len(bytes))
	}

	var id strings.Builder

	id.Grow(size)

	// b % len equals b & (len-1) for power-of-two sizes.
	for _, b := range bytes[:size] {
		id.WriteRune(alphabet[int(b)%len(alphabet)])
	}

	return id.String(), nil
}
