package nanoid

import (
	"errors"
)

var (
	// ErrInvalidAlphabet is returned when the alphabet is empty or has more
	// symbols than a single byte can address.
	ErrInvalidAlphabet = errors.New("alphabet must contain between 1 and 256 symbols")

	// ErrInvalidSize is returned for a negative id length.
	ErrInvalidSize = errors.New("id size can not be negative")

	// ErrNilRandom is returned when no random source was supplied.
	ErrNilRandom = errors.New("random source can not be nil")

	// ErrShortRandom is returned when a random source hands back fewer bytes than requested.
	ErrShortRandom = errors.New("random source returned fewer bytes than requested")
)
