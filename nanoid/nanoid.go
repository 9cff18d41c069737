package nanoid

import (
	"github.com/pkg/errors"
)

// New returns an id of DefaultSize symbols over SafeAlphabet using DefaultRandom.
func New() (string, error) {
	return Format(DefaultRandom, SafeAlphabet, DefaultSize)
}

// NewSize returns an id of size symbols over SafeAlphabet using DefaultRandom.
func NewSize(size int) (string, error) {
	return Format(DefaultRandom, SafeAlphabet, size)
}

// Custom returns an id of size symbols over alphabet using DefaultRandom.
func Custom(size int, alphabet []rune) (string, error) {
	return Format(DefaultRandom, alphabet, size)
}

// Complex returns an id of size symbols over alphabet using random.
func Complex(size int, alphabet []rune, random Random) (string, error) {
	return Format(random, alphabet, size)
}

// Must panics if err is non-nil and returns id otherwise.
//
//	id := nanoid.Must(nanoid.New())
func Must(id string, err error) string {
	if err != nil {
		panic(err)
	}

	return id
}

// Generator carries a fixed alphabet, size and random source.
// A nil Alphabet means SafeAlphabet and a nil Random means DefaultRandom.
type Generator struct {
	Alphabet []rune
	Size     int
	Random   Random
}

// DefaultGenerator returns a Generator producing the same ids as New.
func DefaultGenerator() Generator {
	return Generator{
		Alphabet: SafeAlphabet,
		Size:     DefaultSize,
		Random:   DefaultRandom,
	}
}

func (g Generator) alphabet() []rune {
	if g.Alphabet == nil {
		return SafeAlphabet
	}

	return g.Alphabet
}

func (g Generator) random() Random {
	if g.Random == nil {
		return DefaultRandom
	}

	return g.Random
}

// Validate reports whether Generate can succeed for g's alphabet and size.
func (g Generator) Validate() error {
	if err := ValidateAlphabet(g.alphabet()); err != nil {
		return err
	}

	if g.Size < 0 {
		return errors.Wrapf(ErrInvalidSize, "got %d", g.Size)
	}

	return nil
}

// Strategy returns the strategy used by Generate.
func (g Generator) Strategy() Strategy {
	return StrategyFor(len(g.alphabet()))
}

// Generate returns a new id.
func (g Generator) Generate() (string, error) {
	return Format(g.random(), g.alphabet(), g.Size)
}
