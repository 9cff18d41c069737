package nanoid

const (
	// DefaultSize is the length of ids created by New. 21 symbols over
	// SafeAlphabet give a collision probability similar to UUIDv4.
	DefaultSize = 21

	// SafeSymbols holds the 64 URL-safe symbols of the default alphabet.
	SafeSymbols = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// MaxAlphabetSize is the largest alphabet a single random byte can index.
	MaxAlphabetSize = 256
)

// SafeAlphabet is the default alphabet (A-Za-z0-9_-). Symbols in it are never
// percent-encoded in URLs.
var SafeAlphabet = []rune(SafeSymbols)

// Alphabet converts s to an alphabet, one symbol per rune.
func Alphabet(s string) []rune {
	return []rune(s)
}
