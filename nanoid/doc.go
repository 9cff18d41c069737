// Package nanoid generates short, unique, URL-safe random string identifiers.
//
// An id is built from a random byte source and an alphabet of up to 256
// symbols. Format is the single entry point: it validates the alphabet and
// picks one of two strategies depending on the alphabet size.
//
//   - Fast is used when the alphabet size is a power of two. Every byte maps
//     onto the alphabet with the same multiplicity, so one byte is spent per
//     symbol and nothing is rejected.
//   - Universal masks each byte with the smallest power-of-two-minus-one that
//     covers the alphabet and rejects values outside of it. This removes the
//     modulo bias at the cost of requesting bytes in batches.
//
// The random source is always passed in explicitly (see Random), which keeps
// tests deterministic and leaves the choice of entropy to the caller.
// DefaultRandom reads from crypto/rand.
//
// New, NewSize, Custom and Complex are thin wrappers with the default
// alphabet (SafeAlphabet), the default length (DefaultSize) and DefaultRandom.
package nanoid
