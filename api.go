// Package gpm derives passwords instead of storing them.
//
// The package implements a stateless password manager: a secret master key,
// a login target and a login id are turned into a password by a fixed
// numeric pipeline. The same inputs always produce the same password, so
// nothing is ever written to disk and nothing needs to be synchronized
// between machines.
//
// # Derivation Pipeline
//
// A derivation runs through fixed stages:
//
//   - seed: SHA-256 of the master key, first four bytes big-endian
//   - normalize: target and login canonicalized and joined ("example.com|user")
//   - encode: characters mapped to indices over the 128-entry ASCII vocabulary
//   - accumulate: the cyclic index stream folded into an entropy feed, offset
//     by the nonce
//   - contexts: the feed sliced into a length x context index matrix
//   - weights: seeded, Glorot-scaled embedding and projection matrices
//   - forward: embed, concatenate, project, tanh, softmax per row
//   - decode: argmax per row through the output vocabulary
//
// # Basic Usage
//
//	cfg := gpm.DefaultConfig("my master key", "https://example.com", "alice")
//	password, err := gpm.Generate(cfg)
//
// Equivalent targets derive the same password: case, URL scheme, trailing
// slashes and blanks are normalized away, so "HTTPS://Example.com/" and
// "example.com" agree.
//
// # Output Vocabulary
//
// The password alphabet is composed from character classes:
//
//   - lower: a-z
//   - upper: A-Z
//   - digits: 0-9
//   - symbols: !#$%&()*+,-./
//
// Lower, upper and digits are on by default; symbols are opt-in. At least
// one class must be selected, otherwise Generate fails with
// ErrEmptyVocabulary.
//
// # Determinism
//
// All pseudo-randomness is pinned. Weight matrices are generated by a
// package-internal MT19937 generator combined with the Box-Muller transform,
// in a fixed draw order, and every floating-point reduction runs in a fixed
// order. A password derived today is the password derived in ten years, on
// any platform.
//
// # Observability
//
// Derivations emit capitan signals: SignalDeriveStart, SignalDeriveComplete
// and the weight cache signals. Events carry dimensions, durations and a key
// fingerprint; the master key and the derived password never appear in any
// event.
package gpm

import "context"

// Generate derives the password for a configuration.
//
// It is the one-call surface of the package: validation, normalization,
// seeding, weight generation, the forward transform and character selection
// run in order, and the same configuration always yields the same password.
func Generate(cfg Config) (string, error) {
	return NewDeriver(cfg).Derive(context.Background())
}

// GenerateContext derives the password for a configuration, emitting events
// against the provided context.
func GenerateContext(ctx context.Context, cfg Config) (string, error) {
	return NewDeriver(cfg).Derive(ctx)
}
