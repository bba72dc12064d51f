package gpm

import (
	"crypto/sha256"
	"encoding/binary"
)

// Seed derives the numeric seed for a master key.
//
// The key is hashed with SHA-256 and the first four digest bytes are read as
// a big-endian unsigned integer. Every string maps to a seed, including the
// empty string, and the diffusion of the hash carries over: keys sharing a
// prefix or suffix still produce unrelated seeds.
func Seed(masterKey string) uint32 {
	sum := sha256.Sum256([]byte(masterKey))
	return binary.BigEndian.Uint32(sum[:4])
}

// projectionSeed derives the second seed of an invocation from the first.
// Squaring wraps at 2^32, which decorrelates the projection matrix from the
// embedding matrix while keeping it a pure function of the master key.
func projectionSeed(seed uint32) uint32 {
	return seed * seed
}
