package gpm

import (
	"context"
	"sync"
)

// weightsKey identifies one generated weight set. The input vocabulary is
// fixed, so the seed and the three free dimensions suffice.
type weightsKey struct {
	seed           uint32
	contextWidth   int
	embeddingWidth int
	outputSize     int
}

var (
	weightsCache   = make(map[weightsKey]*weights)
	weightsCacheMu sync.RWMutex
)

// useWeights returns cached weight matrices or generates new ones.
//
// Weights are a pure function of the seed and the dimensions, so the cache
// never changes a derived password; it only skips regeneration when the same
// master key and dimensions recur.
func useWeights(ctx context.Context, key weightsKey) *weights {
	// Fast path: read-lock cache check
	weightsCacheMu.RLock()
	if cached, ok := weightsCache[key]; ok {
		weightsCacheMu.RUnlock()
		emitWeights(ctx, true, key.contextWidth, key.embeddingWidth, key.outputSize)
		return cached
	}
	weightsCacheMu.RUnlock()

	// Slow path: generate and cache with write-lock
	weightsCacheMu.Lock()
	defer weightsCacheMu.Unlock()

	// Double-check pattern
	if cached, ok := weightsCache[key]; ok {
		emitWeights(ctx, true, key.contextWidth, key.embeddingWidth, key.outputSize)
		return cached
	}

	w := newWeights(key.seed, asciiSize, key.embeddingWidth, key.contextWidth, key.outputSize)
	weightsCache[key] = w

	emitWeights(ctx, false, key.contextWidth, key.embeddingWidth, key.outputSize)
	return w
}

// ResetWeights clears the weight cache.
// This is primarily useful for test isolation.
func ResetWeights() {
	weightsCacheMu.Lock()
	defer weightsCacheMu.Unlock()
	weightsCache = make(map[weightsKey]*weights)
}
