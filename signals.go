package gpm

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for derivation events.
var (
	SignalDeriveStart    = capitan.NewSignal("gpm.derive.start", "Derivation beginning")
	SignalDeriveComplete = capitan.NewSignal("gpm.derive.complete", "Derivation finished")
	SignalWeightsBuilt   = capitan.NewSignal("gpm.weights.built", "Weight matrices generated")
	SignalWeightsCached  = capitan.NewSignal("gpm.weights.cached", "Weight matrices served from cache")
)

// Keys for typed event data.
var (
	KeyFingerprint    = capitan.NewStringKey("key_fingerprint")
	KeyLength         = capitan.NewIntKey("length")
	KeyNonce          = capitan.NewIntKey("nonce")
	KeyVocabularySize = capitan.NewIntKey("vocabulary_size")
	KeyContextWidth   = capitan.NewIntKey("context_width")
	KeyEmbeddingWidth = capitan.NewIntKey("embedding_width")
	KeyOutputSize     = capitan.NewIntKey("output_size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
)

// emitDeriveStart emits an event when a derivation begins.
// The master key and the derived password never appear in events; the key is
// identified only by its fingerprint.
func emitDeriveStart(ctx context.Context, fingerprint string, cfg Config) {
	capitan.Emit(ctx, SignalDeriveStart,
		KeyFingerprint.Field(fingerprint),
		KeyLength.Field(cfg.Length),
		KeyNonce.Field(cfg.Nonce),
		KeyContextWidth.Field(cfg.ContextWidth),
		KeyEmbeddingWidth.Field(cfg.EmbeddingWidth),
	)
}

// emitDeriveComplete emits an event when a derivation finishes.
func emitDeriveComplete(ctx context.Context, fingerprint string, cfg Config, vocabulary int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFingerprint.Field(fingerprint),
		KeyLength.Field(cfg.Length),
		KeyVocabularySize.Field(vocabulary),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDeriveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDeriveComplete, fields...)
	}
}

// emitWeights emits an event when weight matrices are resolved, either
// generated fresh or served from the cache.
func emitWeights(ctx context.Context, cached bool, contextWidth, embeddingWidth, outputSize int) {
	signal := SignalWeightsBuilt
	if cached {
		signal = SignalWeightsCached
	}
	capitan.Emit(ctx, signal,
		KeyContextWidth.Field(contextWidth),
		KeyEmbeddingWidth.Field(embeddingWidth),
		KeyOutputSize.Field(outputSize),
	)
}
