package gpm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitDeriveStart(_ *testing.T) {
	// Should not panic
	emitDeriveStart(context.Background(), "9f86d081", DefaultConfig("key", "example.com", "user"))
}

func TestEmitDeriveComplete_Success(_ *testing.T) {
	emitDeriveComplete(context.Background(), "9f86d081", DefaultConfig("key", "example.com", "user"), 62, 100*time.Millisecond, nil)
}

func TestEmitDeriveComplete_Error(_ *testing.T) {
	emitDeriveComplete(context.Background(), "9f86d081", DefaultConfig("key", "example.com", "user"), 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitWeights_Built(_ *testing.T) {
	emitWeights(context.Background(), false, 8, 128, 62)
}

func TestEmitWeights_Cached(_ *testing.T) {
	emitWeights(context.Background(), true, 8, 128, 62)
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalDeriveStart", SignalDeriveStart},
		{"SignalDeriveComplete", SignalDeriveComplete},
		{"SignalWeightsBuilt", SignalWeightsBuilt},
		{"SignalWeightsCached", SignalWeightsCached},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyFingerprint", KeyFingerprint},
		{"KeyLength", KeyLength},
		{"KeyNonce", KeyNonce},
		{"KeyVocabularySize", KeyVocabularySize},
		{"KeyContextWidth", KeyContextWidth},
		{"KeyEmbeddingWidth", KeyEmbeddingWidth},
		{"KeyOutputSize", KeyOutputSize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
