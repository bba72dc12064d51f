package gpm

import (
	"context"
	"sync"
	"time"
)

// Deriver derives passwords for one configuration.
//
// Derivers are safe for concurrent use: every derivation runs the full
// pipeline independently and no state survives a call. Validation runs once,
// on the first operation.
type Deriver struct {
	cfg Config

	// Validation state (runs once on first derivation)
	validateOnce sync.Once
	validateErr  error

	// Key fingerprint for events, computed up front
	fingerprint string
}

// NewDeriver creates a Deriver for the given configuration.
func NewDeriver(cfg Config) *Deriver {
	return &Deriver{
		cfg:         cfg,
		fingerprint: Fingerprint(cfg.MasterKey),
	}
}

// Validate checks the configuration without deriving.
// Validation also runs automatically on first derivation; calling Validate
// explicitly allows catching configuration errors at startup.
func (d *Deriver) Validate() error {
	return d.ensureValidated()
}

// ensureValidated runs validation once and caches the result.
func (d *Deriver) ensureValidated() error {
	d.validateOnce.Do(func() {
		d.validateErr = d.cfg.Validate()
	})
	return d.validateErr
}

// Derive runs the full pipeline and returns the password.
//
// The derivation is a pure function of the configuration: identical
// configurations produce identical passwords, on every call and on every
// platform. Every error path is exhausted before any matrix is built.
func (d *Deriver) Derive(ctx context.Context) (string, error) {
	if err := d.ensureValidated(); err != nil {
		return "", err
	}

	start := time.Now()
	emitDeriveStart(ctx, d.fingerprint, d.cfg)

	var retErr error
	var vocabularySize int
	defer func() {
		emitDeriveComplete(ctx, d.fingerprint, d.cfg, vocabularySize, time.Since(start), retErr)
	}()

	// Output vocabulary and codecs
	outputVocabulary, err := ComposeOutput(d.cfg.Charsets()...)
	if err != nil {
		retErr = err
		return "", retErr
	}
	vocabularySize = len(outputVocabulary)
	inputCodec := NewCodec(InputVocabulary())
	outputCodec := NewCodec(outputVocabulary)

	// Normalized input and entropy stream
	source := inputCodec.EncodeString(Normalize(d.cfg.Target, d.cfg.Login))
	feed, err := NewFeed(source, d.cfg.Nonce, inputCodec.Size())
	if err != nil {
		retErr = err
		return "", retErr
	}
	contexts, err := BuildContexts(feed, d.cfg.Length, d.cfg.ContextWidth)
	if err != nil {
		retErr = err
		return "", retErr
	}

	// Seeded weights, forward transform, character selection
	w := useWeights(ctx, weightsKey{
		seed:           Seed(d.cfg.MasterKey),
		contextWidth:   d.cfg.ContextWidth,
		embeddingWidth: d.cfg.EmbeddingWidth,
		outputSize:     outputCodec.Size(),
	})
	probs := forward(w, contexts)
	return decodePassword(probs, outputCodec), nil
}
