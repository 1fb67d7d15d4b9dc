package fold

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by Predictor.Submit when a newer submission
// replaced the request before its result was ready.
var ErrSuperseded = errors.New("prediction superseded by newer input")

// Predictor runs Nussinov off the calling goroutine and only ever delivers
// the result of the most recent submission. It suits interactive callers
// that refold on every edit.
//
// The fold itself cannot be interrupted, a superseded computation finishes
// in the background and its result is dropped.
type Predictor struct {
	rules   PairingRules
	minLoop int

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewPredictor returns a Predictor folding with rules and minLoop.
func NewPredictor(rules PairingRules, minLoop int) *Predictor {
	return &Predictor{rules: rules, minLoop: minLoop}
}

// Submit folds seq and returns its result, unless another Submit call starts
// before it completes, in which case it returns ErrSuperseded. It returns
// ctx.Err() if ctx is done first.
func (p *Predictor) Submit(ctx context.Context, seq string) (Result, error) {
	p.mu.Lock()
	p.generation++
	generation := p.generation
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()
	defer cancel()

	done := make(chan Result, 1)
	go func() {
		done <- Nussinov(seq, p.rules, p.minLoop)
	}()

	select {
	case result := <-done:
		if !p.isCurrent(generation) {
			return Result{}, ErrSuperseded
		}
		return result, nil
	case <-ctx.Done():
		if !p.isCurrent(generation) {
			return Result{}, ErrSuperseded
		}
		return Result{}, ctx.Err()
	}
}

func (p *Predictor) isCurrent(generation uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation == generation
}
