package renderer

import (
	"context"
	"time"

	"github.com/user/streamview/pkg/viewport"
)

// waitCeiling is the smallest pacing delay worth sleeping for. Deadline
// deltas below it (including negative ones, when the loop is behind
// schedule) are treated as zero so a tick never sleeps a negligible or
// negative duration, and never sleeps twice.
const waitCeiling = 8 * time.Millisecond

// Start transitions the renderer from Stopped to Running, spawning the one
// dedicated presentation goroutine. It returns ErrAlreadyRunning when the
// loop is already running and ErrNotSetUp before Setup.
func (r *Renderer) Start() error {
	if r.frame == nil {
		return ErrNotSetUp
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.present(ctx, r.done)

	r.log.Debug("Presentation started")
	return nil
}

// Stop cancels the presentation goroutine and blocks until it has fully
// exited. It returns ErrNotRunning when the loop is not running, which makes
// a second Stop (or one before Start) a deterministic error rather than
// undefined behavior.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if done == nil {
		return ErrNotRunning
	}

	cancel()
	<-done
	r.log.Debug("Presentation stopped")
	return nil
}

// present is the scheduler loop. One tick: pace to the frame deadline, fetch
// the latest decoded frame, recompute the fit rectangle, blit. Ticks are
// strictly sequential on this goroutine, so no frame is ever presented out of
// order relative to its fetch. The pacing wait is the only cancellation
// point.
func (r *Renderer) present(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	period := time.Second / time.Duration(r.targetFPS)
	nextFrameTime := time.Now()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		diff := time.Until(nextFrameTime)
		if diff < waitCeiling {
			diff = 0
		}

		if diff > 0 {
			timer.Reset(diff)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			// Behind schedule: no wait this tick, but cancellation must
			// still be observed.
			return
		}

		nextFrameTime = time.Now().Add(period)

		surfaceW, surfaceH := r.surface.Size()
		dst := viewport.Fit(r.width, r.height, surfaceW, surfaceH)

		// No new frame this tick: skip the blit but keep pacing.
		if r.decoder.ReadFrameInto(r.frame.Pix) {
			r.surface.Blit(r.frame, dst)
		}
	}
}
