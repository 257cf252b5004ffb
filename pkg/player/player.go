// Package player feeds decode units from a source into the renderer.
//
// The player takes the caller-thread role of the design: it constructs and
// submits decode units at the stream rate while the renderer paces display on
// its own goroutine. Network ingestion is out of scope; sources are local.
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/user/streamview/pkg/ports"
	"github.com/user/streamview/pkg/renderer"
)

// Player drives playback of one stream.
type Player struct {
	source ports.UnitSource
	rend   *renderer.Renderer
	log    ports.Logger
}

// New creates a player over an already set-up renderer.
func New(source ports.UnitSource, rend *renderer.Renderer, log ports.Logger) *Player {
	return &Player{source: source, rend: rend, log: log}
}

// Stats summarizes one playback run.
type Stats struct {
	Submitted int // units the binding accepted
	Dropped   int // units the binding rejected
}

// Play starts the renderer, submits every unit from the source at the given
// rate, and stops the renderer before returning. A rejected unit is dropped
// and counted; it never ends playback. Cancelling ctx ends playback early
// with ctx's error.
func (p *Player) Play(ctx context.Context, fps int) (Stats, error) {
	var stats Stats
	if fps <= 0 {
		return stats, fmt.Errorf("player: invalid rate %d fps", fps)
	}

	if err := p.rend.Start(); err != nil {
		return stats, err
	}
	defer func() {
		if err := p.rend.Stop(); err != nil && !errors.Is(err, renderer.ErrNotRunning) {
			p.log.Warn("Stopping renderer: %s", err)
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		unit, err := p.source.NextUnit()
		if errors.Is(err, io.EOF) {
			p.log.Info("Playback finished: %d units submitted, %d dropped", stats.Submitted, stats.Dropped)
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("read unit: %w", err)
		}

		if p.rend.SubmitDecodeUnit(unit) {
			stats.Submitted++
		} else {
			stats.Dropped++
			p.log.Debug("Unit dropped by decoder")
		}

		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case <-ticker.C:
		}
	}
}
