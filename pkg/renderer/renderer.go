// Package renderer implements the CPU presentation renderer. It packs decode
// units into the decoder binding's input buffer, paces presentation at a
// fixed rate on a single goroutine, and paints decoded frames letterboxed
// onto a display surface.
//
// The decoded frame store is written by the binding fetch and read by the
// blit within the same presentation tick, so it needs no synchronization of
// its own. Visibility of decoder-internal pixel state between the submission
// thread and the presentation goroutine is the binding's concern; the
// renderer deliberately takes no lock around the per-tick frame fetch and
// accepts a slightly stale frame in exchange for latency.
package renderer

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/user/streamview/pkg/media"
	"github.com/user/streamview/pkg/ports"
)

var (
	// ErrAlreadyRunning is returned by Start when the presentation loop is
	// already running.
	ErrAlreadyRunning = errors.New("renderer: already running")

	// ErrNotRunning is returned by Stop when the presentation loop is not
	// running.
	ErrNotRunning = errors.New("renderer: not running")

	// ErrNotSetUp is returned by Start when Setup has not completed.
	ErrNotSetUp = errors.New("renderer: setup not called")
)

// decoderThreads is fixed at one: single-threaded low-latency decode.
const decoderThreads = 1

// Renderer drives a StreamDecoder and presents its output on a Surface.
//
// The zero value is not usable; construct with New, then call Setup before
// Start or SubmitDecodeUnit, and Release only after Stop has returned.
type Renderer struct {
	decoder ports.StreamDecoder
	surface ports.Surface
	log     ports.Logger

	width     int
	height    int
	targetFPS int

	// frame is the decoded frame store: written by the binding fetch and
	// read by the blit, both on the presentation goroutine.
	frame   *image.RGBA
	scratch *inputBuffer

	mu     sync.Mutex
	cancel func()
	done   chan struct{}
}

// New creates a renderer around the given decoder binding.
func New(decoder ports.StreamDecoder, log ports.Logger) *Renderer {
	return &Renderer{decoder: decoder, log: log}
}

// Setup initializes the binding with the stream geometry and allocates the
// decoded frame store and the scratch input buffer. Geometry and rate are
// fixed for the session. Binding initialization failure is fatal and returned
// immediately; there is no retry.
func (r *Renderer) Setup(width, height int, surface ports.Surface, targetFPS int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("renderer: invalid stream geometry %dx%d", width, height)
	}
	if targetFPS <= 0 {
		return fmt.Errorf("renderer: invalid target rate %d fps", targetFPS)
	}
	if surface == nil {
		return errors.New("renderer: nil surface")
	}

	if err := r.decoder.Init(width, height, ports.LowLatency, decoderThreads); err != nil {
		return fmt.Errorf("decoder init: %w", err)
	}

	r.width = width
	r.height = height
	r.targetFPS = targetFPS
	r.surface = surface
	r.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	r.scratch = newInputBuffer(defaultScratchCapacity, r.decoder.InputPadding())

	r.log.Debug("Decoder initialized: %dx%d at %d fps", width, height, targetFPS)
	return nil
}

// SubmitDecodeUnit copies the unit's fragments into a contiguous region and
// hands it to the binding. It reports whether the binding accepted the unit;
// on false the frame was not decoded and the caller decides whether to drop
// it or escalate. Submissions are sequential, not concurrent.
func (r *Renderer) SubmitDecodeUnit(unit *media.DecodeUnit) bool {
	if r.scratch == nil {
		return false
	}

	data := r.scratch.pack(unit)
	if err := r.decoder.Decode(data, 0, unit.DataLength()); err != nil {
		r.log.Debug("Decode failed: %s", err)
		return false
	}
	return true
}

// Release tears down the decoder binding. Calling it while the presentation
// loop is running is a precondition violation; Stop first.
func (r *Renderer) Release() {
	r.decoder.Destroy()
}
