package ports

// InitFlags configures the decoder binding at initialization time.
type InitFlags int

const (
	// LowLatency asks the binding to emit decoded frames as soon as possible
	// instead of buffering for reordering. Always set for live streams.
	LowLatency InitFlags = 1 << iota
)

// StreamDecoder abstracts the native decoder binding. The binding owns its
// internal decode state; callers interact with it only through this handle so
// the renderer stays testable in isolation.
//
// Decode is called from the submission thread and ReadFrameInto from the
// presentation goroutine. The binding is responsible for making decoded pixel
// state visible across the two; callers take no lock of their own.
type StreamDecoder interface {
	// Init prepares the binding for a stream of the given geometry.
	// A non-nil error is fatal for the session.
	Init(width, height int, flags InitFlags, threadCount int) error

	// Decode consumes length bytes of compressed bitstream starting at
	// offset. The slice may be larger than offset+length; trailing bytes are
	// binding-required padding.
	Decode(data []byte, offset, length int) error

	// ReadFrameInto writes the most recently decoded frame as RGBA bytes
	// into dst and reports whether a new frame was produced since the last
	// read. dst must hold at least width*height*4 bytes.
	ReadFrameInto(dst []byte) bool

	// InputPadding returns the number of padding bytes the binding requires
	// after the end of every input buffer.
	InputPadding() int

	// Destroy tears down the binding's internal state. Call only after the
	// presentation loop has stopped.
	Destroy()
}
