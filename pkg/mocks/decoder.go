package mocks

import (
	"sync"

	"github.com/user/streamview/pkg/ports"
)

// StreamDecoder is a mock implementation of ports.StreamDecoder.
// It is safe for concurrent use: the presentation goroutine reads frames
// while the test goroutine inspects recorded calls.
type StreamDecoder struct {
	InitFunc   func(width, height int, flags ports.InitFlags, threadCount int) error
	DecodeFunc func(data []byte, offset, length int) error
	ReadFunc   func(dst []byte) bool
	Padding    int

	mu            sync.Mutex
	initCalled    bool
	initWidth     int
	initHeight    int
	initFlags     ports.InitFlags
	initThreads   int
	decodeCalls   []DecodeCall
	readCalls     int
	destroyCalled bool
}

// DecodeCall records one call to Decode.
type DecodeCall struct {
	Data   []byte // copy of data[offset : offset+length]
	BufLen int    // length of the backing slice handed to the binding
	Offset int
	Length int
}

func (m *StreamDecoder) Init(width, height int, flags ports.InitFlags, threadCount int) error {
	m.mu.Lock()
	m.initCalled = true
	m.initWidth = width
	m.initHeight = height
	m.initFlags = flags
	m.initThreads = threadCount
	m.mu.Unlock()

	if m.InitFunc != nil {
		return m.InitFunc(width, height, flags, threadCount)
	}
	return nil
}

func (m *StreamDecoder) Decode(data []byte, offset, length int) error {
	call := DecodeCall{BufLen: len(data), Offset: offset, Length: length}
	call.Data = append([]byte(nil), data[offset:offset+length]...)

	m.mu.Lock()
	m.decodeCalls = append(m.decodeCalls, call)
	m.mu.Unlock()

	if m.DecodeFunc != nil {
		return m.DecodeFunc(data, offset, length)
	}
	return nil
}

func (m *StreamDecoder) ReadFrameInto(dst []byte) bool {
	m.mu.Lock()
	m.readCalls++
	m.mu.Unlock()

	if m.ReadFunc != nil {
		return m.ReadFunc(dst)
	}
	return false
}

func (m *StreamDecoder) InputPadding() int {
	return m.Padding
}

func (m *StreamDecoder) Destroy() {
	m.mu.Lock()
	m.destroyCalled = true
	m.mu.Unlock()
}

// InitCalled reports whether Init was called.
func (m *StreamDecoder) InitCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initCalled
}

// InitArgs returns the arguments of the last Init call.
func (m *StreamDecoder) InitArgs() (width, height int, flags ports.InitFlags, threadCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initWidth, m.initHeight, m.initFlags, m.initThreads
}

// DecodeCalls returns a copy of the recorded Decode calls.
func (m *StreamDecoder) DecodeCalls() []DecodeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DecodeCall(nil), m.decodeCalls...)
}

// ReadCalls returns how many times ReadFrameInto was called.
func (m *StreamDecoder) ReadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readCalls
}

// DestroyCalled reports whether Destroy was called.
func (m *StreamDecoder) DestroyCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyCalled
}

var _ ports.StreamDecoder = (*StreamDecoder)(nil)
