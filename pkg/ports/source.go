package ports

import "github.com/user/streamview/pkg/media"

// UnitSource supplies compressed decode units, e.g. parsed from a file.
// Sources play the caller-thread role of the design: they construct decode
// units and hand them to the renderer for submission.
type UnitSource interface {
	// NextUnit returns the next decode unit in stream order, or io.EOF when
	// the stream is exhausted.
	NextUnit() (*media.DecodeUnit, error)

	// Dimensions returns the stream geometry if the source knows it,
	// or zeros when it could not be determined.
	Dimensions() (width, height int)

	// Close releases any resources held by the source.
	Close() error
}
