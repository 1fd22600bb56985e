package encode

import (
	"fmt"
	"image"
	"io"
)

// Encoder is the interface for still-image encoders
type Encoder interface {
	// Metadata
	Name() string
	Extension() string // file extension including the dot

	// Encoding
	Encode(w io.Writer, img image.Image, opts Options) error
}

// Options holds encoder configuration
type Options struct {
	Quality int // JPEG quality 1-100, ignored by lossless formats
}

// Registry holds registered encoder plugins
var Registry = make(map[string]func() Encoder)

// Register registers an encoder plugin under one or more format names
func Register(factory func() Encoder, names ...string) {
	for _, name := range names {
		Registry[name] = factory
	}
}

// Get returns an encoder for a format name like "jpg" or "png"
func Get(name string) (Encoder, error) {
	factory, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown image format: %q", name)
	}
	return factory(), nil
}

// Formats returns the registered format names
func Formats() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	return names
}
