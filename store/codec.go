package store

import (
	"fmt"
	"image/color"
)

// Codec converts point payloads to and from their stored form.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(b []byte) (T, error)
}

// RGBACodec stores a colour as four bytes: R, G, B, A.
type RGBACodec struct{}

func (RGBACodec) Encode(v color.RGBA) ([]byte, error) {
	return []byte{v.R, v.G, v.B, v.A}, nil
}

func (RGBACodec) Decode(b []byte) (color.RGBA, error) {
	if len(b) != 4 {
		return color.RGBA{}, fmt.Errorf("store: invalid colour blob length %d, want 4", len(b))
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}
