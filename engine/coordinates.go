package engine

import (
	"encoding/binary"
	"fmt"
	"math"
)

// CoordinatesSize is the BLOB length of an encoded coordinate triple.
const CoordinatesSize = 12

// EncodeCoordinates encodes x, y and z as little-endian IEEE 754 float32 values.
func EncodeCoordinates(c [3]float32) []byte {
	b := make([]byte, CoordinatesSize)
	for i, v := range c {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

// DecodeCoordinates decodes a BLOB produced by EncodeCoordinates.
func DecodeCoordinates(b []byte) ([3]float32, error) {
	var c [3]float32
	if len(b) != CoordinatesSize {
		return c, fmt.Errorf("engine: invalid coordinates blob length %d, want %d", len(b), CoordinatesSize)
	}
	for i := range c {
		c[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return c, nil
}
