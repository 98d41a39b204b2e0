package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
)

const (
	wordSize = 4

	// DefaultCapacity is the number of 32-bit words buffered per refill.
	DefaultCapacity = 4096
)

// CryptoSource is a Source that buffers bytes from a cryptographically strong
// entropy source and refills the whole buffer at once when it runs dry.
type CryptoSource struct {
	mu      sync.Mutex
	entropy io.Reader
	buffer  []byte
	taken   int
}

type cryptoOptions struct {
	capacity int
	entropy  io.Reader
}

// CryptoOption configures a CryptoSource.
type CryptoOption func(*cryptoOptions)

// WithCapacity sets the number of 32-bit words buffered per refill.
// Non-positive values keep DefaultCapacity.
func WithCapacity(words int) CryptoOption {
	return func(o *cryptoOptions) {
		if words > 0 {
			o.capacity = words
		}
	}
}

// WithEntropy replaces crypto/rand.Reader as the entropy source.
func WithEntropy(r io.Reader) CryptoOption {
	return func(o *cryptoOptions) {
		if r != nil {
			o.entropy = r
		}
	}
}

// NewCryptoSource allocates the buffer and fills it for the first time.
func NewCryptoSource(opts ...CryptoOption) (*CryptoSource, error) {
	o := cryptoOptions{capacity: DefaultCapacity, entropy: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	s := &CryptoSource{
		entropy: o.entropy,
		buffer:  make([]byte, o.capacity*wordSize),
	}
	if err := s.fill(); err != nil {
		return nil, err
	}
	return s, nil
}

// Next consumes one buffered word and reduces it modulo bound. It panics when
// the entropy source fails during a refill.
func (s *CryptoSource) Next(bound uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken >= len(s.buffer) {
		if err := s.fill(); err != nil {
			panic(err.Error())
		}
	}
	v := binary.LittleEndian.Uint32(s.buffer[s.taken:])
	s.taken += wordSize
	return reduce(v, bound)
}

// Refill discards the remaining buffered words and reads a fresh buffer.
func (s *CryptoSource) Refill() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fill()
}

// Remaining reports how many words can be drawn before the next refill.
func (s *CryptoSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (len(s.buffer) - s.taken) / wordSize
}

func (s *CryptoSource) fill() error {
	if _, err := io.ReadFull(s.entropy, s.buffer); err != nil {
		return fmt.Errorf("rng: entropy source failed: %w", err)
	}
	s.taken = 0
	return nil
}
