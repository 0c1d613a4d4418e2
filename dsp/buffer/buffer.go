package buffer

import "fmt"

// Block wraps a float32 slice with a fixed backing capacity.
type Block struct {
	samples []float32
}

// New returns a zero-filled Block whose length and capacity equal size.
func New(size int) *Block {
	if size < 0 {
		size = 0
	}
	return &Block{samples: make([]float32, size)}
}

// NewEmpty returns a Block with the given capacity and zero length.
func NewEmpty(capacity int) *Block {
	if capacity < 0 {
		capacity = 0
	}
	return &Block{samples: make([]float32, 0, capacity)}
}

// Samples returns the logical contents.
// The slice aliases the block and is only valid until the next write.
func (b *Block) Samples() []float32 {
	return b.samples
}

// Len returns the logical number of samples.
func (b *Block) Len() int {
	return len(b.samples)
}

// Cap returns the fixed capacity of the backing array.
func (b *Block) Cap() int {
	return cap(b.samples)
}

// ValidLen reports whether n is an accepted logical length: 0, 1 or Cap().
func (b *Block) ValidLen(n int) bool {
	return n == 0 || n == 1 || n == cap(b.samples)
}

// Write replaces the contents with values.
// The length of values must satisfy [Block.ValidLen]; otherwise the block is
// left untouched and an error is returned.
func (b *Block) Write(values []float32) error {
	if !b.ValidLen(len(values)) {
		return fmt.Errorf("buffer: length %d not in {0, 1, %d}", len(values), cap(b.samples))
	}
	b.samples = b.samples[:len(values)]
	copy(b.samples, values)
	return nil
}

// SetConstant sets the block to a single constant value (length 1).
func (b *Block) SetConstant(v float32) {
	if cap(b.samples) == 0 {
		return
	}
	b.samples = b.samples[:1]
	b.samples[0] = v
}

// Clear sets the logical length to 0 so that Value reads 0.
func (b *Block) Clear() {
	b.samples = b.samples[:0]
}

// Value returns the sample that applies at index:
//   - length 0: 0
//   - length 1: the constant value
//   - otherwise: samples[index]
//
// Index is not checked against the logical length beyond the slice bound.
func (b *Block) Value(index int) float32 {
	switch len(b.samples) {
	case 0:
		return 0
	case 1:
		return b.samples[0]
	default:
		return b.samples[index]
	}
}

// Zero sets all logical samples to 0.
func (b *Block) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}
