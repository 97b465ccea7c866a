// Package ram provides a basic fixed-size RAM implementation.
package ram

// RAM represents a block of RAM. Addresses are relative
// to the start of the block.
type RAM struct {
	data []uint8
}

// NewRAM returns a new, zeroed RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Size returns the number of bytes held.
func (r *RAM) Size() int {
	return len(r.data)
}

// Load copies p into the start of the RAM, returning the
// number of bytes copied. Nothing is written past the end.
func (r *RAM) Load(p []byte) int {
	return copy(r.data, p)
}

// Bytes returns a copy of the contents.
func (r *RAM) Bytes() []byte {
	b := make([]byte, len(r.data))
	copy(b, r.data)
	return b
}

// Clear zeroes the contents.
func (r *RAM) Clear() {
	for i := range r.data {
		r.data[i] = 0
	}
}
