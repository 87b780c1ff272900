// Package fuzzutil turns a raw byte slice into a sequence of typed steps,
// the way the teacher corpus's own fuzz tests do: a ByteConsumer carves
// deterministic values out of the slice Go's fuzzing engine hands in, and a
// TestRun turns those values into a list of Steps to execute in order.
package fuzzutil

import "encoding/binary"

// ByteConsumer hands out successive chunks of a byte slice, shrinking as it
// goes. Once exhausted, Len reports 0 and further reads return zero values
// padded from an empty slice.
type ByteConsumer struct {
	bytes []byte
}

// NewByteConsumer wraps bytes for consumption.
func NewByteConsumer(bytes []byte) *ByteConsumer {
	return &ByteConsumer{bytes: bytes}
}

// Len reports how many unconsumed bytes remain.
func (c *ByteConsumer) Len() int {
	return len(c.bytes)
}

// Bytes consumes and returns the next size bytes, zero-padded if fewer than
// size bytes remain.
func (c *ByteConsumer) Bytes(size int) []byte {
	consumed := make([]byte, size)
	copy(consumed, c.bytes)

	if len(c.bytes) <= size {
		c.bytes = c.bytes[:0]
	} else {
		c.bytes = c.bytes[size:]
	}
	return consumed
}

// Byte consumes a single byte.
func (c *ByteConsumer) Byte() byte {
	return c.Bytes(1)[0]
}

// Uint32 consumes 4 bytes as a little-endian uint32.
func (c *ByteConsumer) Uint32() uint32 {
	return binary.LittleEndian.Uint32(c.Bytes(4))
}

// Bool consumes a byte and reports whether it is odd.
func (c *ByteConsumer) Bool() bool {
	return c.Byte()%2 == 1
}
