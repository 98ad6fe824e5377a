package ringio

import "errors"

// ErrInvalidSize is returned when a buffer is constructed with a
// non-positive capacity.
var ErrInvalidSize = errors.New("ringio: buffer size must be positive")

// Buffer is a fixed-capacity byte ring with two cursors: start indexes the
// oldest unread byte and count tracks how many unread bytes are held. The
// logical byte at offset i lives at slot (start+i) % cap, so reads and writes
// never move data.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	data  []byte
	start int
	count int
}

// NewBuffer creates a buffer holding exactly capacity bytes.
// It returns ErrInvalidSize when capacity is not positive.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, ErrInvalidSize
	}
	return &Buffer{data: make([]byte, capacity)}, nil
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Len returns the number of unread bytes currently held.
func (b *Buffer) Len() int {
	return b.count
}

// HasSpace returns true if at least one more byte can be added.
func (b *Buffer) HasSpace() bool {
	return b.count < len(b.data)
}

// HasBytes returns true if at least one unread byte is held.
func (b *Buffer) HasBytes() bool {
	return b.count > 0
}

// Add stores one byte at the next free slot, wrapping modulo capacity.
// The caller must ensure HasSpace; adding to a full buffer panics rather
// than silently overwriting.
func (b *Buffer) Add(c byte) {
	if b.count == len(b.data) {
		panic("ringio: Add on full buffer")
	}
	b.data[(b.start+b.count)%len(b.data)] = c
	b.count++
}

// Next removes and returns the oldest unread byte.
// The caller must ensure HasBytes; reading an empty buffer panics.
func (b *Buffer) Next() byte {
	if b.count == 0 {
		panic("ringio: Next on empty buffer")
	}
	c := b.data[b.start]
	b.discard(1)
	return c
}

// Peek returns the byte offset positions ahead of the oldest unread byte
// without removing it. offset must satisfy 0 <= offset < Len.
func (b *Buffer) Peek(offset int) byte {
	if offset < 0 || offset >= b.count {
		panic("ringio: Peek offset out of range")
	}
	return b.data[(b.start+offset)%len(b.data)]
}

// Write stores up to min(len(p), free space) bytes from p and returns the
// number stored. It never overwrites unread bytes.
func (b *Buffer) Write(p []byte) int {
	free := len(b.data) - b.count
	toWrite := min(free, len(p))
	if toWrite == 0 {
		return 0
	}

	w := (b.start + b.count) % len(b.data)
	if w+toWrite <= len(b.data) {
		copy(b.data[w:w+toWrite], p[:toWrite])
	} else {
		firstChunk := len(b.data) - w
		copy(b.data[w:], p[:firstChunk])
		copy(b.data[:toWrite-firstChunk], p[firstChunk:toWrite])
	}

	b.count += toWrite
	return toWrite
}

// Drain removes up to min(len(dst), Len) bytes into dst, oldest first, and
// returns the number removed.
func (b *Buffer) Drain(dst []byte) int {
	toRead := min(b.count, len(dst))
	if toRead == 0 {
		return 0
	}

	if b.start+toRead <= len(b.data) {
		copy(dst[:toRead], b.data[b.start:b.start+toRead])
	} else {
		firstChunk := len(b.data) - b.start
		copy(dst[:firstChunk], b.data[b.start:])
		copy(dst[firstChunk:toRead], b.data[:toRead-firstChunk])
	}

	b.discard(toRead)
	return toRead
}

// Reset discards all unread bytes.
func (b *Buffer) Reset() {
	b.start, b.count = 0, 0
}

// writable returns the first contiguous free segment. The free region may
// wrap into two physical segments; callers fill this one and commit, the
// next fill sees the remainder.
func (b *Buffer) writable() []byte {
	if b.count == len(b.data) {
		return nil
	}
	w := (b.start + b.count) % len(b.data)
	if w < b.start {
		return b.data[w:b.start]
	}
	return b.data[w:]
}

// commit accounts for n bytes written into the segment returned by writable.
func (b *Buffer) commit(n int) {
	if n < 0 || n > len(b.data)-b.count {
		panic("ringio: commit beyond free space")
	}
	b.count += n
}

// readable returns the first contiguous unread segment.
func (b *Buffer) readable() []byte {
	if b.start+b.count <= len(b.data) {
		return b.data[b.start : b.start+b.count]
	}
	return b.data[b.start:]
}

// discard drops the n oldest unread bytes. Once the buffer empties the start
// cursor snaps back to zero, so a fill after a full drain always sees a
// single contiguous free region spanning the whole capacity.
func (b *Buffer) discard(n int) {
	b.start = (b.start + n) % len(b.data)
	b.count -= n
	if b.count == 0 {
		b.start = 0
	}
}
