package ringio

// Package ringio reads a sequential byte source through a fixed-capacity ring
// buffer. It decouples the consumer's read pattern (single bytes or arbitrary
// chunks) from the source's delivery pattern, pulling from the source only when
// the buffer runs empty and preserving exact byte order across wraparound.
