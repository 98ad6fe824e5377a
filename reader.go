package ringio

import "io"

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.WriterTo   = (*Reader)(nil)
)

// maxConsecutiveEmptyReads bounds how often a fill cycle tolerates a source
// returning (0, nil) before giving up with io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// Reader reads from an underlying source through a fixed-capacity ring
// buffer. It pulls from the source only when the buffer is empty, serves
// reads from the buffer otherwise, and keeps draining buffered bytes after
// the source reports EOF.
//
// Reader does not manage the source's lifecycle and is not safe for
// concurrent use: calls must come from a single goroutine.
type Reader struct {
	src io.Reader
	buf *Buffer
	eof bool
}

// NewReader creates a Reader buffering src behind a ring buffer of size
// bytes. It returns ErrInvalidSize when size is not positive and does not
// read from src.
func NewReader(src io.Reader, size int) (*Reader, error) {
	buf, err := NewBuffer(size)
	if err != nil {
		return nil, err
	}
	return &Reader{src: src, buf: buf}, nil
}

// Buffered returns the number of bytes currently held in the ring buffer.
func (r *Reader) Buffered() int {
	return r.buf.Len()
}

// ReadByte returns the next byte, filling the buffer from the source once if
// it is empty. It returns io.EOF when the source is exhausted and the buffer
// is drained.
func (r *Reader) ReadByte() (byte, error) {
	if !r.buf.HasBytes() {
		if err := r.fill(); err != nil {
			return 0, err
		}
		if !r.buf.HasBytes() {
			return 0, io.EOF
		}
	}
	return r.buf.Next(), nil
}

// Read fills p with buffered bytes, refilling from the source whenever the
// buffer runs empty, until p is full or the source is exhausted. A partial
// count is returned once no more bytes are immediately producible; Read
// returns (0, io.EOF) only when the source is exhausted before any byte is
// delivered. Reading into an empty p returns (0, nil) without touching the
// source.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	var n int
	for n < len(p) {
		if !r.buf.HasBytes() {
			if err := r.fill(); err != nil {
				return n, err
			}
			if !r.buf.HasBytes() {
				break
			}
		}
		n += r.buf.Drain(p[n:])
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// WriteTo implements io.WriterTo by draining the buffer and the source
// into w until the source is exhausted or an error occurs.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		if !r.buf.HasBytes() {
			if err := r.fill(); err != nil {
				return total, err
			}
			if !r.buf.HasBytes() {
				return total, nil
			}
		}

		chunk := r.buf.readable()
		n, err := w.Write(chunk)
		if n < 0 || n > len(chunk) {
			n = 0
			if err == nil {
				err = io.ErrShortWrite
			}
		}
		r.buf.discard(n)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n < len(chunk) {
			return total, io.ErrShortWrite
		}
	}
}

// fill runs one fill cycle: a single source read into the buffer's free
// region. io.EOF from the source is permanent; once observed, fill becomes a
// no-op and the remaining buffered bytes are served until drained. Any other
// source error is returned unchanged, after committing bytes delivered
// alongside it.
func (r *Reader) fill() error {
	if r.eof {
		return nil
	}

	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.src.Read(r.buf.writable())
		if n > 0 {
			r.buf.commit(n)
		}
		if err == io.EOF {
			r.eof = true
			return nil
		}
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return io.ErrNoProgress
}
