// ABOUTME: Growable line buffer that extends its capacity in fixed 1 KiB chunks
// ABOUTME: Used by the per-row renderer to assemble one terminal line before writing it

package render

// RowChunk is both the initial capacity and the growth increment of a RowBuffer.
const RowChunk = 1024

// RowBuffer accumulates bytes for one output line. Capacity starts at
// RowChunk and grows by RowChunk whenever an append would not fit.
type RowBuffer struct {
	buf []byte
}

// NewRowBuffer returns an empty buffer with RowChunk capacity.
func NewRowBuffer() *RowBuffer {
	return &RowBuffer{buf: make([]byte, 0, RowChunk)}
}

// AppendString adds s to the end of the buffer.
func (r *RowBuffer) AppendString(s string) {
	need := len(r.buf) + len(s)
	if need > cap(r.buf) {
		size := cap(r.buf)
		for size < need {
			size += RowChunk
		}
		grown := make([]byte, len(r.buf), size)
		copy(grown, r.buf)
		r.buf = grown
	}
	r.buf = append(r.buf, s...)
}

// AppendByte adds a single byte.
func (r *RowBuffer) AppendByte(b byte) {
	if len(r.buf) == cap(r.buf) {
		grown := make([]byte, len(r.buf), cap(r.buf)+RowChunk)
		copy(grown, r.buf)
		r.buf = grown
	}
	r.buf = append(r.buf, b)
}

// Bytes returns the accumulated content. The slice aliases the buffer.
func (r *RowBuffer) Bytes() []byte { return r.buf }

// Len returns the number of buffered bytes.
func (r *RowBuffer) Len() int { return len(r.buf) }

// Cap returns the current capacity.
func (r *RowBuffer) Cap() int { return cap(r.buf) }
