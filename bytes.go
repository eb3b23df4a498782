package cyclic

import (
	"errors"
	"io"

	"github.com/lithdew/bytesutil"
	"github.com/valyala/bytebufferpool"
)

var (
	_ io.Reader     = (*Bytes)(nil)
	_ io.Writer     = (*Bytes)(nil)
	_ io.WriterTo   = (*Bytes)(nil)
	_ io.ReaderFrom = (*Bytes)(nil)
)

const bytesChunkSize = 4096

// Bytes is a byte-stream view over a growable ring: writes land at the back,
// reads drain from the front, and the backing storage only reallocates when a
// write outgrows it. Like the underlying ring it is single-owner and carries
// no locking.
type Bytes struct {
	ring Ring[byte]
	pool bytebufferpool.Pool
}

// NewBytes returns an empty byte ring with the given initial capacity.
func NewBytes(capacity int) *Bytes {
	return &Bytes{ring: Ring[byte]{items: make([]byte, capacity), grow: true}}
}

// Ring exposes the underlying container for direct sequence operations.
func (b *Bytes) Ring() *Ring[byte] {
	return &b.ring
}

// Len reports the number of buffered bytes.
func (b *Bytes) Len() int {
	return b.ring.Len()
}

// Cap reports the current storage capacity.
func (b *Bytes) Cap() int {
	return b.ring.Cap()
}

// Write appends p, growing storage as needed. The two physical segments of
// the free region are filled with at most two copies.
func (b *Bytes) Write(p []byte) (int, error) {
	r := &b.ring

	size := r.Len()
	if size+len(p) > len(r.items) {
		if err := r.Reserve(size + len(p)); err != nil {
			return 0, err
		}
	}

	w := r.slot(size)
	k := copy(r.items[w:], p)
	copy(r.items, p[k:])

	r.setLen(size + len(p))
	return len(p), nil
}

// Read drains up to len(p) bytes from the front, returning io.EOF when the
// ring is empty.
func (b *Bytes) Read(p []byte) (int, error) {
	r := &b.ring

	size := r.Len()
	if size == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := len(p)
	if n > size {
		n = size
	}

	k := len(r.items) - r.head
	if k > n {
		k = n
	}
	copy(p, r.items[r.head:r.head+k])
	copy(p[k:n], r.items[:n-k])

	b.discard(n)
	return n, nil
}

// AppendTo appends the buffered bytes to dst without consuming them.
func (b *Bytes) AppendTo(dst []byte) []byte {
	off := len(dst)
	dst = bytesutil.ExtendSlice(dst, off+b.ring.Len())
	b.ring.copyOut(dst[off:])
	return dst
}

// WriteTo flushes the buffered bytes to w through a pooled staging buffer,
// consuming whatever w accepted.
func (b *Bytes) WriteTo(w io.Writer) (int64, error) {
	buf := b.pool.Get()
	defer b.pool.Put(buf)

	buf.B = b.AppendTo(buf.B[:0])

	n, err := w.Write(buf.B)
	b.discard(n)
	return int64(n), err
}

// ReadFrom buffers rd until EOF through a pooled staging buffer.
func (b *Bytes) ReadFrom(rd io.Reader) (int64, error) {
	buf := b.pool.Get()
	defer b.pool.Put(buf)

	buf.B = bytesutil.ExtendSlice(buf.B, bytesChunkSize)

	var total int64
	for {
		n, err := rd.Read(buf.B)
		if n > 0 {
			total += int64(n)
			if _, werr := b.Write(buf.B[:n]); werr != nil {
				return total, werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, err
		}
	}
}

// discard drops up to n bytes from the front.
func (b *Bytes) discard(n int) {
	r := &b.ring

	size := r.Len()
	if n > size {
		n = size
	}
	if n == 0 {
		return
	}

	if r.head += n; r.head >= len(r.items) {
		r.head -= len(r.items)
	}
	r.setLen(size - n)
}
