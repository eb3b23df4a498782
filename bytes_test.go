package cyclic

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesReadWrite(t *testing.T) {
	b := NewBytes(4)

	n, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
	require.EqualValues(t, 3, b.Len())

	p := make([]byte, 2)
	n, err = b.Read(p)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	require.Equal(t, []byte("ab"), p)

	// Exceeding capacity grows storage rather than dropping data.
	n, err = b.Write([]byte("defg"))
	require.NoError(t, err)
	require.EqualValues(t, 4, n)
	require.EqualValues(t, 5, b.Len())

	p = make([]byte, 16)
	n, err = b.Read(p)
	require.NoError(t, err)
	require.Equal(t, []byte("cdefg"), p[:n])

	n, err = b.Read(p)
	require.EqualValues(t, 0, n)
	require.ErrorIs(t, err, io.EOF)
}

func TestBytesWrapAppendTo(t *testing.T) {
	b := NewBytes(8)

	_, err := b.Write([]byte("abcdef"))
	require.NoError(t, err)

	p := make([]byte, 4)
	_, err = b.Read(p)
	require.NoError(t, err)
	require.Equal(t, []byte("abcd"), p)

	// This write lands across the physical end of storage.
	_, err = b.Write([]byte("gh"))
	require.NoError(t, err)
	require.EqualValues(t, 8, b.Cap())

	require.Equal(t, []byte("efgh"), b.AppendTo(nil))
	require.Equal(t, []byte("xefgh"), b.AppendTo([]byte("x")))
	require.EqualValues(t, 4, b.Len())
}

func TestBytesWriteTo(t *testing.T) {
	b := NewBytes(8)
	_, err := b.Write([]byte("hello, ring"))
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	require.EqualValues(t, 11, n)
	require.EqualValues(t, "hello, ring", out.String())
	require.EqualValues(t, 0, b.Len())
}

func TestBytesReadFrom(t *testing.T) {
	src := strings.Repeat("0123456789", 500)

	b := NewBytes(16)
	n, err := b.ReadFrom(strings.NewReader(src))
	require.NoError(t, err)
	require.EqualValues(t, len(src), n)
	require.EqualValues(t, len(src), b.Len())

	require.Equal(t, []byte(src), b.AppendTo(nil))
}

func TestBytesRingAccess(t *testing.T) {
	b := NewBytes(4)
	_, err := b.Write([]byte("ab"))
	require.NoError(t, err)

	r := b.Ring()
	require.EqualValues(t, byte('a'), r.Get(0))
	require.EqualValues(t, byte('b'), r.Back())
}

func BenchmarkBytesWriteRead(b *testing.B) {
	buf := NewBytes(4096)
	chunk := bytes.Repeat([]byte{0xAB}, 512)
	p := make([]byte, 512)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = buf.Write(chunk)
		_, _ = buf.Read(p)
	}
}
