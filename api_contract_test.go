package lzav

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIContract_PrefixByteRecordsStrategy(t *testing.T) {
	data := bytes.Repeat([]byte("prefix-strategy"), 64)

	def, err := Compress(data, nil)
	require.NoError(t, err)
	require.Equal(t, byte(fmtCurrent<<4|refMinDefault), def[0])

	hi, err := Compress(data, &CompressOptions{HighRatio: true})
	require.NoError(t, err)
	require.Equal(t, byte(fmtCurrent<<4|refMinHi), hi[0])
}

func TestAPIContract_DecompressProducesExactLength(t *testing.T) {
	// The stream carries no length; the caller's buffer defines it, and
	// success means the stream filled it exactly.
	src := bytes.Repeat([]byte("api-contract"), 64)

	compressed, err := Compress(src, nil)
	require.NoError(t, err)

	dst := make([]byte, len(src))
	n, err := DecompressInto(compressed, dst)
	require.NoError(t, err)
	require.Equal(t, len(src), n)
	require.Equal(t, src, dst)
}

func TestAPIContract_CompressIntoMatchesCompress(t *testing.T) {
	src := bytes.Repeat([]byte("into-vs-alloc"), 200)

	alloc, err := Compress(src, nil)
	require.NoError(t, err)

	dst := make([]byte, CompressBound(len(src)))
	n, err := CompressInto(src, dst, nil)
	require.NoError(t, err)
	require.Equal(t, alloc, dst[:n])
}

func TestAPIContract_HashTableIsBorrowedNotRetained(t *testing.T) {
	src := bytes.Repeat([]byte("borrowed-table"), 500)
	ext := make([]uint32, htSizeMax/4)

	first, err := Compress(src, &CompressOptions{HashTable: ext})
	require.NoError(t, err)

	// Reuse of the same, now dirtied, table must reproduce the stream:
	// the compressor reinitializes everything it reads.
	second, err := Compress(src, &CompressOptions{HashTable: ext})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAPIContract_DecompressPartialNeverNegative(t *testing.T) {
	srcs := [][]byte{
		nil,
		{0x26},
		{0x99, 0x01, 0x02},
		bytes.Repeat([]byte{0xFF}, 64),
	}

	for _, src := range srcs {
		n := DecompressPartial(src, make([]byte, 64))
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, 64)
	}
}

func TestAPIContract_TerminalLiteralLaw(t *testing.T) {
	// The final litFin input bytes are always present verbatim at the end
	// of the stream: no reference covers them.
	data := bytes.Repeat([]byte("terminal-law!"), 300)

	for _, hiOpt := range []bool{false, true} {
		cmp, err := Compress(data, &CompressOptions{HighRatio: hiOpt})
		require.NoError(t, err)
		require.Equal(t, data[len(data)-litFin:], cmp[len(cmp)-litFin:])
	}
}
