// SPDX-License-Identifier: MIT
// Source: github.com/ryancinsight/rlzav

package lzav

// CompressOptions configures compression strategy and scratch memory.
type CompressOptions struct {
	// HighRatio selects the multi-way, lazy-matching compressor. Slower,
	// better ratio; the output is still a format-2 stream.
	HighRatio bool
	// HashTable optionally supplies the match-finder's scratch table. It is
	// borrowed for the duration of the call and must not be shared with a
	// concurrent call. When nil (or too small to be useful) an internal
	// pooled table is used.
	HashTable []uint32
}

// DefaultCompressOptions returns options for the default (fast) strategy.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures decompression.
// OutLen is required: the stream carries no length, and decoding must
// produce exactly OutLen bytes.
type DecompressOptions struct {
	// OutLen is the exact decompressed size.
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and
// no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}
