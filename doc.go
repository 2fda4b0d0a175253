// SPDX-License-Identifier: MIT
// Source: github.com/ryancinsight/rlzav

/*
Package lzav implements the LZAV in-memory compression format (stream format 2).

LZAV is an LZ77-family byte codec tuned for fast compression and very fast
decompression. A stream is a sequence of literal and back-reference blocks
over an 8 MiB window; block headers lend their top bits to the next
reference's offset (the "carry channel"), and the stream always ends with a
literal block holding the final six input bytes.

# Compress

Options may be nil (default strategy). HighRatio selects the slower
multi-way/lazy match finder; both strategies produce format-2 streams:

	out, err := lzav.Compress(data, nil)
	out, err := lzav.Compress(data, &lzav.CompressOptions{HighRatio: true})

Into a caller buffer (must hold CompressBound(len(src)) bytes, or
CompressBoundHi for the high-ratio strategy):

	n, err := lzav.CompressInto(src, dst, nil)

# Decompress

The format carries no length, so OutLen is required (use DecompressOptions):

	out, err := lzav.Decompress(compressed, lzav.DefaultDecompressOptions(expectedLen))

From a caller buffer sized to the exact decompressed length:

	n, err := lzav.DecompressInto(compressed, dst)

DecompressPartial recovers as many bytes as possible from a damaged stream
and never fails.

Legacy format-1 streams decode by default; build with the lzav_nolegacy tag
to compile the legacy decoder out.
*/
package lzav
