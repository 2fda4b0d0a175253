// SPDX-License-Identifier: MIT
// Source: github.com/ryancinsight/rlzav

package lzav

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrParams is returned when a buffer argument is nil, aliased, or
	// otherwise unusable.
	ErrParams = errors.New("invalid parameters")
	// ErrEmptyInput is returned when the input slice to compress is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the compressed stream ends in the
	// middle of a block.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when decoding would write past the output
	// buffer, or when a compression destination is below the bound.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before
	// the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrUnexpectedEOF is returned when the stream ended but produced fewer
	// bytes than the expected decompressed length.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrUnknownFormat is returned when the stream prefix carries a format
	// id this build does not decode.
	ErrUnknownFormat = errors.New("unknown stream format")
	// ErrOptionsRequired is returned when Decompress is called with nil
	// options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when the input exceeds the 2^31-1 byte
	// limit, or when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds maximum size")
)
