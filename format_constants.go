// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ryancinsight
// Source: github.com/ryancinsight/rlzav

package lzav

// Stream format 2 constants: window bounds, reference-length bounds, and
// the mandatory trailing-literal count.

// Format identifiers carried in the stream prefix byte (high nibble).
const (
	fmtLegacy  = 1
	fmtCurrent = 2
)

// Window and reference bounds.
const (
	winLen = 1 << 23 // maximum reference offset

	refMinDefault = 6 // minimum reference length, default strategy
	refMinHi      = 5 // minimum reference length, high-ratio strategy

	// Maximum reference length encodable by a single block.
	refLenMax = refMinDefault + 15 + 255 + 254

	litFin = 6 // trailing input bytes always emitted as literals
)

// maxSrcLen bounds compressible input; offsets and lengths are carried in
// 32-bit fields.
const maxSrcLen = 1<<31 - 1

// Default-strategy hash-table bounds (bytes; buckets of two key/offset
// tuples, 16 bytes each).
const (
	htSizeMin = 1 << 11
	htSizeMax = 1 << 20
)

// High-ratio hash-table bounds (bytes; buckets of seven tuples plus a head
// word, 64 bytes each).
const (
	htSizeMinHi = 1 << 13
	htSizeMaxHi = 1 << 23
)

// Match-rate heuristic parameters of the default strategy. The running
// average mavg starts at 100<<21 and decays by mavg>>11 per miss; the
// thresholds gate progressively larger skip steps over incompressible
// regions.
const (
	mavgInit    = 100 << 21
	mavgSkip1   = 200 << 14
	mavgSkip2   = 130 << 14
	mavgSkip3   = 100 << 14
	promoteDist = 273 // hit distance beyond which tuple 1 is replaced
)
