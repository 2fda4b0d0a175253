// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ryancinsight
// Source: github.com/ryancinsight/rlzav

package lzav

import "math/bits"

// Compress compresses src into a new buffer. opts may be nil (default
// strategy). The result is a self-delimiting format-2 stream; its
// decompressed length must be conveyed out of band.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	bound := CompressBound(len(src))
	if opts.HighRatio {
		bound = CompressBoundHi(len(src))
	}

	dst := make([]byte, bound)
	n, err := CompressInto(src, dst, opts)
	if err != nil {
		return nil, err
	}

	return dst[:n:n], nil
}

// CompressInto compresses src into dst and returns the number of bytes
// written. dst must hold at least CompressBound(len(src)) bytes
// (CompressBoundHi for the high-ratio strategy); src and dst must not
// overlap.
func CompressInto(src, dst []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	srcl := len(src)
	if srcl == 0 {
		return 0, ErrEmptyInput
	}
	if srcl > maxSrcLen {
		return 0, ErrInputTooLarge
	}
	if len(dst) == 0 {
		return 0, ErrParams
	}
	if &src[0] == &dst[0] {
		return 0, ErrParams
	}

	mref, bound := refMinDefault, CompressBound(srcl)
	if opts.HighRatio {
		mref, bound = refMinHi, CompressBoundHi(srcl)
	}
	if len(dst) < bound {
		return 0, ErrOutputOverrun
	}

	dst[0] = byte(fmtCurrent<<4 | mref)

	if srcl < 16 {
		// Short form: one literal header, the input bytes, and zero
		// padding up to the mandatory literal tail.
		dst[1] = byte(srcl)
		copy(dst[2:], src)

		n := srcl
		for n < litFin {
			dst[2+n] = 0
			n++
		}

		return 2 + n, nil
	}

	szMin, szMax, stride := htSizeMin, htSizeMax, 16
	if opts.HighRatio {
		szMin, szMax, stride = htSizeMinHi, htSizeMaxHi, 64
	}

	// Smallest power of two whose quarter covers the input, clamped.
	htsize := szMin
	for htsize != szMax && htsize>>2 < srcl {
		htsize <<= 1
	}

	var (
		ht     []uint32
		pooled *[]uint32
	)

	if ext := opts.HashTable; len(ext)*4 >= szMin {
		if len(ext)*4 < htsize {
			htsize = 1 << (bits.Len(uint(len(ext)*4)) - 1)
		}
		ht = ext[:htsize/4]
	} else {
		pooled = acquireHashTable(htsize / 4)
		ht = *pooled
	}

	hmask := uint32(htsize-1) &^ uint32(stride-1)

	var n int
	if opts.HighRatio {
		n = compressHi(src, dst, ht, hmask)
	} else {
		n = compressDefault(src, dst, ht, hmask)
	}

	if pooled != nil {
		releaseHashTable(pooled)
	}

	return n, nil
}

// CompressBound returns the maximum stream size the default strategy can
// produce for srcl input bytes. Always at least 16.
func CompressBound(srcl int) int {
	if srcl <= 0 {
		return 16
	}

	const k = 16 + 127 + 1
	l2 := srcl / (k + 6)

	return (srcl-l2*6+k-1)/k*2 - l2 + srcl + 16
}

// CompressBoundHi is CompressBound for the high-ratio strategy.
func CompressBoundHi(srcl int) int {
	if srcl <= 0 {
		return 16
	}

	l2 := srcl / (16 + 5)

	return (srcl-l2*5+15)/16*2 - l2 + srcl + 16
}

// hashWords mixes the match bytes (4+2 for the default strategy, 4+1 for
// high-ratio) into a bucket selector.
func hashWords(iw1, iw2 uint32) uint32 {
	m := uint64(0x243F6A88^iw1) * uint64(0x85A308D3^iw2)
	return uint32(m) ^ uint32(m>>32)
}
