// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ryancinsight
// Source: github.com/ryancinsight/rlzav

package lzav

import "math/bits"

// matchLenFwd returns the number of leading bytes at which src[p1:] and
// src[p2:] agree, at most ml. The caller guarantees p1+ml and p2+ml are in
// bounds.
func matchLenFwd(src []byte, p1, p2, ml int) int {
	n := 0

	for ml-n >= 8 {
		x := loadU64(src, p1+n) ^ loadU64(src, p2+n)
		if x != 0 {
			return n + bits.TrailingZeros64(x)>>3
		}

		n += 8
	}

	if ml-n >= 4 {
		x := loadU32(src, p1+n) ^ loadU32(src, p2+n)
		if x != 0 {
			return n + bits.TrailingZeros32(x)>>3
		}

		n += 4
	}

	for n < ml && src[p1+n] == src[p2+n] {
		n++
	}

	return n
}

// matchLenRev returns the number of bytes at which the ranges ending at
// src[p1] and src[p2] agree, walking backward, at most ml. The caller
// guarantees p1-ml and p2-ml are non-negative. The range is small (the
// back-extension cap), so a byte loop suffices.
func matchLenRev(src []byte, p1, p2, ml int) int {
	n := 0

	for n < ml && src[p1-n-1] == src[p2-n-1] {
		n++
	}

	return n
}
