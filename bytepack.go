// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ryancinsight
// Source: github.com/ryancinsight/rlzav

package lzav

import "encoding/binary"

// Little-endian word access over unaligned byte positions. The on-wire
// format is fixed little-endian regardless of host.

func loadU16(b []byte, pos int) uint32 {
	return uint32(binary.LittleEndian.Uint16(b[pos:]))
}

func loadU32(b []byte, pos int) uint32 {
	return binary.LittleEndian.Uint32(b[pos:])
}

func loadU64(b []byte, pos int) uint64 {
	return binary.LittleEndian.Uint64(b[pos:])
}

// storeRef writes the low 1+n bytes of the packed reference word w at
// b[pos:]. n is the offset byte count, 1 to 3; only the bytes the block
// actually occupies are touched.
func storeRef(b []byte, pos int, w uint32, n int) {
	b[pos] = byte(w)
	b[pos+1] = byte(w >> 8)
	if n > 1 {
		b[pos+2] = byte(w >> 16)
	}
	if n > 2 {
		b[pos+3] = byte(w >> 24)
	}
}

// loadRef reads n offset bytes (1 to 3) at b[pos:] as a little-endian word.
// The caller guarantees pos+n is in bounds.
func loadRef(b []byte, pos, n int) uint32 {
	o := uint32(b[pos])
	if n > 1 {
		o |= uint32(b[pos+1]) << 8
	}
	if n > 2 {
		o |= uint32(b[pos+2]) << 16
	}
	return o
}
