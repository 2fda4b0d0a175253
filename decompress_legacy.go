//go:build !lzav_nolegacy

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ryancinsight
// Source: github.com/ryancinsight/rlzav

package lzav

// decompressLegacy decodes format-1 streams. The machine matches format 2
// with a narrower carry channel: only literal headers lend bits (two, not
// accumulated), and the widest offset field is 24 bits with no carry
// extraction from the payload.
func decompressLegacy(src, dst []byte, mref1 int) (int, error) {
	ipe := len(src)
	ipet := ipe - 6
	ope := len(dst)
	ip, op := 1, 0
	cv, csh := 0, 0

	for ip < ipet {
		bh := int(src[ip])

		if bh&0x30 == 0 {
			ip++
			cc := bh & 15

			if cc == 0 {
				b := int(src[ip])
				ip++
				cc = 16 + b

				if b == 255 {
					cc += int(src[ip])
					ip++
				}
			}

			cv = bh >> 6
			csh = 2

			if ip+cc > ipe {
				return op, ErrInputOverrun
			}
			if op+cc > ope {
				return op, ErrOutputOverrun
			}

			copy(dst[op:op+cc], src[ip:ip+cc])
			ip += cc
			op += cc

			continue
		}

		bt := bh >> 4 & 3
		ip++
		o := loadRef(src, ip, bt)
		ip += bt

		d := (bh>>6|int(o&0x3fffff)<<2)<<csh | cv
		cv, csh = 0, 0

		cc := bh & 15
		if cc != 0 {
			cc += mref1
		} else {
			b := int(src[ip])
			ip++

			if b == 255 {
				cc = 16 + mref1 + 255 + int(src[ip])
				ip++
			} else {
				cc = 16 + mref1 + b
			}
		}

		if d < 1 || d > op {
			return op, ErrLookBehindUnderrun
		}
		if op+cc > ope {
			return op, ErrOutputOverrun
		}

		copyBackRef(dst, op, d, cc)
		op += cc
	}

	if op != ope {
		return op, ErrUnexpectedEOF
	}

	return op, nil
}
