// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ryancinsight
// Source: github.com/ryancinsight/rlzav

package lzav

// Decompress decompresses a stream into a buffer of exactly opts.OutLen
// bytes. Returns ErrOptionsRequired if opts is nil; the stream must decode
// to exactly OutLen bytes or an error is returned.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, opts.OutLen)
	n, err := DecompressInto(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses src into dst, whose length is the exact
// expected decompressed size, and returns the number of bytes written.
// A stream that ends early, escapes its window, or would write past dst
// returns a sentinel error; partial output up to the fault remains in dst.
func DecompressInto(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrParams
	}
	if len(dst) != 0 && &src[0] == &dst[0] {
		return 0, ErrParams
	}

	prefix := src[0]
	switch prefix >> 4 {
	case fmtCurrent:
		return decompress2(src, dst, int(prefix&15)-1)
	case fmtLegacy:
		return decompressLegacy(src, dst, int(prefix&15)-1)
	}

	return 0, ErrUnknownFormat
}

// DecompressPartial decompresses as much of src into dst as possible and
// returns the number of bytes recovered. It never fails: damaged or
// truncated streams yield the bytes committed before the fault.
func DecompressPartial(src, dst []byte) int {
	n, _ := DecompressInto(src, dst)
	return n
}

// decompress2 is the format-2 block decoder. mref1 is the stream's minimum
// reference length minus one. The loop gate ip < ipet leaves enough slack
// that header, offset and length bytes of any well-formed block can be read
// without per-byte checks; literal payloads are checked explicitly.
func decompress2(src, dst []byte, mref1 int) (int, error) {
	ipe := len(src)
	ipet := ipe - 6
	ope := len(dst)
	ip, op := 1, 0
	cv, csh := 0, 0

	for ip < ipet {
		bh := int(src[ip])

		if bh&0x30 == 0 {
			// Literal block. The header's top bits join the carry register
			// for the next reference.
			ip++
			cc := bh & 15

			if cc == 0 {
				v, n, ok := getLitLen(src, ip, ipe)
				if !ok {
					return op, ErrInputOverrun
				}
				cc = 16 + v
				ip += n
			}

			cv |= bh >> 6 << csh
			csh += 2

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

		// Reference block: reassemble the offset from the header bits, the
		// payload word, and the carry register; the payload's top three
		// bits seed the next carry when the offset field is full width.
		bt := bh >> 4 & 3
		ip++
		o := loadRef(src, ip, bt)
		ip += bt

		d := (bh>>6|int(o&0x1fffff)<<2)<<csh | cv
		cv = int(o >> 21)
		csh = 0
		if bt == 3 {
			csh = 3
		}

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

// getLitLen decodes the extended literal length varint at src[ip:ipe].
// Returns the value, the bytes consumed, and false when the encoding is
// truncated or over-long.
func getLitLen(src []byte, ip, ipe int) (int, int, bool) {
	v, sh, n := 0, 0, 0

	for {
		if ip+n >= ipe {
			return 0, 0, false
		}

		b := int(src[ip+n])
		n++
		v |= (b & 0x7f) << sh

		if b < 0x80 {
			return v, n, true
		}

		sh += 7
		if sh > 28 {
			return 0, 0, false
		}
	}
}
