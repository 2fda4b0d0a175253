// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ryancinsight
// Source: github.com/ryancinsight/rlzav

package lzav

// mlenMaxHi is the longest reference the high-ratio strategy may emit; the
// smaller minimum reference length shifts the encodable range down by one.
const mlenMaxHi = refLenMax - refMinDefault + refMinHi

// compressHi is the high-ratio match-finder: seven-tuple buckets probed in
// full, plus a cost-weighted lazy parse. ht holds 16-word buckets (seven
// key/offset tuples and a rotating head word); hmask selects a 64-byte
// aligned bucket. Returns the stream length including the prefix byte.
func compressHi(src, dst []byte, ht []uint32, hmask uint32) int {
	for i := range ht {
		ht[i] = 0
	}

	w := blockWriter{dst: dst, op: 1, mref: refMinHi}

	srcl := len(src)
	ipe := srcl - litFin
	ipet := ipe - 9
	ip, ipa := 16, 0

	// Pending lazy match; prc == 0 means none.
	var prc, pd, pip int

	// emit writes the pending literals and the match at pos, extending it
	// backward first, and returns the input position after the match.
	emit := func(pos, rc, d int) int {
		lc := pos - ipa
		wp := pos - d

		if lc != 0 {
			bml := lc
			if bml > 16 {
				bml = 16
			}
			if bml > d-rc {
				bml = d - rc
			}
			if bml > wp {
				bml = wp
			}
			if bml > mlenMaxHi-rc {
				bml = mlenMaxHi - rc
			}

			bmc := matchLenRev(src, pos, wp, bml)
			rc += bmc
			pos -= bmc
			lc -= bmc
		}

		w.writeBlock(src, ipa, lc, rc, d)
		ipa = pos + rc

		return ipa
	}

	for ip < ipet {
		iw1 := loadU32(src, ip)
		bkt := int(hashWords(iw1, uint32(src[ip+4]))&hmask) >> 2
		ipo := uint32(ip)

		mlCap := ipe - ip
		if mlCap > mlenMaxHi {
			mlCap = mlenMaxHi
		}

		// Probe all seven tuples for the longest usable match. An offset
		// past the 18-bit boundary must win by at least one byte: it costs
		// one more offset byte.
		rc, d := 0, 0
		for t := 0; t < 14; t += 2 {
			if ht[bkt+t] != iw1 {
				continue
			}

			wp := int(ht[bkt+t+1])
			cd := ip - wp
			if cd < 8 || cd > winLen-1 {
				continue
			}

			ml := mlCap
			if ml > cd {
				ml = cd
			}

			crc := matchLenFwd(src, ip, wp, ml)

			th := 0
			if cd > 1<<18-1 && d <= 1<<18-1 {
				th = 1
			}

			if crc > rc+th || (crc == rc && cd < d) {
				rc, d = crc, cd
			}
		}

		need := refMinHi
		if d > 1<<18-1 {
			need++
		}

		if rc < need {
			// Miss: the position enters the bucket at a backward-rotated
			// head. Hits leave the bucket alone, which preserves distant
			// entries and lets run matches keep growing. A pending match,
			// if any, waits for its next competitor.
			head := int(ht[bkt+14]+12) % 14
			ht[bkt+14] = uint32(head)
			ht[bkt+head] = iw1
			ht[bkt+head+1] = ipo

			ip++
			continue
		}

		if prc == 0 {
			// First candidate: hold it and look ahead.
			prc, pd, pip = rc, d, ip
			ip++
			continue
		}

		// Weigh the pending match against the current one by estimated
		// block cost.
		pov := blockCost(pip-ipa, pd, w.csh)
		cov := blockCost(ip-ipa, d, w.csh)

		if prc*cov > rc*pov {
			if pip+prc <= ip {
				// The committed match ends before the current candidate,
				// which survives as the new pending match.
				emit(pip, prc, pd)
				prc, pd, pip = rc, d, ip
				ip++
				continue
			}

			ip = emit(pip, prc, pd)
			prc = 0
			continue
		}

		// The current parse is at least as cheap per byte; it becomes the
		// pending match.
		prc, pd, pip = rc, d, ip
		ip++
	}

	if prc != 0 {
		emit(pip, prc, pd)
	}

	w.writeFinal(src, ipa, ipe-ipa+litFin)

	return w.op
}

// blockCost estimates the encoded size of a literal run of lc bytes plus a
// following reference at offset d, given the current carry shift. The
// carry bits absorbed by earlier headers raise the offset thresholds at
// which extra offset bytes appear.
func blockCost(lc, d int, csh uint) int {
	c := lc + 2
	if lc > 0 {
		c++
	}
	if lc > 15 {
		c++
	}

	e := 10
	if csh != 0 {
		e += 3
	}
	if lc > 0 {
		e += 2
	}

	if d >= 1<<e {
		c++
	}
	if d >= 1<<(e+8) {
		c++
	}

	return c
}
