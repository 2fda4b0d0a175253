// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ryancinsight
// Source: github.com/ryancinsight/rlzav

package lzav

// compressDefault is the fast match-finder. ht holds two-tuple buckets of
// four words: key 1, offset 1, key 2, offset 2. hmask selects a 16-byte
// aligned bucket. Returns the stream length including the prefix byte,
// which the caller has already written.
func compressDefault(src, dst []byte, ht []uint32, hmask uint32) int {
	srcl := len(src)

	// Point every tuple at input byte 16 so back-extension can never walk
	// before the source start.
	initKey := uint32(0)
	if srcl > 19 {
		initKey = loadU32(src, 16)
	}
	for i := 0; i < len(ht); i += 2 {
		ht[i], ht[i+1] = initKey, 16
	}

	w := blockWriter{dst: dst, op: 1, mref: refMinDefault}

	ipe := srcl - litFin
	ipet := ipe - 9
	ip, ipa := 16, 0
	mavg := mavgInit
	rndb := 0

	for ip < ipet {
		iw1 := loadU32(src, ip)
		iw2 := loadU16(src, ip+4)
		bkt := int(hashWords(iw1, iw2)&hmask) >> 2
		ipo := uint32(ip)

		wp := -1
		if ht[bkt] == iw1 {
			wp = int(ht[bkt+1])
		} else if ht[bkt+2] == iw1 {
			wp = int(ht[bkt+3])
		}

		if wp >= 0 && loadU16(src, wp+4) == iw2 {
			d := ip - wp
			if d < 8 || d > winLen-1 {
				// Tiny offsets replace fewer literals than they cost.
				ip++
				continue
			}

			// Capping the match at d keeps references free of
			// self-overlap, so the decoder's straight copy is valid.
			ml := d
			if ml > refLenMax {
				ml = refLenMax
			}
			if ml > ipe-ip {
				ml = ipe - ip
			}

			rc := refMinDefault + matchLenFwd(src, ip+refMinDefault, wp+refMinDefault, ml-refMinDefault)

			lc := ip - ipa
			if lc != 0 {
				// Consume pending literals by extending the match
				// backward.
				bml := lc
				if bml > 16 {
					bml = 16
				}
				if bml > ml-rc {
					bml = ml - rc
				}

				bmc := matchLenRev(src, ip, wp, bml)
				rc += bmc
				ip -= bmc
				lc -= bmc
			}

			w.writeBlock(src, ipa, lc, rc, d)
			ip += rc
			ipa = ip
			mavg += (rc<<21 - mavg) >> 10

			if d > promoteDist {
				// One-step LRU; nearer offsets keep the stored position so
				// run matches can keep doubling.
				ht[bkt+2], ht[bkt+3] = ht[bkt], ht[bkt+1]
				ht[bkt], ht[bkt+1] = iw1, ipo
			}

			continue
		}

		// Miss: tuple 2 takes the new position, and the match-rate average
		// decays.
		ht[bkt+2], ht[bkt+3] = iw1, ipo
		mavg -= mavg >> 11

		if mavg < mavgSkip1 && ip != ipa {
			// Dither over low-yield regions, gradually faster.
			ip += 1 + rndb
			rndb = int(ipo) & 1

			if mavg < mavgSkip2 {
				ip++

				if mavg < mavgSkip3 {
					ip += 100 - mavg>>14
				}
			}
		}

		ip++
	}

	w.writeFinal(src, ipa, ipe-ipa+litFin)

	return w.op
}
