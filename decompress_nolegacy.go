//go:build lzav_nolegacy

// SPDX-License-Identifier: MIT
// Source: github.com/ryancinsight/rlzav

package lzav

// decompressLegacy rejects format-1 streams in builds without legacy
// support.
func decompressLegacy(_, _ []byte, _ int) (int, error) {
	return 0, ErrUnknownFormat
}
