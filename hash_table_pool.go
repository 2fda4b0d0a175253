// SPDX-License-Identifier: MIT
// Source: github.com/ryancinsight/rlzav

package lzav

import "sync"

// hashTablePool recycles compressor scratch tables across calls. The
// compressors fully initialize the region they use, so recycled contents
// never influence output bytes.
var hashTablePool = sync.Pool{
	New: func() any {
		s := make([]uint32, htSizeMin/4)
		return &s
	},
}

// acquireHashTable returns a pooled table of at least words entries.
func acquireHashTable(words int) *[]uint32 {
	p := hashTablePool.Get().(*[]uint32)
	if cap(*p) < words {
		*p = make([]uint32, words)
	}
	*p = (*p)[:words]

	return p
}

// releaseHashTable returns a table to the pool.
func releaseHashTable(p *[]uint32) {
	hashTablePool.Put(p)
}
