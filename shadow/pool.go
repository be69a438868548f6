package shadow

import "sync"

// bufPool recycles the large float32 working and scratch rasters used by
// Generate and the blur passes. Borrowed slices may be longer than requested
// and carry stale contents from previous uses.
var bufPool = sync.Pool{
	New: func() any {
		return new([]float32)
	},
}

func getBuffer(n int) []float32 {
	buf := bufPool.Get().(*[]float32)
	if cap(*buf) < n {
		*buf = make([]float32, n)
	}
	return (*buf)[:n]
}

func putBuffer(buf []float32) {
	buf = buf[:cap(buf)]
	bufPool.Put(&buf)
}
