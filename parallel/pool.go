package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool runs queued tasks on a fixed set of workers. With a single worker the
// pool degenerates to inline execution.
type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for {
					f, ok := <-workChan
					if !ok {
						return
					}
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

// For splits n units of work into contiguous [start, end) chunks, runs fn on
// up to numWorkers goroutines and blocks until every chunk has finished.
// Chunks never overlap, so fn may write to disjoint memory without locking.
// numWorkers < 1 means one worker per available CPU.
func For(numWorkers, n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > n {
		numWorkers = n
	}

	if numWorkers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Go(func() {
			fn(start, end)
		})
	}
	wg.Wait()
}
