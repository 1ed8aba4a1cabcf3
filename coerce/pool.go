package coerce

import (
	"runtime"
	"sync"

	"github.com/theoremus-urban-solutions/tabwrite/frame"
)

// Frame renders every column of f. Columns are distributed over a worker
// pool of opt.Threads goroutines; results land in a slice indexed by column
// position, so the output is byte-identical regardless of the degree.
func Frame(f *frame.Frame, opt Options) []Result {
	ncols := f.NumCols()
	out := make([]Result, ncols)

	threads := opt.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > ncols {
		threads = ncols
	}
	if threads <= 1 {
		for i := 0; i < ncols; i++ {
			out[i] = Column(f.Col(i), opt)
		}
		return out
	}

	jobs := make(chan int, ncols)
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = Column(f.Col(i), opt)
			}
		}()
	}
	for i := 0; i < ncols; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}
