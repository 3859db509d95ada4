package mandel

import (
	"runtime"
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Executor runs the render engine over a set of disjoint bands and returns
// once every band has been filled. Band output ranges never overlap, so
// backends need no locking and all of them produce identical bytes; the
// choice of backend is a performance knob only.
//
// A panic inside a band render is fatal to the whole render: there is no
// partial-result recovery.
type Executor interface {
	Execute(bands []Band, limit int)
}

// SeqExecutor renders the bands one after another on the calling goroutine.
type SeqExecutor struct{}

func (SeqExecutor) Execute(bands []Band, limit int) {
	for _, bd := range bands {
		bd.Render(limit)
	}
}

// GoExecutor spawns one goroutine per band and joins them all before
// returning.
type GoExecutor struct{}

func (GoExecutor) Execute(bands []Band, limit int) {
	var wg sync.WaitGroup
	wg.Add(len(bands))

	for _, bd := range bands {
		go func() {
			defer wg.Done()
			bd.Render(limit)
		}()
	}

	wg.Wait()
}

// StealingExecutor distributes bands over a persistent work-stealing pool.
// Workers grab one band at a time from a shared atomic counter, which
// balances load when bands differ in cost: interior-heavy bands iterate to
// the limit on every pixel while exterior bands escape almost immediately.
type StealingExecutor struct {
	pool *workerpool.Pool
}

// NewStealingExecutor creates an executor backed by a pool with the given
// number of workers. If workers <= 0, GOMAXPROCS is used. The pool persists
// across renders; call Close when the executor is no longer needed.
func NewStealingExecutor(workers int) *StealingExecutor {
	pool := workerpool.New(workers)
	Logger().Debug("stealing executor started", "workers", pool.NumWorkers())
	return &StealingExecutor{pool: pool}
}

func (e *StealingExecutor) Execute(bands []Band, limit int) {
	e.pool.ParallelForAtomic(len(bands), func(i int) {
		bands[i].Render(limit)
	})
}

// Close shuts down the executor's worker pool.
func (e *StealingExecutor) Close() {
	e.pool.Close()
}

// RenderParallel splits pixels into one band per worker and runs ex over
// them, blocking until the full image has been rendered with DefaultLimit
// iterations per point. workers <= 0 means GOMAXPROCS.
func RenderParallel(pixels []byte, b Bounds, vp Viewport, workers int, ex Executor) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bands := SplitBands(pixels, b, vp, workers)
	Logger().Debug("rendering bands",
		"width", b.Width, "height", b.Height, "bands", len(bands), "workers", workers)

	ex.Execute(bands, DefaultLimit)
}
