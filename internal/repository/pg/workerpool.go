package pg

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/grocito/grocito/internal/model"
)

// WorkerPool - bounded fan-out for the payment status checks. The pool can
// be paused for a while when the gateway rate-limits us.
type WorkerPool struct {
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	numWorkers int

	pauseMu   sync.Mutex
	pauseCond *sync.Cond
	paused    bool
}

func NewWorkerPool() *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	wp := &WorkerPool{
		ctx:        ctx,
		cancel:     cancel,
		numWorkers: runtime.NumCPU(),
	}

	wp.pauseCond = sync.NewCond(&wp.pauseMu)

	return wp
}

// process - runs fn over the batch with numWorkers workers and waits for
// the whole batch to finish.
func (wp *WorkerPool) process(orders []model.Order, fn func(ctx context.Context, order model.Order)) {
	jobs := make(chan model.Order, wp.numWorkers)

	wp.wg.Add(wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		go func() {
			defer wp.wg.Done()
			for order := range jobs {
				if wp.ctx.Err() != nil {
					return
				}
				fn(wp.ctx, order)
			}
		}()
	}

	for _, order := range orders {
		jobs <- order
	}
	close(jobs)

	wp.wg.Wait()
}

func (wp *WorkerPool) shutdown() {
	wp.cancel()
	wp.resumePool() // unblock anyone waiting on the pause cond
	wp.wg.Wait()
}

func (wp *WorkerPool) pausePoolWithTimer(duration time.Duration) {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	if wp.paused {
		return
	}

	wp.paused = true

	go func() {
		time.Sleep(duration)
		wp.resumePool()
	}()
}

func (wp *WorkerPool) resumePool() {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	if !wp.paused {
		return
	}

	wp.paused = false

	wp.pauseCond.Broadcast()
}
