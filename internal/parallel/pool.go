// Package parallel provides a bounded worker pool used to fan out the
// independent clause-pair resolutions of one saturation round.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrShutdown is returned when submitting to a pool that has been shut down.
var ErrShutdown = errors.New("pool has been shut down")

// Pool runs submitted tasks on a fixed number of goroutines. The task
// channel is buffered but bounded, so submission applies backpressure
// instead of queueing an entire round at once.
type Pool struct {
	tasks    chan func()
	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewPool starts a pool of the given number of workers. If workers is zero
// or negative, one worker per CPU is started.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := Pool{
		tasks:    make(chan func(), 2*workers),
		shutdown: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return &p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		case <-p.shutdown:
			return
		}
	}
}

// Submit queues task for execution, blocking while every worker is busy and
// the queue is full.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdown:
		return ErrShutdown
	}
}

// Shutdown stops the workers. It is safe to call more than once. Tasks still
// sitting in the queue are dropped.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdown)
		p.wg.Wait()
	})
}
