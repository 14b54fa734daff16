package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Submit once Close has been called.
var ErrClosed = errors.New("workerpool: closed")

// Task is a unit of work run by one worker. Fn must be safe to run
// concurrently with other tasks. ResultC, when set, receives exactly one
// Result and should be buffered.
//
// Fn receives the context the task was submitted with, additionally
// cancelled when the pool closes.
type Task struct {
	Fn      func(ctx context.Context) (any, error)
	ResultC chan Result

	ctx context.Context
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts workerCount workers reading from a queue of queueSize.
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	wp.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.tasks:
			res, err := wp.run(task)
			if task.ResultC != nil {
				task.ResultC <- Result{Value: res, Err: err}
			}
		}
	}
}

// run skips tasks whose submitter gave up while they were queued.
func (wp *WorkerPool) run(task Task) (any, error) {
	if err := task.ctx.Err(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(task.ctx)
	defer cancel()
	stop := context.AfterFunc(wp.ctx, cancel)
	defer stop()
	return task.Fn(ctx)
}

// Submit queues task. It blocks while the queue is full and gives up when
// ctx is done or the pool is closed.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrClosed
	}
	task.ctx = ctx
	select {
	case wp.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return ErrClosed
	}
}

// Close stops the workers and waits for running tasks to return. Queued tasks
// that did not start are dropped.
func (wp *WorkerPool) Close() {
	wp.cancel()
	wp.mu.Lock()
	wp.closed = true
	wp.mu.Unlock()
	wp.wg.Wait()
}
