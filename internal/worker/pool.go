package worker

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

const (
	TASK_CHAN_SIZE = 100
)

var ErrPoolStopped = errors.New("worker pool stopped")

type WorkerFunction = func(t *tomb.Tomb, task any) error

// WorkerPool runs a fixed number of workers draining a shared task channel.
// Workers live under a tomb: a worker error kills the tomb, and a dying tomb
// stops every worker.
type WorkerPool struct {
	n         int             // number of workers
	tasks     chan any        // pending tasks
	dying     <-chan struct{} // closed when the owning tomb starts dying
	closeOnce sync.Once
}

func NewWorkerPool(size uint) *WorkerPool {
	return &WorkerPool{
		n:     max(int(size), 1),
		tasks: make(chan any, TASK_CHAN_SIZE),
	}
}

// Setup starts the workers on t. It must be called once, before AddTask.
func (pool *WorkerPool) Setup(t *tomb.Tomb, work WorkerFunction) {
	pool.dying = t.Dying()
	for id := range pool.n {
		t.Go(func() error {
			return pool.worker(t, id, work)
		})
	}
}

// AddTask queues a task, blocking while the queue is full. It gives up once
// the tomb is dying. AddTask must not be called after Close.
func (pool *WorkerPool) AddTask(task any) error {
	select {
	case <-pool.dying:
		return ErrPoolStopped
	default:
	}

	select {
	case pool.tasks <- task:
		return nil
	case <-pool.dying:
		return ErrPoolStopped
	}
}

// Close stops intake. Workers finish the queued tasks and then exit, which
// lets the tomb die cleanly.
func (pool *WorkerPool) Close() {
	pool.closeOnce.Do(func() {
		close(pool.tasks)
	})
}

// Workers wait on tasks in the task pool and action them.
func (pool *WorkerPool) worker(t *tomb.Tomb, id int, work WorkerFunction) error {
	for {
		select {
		case <-t.Dying():
			return nil
		case task, ok := <-pool.tasks:
			if !ok {
				return nil
			}
			if err := work(t, task); err != nil {
				log.Error().Err(err).Int("id", id).Msg("worker exiting")
				return err
			}
		}
	}
}
