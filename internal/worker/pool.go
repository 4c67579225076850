// Package worker runs perft subtree counts on a fixed set of goroutines.
package worker

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is one root-move subtree: the position reached after Move,
// to be counted to Depth plies.
type WorkItem struct {
	Position chess.Position
	Move     chess.Move
	Depth    int
	Index    int // Root move index for tracking
}

// ProcessResult is the leaf count of one subtree. Err is set when the
// count panicked.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Err   error
}

// ProcessFunc counts one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool hands work items to a fixed number of goroutines and collects
// their results on one channel.
type Pool struct {
	workers   int
	queueSize int
	items     chan WorkItem
	results   chan ProcessResult
	count     ProcessFunc
	wg        sync.WaitGroup
	stopped   atomic.Bool
	skipped   atomic.Int64 // items dropped after Stop
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.queueSize = size
		}
	}
}

// New creates a pool that counts items with count. It defaults to one
// worker and room for 32 queued items, enough for the root moves of most
// positions.
func New(count ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers:   1,
		queueSize: 32,
		count:     count,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.queueSize)
	p.results = make(chan ProcessResult, p.queueSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for item := range p.items {
		if p.stopped.Load() {
			p.skipped.Add(1)
			continue
		}
		p.results <- p.process(item)
	}
}

// process calls count, turning a panic into the result's Err so one bad
// subtree cannot take down the worker.
func (p *Pool) process(item WorkItem) (res ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			res = ProcessResult{Move: item.Move, Index: item.Index, Err: panicError(r)}
		}
	}()
	return p.count(item)
}

func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("worker panic: %v", r)
}

// Submit queues an item, blocking while the queue is full. It returns
// false without queueing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.items <- item
	return true
}

// Stop makes workers drop items they have not started.
// Subtrees already being counted run to completion.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close ends the queue and waits for the workers, then closes the result
// channel. Results must be drained concurrently when more items than the
// buffer size were submitted.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results arrive on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
