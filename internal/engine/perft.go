package engine

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of pos to depth plies.
// A depth below 1 is rejected with ErrInvalidDepth.
//
// Children are produced through the checked Apply. A generated move that
// Apply rejects means the generator and the applier disagree, which is a
// defect; Perft panics with an *errors.InternalError in that case.
func Perft(pos chess.Position, depth int) (uint64, error) {
	if depth < 1 {
		return 0, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", depth)
	}
	return perft(pos, depth), nil
}

func perft(pos chess.Position, depth int) uint64 {
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		nodes += perft(child(pos, m), depth-1)
	}
	return nodes
}

// child applies a generated move, panicking if Apply disagrees with the
// generator.
func child(pos chess.Position, m chess.Move) chess.Position {
	next, err := Apply(pos, m)
	if err != nil {
		panic(&errors.InternalError{
			Op:     "perft",
			Detail: fmt.Sprintf("generated move %s rejected in %s: %v", m, FormatFEN(pos), err),
		})
	}
	return next
}

// subtreeNodes counts the leaves below a root move; depth is the number of
// plies remaining after the root move.
func subtreeNodes(pos chess.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	return perft(pos, depth)
}

// PerftDivide returns the perft count below each root move, keyed by the
// move in UCI notation. The values sum to Perft(pos, depth).
func PerftDivide(pos chess.Position, depth int) (map[string]uint64, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", depth)
	}

	moves := LegalMoves(pos)
	divide := make(map[string]uint64, len(moves))
	for _, m := range moves {
		divide[m.String()] = subtreeNodes(child(pos, m), depth-1)
	}
	return divide, nil
}

// RootCount reports one finished root-move subtree of a ParallelPerft run.
type RootCount struct {
	Move  chess.Move
	Nodes uint64
	Done  int // Subtrees finished so far, including this one
	Total int // Number of root moves
}

// ProgressFunc receives a RootCount each time a root subtree finishes.
// It is called from the goroutine that called ParallelPerft.
type ProgressFunc func(RootCount)

// ParallelPerft is Perft with the root moves counted concurrently on a
// worker pool. workers below 1 means a single worker. progress may be nil.
//
// Cancellation is checked between subtrees: a cancelled ctx stops workers
// from starting further root moves and ctx.Err() is returned.
func ParallelPerft(ctx context.Context, pos chess.Position, depth, workers int, progress ProgressFunc) (uint64, error) {
	if depth < 1 {
		return 0, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", depth)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	roots := LegalMoves(pos)
	if len(roots) == 0 {
		return 0, nil
	}

	// The buffers hold every root move, so workers never block on results
	// even after the caller has stopped reading.
	pool := worker.New(subtreeCounter,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(roots)),
	)
	pool.Start()
	for i, m := range roots {
		pool.Submit(worker.WorkItem{
			Position: child(pos, m),
			Move:     m,
			Depth:    depth - 1,
			Index:    i,
		})
	}
	go pool.Close()

	var nodes uint64
	done := 0
	for done < len(roots) {
		select {
		case <-ctx.Done():
			pool.Stop()
			return 0, ctx.Err()
		case res := <-pool.Results():
			if res.Err != nil {
				pool.Stop()
				// Re-raise worker defects on the caller's goroutine.
				panic(res.Err)
			}
			done++
			nodes += res.Nodes
			if progress != nil {
				progress(RootCount{Move: res.Move, Nodes: res.Nodes, Done: done, Total: len(roots)})
			}
		}
	}
	return nodes, nil
}

// subtreeCounter is the ProcessFunc ParallelPerft hands to its pool.
var subtreeCounter worker.ProcessFunc = countSubtree

// countSubtree counts one root subtree. The pool recovers an InternalError
// panic from subtreeNodes into the result's Err.
func countSubtree(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: subtreeNodes(item.Position, item.Depth),
	}
}
