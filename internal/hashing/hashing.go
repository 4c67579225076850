// Package hashing provides Zobrist position keys and repetition counting.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PositionSignature identifies a position for repetition purposes.
type PositionSignature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash is a placement-only hash for collision checks
	WeakHash uint32
}

// SignatureOf returns the signature of pos.
func SignatureOf(pos chess.Position) PositionSignature {
	return PositionSignature{Hash: GenerateZobristHash(pos), WeakHash: WeakHash(pos)}
}

// RepetitionTracker counts how often each position has occurred in a game.
// It is not safe for concurrent use; callers serialize access.
type RepetitionTracker struct {
	// counts stores occurrences per Zobrist key, one entry per distinct
	// weak hash to tolerate key collisions
	counts map[uint64][]signatureCount
}

type signatureCount struct {
	sig   PositionSignature
	count int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64][]signatureCount)}
}

// Record adds one occurrence of pos and returns its new count.
func (r *RepetitionTracker) Record(pos chess.Position) int {
	sig := SignatureOf(pos)
	entries := r.counts[sig.Hash]
	for i := range entries {
		if entries[i].sig == sig {
			entries[i].count++
			return entries[i].count
		}
	}
	r.counts[sig.Hash] = append(entries, signatureCount{sig: sig, count: 1})
	return 1
}

// Forget removes one occurrence of pos, undoing a Record.
func (r *RepetitionTracker) Forget(pos chess.Position) {
	sig := SignatureOf(pos)
	entries := r.counts[sig.Hash]
	for i := range entries {
		if entries[i].sig != sig {
			continue
		}
		entries[i].count--
		if entries[i].count <= 0 {
			entries = append(entries[:i], entries[i+1:]...)
		}
		break
	}
	if len(entries) == 0 {
		delete(r.counts, sig.Hash)
	} else {
		r.counts[sig.Hash] = entries
	}
}

// Count returns how many times pos has been recorded.
func (r *RepetitionTracker) Count(pos chess.Position) int {
	sig := SignatureOf(pos)
	for _, e := range r.counts[sig.Hash] {
		if e.sig == sig {
			return e.count
		}
	}
	return 0
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTracker) UniqueCount() int {
	count := 0
	for _, entries := range r.counts {
		count += len(entries)
	}
	return count
}

// Reset clears the tracker.
func (r *RepetitionTracker) Reset() {
	r.counts = make(map[uint64][]signatureCount)
}
