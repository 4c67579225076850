package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Job describes one perft run.
type Job struct {
	FEN   string
	Moves []string // UCI moves played from FEN before counting
	Depth int
}

// Run counts every job in turn and writes the results to cfg.OutputFile.
// The first failing job stops the run.
func Run(ctx context.Context, cfg *config.Config, jobs []Job) error {
	log := cfg.Logger().With("package", "perft")
	w := output.NewWriter(cfg.OutputFile, cfg.Output, len(jobs) > 1)

	for i, job := range jobs {
		res, err := count(ctx, cfg, log, job)
		if err != nil {
			if len(jobs) > 1 {
				return fmt.Errorf("job %d: %w", i+1, err)
			}
			return err
		}
		if err := w.WriteResult(res); err != nil {
			return err
		}
	}
	return w.Close()
}

func count(ctx context.Context, cfg *config.Config, log *slog.Logger, job Job) (*output.Result, error) {
	if err := cfg.Perft.CheckDepth(job.Depth); err != nil {
		return nil, err
	}
	pos, err := startingPosition(cfg, job)
	if err != nil {
		return nil, err
	}

	res := &output.Result{FEN: engine.FormatFEN(pos), Depth: job.Depth}
	if cfg.Perft.Divide {
		res.Divide = make(map[string]uint64)
		res.Order = engine.MoveStrings(engine.LegalMoves(pos))
	}

	start := time.Now()
	res.Nodes, err = engine.ParallelPerft(ctx, pos, job.Depth, cfg.Perft.Workers, func(rc engine.RootCount) {
		log.Debug("root move counted", "move", rc.Move, "nodes", rc.Nodes, "done", rc.Done, "total", rc.Total)
		if res.Divide != nil {
			res.Divide[rc.Move.String()] = rc.Nodes
		}
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	nps := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		nps = float64(res.Nodes) / secs
	}
	log.Info("perft finished", "fen", res.FEN, "depth", job.Depth, "nodes", res.Nodes, "elapsed", elapsed, "nps", int64(nps))
	return res, nil
}

// startingPosition parses the FEN and plays the job's moves on it.
func startingPosition(cfg *config.Config, job Job) (chess.Position, error) {
	pos, err := engine.ParseFEN(job.FEN, cfg.Rules.FENOptions()...)
	if err != nil {
		return chess.Position{}, err
	}
	for _, text := range job.Moves {
		m, err := engine.ParseUCIMove(pos, text)
		if err != nil {
			return chess.Position{}, err
		}
		if err := engine.ApplyInPlace(&pos, m); err != nil {
			return chess.Position{}, err
		}
	}
	return pos, nil
}

// readJobs reads one FEN per line. Blank lines and lines starting with
// '#' are skipped.
func readJobs(r io.Reader, depth int) ([]Job, error) {
	var jobs []Job
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		jobs = append(jobs, Job{FEN: line, Depth: depth})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
