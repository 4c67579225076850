package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func testConfig(t *testing.T, out io.Writer) *config.Config {
	t.Helper()
	cfg, err := config.NewConfigBuilder().
		WithOutput(out).
		WithLog(io.Discard).
		WithWorkers(2).
		WithMaxPerftDepth(4).
		Build()
	testutil.AssertNoError(t, err)
	return cfg
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		job   Job
		nodes string
	}{
		{"start depth 1", Job{FEN: engine.StartFEN, Depth: 1}, "Nodes: 20\n"},
		{"start depth 3", Job{FEN: engine.StartFEN, Depth: 3}, "Nodes: 8902\n"},
		{"after moves", Job{FEN: engine.StartFEN, Moves: []string{"e2e4", "e7e5"}, Depth: 1}, "Nodes: 29\n"},
		{"position 3", Job{FEN: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Depth: 2}, "Nodes: 191\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			testutil.AssertNoError(t, Run(context.Background(), testConfig(t, &out), []Job{tt.job}))
			testutil.AssertEqual(t, out.String(), tt.nodes)
		})
	}
}

func TestRun_Divide(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, &out)
	cfg.Perft.Divide = true
	cfg.Output.ShowFEN = true

	testutil.AssertNoError(t, Run(context.Background(), cfg, []Job{{FEN: engine.StartFEN, Depth: 2}}))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	testutil.AssertEqual(t, lines[0], "FEN: "+engine.StartFEN)
	testutil.AssertEqual(t, lines[1], "a2a3: 20")
	testutil.AssertEqual(t, len(lines), 1+20+2)
	testutil.AssertEqual(t, lines[len(lines)-1], "Nodes: 400")
}

func TestRun_DivideGenerationOrder(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, &out)
	cfg.Perft.Divide = true
	cfg.Output.SortDivide = false

	fen := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	testutil.AssertNoError(t, Run(context.Background(), cfg, []Job{{FEN: fen, Depth: 1}}))

	roots := engine.MoveStrings(engine.LegalMoves(engine.MustParseFEN(fen)))
	lines := strings.Split(out.String(), "\n")
	for i, m := range roots {
		testutil.AssertEqual(t, lines[i], m+": 1")
	}
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, &out)
	cfg.Perft.Divide = true
	cfg.Output.JSONFormat = true

	testutil.AssertNoError(t, Run(context.Background(), cfg, []Job{{FEN: engine.StartFEN, Depth: 2}}))

	var res output.Result
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &res))
	testutil.AssertEqual(t, res.Nodes, uint64(400))
	testutil.AssertEqual(t, res.Depth, 2)
	testutil.AssertEqual(t, res.FEN, engine.StartFEN)
	testutil.AssertEqual(t, res.Divide["g1f3"], uint64(20))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want error
	}{
		{"zero depth", Job{FEN: engine.StartFEN, Depth: 0}, errors.ErrInvalidDepth},
		{"above max depth", Job{FEN: engine.StartFEN, Depth: 5}, errors.ErrInvalidDepth},
		{"bad FEN", Job{FEN: "8/8/8 w - - 0 1", Depth: 1}, errors.ErrInvalidFEN},
		{"halfmove over bound", Job{FEN: "4k3/8/8/8/8/8/8/4K3 w - - 60 80", Depth: 1}, errors.ErrInvalidFEN},
		{"illegal move", Job{FEN: engine.StartFEN, Moves: []string{"e2e5"}, Depth: 1}, errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(context.Background(), testConfig(t, &out), []Job{tt.job})
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertEqual(t, out.Len(), 0)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, testConfig(t, &out), []Job{{FEN: engine.StartFEN, Depth: 3}})
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestRun_LenientClocks(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, &out)
	cfg.Rules.LenientClocks = true

	err := Run(context.Background(), cfg, []Job{{FEN: "4k3/8/8/8/8/8/8/4K3 w - - 60 10", Depth: 1}})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), "Nodes: 5\n")
}

func TestRun_Batch(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, &out)
	cfg.Output.JSONFormat = true

	jobs := []Job{
		{FEN: engine.StartFEN, Depth: 1},
		{FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", Depth: 1},
	}
	testutil.AssertNoError(t, Run(context.Background(), cfg, jobs))

	var doc output.JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &doc))
	testutil.AssertEqual(t, len(doc.Results), 2)
	testutil.AssertEqual(t, doc.Results[0].Nodes, uint64(20))
	testutil.AssertEqual(t, doc.Results[1].Nodes, uint64(48))
}

func TestRun_BatchStopsAtFirstError(t *testing.T) {
	var out bytes.Buffer
	jobs := []Job{
		{FEN: engine.StartFEN, Depth: 1},
		{FEN: "not a fen", Depth: 1},
		{FEN: engine.StartFEN, Depth: 1},
	}
	err := Run(context.Background(), testConfig(t, &out), jobs)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertContains(t, err.Error(), "job 2")
}

func TestReadJobs(t *testing.T) {
	input := `# perft suite
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1

  8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1
`
	jobs, err := readJobs(strings.NewReader(input), 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, jobs, []Job{
		{FEN: engine.StartFEN, Depth: 3},
		{FEN: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Depth: 3},
	})
}
