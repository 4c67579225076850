package main

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestMaxDepthDefault(t *testing.T) {
	f := flag.Lookup("max-depth")
	if f == nil {
		t.Fatal("max-depth flag not registered")
	}
	testutil.AssertEqual(t, f.DefValue, strconv.Itoa(config.NewPerftConfig().MaxDepth))
}

// setFlag points a flag variable at value for the duration of the test.
func setFlag(t *testing.T, p *string, value string) {
	t.Helper()
	saved := *p
	*p = value
	t.Cleanup(func() { *p = saved })
}

func TestBuildConfigClosesFiles(t *testing.T) {
	dir := t.TempDir()
	setFlag(t, outputFile, filepath.Join(dir, "out.txt"))
	setFlag(t, logFile, filepath.Join(dir, "run.log"))

	cfg, closeFiles, err := buildConfig()
	testutil.AssertNoError(t, err)

	out, ok := cfg.OutputFile.(*os.File)
	testutil.AssertTrue(t, ok, "output writer is %T", cfg.OutputFile)
	log, ok := cfg.LogFile.(*os.File)
	testutil.AssertTrue(t, ok, "log writer is %T", cfg.LogFile)

	_, err = out.WriteString("20\n")
	testutil.AssertNoError(t, err, "write before close")

	closeFiles()

	_, err = out.WriteString("x")
	testutil.AssertErrorIs(t, err, os.ErrClosed, "output file left open")
	_, err = log.WriteString("x")
	testutil.AssertErrorIs(t, err, os.ErrClosed, "log file left open")

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(data), "20\n")
}

func TestBuildConfigLogFileErrorClosesOutput(t *testing.T) {
	dir := t.TempDir()
	setFlag(t, outputFile, filepath.Join(dir, "out.txt"))
	setFlag(t, logFile, filepath.Join(dir, "missing", "run.log"))

	_, closeFiles, err := buildConfig()
	if err == nil {
		t.Fatal("buildConfig() succeeded with an uncreatable log file")
	}
	testutil.AssertTrue(t, closeFiles == nil, "cleanup returned alongside an error")
	testutil.AssertContains(t, err.Error(), "creating log file")
}
