// Package output provides perft result formatting as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Result is one perft count.
type Result struct {
	FEN    string            `json:"fen"`
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`

	// Order lists the Divide keys in move generation order.
	Order []string `json:"-"`
}

// ResultWriter is the interface for writing perft results to output.
// Different implementations handle different output formats.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(res *Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg. batch collects JSON
// results into one document instead of writing each as it arrives.
func NewWriter(w io.Writer, cfg *config.OutputConfig, batch bool) ResultWriter {
	switch {
	case !cfg.JSONFormat:
		return NewTextWriter(w, cfg)
	case batch:
		return NewJSONWriter(w)
	default:
		return NewJSONWriterSingle(w)
	}
}

// TextWriter writes results as plain text, one "move: nodes" line per
// divide entry followed by the total.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteResult writes a result immediately.
func (tw *TextWriter) WriteResult(res *Result) error {
	if tw.cfg.ShowFEN {
		if _, err := fmt.Fprintf(tw.w, "FEN: %s\n", res.FEN); err != nil {
			return err
		}
	}
	if res.Divide != nil {
		for _, k := range tw.divideOrder(res) {
			if _, err := fmt.Fprintf(tw.w, "%s: %d\n", k, res.Divide[k]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(tw.w, "Nodes: %d\n", res.Nodes)
	return err
}

func (tw *TextWriter) divideOrder(res *Result) []string {
	if !tw.cfg.SortDivide && len(res.Order) == len(res.Divide) {
		return res.Order
	}
	keys := make([]string, 0, len(res.Divide))
	for k := range res.Divide {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*Result `json:"results"`
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []*Result
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]*Result, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(res *Result) error {
	if jw.single {
		return jw.encode(res)
	}
	jw.results = append(jw.results, res)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Results: jw.results})
	jw.results = jw.results[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
