// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: Read/Write of whitespace-separated "from to" edge records.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mkarulin/socgraph/digraph"
)

// Sentinel errors for edge-list I/O.
var (
	// ErrBadRecord indicates a line that is neither blank, a comment, nor a
	// valid "from to" integer pair. It is wrapped with the line number and
	// the underlying cause.
	ErrBadRecord = errors.New("edgelist: malformed edge record")

	// ErrNilGraph indicates a nil *digraph.Graph was passed to Write.
	ErrNilGraph = errors.New("edgelist: graph is nil")
)

// defaultCommentPrefix marks comment lines skipped by Read.
const defaultCommentPrefix = "#"

// Option configures Read behavior.
type Option func(*config)

// config aggregates reader knobs; deterministic defaults, applied in order.
type config struct {
	commentPrefix string
}

// WithComments sets the prefix that marks a line as a comment.
// An empty prefix disables comment skipping entirely.
func WithComments(prefix string) Option {
	return func(c *config) { c.commentPrefix = prefix }
}

// Read parses an edge list from r into a fresh graph.
//
// Each non-blank, non-comment line must hold exactly two integers,
// "from to". Both endpoints are registered before the edge is added, so
// every line grows the graph monotonically; a malformed line aborts with
// ErrBadRecord and the graph built so far is discarded.
// Complexity: O(L) over the number of lines.
func Read(r io.Reader, opts ...Option) (*digraph.Graph, error) {
	cfg := config{commentPrefix: defaultCommentPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := digraph.NewGraph()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if cfg.commentPrefix != "" && strings.HasPrefix(text, cfg.commentPrefix) {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("edgelist: line %d: %d fields: %w", line, len(fields), ErrBadRecord)
		}
		from, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %v: %w", line, err, ErrBadRecord)
		}
		to, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %v: %w", line, err, ErrBadRecord)
		}

		// Register endpoints first; AddEdge's strict precondition then holds.
		g.AddVertex(from)
		g.AddVertex(to)
		if err = g.AddEdge(from, to); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: scan: %w", err)
	}

	return g, nil
}

// ReadFile parses the edge list stored at path. See Read.
func ReadFile(path string, opts ...Option) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Write serializes g to w as one "from to" line per distinct edge, ascending
// by (from, to). Duplicate AddEdge calls collapse on write: the output holds
// each edge once regardless of the source graph's call counter.
// Complexity: O(V log V + E log E).
func Write(w io.Writer, g *digraph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	for _, from := range g.Vertices() {
		targets, err := g.OutNeighbors(from)
		if err != nil {
			return fmt.Errorf("edgelist: OutNeighbors(%d): %w", from, err)
		}
		for _, to := range targets {
			if _, err = fmt.Fprintf(bw, "%d %d\n", from, to); err != nil {
				return fmt.Errorf("edgelist: write: %w", err)
			}
		}
	}

	return bw.Flush()
}
