package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amseln/gravl/core"
)

var (
	// ErrEmptyInput is returned when the input holds no non-blank lines.
	ErrEmptyInput = errors.New("graphio: empty input")

	// ErrBadHeader is returned when the first non-blank line is not a
	// positive vertex count.
	ErrBadHeader = errors.New("graphio: bad header line")

	// ErrBadEdgeLine is returned for a malformed or out-of-range edge
	// line; the wrapping message carries the line number.
	ErrBadEdgeLine = errors.New("graphio: bad edge line")
)

// Option configures parsing.
type Option func(*Options)

// Options holds configurable parsing parameters.
type Options struct {
	// Directed reads every edge line as an arc u → v instead of an
	// undirected edge.
	Directed bool
}

// DefaultOptions returns Options for undirected parsing.
func DefaultOptions() Options { return Options{} }

// WithDirected makes the parsed graph directed.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// Parse reads the edge-list format from r and builds a graph.
//
// The header line gives the vertex count n; vertices 1..n are created
// up-front, so isolated vertices survive a file with no edge lines. The
// first edge line decides weightedness for the whole file (3 columns ⇒
// weighted). Core validation errors (self-loops, endpoints outside 1..n)
// surface wrapped in ErrBadEdgeLine with the line number.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	n, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	records, weighted, err := parseEdgeLines(lines[1:], n)
	if err != nil {
		return nil, err
	}

	gOpts := []core.GraphOption{core.WithDirected(cfg.Directed)}
	if weighted {
		gOpts = append(gOpts, core.WithWeighted())
	}
	g := core.NewGraph(gOpts...)
	for id := core.VertexID(1); id <= core.VertexID(n); id++ {
		if err = g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphio: vertex %d: %w", id, err)
		}
	}
	for _, rec := range records {
		if _, err = g.AddEdge(rec.u, rec.v, rec.w); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %v: %w", rec.line, err, ErrBadEdgeLine)
		}
	}

	return g, nil
}

// ParseString is a convenience wrapper over Parse for in-memory input.
func ParseString(s string, opts ...Option) (*core.Graph, error) {
	return Parse(strings.NewReader(s), opts...)
}

// numberedLine pairs a content line with its 1-based position in the
// input, for error reporting after blank lines are dropped.
type numberedLine struct {
	no   int
	text string
}

// edgeRecord is one parsed edge line awaiting insertion.
type edgeRecord struct {
	line int
	u, v core.VertexID
	w    int64
}

// scanLines collects non-blank, non-comment lines with their original
// line numbers.
func scanLines(r io.Reader) ([]numberedLine, error) {
	var lines []numberedLine
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, numberedLine{no: no, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return lines, nil
}

// parseHeader validates the vertex-count line.
func parseHeader(l numberedLine) (int, error) {
	n, err := strconv.Atoi(l.text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("graphio: line %d: %q: %w", l.no, l.text, ErrBadHeader)
	}

	return n, nil
}

// parseEdgeLines converts the remaining lines into edge records. The
// first line's column count (2 or 3) binds the rest of the file; the
// third column is the weight.
func parseEdgeLines(lines []numberedLine, n int) ([]edgeRecord, bool, error) {
	records := make([]edgeRecord, 0, len(lines))
	columns := 0
	for _, l := range lines {
		fields := strings.Fields(l.text)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, false, badLine(l, "want 2 or 3 columns")
		}
		if columns == 0 {
			columns = len(fields)
		}
		if len(fields) != columns {
			return nil, false, badLine(l, fmt.Sprintf("want %d columns as on the first edge line", columns))
		}

		u, err := parseEndpoint(fields[0], n)
		if err != nil {
			return nil, false, badLine(l, err.Error())
		}
		v, err := parseEndpoint(fields[1], n)
		if err != nil {
			return nil, false, badLine(l, err.Error())
		}

		rec := edgeRecord{line: l.no, u: u, v: v}
		if columns == 3 {
			if rec.w, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
				return nil, false, badLine(l, fmt.Sprintf("weight %q", fields[2]))
			}
		}
		records = append(records, rec)
	}

	return records, columns == 3, nil
}

// parseEndpoint parses a vertex reference and range-checks it against the
// header count.
func parseEndpoint(s string, n int) (core.VertexID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("endpoint %q", s)
	}
	if id < 1 || id > int64(n) {
		return 0, fmt.Errorf("endpoint %d outside 1..%d", id, n)
	}

	return id, nil
}

// badLine wraps ErrBadEdgeLine with location and cause.
func badLine(l numberedLine, cause string) error {
	return fmt.Errorf("graphio: line %d: %q: %s: %w", l.no, l.text, cause, ErrBadEdgeLine)
}
