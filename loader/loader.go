// Package loader reads and writes the comma-separated edge-list format:
//
//	SRC, DST, WEIGHT
//
// one edge per line, with arbitrary whitespace around each field. WEIGHT is
// a base-10 integer. Blank lines and lines starting with '#' are ignored.
//
// Parse fails fast on the first bad line; Validate reads the whole input
// and reports every bad line at once.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/pathlab/core"
)

// ErrMalformedInput indicates a line with the wrong field count, an empty
// vertex ID, or a non-integer weight.
var ErrMalformedInput = errors.New("loader: malformed input")

const (
	fieldSep      = ","
	commentPrefix = "#"
	fieldCount    = 3
	maxLineBytes  = 1 << 20
)

// Parse builds a graph from r. The first malformed line aborts the load
// with ErrMalformedInput; a negative weight aborts it with core.ErrInvalidWeight.
// Both are wrapped with the 1-based line number.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	err := scan(r, func(lineNo int, e core.Edge, perr error) error {
		if perr != nil {
			return perr
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// LoadFile opens path and parses it with Parse.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Validate reads all of r and returns a *multierror.Error listing every
// malformed line, or nil if the input is well-formed.
func Validate(r io.Reader) error {
	var result *multierror.Error
	err := scan(r, func(_ int, _ core.Edge, perr error) error {
		if perr != nil {
			result = multierror.Append(result, perr)
		}
		return nil
	})
	if err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// WriteEdgeList writes every edge of g in the format Parse reads, sorted by
// (SRC, DST).
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s, %s, %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// scan calls fn for every non-blank, non-comment line with either the parsed
// edge or the parse error. A non-nil return from fn stops the scan.
func scan(r io.Reader, fn func(lineNo int, e core.Edge, perr error) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
		}
		if ferr := fn(lineNo, e, err); ferr != nil {
			return ferr
		}
	}

	return sc.Err()
}

// parseLine splits one "SRC, DST, WEIGHT" record.
func parseLine(line string) (core.Edge, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != fieldCount {
		return core.Edge{}, fmt.Errorf("%w: want %d fields, got %d in %q", ErrMalformedInput, fieldCount, len(fields), line)
	}
	src := strings.TrimSpace(fields[0])
	dst := strings.TrimSpace(fields[1])
	if src == "" || dst == "" {
		return core.Edge{}, fmt.Errorf("%w: empty vertex in %q", ErrMalformedInput, line)
	}
	w, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: weight %q is not an integer", ErrMalformedInput, strings.TrimSpace(fields[2]))
	}
	if w < 0 {
		return core.Edge{}, fmt.Errorf("%w: %s→%s weight=%d", core.ErrInvalidWeight, src, dst, w)
	}

	return core.Edge{From: src, To: dst, Weight: w}, nil
}
