// Package export renders a core.Graph as Graphviz DOT text so external
// tools (dot, neato, …) can draw it. Nothing here lays out or rasterizes;
// the package only iterates core.Graph.Edges.
//
// Output shape:
//
//	digraph "name" {
//	  "A" -> "B" [label="1"];
//	  "B" -> "C" [label="2", color="red", penwidth=2];
//	}
//
// Edges are emitted in core.Graph.Edges order, so output is deterministic.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathlab/core"
)

const (
	defaultName     = "G"
	highlightColor  = "red"
	highlightWeight = 2
)

// idEscaper escapes the only two bytes special inside a DOT quoted string.
// Everything else, control characters included, is written as is.
var idEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + idEscaper.Replace(s) + `"`
}

// Option configures WriteDOT.
type Option func(*options)

type options struct {
	name      string
	highlight map[[2]string]struct{}
}

// WithName sets the digraph name. An empty name keeps the default "G".
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithHighlight colours every edge between consecutive vertices of path.
func WithHighlight(path []string) Option {
	return func(o *options) {
		for i := 1; i < len(path); i++ {
			o.highlight[[2]string{path[i-1], path[i]}] = struct{}{}
		}
	}
}

// WriteDOT writes g to w in DOT syntax.
func WriteDOT(w io.Writer, g *core.Graph, opts ...Option) error {
	o := options{name: defaultName, highlight: make(map[[2]string]struct{})}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", quote(o.name))
	for _, e := range g.Edges() {
		attrs := "label=" + quote(strconv.FormatInt(e.Weight, 10))
		if _, ok := o.highlight[[2]string{e.From, e.To}]; ok {
			attrs += fmt.Sprintf(", color=%q, penwidth=%d", highlightColor, highlightWeight)
		}
		fmt.Fprintf(bw, "  %s -> %s [%s];\n", quote(e.From), quote(e.To), attrs)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
