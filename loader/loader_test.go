package loader_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/loader"
)

const triangle = `A, B, 1
  B ,C,2

# direct edge
A,   C ,  4
`

func TestParse_TrimsAndSkips(t *testing.T) {
	g, err := loader.Parse(strings.NewReader(triangle))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 4},
		{From: "B", To: "C", Weight: 2},
	}, g.Edges())
	// C appears only as a destination
	assert.Equal(t, []string{"A", "B"}, g.Sources())
	assert.Equal(t, 3, g.VertexCount())
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"too few fields":  "A, B\n",
		"too many fields": "A, B, 1, 2\n",
		"float weight":    "A, B, 1.5\n",
		"word weight":     "A, B, heavy\n",
		"empty source":    " , B, 1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := loader.Parse(strings.NewReader("X, Y, 1\n" + in))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, loader.ErrMalformedInput)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestParse_NegativeWeight(t *testing.T) {
	_, err := loader.Parse(strings.NewReader("A, B, -1\n"))
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.NotErrorIs(t, err, loader.ErrMalformedInput)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	in := "A, B, 1\nA, B\nB, C, x\nC, D, -3\nD, E, 2\n"
	err := loader.Validate(strings.NewReader(in))
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)
	assert.ErrorIs(t, merr.Errors[0], loader.ErrMalformedInput)
	assert.ErrorIs(t, merr.Errors[1], loader.ErrMalformedInput)
	assert.ErrorIs(t, merr.Errors[2], core.ErrInvalidWeight)
	assert.Contains(t, merr.Errors[2].Error(), "line 4")

	assert.NoError(t, loader.Validate(strings.NewReader(triangle)))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.csv")
	require.NoError(t, os.WriteFile(path, []byte(triangle), 0o644))

	g, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())

	_, err = loader.LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteEdgeList_RoundTrip(t *testing.T) {
	g, err := loader.Parse(strings.NewReader(triangle))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.WriteEdgeList(&buf, g))
	assert.Equal(t, "A, B, 1\nA, C, 4\nB, C, 2\n", buf.String())

	again, err := loader.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), again.Edges())
}
