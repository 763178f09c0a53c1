package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodChain      = "Chain"
	minChainVertices = 2
)

// Chain returns a Constructor for the directed path idFn(0)→idFn(1)→…→idFn(n-1).
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainVertices, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodChain, g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
