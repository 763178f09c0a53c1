package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/export"
	"github.com/katalvlaran/pathlab/reach"
)

const pathSep = " -> "

func (a *app) newPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path SRC DST",
		Short: "Print the shortest distance and route from SRC to DST",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			res, err := dijkstra.ShortestPath(g, args[0], args[1], a.solverOptions()...)
			if errors.Is(err, dijkstra.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "no path from %s to %s\n", args[0], args[1])
				return nil
			}
			if err != nil {
				return errors.Wrap(err, "shortest path")
			}
			a.log.WithField("rounds", res.Rounds).Debug("search finished")
			fmt.Fprintf(cmd.OutOrStdout(), "distance: %d\npath: %s\n", res.Distance, strings.Join(res.Path, pathSep))

			return nil
		},
	}
}

func (a *app) newReachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reach SRC",
		Short: "List every vertex reachable from SRC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			set, err := reach.ReachableFrom(g, args[0],
				reach.WithContext(a.ctx),
				reach.WithOnRound(func(round, added int) {
					a.log.WithFields(logrus.Fields{"round": round, "added": added}).Debug("reach round")
				}),
			)
			if err != nil {
				return errors.Wrap(err, "reachability")
			}
			for _, id := range set.Sorted() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}
}

func (a *app) newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print vertex and edge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "vertices: %d\nedges: %d\nsources: %d\n",
				g.VertexCount(), g.EdgeCount(), len(g.Sources()))

			return nil
		},
	}
}

func (a *app) newDotCommand() *cobra.Command {
	var highlight []string
	var name string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the graph as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			opts := []export.Option{export.WithName(name)}
			if len(highlight) > 0 {
				if len(highlight) != 2 {
					return errors.Errorf("--highlight wants SRC,DST, got %d values", len(highlight))
				}
				res, err := dijkstra.ShortestPath(g, highlight[0], highlight[1], a.solverOptions()...)
				switch {
				case errors.Is(err, dijkstra.ErrNotFound):
					a.log.Warnf("no path from %s to %s, nothing highlighted", highlight[0], highlight[1])
				case err != nil:
					return errors.Wrap(err, "shortest path")
				default:
					opts = append(opts, export.WithHighlight(res.Path))
				}
			}

			return export.WriteDOT(cmd.OutOrStdout(), g, opts...)
		},
	}
	cmd.Flags().StringSliceVar(&highlight, "highlight", nil, "highlight the shortest path SRC,DST")
	cmd.Flags().StringVar(&name, "name", "", "digraph name")

	return cmd
}
