package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/loader"
)

type genInput struct {
	seed      int64
	minWeight int64
	maxWeight int64
}

func (in *genInput) options() ([]builder.BuilderOption, error) {
	if in.minWeight < 0 || in.maxWeight < in.minWeight {
		return nil, errors.Errorf("weights must satisfy 0 <= min <= max, got [%d, %d]", in.minWeight, in.maxWeight)
	}
	return []builder.BuilderOption{
		builder.WithSeed(in.seed),
		builder.WithUniformWeight(in.minWeight, in.maxWeight),
	}, nil
}

func newGenCommand() *cobra.Command {
	in := &genInput{}
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a fixture graph as an edge list on stdout",
	}
	flags := genCmd.PersistentFlags()
	flags.Int64Var(&in.seed, "seed", 1, "random seed")
	flags.Int64Var(&in.minWeight, "min-weight", 1, "smallest edge weight")
	flags.Int64Var(&in.maxWeight, "max-weight", 1, "largest edge weight")

	genCmd.AddCommand(
		&cobra.Command{
			Use:   "grid ROWS [COLS]",
			Short: "Rows x cols grid with arcs in both directions",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				rows, err := atoi(args[0])
				if err != nil {
					return err
				}
				cols := rows
				if len(args) == 2 {
					if cols, err = atoi(args[1]); err != nil {
						return err
					}
				}
				return in.emit(cmd, builder.Grid(rows, cols))
			},
		},
		&cobra.Command{
			Use:   "chain N",
			Short: "Path v0 -> v1 -> ... -> v(N-1)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := atoi(args[0])
				if err != nil {
					return err
				}
				return in.emit(cmd, builder.Chain(n))
			},
		},
		&cobra.Command{
			Use:   "planar N",
			Short: "N x N grid, right arcs weighted by column, down arcs by row",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := atoi(args[0])
				if err != nil {
					return err
				}
				return in.emit(cmd, builder.Planar(n))
			},
		},
		&cobra.Command{
			Use:   "random N P",
			Short: "Keep each ordered pair of N vertices with probability P",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := atoi(args[0])
				if err != nil {
					return err
				}
				p, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return errors.Wrapf(err, "probability %q", args[1])
				}
				return in.emit(cmd, builder.RandomSparse(n, p))
			},
		},
	)

	return genCmd
}

func (in *genInput) emit(cmd *cobra.Command, c builder.Constructor) error {
	opts, err := in.options()
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(opts, c)
	if err != nil {
		return errors.Wrap(err, "generate")
	}

	return loader.WriteEdgeList(cmd.OutOrStdout(), g)
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "size %q", s)
	}
	return n, nil
}
