// Package cli wires pathlab's command tree.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/internal/config"
	"github.com/katalvlaran/pathlab/loader"
)

// stdinPath makes commands read the edge list from standard input.
const stdinPath = "-"

// Input holds the global flags.
type Input struct {
	graphPath  string
	configPath string
	verbose    bool
	strategy   string
	maxRounds  int
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	ctx   context.Context
	input *Input
	cfg   *config.Config
	log   *logrus.Entry
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the full command tree.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	a := &app{ctx: ctx, input: &Input{}}

	rootCmd := &cobra.Command{
		Use:               "pathlab",
		Short:             "Shortest paths and reachability over weighted edge lists.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.input.graphPath, "graph", "g", "", "edge-list file (SRC, DST, WEIGHT per line), - for stdin")
	flags.StringVar(&a.input.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+config.RelPath+")")
	flags.BoolVarP(&a.input.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&a.input.strategy, "strategy", "", "frontier strategy: incremental, rescan or declarative")
	flags.IntVar(&a.input.maxRounds, "max-rounds", 0, "stop a search after this many settled vertices (0 = no limit)")

	rootCmd.AddCommand(
		a.newPathCommand(),
		a.newReachCommand(),
		a.newStatsCommand(),
		a.newDotCommand(),
		a.newCheckCommand(),
		newGenCommand(),
	)

	return rootCmd
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.input.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), a.input, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(cfg.Level())
	a.log = logger.WithField("query", uuid.New().String())
	a.log.WithFields(logrus.Fields{
		"strategy":   cfg.Strategy,
		"max_rounds": cfg.MaxRounds,
	}).Debug("configuration loaded")

	return nil
}

// applyFlags copies explicitly set flags over the file configuration.
func applyFlags(flags *pflag.FlagSet, in *Input, cfg *config.Config) {
	if flags.Changed("graph") {
		cfg.Graph = in.graphPath
	}
	if flags.Changed("strategy") {
		cfg.Strategy = in.strategy
	}
	if flags.Changed("max-rounds") {
		cfg.MaxRounds = in.maxRounds
	}
	if in.verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
}

// loadGraph reads and freezes the configured graph.
func (a *app) loadGraph(cmd *cobra.Command) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	switch a.cfg.Graph {
	case "":
		return nil, errors.New("no graph file: use --graph or set graph in the config file")
	case stdinPath:
		g, err = loader.Parse(cmd.InOrStdin())
	default:
		g, err = loader.LoadFile(a.cfg.Graph)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load graph")
	}
	g.Freeze()
	a.log.WithFields(logrus.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Debug("graph loaded")

	return g, nil
}

// solverOptions translates the configuration into dijkstra options.
func (a *app) solverOptions() []dijkstra.Option {
	return []dijkstra.Option{
		dijkstra.WithContext(a.ctx),
		dijkstra.WithStrategy(a.cfg.SolverStrategy()),
		dijkstra.WithMaxRounds(a.cfg.MaxRounds),
		dijkstra.WithLogger(a.log),
	}
}

// openInput returns the reader for a path, honoring "-" for stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == stdinPath {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}
