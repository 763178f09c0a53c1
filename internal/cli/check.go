package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/loader"
)

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Validate an edge-list file and report every malformed line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Graph
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no graph file: pass FILE or use --graph")
			}
			in, err := openInput(cmd, path)
			if err != nil {
				return errors.Wrap(err, "check")
			}
			defer in.Close()

			err = loader.Validate(in)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				return nil
			}
			var merr *multierror.Error
			if !errors.As(err, &merr) {
				return err
			}
			for _, e := range merr.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, e)
			}

			return errors.Errorf("%s: %d problem(s)", path, len(merr.Errors))
		},
	}
}
