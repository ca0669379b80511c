package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"subfix/internal/config"
	"subfix/internal/converter"
	"subfix/internal/errdefs"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var targetDir string
	var fixedName string
	var suffix string
	var fromEncoding string
	var toEncoding string
	var slugLength int
	var sequence bool
	var extensions []string
	var failFast bool

	cmd := &cobra.Command{
		Use:   "batch DIRECTORY",
		Short: "Convert every subtitle file under a directory",
		Long: `Batch walks the directory tree, converts every subtitle file it finds, and
keeps going when individual files fail. Failures are reported together at the
end; already converted files are never removed. Choosing a target directory
or a fixed name switches the run to sequence naming, where each converted
file carries its 1-based position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			source, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			target := targetDir
			if target != "" {
				if target, err = config.ExpandPath(target); err != nil {
					return err
				}
			}

			opts := converter.BatchOptions{
				TargetDir:      target,
				SourceEncoding: fromEncoding,
				TargetEncoding: toEncoding,
				FixedBaseName:  fixedName,
				SequenceNaming: sequence,
				Suffix:         suffix,
				Extensions:     extensions,
				FailFast:       failFast,
			}
			if cmd.Flags().Changed("slug-length") {
				opts.SlugLength = &slugLength
			}

			conv := converter.New(cfg, logger)
			err = conv.ConvertBatch(cmd.Context(), source, opts)

			var batchErr *errdefs.BatchError
			if errors.As(err, &batchErr) {
				out := cmd.ErrOrStderr()
				fmt.Fprintln(out, renderFailureLedger(batchErr, shouldColorize(out)))
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&targetDir, "target-dir", "t", "", "Directory to collect converted files in (forces sequence naming)")
	cmd.Flags().StringVarP(&fixedName, "name", "n", "", "Fixed base name for every converted file (forces sequence naming)")
	cmd.Flags().BoolVar(&sequence, "sequence", false, "Number converted files by their discovery order")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Suffix appended after any sequence number")
	cmd.Flags().StringVar(&fromEncoding, "from", "", "Source encoding for every file (skips detection)")
	cmd.Flags().StringVar(&toEncoding, "to", "", "Target encoding (defaults to the configured one)")
	cmd.Flags().IntVar(&slugLength, "slug-length", 0, "Random slug length used to dodge name collisions (0 disables)")
	cmd.Flags().StringSliceVarP(&extensions, "ext", "e", nil, "Subtitle file extensions to match (defaults to the configured list)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort on the first file that fails instead of collecting failures")
	return cmd
}

// renderFailureLedger lays out per-file batch failures as a table, sorted by
// file path so reruns print the same ledger.
func renderFailureLedger(batchErr *errdefs.BatchError, colorize bool) string {
	files := make([]string, 0, len(batchErr.Failed))
	for file := range batchErr.Failed {
		files = append(files, file)
	}
	sort.Strings(files)

	rows := make([][]string, 0, len(files))
	for _, file := range files {
		rows = append(rows, []string{file, batchErr.Failed[file]})
	}
	return renderTable([]string{"File", "Error"}, rows, colorize)
}
