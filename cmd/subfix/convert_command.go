package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subfix/internal/config"
	"subfix/internal/converter"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var targetDir string
	var baseName string
	var suffix string
	var fromEncoding string
	var toEncoding string
	var slugLength int

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a single subtitle file",
		Long: `Convert re-encodes one subtitle file and writes the result to a path that
does not exist yet. Without --target-dir the converted file lands next to the
original, disambiguated by a random slug; a slug length of zero makes any
collision an error instead.`,
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

			conv := converter.New(cfg, logger)
			written, err := conv.ConvertFile(cmd.Context(), source, converter.Request{
				TargetDir:      target,
				TargetBaseName: baseName,
				Suffix:         suffix,
				SourceEncoding: fromEncoding,
				TargetEncoding: toEncoding,
				SlugLength:     slugLength,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %s -> %s\n", source, written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetDir, "target-dir", "t", "", "Directory to write the converted file to")
	cmd.Flags().StringVarP(&baseName, "name", "n", "", "Base name for the converted file")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Suffix inserted before the file extension")
	cmd.Flags().StringVar(&fromEncoding, "from", "", "Source encoding (skips detection)")
	cmd.Flags().StringVar(&toEncoding, "to", "", "Target encoding (defaults to the configured one)")
	// Converting in place always collides with the source file itself, so a
	// slug is required unless the caller redirects the output.
	cmd.Flags().IntVar(&slugLength, "slug-length", 3, "Random slug length used to dodge name collisions (0 disables)")
	return cmd
}
