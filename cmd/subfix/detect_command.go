package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subfix/internal/config"
	"subfix/internal/detect"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect FILE...",
		Short: "Report the detected encoding of subtitle files",
		Long: `Detect runs the encoding classifier on each file and shows the raw verdict
alongside the encoding a conversion would actually use, after applying the
configured confidence threshold and fallback.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			oracle := detect.NewOracle(nil, cfg.Conversion.ConfidenceThreshold, cfg.Conversion.FallbackEncoding, logger)

			rows := make([][]string, 0, len(args))
			for _, arg := range args {
				path, err := config.ExpandPath(arg)
				if err != nil {
					return err
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %q: %w", path, err)
				}
				label, confidence := oracle.Detect(data)
				if label == "" {
					label = "(none)"
				}
				decision, err := oracle.Resolve(path)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					path,
					label,
					fmt.Sprintf("%.2f", confidence),
					decision,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Detected", "Confidence", "Decision"},
				rows,
				shouldColorize(out),
			))
			return nil
		},
	}
	return cmd
}
