package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scribe/internal/pipeline"
	"scribe/internal/preflight"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		checkpoints string
		segments    string
		languageArg string
		output      string
		workDir     string
		mergeFlag   bool
		keepWork    bool
	)

	cmd := &cobra.Command{
		Use:   "generate <media-file>",
		Short: "Transcribe a media file and write an SRT subtitle track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if err := preflight.FirstFailure(preflight.RunAll(cfg)); err != nil {
				return err
			}

			p, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}
			defer p.Close()

			started := time.Now()
			result, err := p.Run(cmd.Context(), pipeline.Request{
				Source:      args[0],
				Output:      output,
				Checkpoints: checkpoints,
				Segments:    segments,
				Language:    languageArg,
				Merge:       mergeFlag,
				WorkDir:     workDir,
				KeepWork:    keepWork,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d cues to %s (%d chunks, %d cache hits, merged: %s)\n",
				result.CueCount, result.OutputPath, result.ChunkCount, result.CacheHits, yesNo(result.Merged))
			fmt.Fprintf(out, "Total execution time: %s\n", formatElapsed(time.Since(started)))
			return nil
		},
	}

	cmd.Flags().StringVar(&checkpoints, "checkpoints", "", "Chunk boundaries: interval (e.g. 10m) or comma-separated hh:mm:ss list")
	cmd.Flags().StringVar(&segments, "segments", "", "Explicit spans to transcribe (start-end pairs, comma-separated)")
	cmd.Flags().StringVarP(&languageArg, "language", "l", "", "Language hint for the transcriber (overrides config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output .srt path or directory (default: alongside the source)")
	cmd.Flags().BoolVar(&mergeFlag, "merge", false, "Merge generated cues into an existing output track")
	cmd.Flags().StringVar(&workDir, "work-dir", "", "Working directory override for chunk artifacts")
	cmd.Flags().BoolVar(&keepWork, "keep-work", false, "Keep the per-run working directory")

	return cmd
}

// formatElapsed renders a duration as a plain hours/minutes/seconds sentence.
func formatElapsed(d time.Duration) string {
	total := int64(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%d hours, %d minutes, %d seconds", hours, minutes, seconds)
}
