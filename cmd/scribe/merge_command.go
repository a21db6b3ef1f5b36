package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/fileutil"
	"scribe/internal/srt"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:         "merge <existing.srt> <new.srt>",
		Short:       "Merge a new subtitle track into an existing one",
		Long:        "Merges the cues of <new.srt> into <existing.srt>, replacing every existing cue a new cue overlaps. Writes in place unless --output is given.",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			existingPath, nextPath := args[0], args[1]

			existing, err := os.ReadFile(existingPath)
			if err != nil {
				return fmt.Errorf("read existing track: %w", err)
			}
			next, err := os.ReadFile(nextPath)
			if err != nil {
				return fmt.Errorf("read new track: %w", err)
			}

			merged, err := srt.MergeTracks(string(existing), string(next))
			if err != nil {
				return err
			}

			target := strings.TrimSpace(output)
			if target == "" {
				target = existingPath
			}
			data := []byte(merged)
			if len(data) > 0 && data[len(data)-1] != '\n' {
				data = append(data, '\n')
			}
			if err := fileutil.WriteFileAtomic(target, data, 0o644); err != nil {
				return fmt.Errorf("write merged track: %w", err)
			}

			cues, err := srt.Parse(merged)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cues to %s\n", len(cues), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination path (default: overwrite the existing track)")
	return cmd
}
