package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/srt"
	"scribe/internal/timecode"
)

const inspectTextLimit = 60

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "inspect <track.srt>",
		Short:       "Parse a subtitle track and print its cues",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read track: %w", err)
			}
			cues, err := srt.Parse(string(data))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(cues) == 0 {
				fmt.Fprintln(out, "Track contains no cues")
				return nil
			}

			rows := make([][]string, 0, len(cues))
			for _, cue := range cues {
				rows = append(rows, []string{
					strconv.Itoa(cue.Index),
					timecode.FormatSeconds(cue.Start),
					timecode.FormatSeconds(cue.End),
					truncateText(cue.Text, inspectTextLimit),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Start", "End", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))

			first, last := srt.Bounds(cues)
			fmt.Fprintf(out, "%d cues, %s - %s\n",
				len(cues), timecode.FormatSeconds(first), timecode.FormatSeconds(last))
			return nil
		},
	}
}

func truncateText(text string, limit int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
