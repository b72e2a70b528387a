package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkonda/srtedit/internal/engine"
	"github.com/mkonda/srtedit/internal/subtitle"
)

var mergeCmd = &cobra.Command{
	Use:   "merge basefile secondfile [files...]",
	Short: "Merge subtitle files back-to-back on the timeline",
	Long: `Chain two or more subtitle files into one: each subsequent file is
shifted so it starts where the previous file's last subtitle ended,
then everything is renumbered from 1.

The combined document is printed to stdout; the input files are not
modified.

Example:
  srtedit merge part1.srt part2.srt > movie.srt`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	docs := make([]*subtitle.Document, 0, len(args))
	for _, path := range args {
		doc, err := subtitle.Open(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	logger.Infow("Merging files", "files", len(args))

	merged, err := engine.Merge(docs)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), subtitle.Render(merged))
	return nil
}
