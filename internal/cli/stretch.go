package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkonda/srtedit/internal/engine"
	"github.com/mkonda/srtedit/internal/subtitle"
)

var stretchCmd = &cobra.Command{
	Use:     "stretch [files...]",
	Aliases: []string{"squeeze"},
	Short:   "Stretch or squeeze timecodes by a factor around an anchor",
	Long: `Multiply all timecodes in the given subtitle file(s) by a factor while
leaving the anchor instant untouched. Factors above 1 stretch the
timeline, factors below 1 squeeze it.

The anchor defaults to 00:00:00,000 (or SRTEDIT_ANCHOR if set).

Examples:
  srtedit stretch --factor 1.042708 movie.srt
  srtedit squeeze --factor 0.95904 --anchor 00:01:00,000 movie.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStretch,
}

func init() {
	rootCmd.AddCommand(stretchCmd)

	stretchCmd.Flags().
		Float64P("factor", "f", 0, "Factor to multiply all timecodes by (required)")
	stretchCmd.Flags().
		StringP("anchor", "a", "", "Timecode that stays fixed (default 00:00:00,000)")
	stretchCmd.MarkFlagRequired("factor")
}

func runStretch(cmd *cobra.Command, args []string) error {
	factor, _ := cmd.Flags().GetFloat64("factor")
	anchor, err := anchorFlag(cmd)
	if err != nil {
		return err
	}

	logger.Infow("Resizing timeline",
		"factor", factor,
		"anchor", anchor.String(),
		"files", len(args),
	)

	return processFiles(args, func(doc *subtitle.Document) error {
		engine.Resize(doc, anchor, factor)
		return nil
	})
}
