package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkonda/srtedit/internal/engine"
	"github.com/mkonda/srtedit/internal/subtitle"
)

var shiftbyCmd = &cobra.Command{
	Use:   "shiftby [files...]",
	Short: "Shift timecodes by a literal duration",
	Long: `Shift all timecodes in the given subtitle file(s) by a duration given
in SRT timecode format. A leading '-' shifts backwards.

Examples:
  srtedit shiftby --by 00:00:02,500 movie.srt
  srtedit shiftby --by -- -00:00:02,500 movie.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShiftby,
}

func init() {
	rootCmd.AddCommand(shiftbyCmd)

	shiftbyCmd.Flags().
		StringP("by", "b", "", "Duration to shift by, in SRT timecode format (required)")
	shiftbyCmd.MarkFlagRequired("by")
}

func runShiftby(cmd *cobra.Command, args []string) error {
	by, err := timecodeFlag(cmd, "by")
	if err != nil {
		return err
	}

	logger.Infow("Shifting timecodes", "by", by.String(), "files", len(args))

	return processFiles(args, func(doc *subtitle.Document) error {
		engine.ShiftTime(doc, by)
		return nil
	})
}
