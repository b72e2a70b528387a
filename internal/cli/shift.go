package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkonda/srtedit/internal/engine"
	"github.com/mkonda/srtedit/internal/subtitle"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [files...]",
	Short: "Shift timecodes so that --target lands on --to",
	Long: `Shift all timecodes in the given subtitle file(s) by the difference
between --to and --target.

Examples:
  srtedit shift --target 00:01:30,000 --to 00:01:27,500 movie.srt
  srtedit shift --target 00:01:30,000 --to 00:01:27,500 part1.srt part2.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		String("target", "", "Timecode to move (required)")
	shiftCmd.Flags().
		StringP("to", "t", "", "Timecode the target is moved onto (required)")
	shiftCmd.MarkFlagRequired("target")
	shiftCmd.MarkFlagRequired("to")
}

func runShift(cmd *cobra.Command, args []string) error {
	target, err := timecodeFlag(cmd, "target")
	if err != nil {
		return err
	}
	to, err := timecodeFlag(cmd, "to")
	if err != nil {
		return err
	}

	delta := to.Sub(target)
	logger.Infow("Shifting timecodes",
		"target", target.String(),
		"to", to.String(),
		"by", delta.String(),
		"files", len(args),
	)

	return processFiles(args, func(doc *subtitle.Document) error {
		engine.ShiftTime(doc, delta)
		return nil
	})
}
