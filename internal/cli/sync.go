package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkonda/srtedit/internal/engine"
	"github.com/mkonda/srtedit/internal/subtitle"
)

var syncCmd = &cobra.Command{
	Use:   "sync [files...]",
	Short: "Stretch so that --target lands on --goal, anchored",
	Long: `Derive the linear stretch that maps the --target instant onto the
--goal instant while holding the anchor fixed, and apply it to the
given subtitle file(s).

The anchor defaults to 00:00:00,000 (or SRTEDIT_ANCHOR if set). The
target must differ from the anchor.

Examples:
  srtedit sync --target 01:32:40,000 --goal 01:30:00,000 movie.srt
  srtedit sync --target 01:32:40,000 --goal 01:30:00,000 --anchor 00:00:30,000 movie.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().
		StringP("target", "t", "", "Source timecode (required)")
	syncCmd.Flags().
		StringP("goal", "g", "", "Destination timecode (required)")
	syncCmd.Flags().
		StringP("anchor", "a", "", "Timecode that stays fixed (default 00:00:00,000)")
	syncCmd.MarkFlagRequired("target")
	syncCmd.MarkFlagRequired("goal")
}

func runSync(cmd *cobra.Command, args []string) error {
	target, err := timecodeFlag(cmd, "target")
	if err != nil {
		return err
	}
	goal, err := timecodeFlag(cmd, "goal")
	if err != nil {
		return err
	}
	anchor, err := anchorFlag(cmd)
	if err != nil {
		return err
	}

	logger.Infow("Synchronizing timeline",
		"target", target.String(),
		"goal", goal.String(),
		"anchor", anchor.String(),
		"files", len(args),
	)

	return processFiles(args, func(doc *subtitle.Document) error {
		return engine.Sync(doc, target, goal, anchor)
	})
}
