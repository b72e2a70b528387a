package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkonda/srtedit/internal/engine"
	"github.com/mkonda/srtedit/internal/subtitle"
)

var replaceCmd = &cobra.Command{
	Use:   "replace [files...]",
	Short: "Replace a literal string in subtitle text",
	Long: `Replace every occurrence of a string with another string in the text
of the given subtitle file(s). Matching is literal, not regex.

Examples:
  srtedit replace --find "colour" --replace-with "color" movie.srt
  srtedit replace --find "[inaudible]" --replace-with "" movie.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplace,
}

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().
		StringP("find", "f", "", "String to search for (required)")
	replaceCmd.Flags().
		StringP("replace-with", "r", "", "String to replace it with (required)")
	replaceCmd.MarkFlagRequired("find")
	replaceCmd.MarkFlagRequired("replace-with")
}

func runReplace(cmd *cobra.Command, args []string) error {
	find, _ := cmd.Flags().GetString("find")
	replaceWith, _ := cmd.Flags().GetString("replace-with")

	logger.Infow("Replacing text",
		"find", find,
		"replace_with", replaceWith,
		"files", len(args),
	)

	return processFiles(args, func(doc *subtitle.Document) error {
		engine.Replace(doc, find, replaceWith)
		return nil
	})
}
