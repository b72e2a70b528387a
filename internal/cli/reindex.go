package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkonda/srtedit/internal/engine"
	"github.com/mkonda/srtedit/internal/subtitle"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex [files...]",
	Short: "Renumber entries sequentially from 1",
	Long: `Rebuild the index numbers of the given subtitle file(s) sequentially
from 1, ignoring the original indices.

Example:
  srtedit reindex movie.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReindex,
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, args []string) error {
	logger.Infow("Reindexing files", "files", len(args))

	return processFiles(args, func(doc *subtitle.Document) error {
		engine.Reindex(doc)
		return nil
	})
}
