package cli

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mkonda/srtedit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtedit",
	Short: "Edit timing in SubRip subtitle files",
	Long: `Srtedit rewrites the timeline of SubRip (.srt) subtitle files.

It can shift all timecodes, stretch or squeeze the timeline around an
anchor, synchronize one instant onto another, merge several files
back-to-back, renumber entries, and substitute text.

Files are rewritten in place. An optional .env file in the working
directory may set SRTEDIT_VERBOSE and SRTEDIT_ANCHOR defaults.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if !verbose {
			if v, err := strconv.ParseBool(os.Getenv("SRTEDIT_VERBOSE")); err == nil {
				verbose = v
			}
		}
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
