package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/mkonda/srtedit/internal/subtitle"
	"github.com/mkonda/srtedit/internal/timecode"
)

// timecodeFlag reads a required flag and parses it as a timecode literal.
func timecodeFlag(cmd *cobra.Command, name string) (timecode.Timecode, error) {
	value, _ := cmd.Flags().GetString(name)
	tc, err := timecode.Parse(value)
	if err != nil {
		return timecode.Timecode{}, fmt.Errorf("invalid --%s timecode %q: %w", name, value, err)
	}
	return tc, nil
}

// anchorFlag resolves the anchor timecode: --anchor beats SRTEDIT_ANCHOR
// beats 00:00:00,000.
func anchorFlag(cmd *cobra.Command) (timecode.Timecode, error) {
	value, _ := cmd.Flags().GetString("anchor")
	if value == "" {
		value = os.Getenv("SRTEDIT_ANCHOR")
	}
	if value == "" {
		return timecode.FromMilliseconds(0), nil
	}
	tc, err := timecode.Parse(value)
	if err != nil {
		return timecode.Timecode{}, fmt.Errorf("invalid anchor timecode %q: %w", value, err)
	}
	return tc, nil
}

// processFiles applies transform to every named file and rewrites each one
// in place. A failure on one file is reported but does not stop the rest;
// the aggregate error covers every file that failed.
func processFiles(files []string, transform func(*subtitle.Document) error) error {
	var errs error
	for _, path := range files {
		if err := processFile(path, transform); err != nil {
			logger.Errorw("Skipping file", "file", path, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		logger.Infow("Rewrote file", "file", path)
	}
	return errs
}

func processFile(path string, transform func(*subtitle.Document) error) error {
	doc, err := subtitle.Open(path)
	if err != nil {
		return err
	}
	if err := transform(doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := doc.WriteFile(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
