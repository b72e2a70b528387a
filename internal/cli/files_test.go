package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mkonda/srtedit/internal/engine"
	"github.com/mkonda/srtedit/internal/logging"
	"github.com/mkonda/srtedit/internal/subtitle"
	"github.com/mkonda/srtedit/internal/timecode"
)

func init() {
	// commands normally get this from the root PersistentPreRun
	logger = logging.NewLogger(false)
}

func newFlagCmd(name, value string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String(name, "", "")
	cmd.Flags().Set(name, value)
	return cmd
}

func TestTimecodeFlag(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"00:00:02,500", 2500, false},
		{"-00:00:02,500", -2500, false},
		{"90", 90000, false},
		{"00:00:00,0000", 0, true},
		{"", 0, true},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cmd := newFlagCmd("by", tt.value)
			tc, err := timecodeFlag(cmd, "by")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("timecodeFlag(%q) succeeded, want error", tt.value)
				}
				if !errors.Is(err, timecode.ErrInvalidTimestring) {
					t.Errorf("error should wrap ErrInvalidTimestring, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("timecodeFlag(%q) returned error: %v", tt.value, err)
			}
			if tc.Milliseconds() != tt.want {
				t.Errorf("timecodeFlag(%q) = %d ms, want %d", tt.value, tc.Milliseconds(), tt.want)
			}
		})
	}
}

func TestAnchorFlagDefaults(t *testing.T) {
	cmd := newFlagCmd("anchor", "")

	anchor, err := anchorFlag(cmd)
	if err != nil {
		t.Fatalf("anchorFlag returned error: %v", err)
	}
	if anchor.Milliseconds() != 0 {
		t.Errorf("default anchor = %d ms, want 0", anchor.Milliseconds())
	}

	t.Setenv("SRTEDIT_ANCHOR", "00:00:05,000")
	anchor, err = anchorFlag(cmd)
	if err != nil {
		t.Fatalf("anchorFlag returned error: %v", err)
	}
	if anchor.Milliseconds() != 5000 {
		t.Errorf("env anchor = %d ms, want 5000", anchor.Milliseconds())
	}

	// an explicit flag beats the environment
	cmd = newFlagCmd("anchor", "00:00:01,000")
	anchor, err = anchorFlag(cmd)
	if err != nil {
		t.Fatalf("anchorFlag returned error: %v", err)
	}
	if anchor.Milliseconds() != 1000 {
		t.Errorf("flag anchor = %d ms, want 1000", anchor.Milliseconds())
	}
}

func TestProcessFilesRewritesInPlace(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "movie.srt")
	content := "1\n00:00:01,000 --> 00:00:02,000\nHello."
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	err := processFiles([]string{path}, func(doc *subtitle.Document) error {
		engine.ShiftTime(doc, timecode.FromMilliseconds(500))
		return nil
	})
	if err != nil {
		t.Fatalf("processFiles returned error: %v", err)
	}

	doc, err := subtitle.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if got := doc.Entries[0].Start.Milliseconds(); got != 1500 {
		t.Errorf("start = %d ms, want 1500", got)
	}
}

func TestProcessFilesContinuesPastBadFile(t *testing.T) {
	tmpDir := t.TempDir()

	badPath := filepath.Join(tmpDir, "bad.srt")
	if err := os.WriteFile(badPath, []byte("not a subtitle"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	goodPath := filepath.Join(tmpDir, "good.srt")
	content := "1\n00:00:01,000 --> 00:00:02,000\nHello."
	if err := os.WriteFile(goodPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	err := processFiles([]string{badPath, goodPath}, func(doc *subtitle.Document) error {
		engine.Reindex(doc)
		engine.ShiftTime(doc, timecode.FromMilliseconds(1000))
		return nil
	})
	if err == nil {
		t.Fatal("expected aggregate error for the bad file")
	}

	var perr *subtitle.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("aggregate error should contain a *ParseError, got %v", err)
	}

	// the good file must still have been processed
	doc, openErr := subtitle.Open(goodPath)
	if openErr != nil {
		t.Fatalf("reopen failed: %v", openErr)
	}
	if got := doc.Entries[0].Start.Milliseconds(); got != 2000 {
		t.Errorf("good file start = %d ms, want 2000", got)
	}
}
