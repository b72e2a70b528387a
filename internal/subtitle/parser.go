package subtitle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkonda/srtedit/internal/timecode"
)

// ParseError reports a grammar violation in a subtitle document. Block is
// the 1-based number of the offending blank-line-delimited block, or 0 when
// the document as a whole is unusable.
type ParseError struct {
	Block int
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Block == 0 {
		return e.Msg
	}
	if e.Err != nil {
		return fmt.Sprintf("block %d: %s: %v", e.Block, e.Msg, e.Err)
	}
	return fmt.Sprintf("block %d: %s", e.Block, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a full SubRip document. Entries are blank-line-delimited
// blocks of the form
//
//	INDEX
//	START --> END
//	TEXT...
//
// where TEXT is zero or more lines. CRLF line endings are normalized to
// LF before splitting. The document must contain at least one block, and
// every block must be well-formed; there is no recovery.
func Parse(raw string) (*Document, error) {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &ParseError{Msg: "document contains no entries"}
	}

	blocks := strings.Split(raw, "\n\n")
	doc := &Document{Entries: make([]Entry, 0, len(blocks))}

	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			return nil, &ParseError{
				Block: i + 1,
				Msg:   "entry needs an index line and a timestamp line",
			}
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			return nil, &ParseError{
				Block: i + 1,
				Msg:   fmt.Sprintf("invalid index %q", lines[0]),
			}
		}

		startRaw, endRaw, ok := strings.Cut(lines[1], "-->")
		if !ok {
			return nil, &ParseError{
				Block: i + 1,
				Msg:   fmt.Sprintf("timestamp line %q has no \"-->\"", lines[1]),
			}
		}
		start, err := timecode.Parse(strings.TrimSpace(startRaw))
		if err != nil {
			return nil, &ParseError{Block: i + 1, Msg: "invalid start timecode", Err: err}
		}
		end, err := timecode.Parse(strings.TrimSpace(endRaw))
		if err != nil {
			return nil, &ParseError{Block: i + 1, Msg: "invalid end timecode", Err: err}
		}

		doc.Entries = append(doc.Entries, Entry{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(lines[2:], "\n"),
		})
	}

	return doc, nil
}
