package subtitle

import (
	"github.com/mkonda/srtedit/internal/timecode"
)

// represents single subtitle entry
type Entry struct {
	Index int
	Start timecode.Timecode
	End   timecode.Timecode
	Text  string
}

// represents a complete subtitle document; entry order is significant and
// defines both serialization order and the timeline order merge assumes
type Document struct {
	Entries []Entry
}

func (d *Document) Len() int {
	return len(d.Entries)
}
