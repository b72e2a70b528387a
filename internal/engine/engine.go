// Package engine implements the timeline transformations: shifting,
// stretching, synchronizing, merging, renumbering and text substitution.
// Every operation mutates the document(s) it is given and performs no I/O.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkonda/srtedit/internal/subtitle"
	"github.com/mkonda/srtedit/internal/timecode"
)

var (
	// ErrDegenerateSync means the sync target coincides with the anchor,
	// leaving no span to derive a scale factor from.
	ErrDegenerateSync = errors.New("sync target equals anchor")
	// ErrInsufficientInputs means merge was given too few documents, or a
	// document with no entries to chain on.
	ErrInsufficientInputs = errors.New("insufficient merge inputs")
)

// ShiftTime moves every start and end timecode by delta. Results may go
// negative; they serialize with a leading '-'.
func ShiftTime(doc *subtitle.Document, delta timecode.Timecode) {
	for i := range doc.Entries {
		doc.Entries[i].Start = doc.Entries[i].Start.Add(delta)
		doc.Entries[i].End = doc.Entries[i].End.Add(delta)
	}
}

// ScaleTime multiplies every start and end timecode by factor, truncating
// toward zero.
func ScaleTime(doc *subtitle.Document, factor float64) {
	for i := range doc.Entries {
		doc.Entries[i].Start = doc.Entries[i].Start.Scale(factor)
		doc.Entries[i].End = doc.Entries[i].End.Scale(factor)
	}
}

// ShiftIndex adds n to every entry's index.
func ShiftIndex(doc *subtitle.Document, n int) {
	for i := range doc.Entries {
		doc.Entries[i].Index += n
	}
}

// Resize stretches or squeezes the timeline by factor while holding the
// anchor instant fixed.
func Resize(doc *subtitle.Document, anchor timecode.Timecode, factor float64) {
	ShiftTime(doc, anchor.Neg())
	ScaleTime(doc, factor)
	ShiftTime(doc, anchor)
}

// Reindex renumbers entries 1..n in sequence order, discarding the
// original indices.
func Reindex(doc *subtitle.Document) {
	for i := range doc.Entries {
		doc.Entries[i].Index = i + 1
	}
}

// Sync derives the unique linear scale that maps target onto goal while
// holding anchor fixed, then resizes the document by it.
func Sync(doc *subtitle.Document, target, goal, anchor timecode.Timecode) error {
	span := target.Sub(anchor)
	if span.Milliseconds() == 0 {
		return ErrDegenerateSync
	}
	factor := float64(goal.Sub(anchor).Milliseconds()) / float64(span.Milliseconds())
	Resize(doc, anchor, factor)
	return nil
}

// Merge chains documents back-to-back on the timeline: each subsequent
// document is shifted so it starts where the previous one's last entry
// ended, appended to the first, and the combined document is reindexed.
// The first document is mutated and returned; the others are consumed.
func Merge(docs []*subtitle.Document) (*subtitle.Document, error) {
	if len(docs) < 2 {
		return nil, fmt.Errorf("%w: need at least two documents", ErrInsufficientInputs)
	}
	for i, doc := range docs {
		if doc.Len() == 0 {
			return nil, fmt.Errorf("%w: document %d has no entries", ErrInsufficientInputs, i+1)
		}
	}

	base := docs[0]
	offset := base.Entries[base.Len()-1].End
	for _, sub := range docs[1:] {
		ShiftTime(sub, offset)
		base.Entries = append(base.Entries, sub.Entries...)
		offset = sub.Entries[sub.Len()-1].End
	}
	Reindex(base)
	return base, nil
}

// Replace substitutes every literal, non-overlapping occurrence of find in
// each entry's text.
func Replace(doc *subtitle.Document, find, replaceWith string) {
	for i := range doc.Entries {
		doc.Entries[i].Text = strings.ReplaceAll(doc.Entries[i].Text, find, replaceWith)
	}
}
