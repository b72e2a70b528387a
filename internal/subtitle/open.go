package subtitle

import (
	"fmt"
	"os"
)

// Open reads and parses a subtitle file. File access lives here so the
// parser itself stays free of I/O.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteFile replaces the file at path with the rendered document.
func (d *Document) WriteFile(path string) error {
	return os.WriteFile(path, []byte(Render(d)), 0644)
}
