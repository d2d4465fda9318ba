package output

import (
	"fmt"
	"os"
	"path/filepath"

	"modlist-builder/core/modlist"
)

// Artifact is a written output file.
type Artifact struct {
	// Name is the file name, relative to the output directory.
	Name string
	// Path is where the file was written.
	Path string
	// Content is the payload that was written.
	Content []byte
}

// Writer writes build artifacts to the output directory.
type Writer struct {
	cfg Config
}

// NewWriter creates a writer; empty file names fall back to the defaults.
func NewWriter(cfg Config) *Writer {
	return &Writer{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (w *Writer) Config() Config {
	return w.cfg
}

// WriteLists writes the name list and the id list for the ordered items.
// Both payloads are rendered before anything touches the disk. When a write
// fails, the lists already written are removed again.
func (w *Writer) WriteLists(items []modlist.MergedItem) ([]Artifact, error) {
	artifacts := []Artifact{
		{Name: w.cfg.NameListFile, Content: []byte(NameList(items))},
		{Name: w.cfg.IDListFile, Content: []byte(IDList(items))},
	}

	for i := range artifacts {
		if err := w.write(&artifacts[i]); err != nil {
			for _, written := range artifacts[:i] {
				_ = os.Remove(written.Path)
			}
			return nil, err
		}
	}

	return artifacts, nil
}

// WriteReport writes the unmatched entries report.
func (w *Writer) WriteReport(entries []modlist.UnmatchedEntry) (Artifact, error) {
	artifact := Artifact{Name: w.cfg.ReportFile, Content: []byte(UnmatchedReport(entries))}
	if err := w.write(&artifact); err != nil {
		return Artifact{}, err
	}
	return artifact, nil
}

func (w *Writer) write(a *Artifact) error {
	if err := os.MkdirAll(w.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.cfg.Dir, err)
	}

	a.Path = filepath.Join(w.cfg.Dir, a.Name)
	if err := os.WriteFile(a.Path, a.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.Name, err)
	}
	return nil
}
