package main

import (
	"fmt"
	"os"
	"path/filepath"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// ReviewWriter dumps a markdown snapshot of each newly suggested page so
// curators can vet suggestions without visiting the live site.
type ReviewWriter struct {
	dir       string
	converter *md.Converter
}

// NewReviewWriter creates a writer targeting the given directory.
func NewReviewWriter(dir string) *ReviewWriter {
	return &ReviewWriter{
		dir:       dir,
		converter: md.NewConverter("", true, nil),
	}
}

// Write converts the fetched markup to markdown and saves it as <dir>/<id>.md.
// Best-effort: callers log failures and continue.
func (w *ReviewWriter) Write(entry Platform, markup string) (string, error) {
	markdown, err := w.converter.ConvertString(markup)
	if err != nil {
		return "", fmt.Errorf("converting page markup: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("creating review directory: %w", err)
	}

	filename := filepath.Join(w.dir, entry.ID+".md")
	content := fmt.Sprintf("# %s\n\n- URL: %s\n- Category: %s\n- Discovered: %s\n\n---\n\n%s\n",
		entry.Name, entry.URL, entry.Category, entry.DateAdded, markdown)

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing review snapshot: %w", err)
	}

	return filename, nil
}
