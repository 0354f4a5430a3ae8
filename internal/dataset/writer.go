package dataset

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
)

const (
	imagesDirName = "images"
	videosDirName = "videos"
	metadataName  = "metadata.jsonl"
)

// Writer lays out a dataset directory and appends sample metadata. Append is
// safe for concurrent use; image and video saves go to distinct per-task
// paths so they need no locking.
type Writer struct {
	root string

	mu   sync.Mutex
	meta *os.File
	enc  *json.Encoder
}

// NewWriter creates <outputDir>/<domain>_task with images/ and videos/
// subdirectories and opens the metadata file for appending.
func NewWriter(outputDir, domain string) (*Writer, error) {
	root := filepath.Join(outputDir, domain+"_task")
	for _, dir := range []string{
		root,
		filepath.Join(root, imagesDirName),
		filepath.Join(root, videosDirName),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating dataset dir: %w", err)
		}
	}

	meta, err := os.OpenFile(
		filepath.Join(root, metadataName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		return nil, fmt.Errorf("opening metadata file: %w", err)
	}

	return &Writer{root: root, meta: meta, enc: json.NewEncoder(meta)}, nil
}

// Root returns the dataset root directory.
func (w *Writer) Root() string { return w.root }

// ImagePath returns the path for a task frame, e.g. kind "first" or "final".
func (w *Writer) ImagePath(taskID, kind string) string {
	return filepath.Join(w.root, imagesDirName, fmt.Sprintf("%s_%s.png", taskID, kind))
}

// VideoPath returns the path of a task's solution video.
func (w *Writer) VideoPath(taskID, format string) string {
	return filepath.Join(w.root, videosDirName, fmt.Sprintf("%s_ground_truth.%s", taskID, format))
}

// Rel rewrites an artifact path relative to the dataset root, which is the
// form stored in metadata.
func (w *Writer) Rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// SaveImage writes img as a PNG.
func (w *Writer) SaveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// Append writes one metadata line for s.
func (w *Writer) Append(s Sample) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(s); err != nil {
		return fmt.Errorf("appending metadata for %s: %w", s.TaskID, err)
	}
	return nil
}

// Close flushes and closes the metadata file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.meta.Close()
}
