package verbal

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	// ErrEmptyRegion is returned when an export region misses the surface.
	ErrEmptyRegion = errors.New("verbal: export region is empty")
	// ErrNoCanvas is returned when exporting from a headless layer.
	ErrNoCanvas = errors.New("verbal: layer has no canvas")
)

// ExportRegion reads back the pixels of r, clipped to the surface, as
// straight-alpha NRGBA with its origin at r's clipped top-left.
func (l *Layer) ExportRegion(r image.Rectangle) (*image.NRGBA, error) {
	if l.canvas == nil {
		return nil, ErrNoCanvas
	}
	w, h := l.canvas.Size()
	r = r.Canon().Intersect(image.Rect(0, 0, w, h))
	if r.Empty() {
		return nil, ErrEmptyRegion
	}
	return l.canvas.Pixels(r), nil
}

// ExportPNG writes region r as a PNG to w.
func (l *Layer) ExportPNG(w io.Writer, r image.Rectangle) error {
	img, err := l.ExportRegion(r)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("verbal: encode png: %w", err)
	}
	return nil
}

// Snapshot writes the whole surface to dir as a timestamped PNG named after
// label and returns the file path. The directory is created if needed.
func (l *Layer) Snapshot(dir, label string) (string, error) {
	if l.canvas == nil {
		return "", ErrNoCanvas
	}
	w, h := l.canvas.Size()
	img, err := l.ExportRegion(image.Rect(0, 0, w, h))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("verbal: snapshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("verbal: snapshot: %w", err)
	}
	Logger().Debug("snapshot written", "path", path)
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
