package verbal

import (
	"sync"

	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// TextMeasurer reports the rendered size of a single line of text.
type TextMeasurer interface {
	MeasureText(s string, size float64) (width, height float64)
}

var (
	measurerMu sync.RWMutex
	measurer   TextMeasurer
)

// SetTextMeasurer replaces the measurer used to size text widgets. Pass nil
// to restore the built-in Go Regular metrics.
func SetTextMeasurer(m TextMeasurer) {
	measurerMu.Lock()
	measurer = m
	measurerMu.Unlock()
}

func currentMeasurer() TextMeasurer {
	measurerMu.RLock()
	m := measurer
	measurerMu.RUnlock()
	if m == nil {
		return defaultFonts()
	}
	return m
}

// FontSet caches gg font faces of one source by size. It implements
// TextMeasurer and is shared by ImageCanvas for drawing.
type FontSet struct {
	source *ggtext.FontSource
	mu     sync.Mutex
	faces  map[float64]ggtext.Face
}

// NewFontSet parses TTF or OTF data.
func NewFontSet(data []byte) (*FontSet, error) {
	src, err := ggtext.NewFontSource(data)
	if err != nil {
		return nil, err
	}
	return &FontSet{source: src, faces: make(map[float64]ggtext.Face)}, nil
}

var (
	defaultFontsOnce sync.Once
	defaultFontSet   *FontSet
)

// defaultFonts returns the lazily parsed Go Regular font set. A nil set is
// valid and measures everything as zero.
func defaultFonts() *FontSet {
	defaultFontsOnce.Do(func() {
		fs, err := NewFontSet(goregular.TTF)
		if err != nil {
			Logger().Warn("verbal: load default font", "err", err)
			return
		}
		defaultFontSet = fs
	})
	return defaultFontSet
}

// Face returns the face for size, creating it on first use.
func (f *FontSet) Face(size float64) ggtext.Face {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	face, ok := f.faces[size]
	if !ok {
		face = f.source.Face(size)
		f.faces[size] = face
	}
	return face
}

// MeasureText returns the advance width and ascent+descent height of s.
func (f *FontSet) MeasureText(s string, size float64) (width, height float64) {
	face := f.Face(size)
	if face == nil {
		return 0, 0
	}
	width, _ = ggtext.Measure(s, face)
	m := face.Metrics()
	return width, m.Ascent + m.Descent
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *FontSet) Ascent(size float64) float64 {
	face := f.Face(size)
	if face == nil {
		return 0
	}
	return face.Metrics().Ascent
}
