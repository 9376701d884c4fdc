package scene

import (
	"math"
	"sync"
	"unicode/utf8"

	"github.com/go-drift/vectorui/pkg/errors"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/surface"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Measurer computes text extents with the bundled Go fonts. Every family
// resolves to Go Regular, or Go Bold for weights of 600 and above.
//
// A nil *Measurer is valid and estimates extents from the font size alone.
type Measurer struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

var (
	defaultMeasurer     *Measurer
	defaultMeasurerErr  error
	defaultMeasurerOnce sync.Once
)

// NewMeasurer parses the bundled fonts.
func NewMeasurer() (*Measurer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Measurer{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// DefaultMeasurer returns a shared measurer. If the fonts cannot be parsed the
// failure is reported once and nil (the estimating fallback) is returned.
func DefaultMeasurer() *Measurer {
	defaultMeasurerOnce.Do(func() {
		m, err := NewMeasurer()
		if err != nil {
			defaultMeasurerErr = err
			errors.Report(&errors.WidgetError{
				Op:   "scene.DefaultMeasurer",
				Kind: errors.KindSurface,
				Err:  err,
			})
			return
		}
		defaultMeasurer = m
	})
	return defaultMeasurer
}

// Measure returns the advance width and line height of text set in f.
func (m *Measurer) Measure(text string, f surface.Font) graphics.Size {
	size := fontSize(f)
	face := m.face(f)
	if face == nil {
		return graphics.Size{
			Width:  math.Round(float64(utf8.RuneCountInString(text)) * size * 0.55),
			Height: math.Round(size * 1.2),
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	adv := font.MeasureString(face, text)
	metrics := face.Metrics()
	return graphics.Size{
		Width:  fixedToFloat(int64(adv)),
		Height: fixedToFloat(int64(metrics.Ascent + metrics.Descent)),
	}
}

// Metrics returns the ascent and descent of f.
func (m *Measurer) Metrics(f surface.Font) (ascent, descent float64) {
	face := m.face(f)
	if face == nil {
		size := fontSize(f)
		return math.Round(size * 0.95), math.Round(size * 0.25)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	metrics := face.Metrics()
	return fixedToFloat(int64(metrics.Ascent)), fixedToFloat(int64(metrics.Descent))
}

func (m *Measurer) face(f surface.Font) font.Face {
	if m == nil {
		return nil
	}
	key := faceKey{size: fontSize(f), bold: f.Weight >= 600}
	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[key]; ok {
		return face
	}
	src := m.regular
	if key.bold {
		src = m.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		errors.Report(&errors.WidgetError{
			Op:   "scene.Measurer.face",
			Kind: errors.KindSurface,
			Err:  err,
		})
		return nil
	}
	m.faces[key] = face
	return face
}

func fontSize(f surface.Font) float64 {
	if f.Size <= 0 {
		return defaultFontSize
	}
	return f.Size
}

// fixedToFloat converts a 26.6 fixed-point value.
func fixedToFloat(v int64) float64 {
	return float64(v) / 64
}

// DefaultMeasurerErr returns the error, if any, from loading the shared measurer.
func DefaultMeasurerErr() error {
	DefaultMeasurer()
	return defaultMeasurerErr
}
