package infrastructure

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/canvas"

	"resume-builder/internal/fonts"
	"resume-builder/internal/theme"
)

// Page units are CSS pixels at 96 DPI; canvas works in millimetres and
// font sizes in points.
const (
	pxToMm = 25.4 / 96
	pxToPt = 0.75
)

type faceKey struct {
	family string
	size   float64
	bold   bool
	ink    color.RGBA
}

// CanvasTypesetter measures and wraps text with real font metrics from
// tdewolff/canvas and the embedded theme families, the same faces the
// HTML renderer inlines.
type CanvasTypesetter struct {
	families map[string]*canvas.FontFamily

	mu    sync.Mutex
	faces map[faceKey]*canvas.FontFace
}

func NewCanvasTypesetter() (*CanvasTypesetter, error) {
	t := &CanvasTypesetter{families: map[string]*canvas.FontFamily{}, faces: map[faceKey]*canvas.FontFace{}}
	for _, name := range fonts.Families() {
		_, data := fonts.Lookup(name)
		family := canvas.NewFontFamily(name)
		if err := family.LoadFont(data.Regular, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("load %s regular: %w", name, err)
		}
		if err := family.LoadFont(data.Bold, 0, canvas.FontBold); err != nil {
			return nil, fmt.Errorf("load %s bold: %w", name, err)
		}
		t.families[name] = family
	}
	return t, nil
}

// Family returns the embedded family text in font is measured with.
func (t *CanvasTypesetter) Family(font theme.Font) string {
	name, _ := fonts.Lookup(font.Family)
	return name
}

func (t *CanvasTypesetter) face(font theme.Font, ink color.RGBA) *canvas.FontFace {
	name := t.Family(font)
	key := faceKey{family: name, size: font.Size, bold: font.Bold, ink: ink}
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.faces[key]; ok {
		return f
	}
	style := canvas.FontRegular
	if font.Bold {
		style = canvas.FontBold
	}
	f := t.families[name].Face(font.Size*pxToPt, ink, style, canvas.FontNormal)
	t.faces[key] = f
	return f
}

func caseFor(text string, font theme.Font) string {
	if font.Uppercase {
		return strings.ToUpper(text)
	}
	return text
}

// TextWidth returns the advance width of text in page units.
func (t *CanvasTypesetter) TextWidth(text string, font theme.Font) (float64, error) {
	face := t.face(font, canvas.Black)
	return face.TextWidth(caseFor(text, font)) / pxToMm, nil
}

// Wrap breaks text greedily at spaces, splitting words wider than the line.
// Runs of whitespace collapse the way a browser collapses them.
func (t *CanvasTypesetter) Wrap(text string, font theme.Font, width float64) ([]string, error) {
	face := t.face(font, canvas.Black)
	limit := width * pxToMm
	if limit <= 0 {
		limit = math.MaxFloat64
	}
	var lines []string
	for _, para := range strings.Split(caseFor(text, font), "\n") {
		lines = append(lines, wrapWords(strings.Fields(para), limit, face)...)
	}
	return lines, nil
}

func wrapWords(words []string, limit float64, face *canvas.FontFace) []string {
	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if face.TextWidth(candidate) <= limit {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if face.TextWidth(word) <= limit {
			current = word
			continue
		}
		chunks := splitWordByWidth(word, limit, face)
		lines = append(lines, chunks[:len(chunks)-1]...)
		current = chunks[len(chunks)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWordByWidth breaks a word that cannot fit on a line by itself.
func splitWordByWidth(word string, limit float64, face *canvas.FontFace) []string {
	var parts []string
	var builder strings.Builder
	for _, r := range word {
		if unicode.IsSpace(r) {
			continue
		}
		builder.WriteRune(r)
		if face.TextWidth(builder.String()) > limit && utf8.RuneCountInString(builder.String()) > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
