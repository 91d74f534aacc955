package layout

import (
	"strings"
	"unicode/utf8"

	"resume-builder/internal/theme"
)

// stubTypesetter gives every rune a width of half the font size and wraps
// greedily on spaces.
type stubTypesetter struct{}

func (stubTypesetter) TextWidth(text string, font theme.Font) (float64, error) {
	return float64(utf8.RuneCountInString(text)) * font.Size / 2, nil
}

func (s stubTypesetter) Wrap(text string, font theme.Font, width float64) ([]string, error) {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			w, _ := s.TextWidth(candidate, font)
			if line != "" && w > width {
				lines = append(lines, line)
				candidate = word
			}
			line = candidate
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func block(key string, kind Kind) Block {
	role := RoleBullet
	switch kind {
	case KindHeading:
		role = RoleHeading
	case KindSpacer:
		role = RoleSpacer
	}
	return Block{Key: key, Kind: kind, Role: role}
}

func keys(blocks []Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Key
	}
	return out
}

func pageKeys(pages [][]Block) [][]string {
	out := make([][]string, len(pages))
	for i, p := range pages {
		out[i] = keys(p)
	}
	return out
}
