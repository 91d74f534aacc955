// Package fonts holds the embedded faces every theme is measured and
// painted with. Browsers get the same bytes through @font-face rules.
package fonts

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

const (
	Sans  = "Resume Sans"
	Serif = "Resume Serif"
)

// Face is the font data of one family.
type Face struct {
	Regular []byte
	Bold    []byte
}

var families = map[string]Face{
	Sans:  {Regular: lmsans10regular.TTF, Bold: lmsans10bold.TTF},
	Serif: {Regular: lmroman10regular.TTF, Bold: lmroman10bold.TTF},
}

// Lookup returns the faces of family. Blank or unknown names resolve to Sans.
func Lookup(family string) (string, Face) {
	if f, ok := families[family]; ok {
		return family, f
	}
	return Sans, families[Sans]
}

// Families lists the embedded family names.
func Families() []string { return []string{Sans, Serif} }

// CSS returns the @font-face rules for family with the font data inlined.
func CSS(family string) string {
	name, face := Lookup(family)
	var b strings.Builder
	rule(&b, name, face.Regular, 400)
	rule(&b, name, face.Bold, 700)
	return b.String()
}

// Stack is the CSS font-family value for family.
func Stack(family string) string {
	name, _ := Lookup(family)
	return "'" + name + "'"
}

func rule(b *strings.Builder, name string, data []byte, weight int) {
	mime, format := "font/ttf", "truetype"
	if bytes.HasPrefix(data, []byte("OTTO")) {
		mime, format = "font/otf", "opentype"
	}
	fmt.Fprintf(b, "@font-face{font-family:'%s';font-style:normal;font-weight:%d;font-display:block;src:url(data:%s;base64,%s) format('%s')}\n",
		name, weight, mime, base64.StdEncoding.EncodeToString(data), format)
}
