package animation

import (
	"html/template"
	"sort"
	"strconv"
	"strings"
)

// refSet counts the element refs emitted into one fragment.
type refSet map[string]int

func (s refSet) add(ref string) {
	if s != nil {
		s[ref]++
	}
}

func (s refSet) has(ref string) bool {
	_, ok := s[ref]
	return ok
}

// duplicates returns every ref emitted more than once, sorted.
func (s refSet) duplicates() []string {
	var dups []string
	for ref, n := range s {
		if n > 1 {
			dups = append(dups, ref)
		}
	}
	sort.Strings(dups)
	return dups
}

// openArray starts a boxed grid container with the given column count.
func openArray(b *strings.Builder, cols int) {
	b.WriteString(`<div class="array" style="--cols:`)
	b.WriteString(strconv.Itoa(cols))
	b.WriteString(`">`)
}

// writeElem writes a plain (unboxed) cell.
func writeElem(b *strings.Builder, text string) {
	b.WriteString(`<div class="elem">`)
	b.WriteString(template.HTMLEscapeString(text))
	b.WriteString(`</div>`)
}

// writeBox writes a boxed cell that hover bindings can target.
func writeBox(b *strings.Builder, id, text string) {
	b.WriteString(`<div id="`)
	b.WriteString(template.HTMLEscapeString(id))
	b.WriteString(`" class="elem box">`)
	b.WriteString(template.HTMLEscapeString(text))
	b.WriteString(`</div>`)
}

// writeCaption writes the element the hover script prints instructions into.
func writeCaption(b *strings.Builder, fileID string) {
	b.WriteString(`<div id="`)
	b.WriteString(template.HTMLEscapeString(ElementRef(fileID, "caption", "")))
	b.WriteString(`" class="caption"></div>`)
}
