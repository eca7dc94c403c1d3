package animation

import (
	"html/template"
	"strconv"
	"strings"
)

// RenderSeriesList renders each series as one row: its label followed by
// exactly SeriesWidth value cells. Slots past the end of a series are blank,
// and on the last row they become taller spacer cells.
func (a *Assembler) RenderSeriesList(fileID string, series []LabeledSeries) template.HTML {
	var b strings.Builder
	a.writeSeriesList(&b, fileID, series, nil)
	return template.HTML(b.String())
}

func (a *Assembler) writeSeriesList(b *strings.Builder, fileID string, series []LabeledSeries, refs refSet) {
	width := a.config.SeriesWidth
	openArray(b, width+1)
	b.WriteByte('\n')

	for i, s := range series {
		if len(s.Values) > width {
			a.logger.Debug("Series longer than row width, extra values dropped",
				"label", s.Label, "length", len(s.Values), "width", width)
		}
		last := i == len(series)-1

		writeElem(b, s.Label)
		for j := 0; j < width; j++ {
			switch {
			case j < len(s.Values):
				ref := ElementRef(fileID, s.Category, strconv.Itoa(j))
				refs.add(ref)
				writeBox(b, ref, displayText(s.Values[j]))
			case last:
				b.WriteString(`<div class="elem extra-vertical-space"></div>`)
			default:
				writeElem(b, "")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("</div>")
}
