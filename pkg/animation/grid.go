package animation

import (
	"html/template"
	"strconv"
	"strings"
)

// RenderGrid renders grid as a bordered box grid with a leading index row
// and index column. Every data cell carries its element ref as id.
func (a *Assembler) RenderGrid(fileID string, grid Grid) template.HTML {
	var b strings.Builder
	a.writeGrid(&b, fileID, grid, nil)
	return template.HTML(b.String())
}

func (a *Assembler) writeGrid(b *strings.Builder, fileID string, grid Grid, refs refSet) {
	cols := grid.columns()
	openArray(b, cols+1)

	writeElem(b, "")
	for j := 0; j < cols; j++ {
		writeElem(b, strconv.Itoa(j))
	}
	b.WriteByte('\n')

	for i, row := range grid {
		if len(row) != cols {
			a.logger.Debug("Grid row length differs from header", "row", i, "length", len(row), "columns", cols)
		}
		writeElem(b, strconv.Itoa(i))
		for j, v := range row {
			ref := ElementRef(fileID, a.config.GridCategory, gridIndex(i, j))
			refs.add(ref)
			writeBox(b, ref, displayText(v))
		}
		b.WriteByte('\n')
	}
	b.WriteString("</div>")
}
