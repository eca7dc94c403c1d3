package animation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Displayable is anything that can be rendered as the text of a cell.
type Displayable interface {
	Display() string
}

// Text is a Displayable string.
type Text string

func (t Text) Display() string { return string(t) }

// Int is a Displayable integer.
type Int int

func (i Int) Display() string { return strconv.Itoa(int(i)) }

// Float is a Displayable float, printed in the shortest exact form.
type Float float64

func (f Float) Display() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Value wraps an arbitrary value as a Displayable. Displayable and
// fmt.Stringer values keep their own rendering, nil renders as an empty
// cell and everything else goes through fmt.Sprint.
func Value(v any) Displayable {
	switch x := v.(type) {
	case nil:
		return Text("")
	case Displayable:
		return x
	case string:
		return Text(x)
	case int:
		return Int(x)
	case float64:
		return Float(x)
	case fmt.Stringer:
		return Text(x.String())
	default:
		return Text(fmt.Sprint(x))
	}
}

// Row is one ordered sequence of cell values.
type Row []Displayable

// Values builds a Row from arbitrary values.
func Values(vs ...any) Row {
	row := make(Row, len(vs))
	for i, v := range vs {
		row[i] = Value(v)
	}
	return row
}

// MarshalJSON encodes the row as its display strings.
func (r Row) MarshalJSON() ([]byte, error) {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = displayText(v)
	}
	return json.Marshal(out)
}

// displayText renders v, treating a nil cell as empty.
func displayText(v Displayable) string {
	if v == nil {
		return ""
	}
	return v.Display()
}

// UnmarshalJSON accepts any JSON array. Numbers keep their literal text.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	row := make(Row, len(raw))
	for i, v := range raw {
		row[i] = Value(v)
	}
	*r = row
	return nil
}

// Grid is a sequence of rows. It is expected to be rectangular but this is
// never checked; ragged grids simply render misaligned.
type Grid []Row

// NewGrid converts a typed matrix into a Grid.
func NewGrid[T any](matrix [][]T) Grid {
	grid := make(Grid, len(matrix))
	for i, src := range matrix {
		row := make(Row, len(src))
		for j, v := range src {
			row[j] = Value(v)
		}
		grid[i] = row
	}
	return grid
}

// columns reports the number of columns, taken from the first row.
func (g Grid) columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}
