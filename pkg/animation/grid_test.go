package animation

import (
	"fmt"
	"html/template"
	"reflect"
	"strings"
	"testing"
)

func TestRenderGrid_Scenario(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	grid := NewGrid([][]int{{1, 2}, {3, 4}})

	cells := parseCells(t, a.RenderGrid("t1", grid))

	wantTexts := []string{"", "0", "1", "0", "1", "2", "1", "3", "4"}
	if got := texts(cells); !reflect.DeepEqual(got, wantTexts) {
		t.Errorf("cell texts mismatch:\n got %q\nwant %q", got, wantTexts)
	}
	wantIDs := []string{"t1a00", "t1a01", "t1a10", "t1a11"}
	if got := boxIDs(cells); !reflect.DeepEqual(got, wantIDs) {
		t.Errorf("element refs mismatch: got %q, want %q", got, wantIDs)
	}
}

func TestRenderGrid_Shape(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	tests := []struct {
		rows, cols int
	}{
		{1, 1},
		{2, 3},
		{4, 4},
		{7, 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.rows, tt.cols), func(t *testing.T) {
			matrix := make([][]int, tt.rows)
			for i := range matrix {
				matrix[i] = make([]int, tt.cols)
				for j := range matrix[i] {
					matrix[i][j] = i*tt.cols + j
				}
			}
			fragment := a.RenderGrid("g", NewGrid(matrix))

			cells := parseCells(t, fragment)
			if want := (tt.rows + 1) * (tt.cols + 1); len(cells) != want {
				t.Errorf("expected %d cells, got %d", want, len(cells))
			}
			if boxes := len(boxIDs(cells)); boxes != tt.rows*tt.cols {
				t.Errorf("expected %d boxed cells, got %d", tt.rows*tt.cols, boxes)
			}
			// One line per rendered row, header included.
			if lines := strings.Count(string(fragment), "\n"); lines != tt.rows+1 {
				t.Errorf("expected %d rows, got %d", tt.rows+1, lines)
			}
			if !strings.Contains(string(fragment), fmt.Sprintf("--cols:%d", tt.cols+1)) {
				t.Errorf("grid does not declare %d columns", tt.cols+1)
			}
		})
	}
}

func TestRenderGrid_Ragged(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	grid := Grid{Values(1, 2, 3), Values(4)}

	cells := parseCells(t, a.RenderGrid("r", grid))
	// Header of 1+3, then 1+3 and 1+1.
	if len(cells) != 10 {
		t.Fatalf("expected 10 cells for ragged grid, got %d", len(cells))
	}
	if got := boxIDs(cells); !reflect.DeepEqual(got, []string{"ra00", "ra01", "ra02", "ra10"}) {
		t.Errorf("unexpected refs for ragged grid: %q", got)
	}
}

func TestRenderGrid_Empty(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	cells := parseCells(t, a.RenderGrid("e", nil))
	if len(cells) != 1 || cells[0].Text != "" {
		t.Errorf("empty grid should render only the corner cell, got %+v", cells)
	}
}

func TestRenderGrid_EscapesValues(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	fragment := string(a.RenderGrid("x", Grid{Values("<b>&</b>")}))
	if strings.Contains(fragment, "<b>") {
		t.Fatalf("cell value was not escaped: %s", fragment)
	}
	cells := parseCells(t, template.HTML(fragment))
	if cells[len(cells)-1].Text != "<b>&</b>" {
		t.Errorf("escaped value did not round-trip, got %q", cells[len(cells)-1].Text)
	}
}

func TestRenderGrid_NilCell(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	cells := parseCells(t, a.RenderGrid("n", Grid{Row{Int(1), nil}}))
	if got := texts(cells); !reflect.DeepEqual(got, []string{"", "0", "1", "0", "1", ""}) {
		t.Errorf("nil cell should render empty, got %q", got)
	}
	if got := boxIDs(cells); !reflect.DeepEqual(got, []string{"na00", "na01"}) {
		t.Errorf("nil cell should still be addressable, got %q", got)
	}
}
