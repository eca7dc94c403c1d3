package animation

import (
	"reflect"
	"strings"
	"testing"
)

func TestRenderSeriesList_FixedWidth(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	series := []LabeledSeries{
		{Category: "b", Label: "stack", Values: Values(1, 2, 3)},
		{Category: "c", Label: "full", Values: Values(1, 2, 3, 4, 5, 6, 7, 8)},
		{Category: "d", Label: "empty"},
		{Category: "e", Label: "tail", Values: Values(9, 9)},
	}

	cells := parseCells(t, a.RenderSeriesList("s", series))
	if want := len(series) * 9; len(cells) != want {
		t.Fatalf("expected %d cells, got %d", want, len(cells))
	}

	for i, s := range series {
		row := cells[i*9 : (i+1)*9]
		if row[0].Text != s.Label {
			t.Errorf("row %d: expected label %q, got %q", i, s.Label, row[0].Text)
		}
		for j, c := range row[1:] {
			classes := strings.Fields(c.Class)
			switch {
			case j < len(s.Values):
				if !containsString(classes, "box") {
					t.Errorf("row %d slot %d: expected a boxed value, got class %q", i, j, c.Class)
				}
			case i == len(series)-1:
				if !containsString(classes, "extra-vertical-space") {
					t.Errorf("row %d slot %d: last row should pad with spacer cells, got class %q", i, j, c.Class)
				}
			default:
				if c.Class != "elem" || c.Text != "" {
					t.Errorf("row %d slot %d: expected blank padding, got %+v", i, j, c)
				}
			}
		}
	}
}

func TestRenderSeriesList_Refs(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	series := []LabeledSeries{
		{Category: "lo", Label: "low", Values: Values(0, 1)},
		{Category: "hi", Label: "high", Values: Values("x")},
	}
	got := boxIDs(parseCells(t, a.RenderSeriesList("f", series)))
	want := []string{"flo0", "flo1", "fhi0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("refs mismatch: got %q, want %q", got, want)
	}
}

func TestRenderSeriesList_Truncates(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	series := []LabeledSeries{{Category: "z", Label: "long", Values: Values(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)}}

	cells := parseCells(t, a.RenderSeriesList("f", series))
	if len(cells) != 9 {
		t.Fatalf("expected 9 cells for an over-long series, got %d", len(cells))
	}
	if ids := boxIDs(cells); ids[len(ids)-1] != "fz7" {
		t.Errorf("expected last rendered ref to be fz7, got %q", ids[len(ids)-1])
	}
}

func TestRenderSeriesList_CustomWidth(t *testing.T) {
	config := DefaultConfig()
	config.SeriesWidth = 4
	a := setupTestAssembler(t, config, nil)

	fragment := a.RenderSeriesList("w", []LabeledSeries{{Category: "a", Label: "x", Values: Values(1)}})
	if cells := parseCells(t, fragment); len(cells) != 5 {
		t.Errorf("expected 5 cells with width 4, got %d", len(cells))
	}
	if !strings.Contains(string(fragment), "--cols:5") {
		t.Error("series list should declare width+1 columns")
	}
}

func TestRenderSeriesList_NilCell(t *testing.T) {
	a := setupTestAssembler(t, nil, nil)
	series := []LabeledSeries{{Category: "b", Label: "gap", Values: Row{nil, Int(2)}}}

	cells := parseCells(t, a.RenderSeriesList("n", series))
	if len(cells) != 1+DefaultConfig().SeriesWidth {
		t.Fatalf("expected %d cells, got %d", 1+DefaultConfig().SeriesWidth, len(cells))
	}
	if cells[1].ID != "nb0" || cells[1].Text != "" || cells[2].Text != "2" {
		t.Errorf("nil value should render as an empty box, got %+v %+v", cells[1], cells[2])
	}
}
