package animation

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "abc", "abc"},
		{"Int", 42, "42"},
		{"Float", 2.5, "2.5"},
		{"WholeFloat", 3.0, "3"},
		{"Bool", true, "true"},
		{"Stringer", 1500 * time.Millisecond, "1.5s"},
		{"Displayable", Text("kept"), "kept"},
		{"JSONNumber", json.Number("7"), "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Value(tt.in).Display(); got != tt.want {
				t.Errorf("Value(%v).Display() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFigure_JSON(t *testing.T) {
	input := `{
		"grid": [[1, 2.5], ["x", null]],
		"series": [{"category": "b", "label": "best", "values": [10, 20]}],
		"labels": ["a00"],
		"instructions": ["b0"]
	}`
	var fig Figure
	if err := json.Unmarshal([]byte(input), &fig); err != nil {
		t.Fatalf("failed to decode figure: %v", err)
	}

	var cells []string
	for _, row := range fig.Grid {
		for _, v := range row {
			cells = append(cells, v.Display())
		}
	}
	if want := []string{"1", "2.5", "x", ""}; !reflect.DeepEqual(cells, want) {
		t.Errorf("grid cells = %q, want %q", cells, want)
	}
	if fig.Series[0].Values[1].Display() != "20" {
		t.Errorf("series value decoded as %q", fig.Series[0].Values[1].Display())
	}

	out, err := json.Marshal(fig.Grid)
	if err != nil {
		t.Fatalf("failed to encode grid: %v", err)
	}
	if string(out) != `[["1","2.5"],["x",""]]` {
		t.Errorf("unexpected grid encoding %s", out)
	}
}

func TestRow_MarshalNil(t *testing.T) {
	data, err := json.Marshal(Row{Int(1), nil, Text("x")})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `["1","","x"]` {
		t.Errorf("unexpected encoding %s", data)
	}
}
