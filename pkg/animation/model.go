package animation

import (
	"fmt"
	"strconv"
)

// LabeledSeries is one auxiliary 1D array, rendered as a single row.
type LabeledSeries struct {
	// Category is the tag used in the element refs of the series cells.
	Category string `json:"category"`
	Label    string `json:"label"`
	Values   Row    `json:"values"`
}

// HoverBinding pairs an element ref suffix with the instruction shown while
// the element is hovered.
type HoverBinding struct {
	Label       string `json:"label"`
	Instruction string `json:"instruction"`
}

// Figure bundles everything needed to assemble one fragment.
type Figure struct {
	Grid         Grid            `json:"grid"`
	Series       []LabeledSeries `json:"series"`
	Labels       []string        `json:"labels"`
	Instructions []string        `json:"instructions"`
}

// ElementRef derives the DOM id of a rendered cell.
func ElementRef(fileID, category, index string) string {
	return fileID + category + index
}

// gridIndex is the ref index of a grid cell: row and column digits run together.
func gridIndex(row, col int) string {
	return strconv.Itoa(row) + strconv.Itoa(col)
}

// Bindings pairs parallel label and instruction lists. Both lists must have
// the same length.
func Bindings(labels, instructions []string) ([]HoverBinding, error) {
	if len(labels) != len(instructions) {
		return nil, fmt.Errorf("%w: %d labels, %d instructions", ErrLengthMismatch, len(labels), len(instructions))
	}
	bindings := make([]HoverBinding, len(labels))
	for i := range labels {
		bindings[i] = HoverBinding{Label: labels[i], Instruction: instructions[i]}
	}
	return bindings, nil
}
