package animation

import (
	"html/template"
	"strings"
)

// RenderHoverScript renders a <script> block that binds a hover-in and a
// hover-out handler to every bound element, followed by the shared
// hover-handler script asset.
func (a *Assembler) RenderHoverScript(fileID string, bindings []HoverBinding) template.HTML {
	var b strings.Builder
	a.writeHoverScript(&b, fileID, bindings)
	return template.HTML(b.String())
}

// RenderHoverScriptFor pairs labels with instructions and renders the hover
// script. Lists of different length are rejected with ErrLengthMismatch.
func (a *Assembler) RenderHoverScriptFor(fileID string, labels, instructions []string) (template.HTML, error) {
	bindings, err := Bindings(labels, instructions)
	if err != nil {
		return "", err
	}
	return a.RenderHoverScript(fileID, bindings), nil
}

func (a *Assembler) writeHoverScript(b *strings.Builder, fileID string, bindings []HoverBinding) {
	b.WriteString("<script>\n")
	for _, binding := range bindings {
		ref := ElementRef(fileID, "", binding.Label)
		a.writeHandler(b, "onmouseover", fileID, ref, binding.Instruction, a.config.HighlightColor)
		a.writeHandler(b, "onmouseout", fileID, ref, binding.Instruction, a.config.DefaultColor)
	}
	b.WriteString(a.assets.Script)
	b.WriteString("\n</script>")
}

// writeHandler writes one event-binding statement:
//
//	document.getElementById("<ref>").<event> = function() {<handler>("<file>", "<ref>", "<instruction>", "<color>")};
func (a *Assembler) writeHandler(b *strings.Builder, event, fileID, ref, instruction, color string) {
	b.WriteString(`document.getElementById("`)
	b.WriteString(template.JSEscapeString(ref))
	b.WriteString(`").`)
	b.WriteString(event)
	b.WriteString(` = function() {`)
	b.WriteString(a.config.HandlerName)
	b.WriteString(`("`)
	b.WriteString(template.JSEscapeString(fileID))
	b.WriteString(`", "`)
	b.WriteString(template.JSEscapeString(ref))
	b.WriteString(`", "`)
	b.WriteString(template.JSEscapeString(instruction))
	b.WriteString(`", "`)
	b.WriteString(template.JSEscapeString(color))
	b.WriteString("\")};\n")
}
