// Package widget provides the built-in widget set: labels, boxes, buttons
// and checkboxes. Widgets embed *view.View and override the parts of the
// view contract they need.
package widget

import (
	"strings"

	"github.com/lixenwraith/termview/terminal"
)

// parseAccel extracts the hot-key accelerator from a label. An '&' marks
// the following rune as the accelerator; "&&" is a literal ampersand.
// It returns the display text, the accelerator rune (0 for none) and the
// rune's cell offset in the display text.
func parseAccel(label string) (text string, accel rune, offset int) {
	var b strings.Builder
	cells := 0
	offset = -1
	runes := []rune(label)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) {
			i++
			if runes[i] != '&' && accel == 0 {
				accel = runes[i]
				offset = cells
			}
		}
		b.WriteRune(runes[i])
		cells += terminal.CellWidth(runes[i])
	}
	return b.String(), accel, offset
}
