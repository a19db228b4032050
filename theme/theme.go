// Package theme defines semantic color schemes for views.
// A view without an explicit scheme inherits the nearest ancestor's;
// the application supplies the root default.
package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termview/terminal"
)

// ColorScheme holds the attributes a view draws itself with
type ColorScheme struct {
	Normal    terminal.Attribute // Regular content
	Focus     terminal.Attribute // Content while the view has focus
	HotNormal terminal.Attribute // Accelerator letter, unfocused
	HotFocus  terminal.Attribute // Accelerator letter, focused
	Disabled  terminal.Attribute // Inactive content
}

// Default is the scheme views fall back to when no ancestor sets one
var Default = ColorScheme{
	Normal:    terminal.MakeAttribute(terminal.RGB{R: 200, G: 200, B: 200}, terminal.RGB{R: 20, G: 20, B: 30}, terminal.AttrNone),
	Focus:     terminal.MakeAttribute(terminal.RGB{R: 255, G: 255, B: 255}, terminal.RGB{R: 30, G: 35, B: 45}, terminal.AttrNone),
	HotNormal: terminal.MakeAttribute(terminal.RGB{R: 100, G: 180, B: 200}, terminal.RGB{R: 20, G: 20, B: 30}, terminal.AttrBold),
	HotFocus:  terminal.MakeAttribute(terminal.RGB{R: 100, G: 180, B: 200}, terminal.RGB{R: 30, G: 35, B: 45}, terminal.AttrBold),
	Disabled:  terminal.MakeAttribute(terminal.RGB{R: 100, G: 100, B: 100}, terminal.RGB{R: 20, G: 20, B: 30}, terminal.AttrDim),
}

// Dialog is a higher-contrast scheme for modal toplevels
var Dialog = ColorScheme{
	Normal:    terminal.MakeAttribute(terminal.RGB{R: 220, G: 220, B: 220}, terminal.RGB{R: 40, G: 60, B: 90}, terminal.AttrNone),
	Focus:     terminal.MakeAttribute(terminal.RGB{R: 255, G: 255, B: 255}, terminal.RGB{R: 60, G: 80, B: 110}, terminal.AttrNone),
	HotNormal: terminal.MakeAttribute(terminal.RGB{R: 255, G: 220, B: 120}, terminal.RGB{R: 40, G: 60, B: 90}, terminal.AttrBold),
	HotFocus:  terminal.MakeAttribute(terminal.RGB{R: 255, G: 220, B: 120}, terminal.RGB{R: 60, G: 80, B: 110}, terminal.AttrBold),
	Disabled:  terminal.MakeAttribute(terminal.RGB{R: 120, G: 130, B: 140}, terminal.RGB{R: 40, G: 60, B: 90}, terminal.AttrDim),
}

// Hex parses a "#rrggbb" color
func Hex(s string) (terminal.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return terminal.RGB{}, err
	}
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}, nil
}

// Dimmed returns the color blended toward black, for derived disabled states
func Dimmed(c terminal.RGB) terminal.RGB {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	blended := col.BlendLab(colorful.Color{}, 0.5).Clamped()
	r, g, b := blended.RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}
