package terminal

// RGB represents a 24-bit color. Drivers downsample to the terminal's
// actual capability; the core always works in full color.
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// RGBWhite is full white
var RGBWhite = RGB{255, 255, 255}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}
