package terminal

import "github.com/mattn/go-runewidth"

// CellWidth returns the number of terminal columns a rune occupies.
// Zero-width runes (combining marks) return 0, wide CJK runes return 2.
func CellWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the number of terminal columns a string occupies
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
