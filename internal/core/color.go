package core

// Color is a cell colour in any form lipgloss accepts: a hex string such as
// "#DA6868" or an ANSI index such as "15". The empty Color means the
// terminal default.
type Color string

// Named colours used by the game renderer.
const (
	ColorDefault Color = ""
	ColorBlack   Color = "#000000"
	ColorWhite   Color = "#FFFFFF"
	ColorGreen   Color = "#008000"
	ColorMint    Color = "#68DA7D"
	ColorSalmon  Color = "#DA6868"
	ColorGray    Color = "245"
)

// IsDefault reports whether c leaves the terminal colour untouched.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
