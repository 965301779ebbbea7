package core

// Color represents a screen cell color (foreground or background).
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorBoard // Grid outline
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileHigh // Anything above 2048
)

// TileColor returns the background color for a tile value.
func TileColor(value int) Color {
	c := ColorTile2
	for v := 2; v < value && c < ColorTileHigh; v *= 2 {
		c++
	}
	return c
}
