// Package draw renders world-space shapes onto a colored half-block terminal
// canvas and writes it out as ANSI escape sequences.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned region of world space. Y grows upward.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Color is an xterm-256 palette index. The zero value means "nothing drawn".
type Color uint8

const None Color = 0

// Palette used by the game renderer.
const (
	ColorShip      Color = 45  // Cyan
	ColorBullet    Color = 226 // Yellow
	ColorText      Color = 252
	ColorDim       Color = 244
	ColorWarning   Color = 203
	ColorExplosion Color = 202
	ColorFlash     Color = 230
)

// AsteroidColors maps an asteroid's palette index to a terminal color.
var AsteroidColors = [...]Color{208, 166, 130, 172, 137, 136, 178, 180}

// AsteroidColor returns the terminal color for palette index i.
func AsteroidColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return AsteroidColors[i%len(AsteroidColors)]
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
