package draw

import (
	"math"
	"sort"
	"strconv"
)

// cell is what one terminal character shows: two stacked sub-pixels.
type cell struct {
	top, bottom Color
}

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Shapes are given in world coordinates and mapped
// through the view rectangle onto the terminal grid.
type Canvas struct {
	termWidth      int // Terminal columns covered by the canvas
	termHeight     int // Terminal rows covered by the canvas
	subPixelHeight int // termHeight * 2
	pixels         []Color
	prev           []cell // What the terminal currently shows, for diffing
	dirty          []bool // Cells overwritten by text since the last Render
	valid          bool   // prev reflects the terminal

	view   Rect
	scaleX float64 // Sub-pixels per world unit
	scaleY float64

	// 0-based terminal offset of the canvas' top-left corner.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas of width x height terminal cells showing view.
func NewCanvas(width, height int, view Rect) *Canvas {
	c := &Canvas{view: view}
	c.Resize(width, height)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// view. The next Render repaints everything.
func (c *Canvas) Resize(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	if width != c.termWidth || height != c.termHeight {
		c.termWidth = width
		c.termHeight = height
		c.subPixelHeight = height * 2
		c.pixels = make([]Color, width*c.subPixelHeight)
		c.prev = make([]cell, width*height)
		c.dirty = make([]bool, width*height)
		c.valid = false
	}
	c.scaleX = float64(c.termWidth) / c.view.Width()
	c.scaleY = float64(c.subPixelHeight) / c.view.Height()
}

// SetOffset sets the 0-based column and row where the canvas starts.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.valid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// screen was cleared underneath the canvas.
func (c *Canvas) ForceRedraw() {
	c.valid = false
}

// MarkTextDirty records that text of n columns was written at the 1-based
// terminal position, so the next Render repaints those cells.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1 - c.offsetRow
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := col - 1 - c.offsetCol; x < col-1-c.offsetCol+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.dirty[r*c.termWidth+x] = true
		}
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// toPixel maps world coordinates to fractional sub-pixel coordinates.
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	return (x - c.view.MinX) * c.scaleX, (c.view.MaxY - y) * c.scaleY
}

// WorldToTerminal converts world coordinates to a 1-based terminal position.
// Used to place text overlays next to drawn objects.
func (c *Canvas) WorldToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return int(math.Floor(px)) + 1 + c.offsetCol, int(math.Floor(py))/2 + 1 + c.offsetRow
}

// TerminalToWorldX converts a 1-based terminal column to the world x at the
// centre of that column.
func (c *Canvas) TerminalToWorldX(col int) float64 {
	px := float64(col-1-c.offsetCol) + 0.5
	return c.view.MinX + px/c.scaleX
}

// WorldLength converts a world distance along x to sub-pixels.
func (c *Canvas) WorldLength(d float64) float64 {
	return d * c.scaleX
}

func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// At returns the color at a sub-pixel; None outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return None
	}
	return c.pixels[y*c.termWidth+x]
}

// Set colors the sub-pixel containing the world point.
func (c *Canvas) Set(x, y float64, color Color) {
	px, py := c.toPixel(x, y)
	c.setPixel(int(math.Floor(px)), int(math.Floor(py)), color)
}

// DrawLine draws a line between two world points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	fx1, fy1 := c.toPixel(p1.X, p1.Y)
	fx2, fy2 := c.toPixel(p2.X, p2.Y)
	x1, y1 := int(math.Floor(fx1)), int(math.Floor(fy1))
	x2, y2 := int(math.Floor(fx2)), int(math.Floor(fy2))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon given in world coordinates. If filled is true,
// the interior is filled using a scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, color Color, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, color)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], color)
	}
}

// fillPolygon fills a polygon in sub-pixel space.
func (c *Canvas) fillPolygon(points []Point, color Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i].X, scaled[i].Y = c.toPixel(p.X, p.Y)
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Floor(intersections[i] + 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, color)
			}
		}
	}
}

// FillCircle fills a disc of world radius r centred on (x, y). Axes are
// scaled separately so the disc stays round in world space.
func (c *Canvas) FillCircle(x, y, r float64, color Color) {
	cx, cy := c.toPixel(x, y)
	rx := r * c.scaleX
	ry := r * c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}

	yStart := max(int(math.Floor(cy-ry)), 0)
	yEnd := min(int(math.Ceil(cy+ry)), c.subPixelHeight-1)
	for py := yStart; py <= yEnd; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		xStart := int(math.Floor(cx - half + 0.5))
		xEnd := int(math.Floor(cx + half - 0.5))
		if xStart > xEnd {
			// Thinner than a sub-pixel: still show something.
			xStart = int(math.Floor(cx))
			xEnd = xStart
		}
		for px := xStart; px <= xEnd; px++ {
			c.setPixel(px, py, color)
		}
	}
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

// Render writes the cells that changed since the previous Render. After a
// resize, an offset change or ForceRedraw every cell is written.
func (c *Canvas) Render(w *ChunkWriter) {
	full := !c.valid
	lastRow, lastCol := -1, -1
	var lastFg, lastBg Color
	styled := false

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			idx := row*c.termWidth + col
			if !full && !c.dirty[idx] && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur
			c.dirty[idx] = false

			// Consecutive cells need no cursor move.
			if row != lastRow || col != lastCol+1 {
				w.MoveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			lastRow, lastCol = row, col

			fg, bg, ch := cur.glyph()
			if !styled || fg != lastFg || bg != lastBg {
				c.writeStyle(w, fg, bg)
				lastFg, lastBg, styled = fg, bg, true
			}
			w.WriteRune(ch)
		}
	}
	if styled {
		w.WriteString(resetStyle)
	}
	c.valid = true
}

// glyph picks the character and colors that show a cell's two sub-pixels.
func (cl cell) glyph() (fg, bg Color, ch rune) {
	switch {
	case cl.top == None && cl.bottom == None:
		return None, None, ' '
	case cl.top == cl.bottom:
		return cl.top, None, BlockFull
	case cl.top == None:
		return cl.bottom, None, BlockLowerHalf
	default:
		return cl.top, cl.bottom, BlockUpperHalf
	}
}

func (c *Canvas) writeStyle(w *ChunkWriter, fg, bg Color) {
	w.WriteString(resetStyle)
	if fg != None {
		w.WriteString("\033[38;5;")
		w.Write(strconv.AppendInt(c.numBuf[:0], int64(fg), 10))
		w.WriteByte('m')
	}
	if bg != None {
		w.WriteString("\033[48;5;")
		w.Write(strconv.AppendInt(c.numBuf[:0], int64(bg), 10))
		w.WriteByte('m')
	}
}

// RenderBorder draws a box around the canvas when it is centred inside a
// larger terminal. Sides without room for a border are skipped.
func (c *Canvas) RenderBorder(w *ChunkWriter) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	w.WriteString("\033[38;5;")
	w.Write(strconv.AppendInt(c.numBuf[:0], int64(ColorDim), 10))
	w.WriteByte('m')

	if hasV {
		for _, row := range []int{top, bottom} {
			w.MoveCursor(c.offsetCol+1, row)
			for i := 0; i < c.termWidth; i++ {
				w.WriteRune('─')
			}
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			w.WriteAt(left, row, "│")
			w.WriteAt(right, row, "│")
		}
	}
	if hasH && hasV {
		w.WriteAt(left, top, "┌")
		w.WriteAt(right, top, "┐")
		w.WriteAt(left, bottom, "└")
		w.WriteAt(right, bottom, "┘")
	}
	w.WriteString(resetStyle)
}
