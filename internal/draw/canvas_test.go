package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testView = Rect{MinX: -5, MaxX: 5, MinY: -5, MaxY: 5}

func TestCanvasMapping(t *testing.T) {
	c := NewCanvas(10, 5, testView)

	c.Set(-5, 5, ColorShip)
	assert.Equal(t, ColorShip, c.At(0, 0), "top-left corner of the view")

	c.Set(4.9, -4.9, ColorBullet)
	assert.Equal(t, ColorBullet, c.At(9, 9), "bottom-right corner of the view")

	c.Set(20, 0, ColorBullet)
	assert.Equal(t, None, c.At(10, 5), "outside the canvas is ignored")

	col, row := c.WorldToTerminal(0, 0)
	assert.Equal(t, 6, col)
	assert.Equal(t, 3, row)

	c.SetOffset(3, 0)
	assert.InDelta(t, -4.5, c.TerminalToWorldX(4), 1e-9, "first canvas column")
	assert.InDelta(t, 4.5, c.TerminalToWorldX(13), 1e-9, "last canvas column")
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(20, 10, testView)
	c.FillCircle(0, 0, 2, ColorExplosion)

	assert.Equal(t, ColorExplosion, c.At(10, 10), "centre")
	assert.Equal(t, None, c.At(0, 0), "corner")
	assert.Equal(t, None, c.At(10, 2), "above the disc")
}

func TestCanvasRenderDiff(t *testing.T) {
	var out bytes.Buffer
	w := NewChunkWriter(&out)
	c := NewCanvas(4, 2, testView)

	c.Render(w)
	require.NoError(t, w.Flush())
	assert.Equal(t, 8, strings.Count(out.String(), " "), "first render paints every cell")

	out.Reset()
	c.Render(w)
	require.NoError(t, w.Flush())
	assert.Empty(t, out.String(), "nothing changed")

	c.Set(-5, 5, ColorShip)
	c.Render(w)
	require.NoError(t, w.Flush())
	assert.Equal(t, "\033[1;1H\033[0m\033[38;5;45m▀\033[0m", out.String())

	out.Reset()
	c.ForceRedraw()
	c.Render(w)
	require.NoError(t, w.Flush())
	assert.Contains(t, out.String(), "▀")
	assert.Equal(t, 7, strings.Count(out.String(), " "))
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		name   string
		cell   cell
		fg, bg Color
		ch     rune
	}{
		{"empty", cell{}, None, None, ' '},
		{"both same", cell{top: 5, bottom: 5}, 5, None, BlockFull},
		{"bottom only", cell{bottom: 7}, 7, None, BlockLowerHalf},
		{"top only", cell{top: 7}, 7, None, BlockUpperHalf},
		{"two colors", cell{top: 3, bottom: 9}, 3, 9, BlockUpperHalf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, bg, ch := tt.cell.glyph()
			assert.Equal(t, tt.fg, fg)
			assert.Equal(t, tt.bg, bg)
			assert.Equal(t, tt.ch, ch)
		})
	}
}

func TestFitCanvas(t *testing.T) {
	// 10x10 world: 2 rows of sub-pixels per column of width.
	w, h, offCol, offRow := FitCanvas(200, 60, 120, 40, 1)
	assert.Equal(t, 80, w)
	assert.Equal(t, 40, h)
	assert.Equal(t, 60, offCol)
	assert.Equal(t, 10, offRow)

	w, h, _, _ = FitCanvas(30, 60, 120, 40, 1)
	assert.Equal(t, 30, w)
	assert.Equal(t, 15, h)
}

func TestChunkWriterChunks(t *testing.T) {
	var out bytes.Buffer
	w := NewChunkWriter(&out)
	w.WriteString(strings.Repeat("x", 3*maxChunkSize+7))
	w.WriteAt(2, 3, "hi")
	require.NoError(t, w.Flush())

	assert.Equal(t, 3*maxChunkSize+7+len("\033[3;2Hhi"), out.Len())
	assert.Zero(t, w.Len())
}

func TestCanvasMarkTextDirty(t *testing.T) {
	var out bytes.Buffer
	w := NewChunkWriter(&out)
	c := NewCanvas(6, 3, testView)
	c.SetOffset(2, 1)
	c.Render(w)
	require.NoError(t, w.Flush())
	out.Reset()

	// Text at terminal column 4, row 3 covers canvas cells (1,1) and (2,1).
	c.MarkTextDirty(4, 3, 2)
	c.MarkTextDirty(1, 1, 40)
	c.Render(w)
	require.NoError(t, w.Flush())
	assert.Equal(t, "\033[3;4H\033[0m  \033[0m", out.String())
}
