package render

import (
	stdcolor "image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// TermSink presents a RenderTarget's color buffer in a terminal using
// half-block characters (▀), doubling vertical resolution: each terminal
// row shows two RenderTarget rows, one as foreground and one as
// background color.
type TermSink struct {
	Target *RenderTarget
}

// NewTermSink wraps a RenderTarget for terminal presentation.
func NewTermSink(target *RenderTarget) *TermSink {
	return &TermSink{Target: target}
}

// Draw renders the current contents of the wrapped RenderTarget into area
// of scr. The target's height should be 2x the terminal rows.
func (s *TermSink) Draw(scr uv.Screen, area uv.Rectangle) {
	t := s.Target
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1
		if botY >= t.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X && col < t.Width; col++ {
			top := t.pixelAt(col, topY)
			bot := t.pixelAt(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: colorToStd(top),
					Bg: colorToStd(bot),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// pixelAt reads a RenderTarget pixel as a Color.
func (rt *RenderTarget) pixelAt(x, y int) Color {
	o := rt.offset(x, y)
	return Color{rt.Color[o], rt.Color[o+1], rt.Color[o+2], rt.Color[o+3]}
}

func colorToStd(c Color) stdcolor.Color {
	if c.A == 0 {
		return nil
	}
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGB creates an opaque Color from RGB values.
func RGB(r, g, b byte) Color {
	return Color{r, g, b, 255}
}
