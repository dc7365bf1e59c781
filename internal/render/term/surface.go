// Package term renders the particle network into a terminal with tcell.
// Each cell stands for a CellWidth×CellHeight block of viewport units.
package term

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/olivierh59500/particle-network-go/internal/network"
	"github.com/olivierh59500/particle-network-go/internal/render"
)

const (
	NodeRune = '●'
	LinkRune = '·'

	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	DefaultContrast   = 8
)

// Surface is a render.Surface over a tcell screen.
type Surface struct {
	render.Pen

	CellWidth, CellHeight float64
	// Contrast multiplies link alpha before it is turned into a gray
	// level; links meant for a bitmap are too faint to show as glyphs.
	Contrast   float64
	Background tcell.Color

	screen tcell.Screen
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Surface {
	return &Surface{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Contrast:   DefaultContrast,
		Background: tcell.ColorBlack,
		screen:     screen,
	}
}

// Viewport returns the screen size in viewport units.
func (s *Surface) Viewport() network.Size {
	w, h := s.screen.Size()
	return s.CellsToViewport(w, h)
}

// CellsToViewport converts a size in cells to viewport units.
func (s *Surface) CellsToViewport(cols, rows int) network.Size {
	return network.Size{W: float64(cols) * s.CellWidth, H: float64(rows) * s.CellHeight}
}

// CellCenter returns the viewport position of the middle of a cell.
func (s *Surface) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.CellWidth, (float64(row) + 0.5) * s.CellHeight
}

func (s *Surface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.CellWidth)), int(math.Floor(y / s.CellHeight))
}

func (s *Surface) bounds() image.Rectangle {
	w, h := s.screen.Size()
	return image.Rect(0, 0, w, h)
}

func (s *Surface) style(fg color.NRGBA, level float64) tcell.Style {
	level = math.Min(1, math.Max(0, level))
	return tcell.StyleDefault.
		Background(s.Background).
		Foreground(tcell.NewRGBColor(
			int32(math.Round(float64(fg.R)*level)),
			int32(math.Round(float64(fg.G)*level)),
			int32(math.Round(float64(fg.B)*level)),
		))
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := render.PixelRect(x/s.CellWidth, y/s.CellHeight, w/s.CellWidth, h/s.CellHeight).Intersect(s.bounds())
	st := tcell.StyleDefault.Background(s.Background)
	for row := r.Min.Y; row < r.Max.Y; row++ {
		for col := r.Min.X; col < r.Max.X; col++ {
			s.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}

// Stroke plots every path segment as a dotted cell line whose brightness
// follows the stroke alpha.
func (s *Surface) Stroke() {
	level := float64(s.StrokeColor.A) / 255 * s.Contrast
	st := s.style(s.StrokeColor, level)
	b := s.bounds()

	s.Segments(func(a, z render.Point) {
		x0, y0 := s.cell(a.X, a.Y)
		x1, y1 := s.cell(z.X, z.Y)
		plotLine(x0, y0, x1, y1, func(col, row int) {
			if image.Pt(col, row).In(b) {
				s.screen.SetContent(col, row, LinkRune, nil, st)
			}
		})
	})
}

// FillCircle marks the cell under (x, y). Particles are far smaller than a cell.
func (s *Surface) FillCircle(x, y, r float64) {
	col, row := s.cell(x, y)
	if image.Pt(col, row).In(s.bounds()) {
		s.screen.SetContent(col, row, NodeRune, nil, s.style(s.FillColor, float64(s.FillColor.A)/255))
	}
}

// FillText writes str starting in the cell holding (x, y).
func (s *Surface) FillText(str string, x, y float64) {
	col, row := s.cell(x, y)
	st := s.style(s.FillColor, float64(s.FillColor.A)/255)
	b := s.bounds()
	for _, r := range str {
		if image.Pt(col, row).In(b) {
			s.screen.SetContent(col, row, r, nil, st)
		}
		col++
	}
}

// Flush presents the frame.
func (s *Surface) Flush() {
	s.screen.Show()
}

// plotLine walks the cells from (x0, y0) to (x1, y1) inclusive (Bresenham).
func plotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
