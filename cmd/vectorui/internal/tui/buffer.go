package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is one terminal character and the style it is drawn with.
type cell struct {
	r     rune
	style int
}

// buffer is a 2D grid of cells. Styles are indexes into a palette so that
// runs of equal style can be rendered together.
type buffer struct {
	cells  []cell
	width  int
	height int
}

func newBuffer(width, height int) *buffer {
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i] = cell{r: ' '}
	}
	return &buffer{cells: cells, width: width, height: height}
}

func (b *buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *buffer) set(x, y int, r rune, style int) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = cell{r: r, style: style}
}

func (b *buffer) get(x, y int) cell {
	if !b.inBounds(x, y) {
		return cell{r: ' '}
	}
	return b.cells[y*b.width+x]
}

// fill sets every cell of the rectangle.
func (b *buffer) fill(x0, y0, x1, y1 int, r rune, style int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.set(x, y, r, style)
		}
	}
}

// text writes s starting at x, y, clipped to the buffer.
func (b *buffer) text(x, y int, s string, style int) {
	for _, r := range s {
		b.set(x, y, r, style)
		x++
	}
}

// render joins the rows, styling each run of cells that share a style.
func (b *buffer) render(palette []lipgloss.Style) string {
	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		cur := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(palette[cur].Render(run.String()))
			run.Reset()
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.style != cur {
				flush()
				cur = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return sb.String()
}

// plain returns the grid without styling.
func (b *buffer) plain() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y*b.width+x].r)
		}
	}
	return sb.String()
}
