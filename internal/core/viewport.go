package core

// Viewport maps a fixed logical canvas (in pixels) onto a Screen of any size.
// The simulation never sees terminal cells; renderers go through a Viewport.
type Viewport struct {
	CanvasW, CanvasH int // Logical canvas size in pixels
	CellsW, CellsH   int // Target screen size in cells
}

// NewViewport creates a viewport for the given canvas and screen sizes.
func NewViewport(canvasW, canvasH, cellsW, cellsH int) Viewport {
	return Viewport{
		CanvasW: max(canvasW, 1),
		CanvasH: max(canvasH, 1),
		CellsW:  max(cellsW, 0),
		CellsH:  max(cellsH, 0),
	}
}

// ColumnOf returns the screen column containing logical x.
func (v Viewport) ColumnOf(x int) int {
	return floorDiv(x*v.CellsW, v.CanvasW)
}

// RowOf returns the screen row containing logical y.
func (v Viewport) RowOf(y int) int {
	return floorDiv(y*v.CellsH, v.CanvasH)
}

// ToCell converts a logical point to a screen cell.
func (v Viewport) ToCell(x, y int) (int, int) {
	return v.ColumnOf(x), v.RowOf(y)
}

// RectToCells converts a logical rectangle to the cells it covers.
// A non-empty rectangle always covers at least one cell.
func (v Viewport) RectToCells(r Rect) Rect {
	x0, y0 := v.ToCell(r.X, r.Y)
	if r.W <= 0 || r.H <= 0 {
		return NewRect(x0, y0, 0, 0)
	}
	x1 := ceilDiv(r.Right()*v.CellsW, v.CanvasW)
	y1 := ceilDiv(r.Bottom()*v.CellsH, v.CanvasH)
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
