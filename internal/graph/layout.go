// Package graph computes avatar grid geometry and assembles svg documents.
package graph

// Render parameter defaults and bounds.
const (
	DefaultSize    = 40
	DefaultColumns = 5

	MinSize    = 20
	MaxSize    = 200
	MinColumns = 1
	MaxColumns = 100
)

// Params holds requested cell size and column count.
type Params struct {
	Size    int
	Columns int
}

// Clamp returns params bounded to <MinSize..MaxSize> and <MinColumns..MaxColumns>.
func (p Params) Clamp() Params {
	return Params{
		Size:    clamp(p.Size, MinSize, MaxSize),
		Columns: clamp(p.Columns, MinColumns, MaxColumns),
	}
}

// Layout is the grid geometry for given params and number of tiles.
// Columns must not be zero.
type Layout struct {
	Size    int
	Padding int
	Columns int
	Rows    int
	Width   int
	Height  int
}

// NewLayout computes layout for count tiles.
func NewLayout(p Params, count int) Layout {
	// Integer ceil, so size 30 gets padding 3, not the float 30*0.1 rounded up to 4.
	padding := ceilDiv(p.Size, 10)
	rows := ceilDiv(count, p.Columns)
	step := p.Size + padding

	return Layout{
		Size:    p.Size,
		Padding: padding,
		Columns: p.Columns,
		Rows:    rows,
		Width:   step * p.Columns,
		Height:  step * rows,
	}
}

// Step is the distance between origins of adjacent cells.
func (l Layout) Step() int {
	return l.Size + l.Padding
}

// Cell returns top left corner of i-th tile.
func (l Layout) Cell(i int) (x, y int) {
	return (i % l.Columns) * l.Step(), floorDiv(i, l.Columns) * l.Step()
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func ceilDiv(a, b int) int {
	q := a / b
	if r := a % b; r != 0 && (r > 0) == (b > 0) {
		q++
	}
	return q
}

func floorDiv(a, b int) int {
	q := a / b
	if r := a % b; r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}
