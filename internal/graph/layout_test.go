package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
		want   Params
	}{
		{
			name:   "within bounds",
			params: Params{Size: 40, Columns: 5},
			want:   Params{Size: 40, Columns: 5},
		},
		{
			name:   "below bounds",
			params: Params{Size: 1, Columns: -3},
			want:   Params{Size: MinSize, Columns: MinColumns},
		},
		{
			name:   "above bounds",
			params: Params{Size: 5000, Columns: 101},
			want:   Params{Size: MaxSize, Columns: MaxColumns},
		},
		{
			name:   "edges",
			params: Params{Size: MaxSize, Columns: MinColumns},
			want:   Params{Size: MaxSize, Columns: MinColumns},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Clamp())
		})
	}
}

func TestNewLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
		count  int
		want   Layout
	}{
		{
			name:   "12 contributors in 5 columns",
			params: Params{Size: 40, Columns: 5},
			count:  12,
			want:   Layout{Size: 40, Padding: 4, Columns: 5, Rows: 3, Width: 220, Height: 132},
		},
		{
			name:   "padding rounded up",
			params: Params{Size: 41, Columns: 5},
			count:  5,
			want:   Layout{Size: 41, Padding: 5, Columns: 5, Rows: 1, Width: 230, Height: 46},
		},
		{
			name:   "exact tenth",
			params: Params{Size: 30, Columns: 2},
			count:  4,
			want:   Layout{Size: 30, Padding: 3, Columns: 2, Rows: 2, Width: 66, Height: 66},
		},
		{
			name:   "no tiles",
			params: Params{Size: 40, Columns: 5},
			count:  0,
			want:   Layout{Size: 40, Padding: 4, Columns: 5, Rows: 0, Width: 220, Height: 0},
		},
		{
			name:   "negative columns",
			params: Params{Size: 40, Columns: -5},
			count:  12,
			want:   Layout{Size: 40, Padding: 4, Columns: -5, Rows: -2, Width: -220, Height: -88},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLayout(tt.params, tt.count))
		})
	}
}

func TestLayoutCell(t *testing.T) {
	t.Parallel()

	l := NewLayout(Params{Size: 40, Columns: 5}, 12)

	seen := make(map[[2]int]bool)
	for i := 0; i < 12; i++ {
		x, y := l.Cell(i)
		assert.False(t, seen[[2]int{x, y}], "cell %d overlaps", i)
		seen[[2]int{x, y}] = true

		assert.True(t, x >= 0 && x+l.Size <= l.Width, "cell %d x out of grid", i)
		assert.True(t, y >= 0 && y+l.Size <= l.Height, "cell %d y out of grid", i)
	}

	x, y := l.Cell(0)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	x, y = l.Cell(6)
	assert.Equal(t, [2]int{44, 44}, [2]int{x, y})
	x, y = l.Cell(11)
	assert.Equal(t, [2]int{44, 88}, [2]int{x, y})
}

func TestEscapeAttr(t *testing.T) {
	assert.Equal(t, "a&amp;b&lt;c&gt;", EscapeAttr("a&b<c>"))
	assert.Equal(t, "&quot;x&apos;", EscapeAttr(`"x'`))
	assert.Equal(t, "&amp;amp;", EscapeAttr("&amp;"))
	assert.Equal(t, "plain", EscapeAttr("plain"))
}
