package graph

import (
	"bytes"
	"fmt"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// Tile is a single avatar placed in the grid.
type Tile struct {
	ID    string
	Image string
	// Link is a target of the tile hyperlink. Only used by Linked.
	Link string
}

// Clipped renders tiles as circle-clipped images referencing Image directly.
func Clipped(l Layout, tiles []Tile) []byte {
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Startview(l.Width, l.Height, 0, 0, l.Width, l.Height)

	radius := float64(l.Size) / 2
	for i, t := range tiles {
		x, y := l.Cell(i)
		clipID := "circle-" + EscapeAttr(t.ID)

		canvas.Def()
		canvas.ClipPath(`id="` + clipID + `"`)
		fmt.Fprintf(canvas.Writer, "<circle cx=\"%s\" cy=\"%s\" r=\"%s\" />\n",
			formatFloat(float64(x)+radius),
			formatFloat(float64(y)+radius),
			formatFloat(radius),
		)
		canvas.ClipEnd()
		canvas.DefEnd()
		canvas.Image(x, y, l.Size, l.Size, EscapeAttr(t.Image),
			`preserveAspectRatio="xMidYMid slice"`,
			`clip-path="url(#`+clipID+`)"`,
		)
	}

	canvas.End()
	return buf.Bytes()
}

// Linked renders tiles as images wrapped in hyperlinks to Link.
func Linked(l Layout, tiles []Tile) []byte {
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Startview(l.Width, l.Height, 0, 0, l.Width, l.Height)

	for i, t := range tiles {
		x, y := l.Cell(i)
		fmt.Fprintf(canvas.Writer,
			"<a xlink:href=\"%s\" class=\"opencollective-svg\" target=\"_blank\" rel=\"nofollow sponsored\" id=\"%s\">\n",
			EscapeAttr(t.Link),
			EscapeAttr(t.ID),
		)
		canvas.Image(x, y, l.Size, l.Size, EscapeAttr(t.Image))
		canvas.LinkEnd()
	}

	canvas.End()
	return buf.Bytes()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
