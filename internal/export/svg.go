// Package export renders a position as a standalone SVG document, for
// sharing a game snapshot outside the app.
package export

import (
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/exp/slices"

	"github.com/ilyakm/chess2d/internal/rules"
)

const (
	squareSize = 64
	boardSize  = 8 * squareSize
)

// Default board colors; kept independent from the UI theme so exported
// files look the same regardless of user settings.
const (
	lightFill = "#f0d9b5"
	darkFill  = "#b58863"
)

// WriteSVG writes the position as an SVG board, rank 8 at the top.
func WriteSVG(w io.Writer, s rules.State) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			fill := lightFill
			if (file+rank)%2 == 0 {
				fill = darkFill
			}
			x := file * squareSize
			y := (7 - rank) * squareSize
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)
		}
	}

	// Deterministic output: draw pieces in square order.
	positions := make([]rules.Position, 0, len(s.Board))
	for pos := range s.Board {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, func(a, b rules.Position) int {
		if a.Rank != b.Rank {
			return a.Rank - b.Rank
		}
		return a.File - b.File
	})

	for _, pos := range positions {
		x := pos.File*squareSize + squareSize/2
		y := (7-pos.Rank)*squareSize + squareSize*3/4
		canvas.Text(x, y, s.Board[pos].Glyph(),
			"text-anchor:middle;font-size:48px;fill:#1a1a1a")
	}

	canvas.End()
}

// WriteSVGFile renders the position into the named file.
func WriteSVGFile(path string, s rules.State) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	WriteSVG(f, s)
	return f.Close()
}
