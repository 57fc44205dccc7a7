package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ilyakm/chess2d/internal/rules"
)

// promotionChoices is the picker order, top to bottom.
var promotionChoices = [4]rules.Kind{rules.Queen, rules.Rook, rules.Knight, rules.Bishop}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool    // Black's home rank at the bottom
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int, theme *Theme) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      theme,
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// SetFlipped sets whether the board is drawn from Black's perspective.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether the board is drawn from Black's perspective.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// PositionToScreen converts a board position to logical screen coordinates.
func (r *Renderer) PositionToScreen(pos rules.Position) (int, int) {
	file, rank := pos.File, pos.Rank
	if r.flipped {
		file, rank = 7-file, 7-rank
	}
	// Rank 0 at the bottom unless flipped.
	return file * r.squareSize, (7 - rank) * r.squareSize
}

// ScreenToPosition converts logical screen coordinates to a board
// position, or NoPosition when off the board.
func (r *Renderer) ScreenToPosition(x, y int) rules.Position {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return rules.NoPosition
	}
	file := x / r.squareSize
	rank := 7 - y/r.squareSize
	if r.flipped {
		file, rank = 7-file, 7-rank
	}
	return rules.Position{File: file, Rank: rank}
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x, y := r.PositionToScreen(rules.Position{File: file, Rank: rank})

			c := r.theme.LightSquare
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws last-move, selection and legal-move highlights.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected, lastFrom, lastTo rules.Position, dests rules.PositionSet) {
	if lastFrom != rules.NoPosition {
		r.highlightSquare(screen, lastFrom, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastTo, r.theme.LastMoveColor)
	}

	if selected != rules.NoPosition {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for to := range dests {
		r.drawLegalMoveIndicator(screen, to)
	}
}

// DrawCheck highlights the king's square when in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingPos rules.Position) {
	if kingPos != rules.NoPosition {
		r.highlightSquare(screen, kingPos, r.theme.CheckColor)
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, pos rules.Position, c color.RGBA) {
	x, y := r.PositionToScreen(pos)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// drawLegalMoveIndicator draws a dot on a legal destination square.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, pos rules.Position) {
	x, y := r.PositionToScreen(pos)
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2
	radius := r.s(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
}

// DrawPieces draws all pieces on the board, skipping the square being
// dragged (NoPosition to skip none).
func (r *Renderer) DrawPieces(screen *ebiten.Image, board rules.Board, skip rules.Position) {
	for pos, piece := range board {
		if pos == skip {
			continue
		}
		x, y := r.PositionToScreen(pos)
		r.sprites.DrawPieceAt(screen, piece, int(r.s(x)), int(r.s(y)), int(r.s(r.squareSize)))
	}
}

// DrawDraggedPiece draws the piece being dragged, centered on the
// cursor. mouseX, mouseY are logical coordinates.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece rules.Piece, mouseX, mouseY int) {
	half := int(r.s(r.squareSize)) / 2
	x := int(r.s(mouseX)) - half
	y := int(r.s(mouseY)) - half
	r.sprites.DrawPieceAt(screen, piece, x, y, int(r.s(r.squareSize)))
}

// promotionRect returns the logical bounds of picker slot i.
func (r *Renderer) promotionRect(i int) (x, y, w, h int) {
	w, h = r.squareSize, r.squareSize
	x = r.boardSize/2 - w/2
	y = r.boardSize/2 - 2*h + i*h
	return x, y, w, h
}

// DrawPromotionPicker draws the promotion choice column for the given
// color on top of the board.
func (r *Renderer) DrawPromotionPicker(screen *ebiten.Image, c rules.Color) {
	// Dim the board underneath.
	vector.DrawFilledRect(screen, 0, 0, r.s(r.boardSize), r.s(r.boardSize),
		color.RGBA{0, 0, 0, 120}, false)

	for i, kind := range promotionChoices {
		x, y, w, h := r.promotionRect(i)
		vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(w), r.s(h), r.theme.LightSquare, false)
		r.sprites.DrawPieceAt(screen, rules.NewPiece(kind, c), int(r.s(x)), int(r.s(y)), int(r.s(r.squareSize)))
	}
}

// PromotionKindAt maps a click in logical coordinates to the picked
// promotion kind.
func (r *Renderer) PromotionKindAt(mx, my int) (rules.Kind, bool) {
	for i, kind := range promotionChoices {
		x, y, w, h := r.promotionRect(i)
		if mx >= x && mx < x+w && my >= y && my < y+h {
			return kind, true
		}
	}
	return 0, false
}
