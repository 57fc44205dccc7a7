package rules

import "strings"

// Board is a sparse piece placement: unoccupied squares are simply
// absent from the map.
type Board map[Position]Piece

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	nb := make(Board, len(b))
	for pos, piece := range b {
		nb[pos] = piece
	}
	return nb
}

// KingPositions locates each side's king. Both kings are expected to
// exist on any board the engine is handed.
func KingPositions(b Board) map[Color]Position {
	kings := make(map[Color]Position, 2)
	for pos, piece := range b {
		if piece.Kind() == King {
			kings[piece.Color()] = pos
		}
	}
	return kings
}

// CastlingRights holds the two independent castling availabilities for
// one color. They are only ever cleared, never re-set.
type CastlingRights struct {
	KingSide, QueenSide bool
}

// State is the aggregate game snapshot. The engine never mutates a
// State in place; every transition produces a new value.
type State struct {
	Board Board

	// Castling maps a color to its remaining rights. A color absent
	// from the map can never castle again.
	Castling map[Color]CastlingRights

	// DoubleStep holds the positions of pawns that have never moved;
	// only these may advance two squares. Shrinks only.
	DoubleStep PositionSet

	ToMove Color

	// EnPassant is the square a pawn landed on by double-stepping on
	// the immediately preceding ply, or NoPosition. It is cleared at
	// the start of every ApplyMove before possibly being re-set.
	EnPassant Position
}

func placePieces(b Board, doubleStep PositionSet, side Color) {
	rank := 0
	if side == Black {
		rank = 7
	}
	back := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range back {
		b[Position{file, rank}] = NewPiece(kind, side)
	}
	rank = 1
	if side == Black {
		rank = 6
	}
	for file := 0; file < 8; file++ {
		pos := Position{file, rank}
		b[pos] = NewPiece(Pawn, side)
		doubleStep.Add(pos)
	}
}

// NewState returns the standard starting position: 32 pieces, full
// castling rights for both colors, all 16 pawns double-step eligible,
// no en-passant target, White to move.
func NewState() State {
	s := State{
		Board: Board{},
		Castling: map[Color]CastlingRights{
			White: {KingSide: true, QueenSide: true},
			Black: {KingSide: true, QueenSide: true},
		},
		DoubleStep: PositionSet{},
		ToMove:     White,
		EnPassant:  NoPosition,
	}
	placePieces(s.Board, s.DoubleStep, White)
	placePieces(s.Board, s.DoubleStep, Black)
	return s
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	ns := State{
		Board:      s.Board.Clone(),
		Castling:   make(map[Color]CastlingRights, len(s.Castling)),
		DoubleStep: make(PositionSet, len(s.DoubleStep)),
		ToMove:     s.ToMove,
		EnPassant:  s.EnPassant,
	}
	for c, rights := range s.Castling {
		ns.Castling[c] = rights
	}
	for pos := range s.DoubleStep {
		ns.DoubleStep.Add(pos)
	}
	return ns
}

// InCheck reports whether the given color's king is attacked. The king
// must be present on the board.
func (s State) InCheck(c Color) bool {
	return kingAttacked(s.Board, c)
}

// String returns a text diagram of the state, rank 8 at the top.
func (s State) String() string {
	var sb strings.Builder
	sb.WriteString("to move: " + s.ToMove.String() + "\n")
	sb.WriteString("en passant: " + s.EnPassant.String() + "\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if piece, ok := s.Board[Position{file, rank}]; ok {
				sb.WriteString(piece.String())
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
