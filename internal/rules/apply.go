package rules

import "fmt"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ApplyMove commits a move assumed to be a member of LegalMoves and
// returns the successor state plus the square of a pawn awaiting
// promotion, or NoPosition. The pawn is left standing on the back rank
// until ResolvePromotion replaces it; LegalMoves must not be queried
// in between. Panics if the origin square is empty.
func (s State) ApplyMove(from, to Position) (State, Position) {
	next := s.Clone()
	piece, ok := next.Board[from]
	if !ok {
		panic(fmt.Sprintf("rules: no piece at %v", from))
	}
	delete(next.Board, from)
	next.EnPassant = NoPosition
	promotion := NoPosition

	switch piece.Kind() {
	case King:
		delete(next.Castling, s.ToMove)
		// A two-file king move is a castling commit: relocate the rook
		// from its home file to the square the king just crossed.
		if abs(from.File-to.File) == 2 {
			rookFrom := Position{0, to.Rank}
			rookTo := Position{3, to.Rank}
			if to.File == 6 {
				rookFrom = Position{7, to.Rank}
				rookTo = Position{5, to.Rank}
			}
			rook, ok := next.Board[rookFrom]
			if !ok {
				panic(fmt.Sprintf("rules: castling without a rook at %v", rookFrom))
			}
			delete(next.Board, rookFrom)
			next.Board[rookTo] = rook
		}
	case Rook:
		if rights, ok := next.Castling[piece.Color()]; ok {
			switch from.File {
			case 0:
				rights.QueenSide = false
			case 7:
				rights.KingSide = false
			}
			next.Castling[piece.Color()] = rights
		}
	case Pawn:
		delete(next.DoubleStep, from)
		if s.EnPassant != NoPosition && s.EnPassant.File == to.File && from.Rank == s.EnPassant.Rank {
			// En passant capture: the victim sits on the old target
			// square, not on the destination.
			delete(next.Board, s.EnPassant)
		} else if abs(from.Rank-to.Rank) == 2 {
			next.EnPassant = to
		}
		if to.Rank == 0 || to.Rank == 7 {
			promotion = to
		}
	}

	next.Board[to] = piece
	next.ToMove = s.ToMove.Other()
	return next, promotion
}

// ResolvePromotion replaces the pawn standing at pos with a piece of
// the chosen kind and the pawn's own color, and returns the new state.
// The caller picks the kind; a non-promotable choice is a caller bug.
func (s State) ResolvePromotion(pos Position, k Kind) State {
	next := s.Clone()
	pawn, ok := next.Board[pos]
	if !ok {
		panic(fmt.Sprintf("rules: no piece to promote at %v", pos))
	}
	next.Board[pos] = NewPiece(k, pawn.Color())
	return next
}
