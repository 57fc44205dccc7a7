package rules

// kingAttacked reports whether c's king is in the opponent's side-wide
// attack set. Panics if the board has no king of that color: such a
// board can never arise when only LegalMoves entries are committed.
func kingAttacked(b Board, c Color) bool {
	king, ok := KingPositions(b)[c]
	if !ok {
		panic("rules: board has no " + c.String() + " king")
	}
	return b.AttackedBySide(c.Other()).Contains(king)
}

// pawnMoves returns pawn move destinations: forward one if empty,
// forward two if still double-step eligible and both squares are
// empty, and the diagonal attack squares only when they hold an
// opposing piece. En passant is generated separately.
func (s State) pawnMoves(pos Position) PositionSet {
	out := PositionSet{}
	dir := forward(s.Board[pos].Color())
	one := Position{pos.File, pos.Rank + dir}
	two := Position{pos.File, pos.Rank + 2*dir}
	if _, occupied := s.Board[one]; !occupied {
		out.Add(one)
		if s.DoubleStep.Contains(pos) {
			if _, occupied := s.Board[two]; !occupied {
				out.Add(two)
			}
		}
	}
	for target := range s.Board.AttackedSquares(pos) {
		if _, occupied := s.Board[target]; occupied {
			out.Add(target)
		}
	}
	return out
}

// PseudoLegalMoves returns the move destinations for the piece at pos,
// ignoring whether the move exposes its own king. For every piece but
// the pawn, movement equals attack.
func (s State) PseudoLegalMoves(pos Position) PositionSet {
	piece, ok := s.Board[pos]
	if !ok {
		return PositionSet{}
	}
	if piece.Kind() == Pawn {
		return s.pawnMoves(pos)
	}
	return s.Board.AttackedSquares(pos)
}

// moveKeepsKingSafe simulates relocating the piece at from onto to on
// a scratch board, with no other side effects, and reports whether the
// mover's king survives.
func (s State) moveKeepsKingSafe(from, to Position) bool {
	b := s.Board.Clone()
	piece := b[from]
	delete(b, from)
	b[to] = piece
	return !kingAttacked(b, s.ToMove)
}

// addEnPassantMoves adds en passant captures for the side to move.
// Each candidate is simulated like a normal capture and must pass the
// same king-safety check as ordinary moves.
func (s State) addEnPassantMoves(moves MoveMap) {
	target := s.EnPassant
	if target == NoPosition {
		return
	}
	piece, ok := s.Board[target]
	if !ok || piece.Kind() != Pawn || piece.Color() != s.ToMove.Other() {
		return
	}
	dir := forward(s.ToMove)
	for _, df := range [2]int{-1, 1} {
		from := Position{target.File + df, target.Rank}
		if !from.Valid() {
			continue
		}
		capturer, ok := s.Board[from]
		if !ok || capturer.Kind() != Pawn || capturer.Color() != s.ToMove {
			continue
		}
		to := Position{target.File, target.Rank + dir}
		b := s.Board.Clone()
		delete(b, target)
		delete(b, from)
		b[to] = capturer
		if kingAttacked(b, s.ToMove) {
			continue
		}
		moves.add(from, to)
	}
}

// addCastlingMoves adds the castling king moves for the side to move.
// Preconditions: the right is still available, the king is not in
// check, every square strictly between king and rook is empty, and no
// square the king transits through (destination included) is attacked.
// The path-attack check subsumes the usual self-check simulation.
func (s State) addCastlingMoves(moves MoveMap) {
	rights, ok := s.Castling[s.ToMove]
	if !ok {
		return
	}
	king, ok := KingPositions(s.Board)[s.ToMove]
	if !ok {
		panic("rules: board has no " + s.ToMove.String() + " king")
	}
	attacked := s.Board.AttackedBySide(s.ToMove.Other())
	if attacked.Contains(king) {
		return
	}
	rank := king.Rank
	if rights.KingSide {
		path := []Position{{5, rank}, {6, rank}}
		if s.castlePathClear(path, path, attacked) {
			moves.add(king, Position{6, rank})
		}
	}
	if rights.QueenSide {
		empty := []Position{{1, rank}, {2, rank}, {3, rank}}
		if s.castlePathClear(empty, empty[1:], attacked) {
			moves.add(king, Position{2, rank})
		}
	}
}

func (s State) castlePathClear(mustBeEmpty, mustBeSafe []Position, attacked PositionSet) bool {
	for _, pos := range mustBeEmpty {
		if _, occupied := s.Board[pos]; occupied {
			return false
		}
	}
	for _, pos := range mustBeSafe {
		if attacked.Contains(pos) {
			return false
		}
	}
	return true
}

// LegalMoves returns the complete legal-move map for the side to move.
// Every pseudo-legal move is filtered through king-safety simulation;
// origins whose move sets come up empty are omitted entirely. An empty
// map means the game is over (checkmate or stalemate, undistinguished
// here; InCheck on the side to move tells the two apart).
func (s State) LegalMoves() MoveMap {
	moves := MoveMap{}
	for pos, piece := range s.Board {
		if piece.Color() != s.ToMove {
			continue
		}
		legal := PositionSet{}
		for to := range s.PseudoLegalMoves(pos) {
			if s.moveKeepsKingSafe(pos, to) {
				legal.Add(to)
			}
		}
		if len(legal) > 0 {
			moves[pos] = legal
		}
	}
	s.addEnPassantMoves(moves)
	s.addCastlingMoves(moves)
	return moves
}
