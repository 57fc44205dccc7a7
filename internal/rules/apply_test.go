package rules

import "testing"

func TestNewState(t *testing.T) {
	s := NewState()
	if len(s.Board) != 32 {
		t.Errorf("standard setup has 32 pieces, got %d", len(s.Board))
	}
	if len(s.DoubleStep) != 16 {
		t.Errorf("all 16 pawns start double-step eligible, got %d", len(s.DoubleStep))
	}
	for _, c := range [2]Color{White, Black} {
		rights, ok := s.Castling[c]
		if !ok || !rights.KingSide || !rights.QueenSide {
			t.Errorf("%v should start with full castling rights", c)
		}
	}
	if s.ToMove != White {
		t.Errorf("white moves first")
	}
	if s.EnPassant != NoPosition {
		t.Errorf("no en-passant target at game start")
	}
	kings := KingPositions(s.Board)
	if kings[White] != (Position{4, 0}) || kings[Black] != (Position{4, 7}) {
		t.Errorf("kings belong on e1 and e8, got %v", kings)
	}
}

func TestApplyMoveBasics(t *testing.T) {
	s := NewState()
	next, promo := s.ApplyMove(Position{4, 1}, Position{4, 3})

	if promo != NoPosition {
		t.Errorf("no promotion expected, got %v", promo)
	}
	if next.ToMove != Black {
		t.Errorf("turn must flip to black")
	}
	if _, ok := next.Board[Position{4, 1}]; ok {
		t.Errorf("origin square must be vacated")
	}
	if next.Board[Position{4, 3}] != WhitePawn {
		t.Errorf("pawn must land on the destination")
	}
	if next.EnPassant != (Position{4, 3}) {
		t.Errorf("double step must set the en-passant target, got %v", next.EnPassant)
	}
	if next.DoubleStep.Contains(Position{4, 1}) {
		t.Errorf("moved pawn loses double-step eligibility")
	}

	// The input state is untouched.
	if s.Board[Position{4, 1}] != WhitePawn || s.EnPassant != NoPosition {
		t.Errorf("ApplyMove must not mutate its input state")
	}
}

func TestEnPassantTargetExpires(t *testing.T) {
	s := NewState()
	s, _ = s.ApplyMove(Position{4, 1}, Position{4, 3})
	if s.EnPassant == NoPosition {
		t.Fatalf("double step should set the target")
	}
	s, _ = s.ApplyMove(Position{0, 6}, Position{0, 5})
	if s.EnPassant != NoPosition {
		t.Errorf("target must be cleared after one ply, got %v", s.EnPassant)
	}
}

func TestApplyEnPassantCapture(t *testing.T) {
	s := bareState(White, map[Position]Piece{
		{0, 0}: WhiteKing,
		{7, 4}: BlackPawn,
		{6, 4}: WhitePawn,
	})
	s.EnPassant = Position{7, 4}

	next, promo := s.ApplyMove(Position{6, 4}, Position{7, 5})
	if promo != NoPosition {
		t.Errorf("unexpected promotion %v", promo)
	}
	if _, ok := next.Board[Position{7, 4}]; ok {
		t.Errorf("the passed pawn must be removed from the old target square")
	}
	if next.Board[Position{7, 5}] != WhitePawn {
		t.Errorf("capturing pawn must land on the skipped square")
	}
}

func TestApplyCastling(t *testing.T) {
	t.Run("KingSide", func(t *testing.T) {
		s := bareState(White, map[Position]Piece{
			{4, 0}: WhiteKing,
			{7, 0}: WhiteRook,
			{0, 0}: WhiteRook,
		})
		s.Castling[White] = CastlingRights{KingSide: true, QueenSide: true}

		next, _ := s.ApplyMove(Position{4, 0}, Position{6, 0})
		if next.Board[Position{6, 0}] != WhiteKing {
			t.Errorf("king must land on g1")
		}
		if next.Board[Position{5, 0}] != WhiteRook {
			t.Errorf("rook must relocate to f1")
		}
		if _, ok := next.Board[Position{7, 0}]; ok {
			t.Errorf("rook must leave h1")
		}
		if _, ok := next.Castling[White]; ok {
			t.Errorf("castling revokes both rights for the mover")
		}
	})

	t.Run("QueenSide", func(t *testing.T) {
		s := bareState(Black, map[Position]Piece{
			{4, 7}: BlackKing,
			{0, 7}: BlackRook,
		})
		s.Castling[Black] = CastlingRights{KingSide: true, QueenSide: true}

		next, _ := s.ApplyMove(Position{4, 7}, Position{2, 7})
		if next.Board[Position{2, 7}] != BlackKing {
			t.Errorf("king must land on c8")
		}
		if next.Board[Position{3, 7}] != BlackRook {
			t.Errorf("rook must relocate to d8")
		}
		if _, ok := next.Board[Position{0, 7}]; ok {
			t.Errorf("rook must leave a8")
		}
	})
}

func TestRookMoveRevokesRights(t *testing.T) {
	s := bareState(White, map[Position]Piece{
		{4, 0}: WhiteKing,
		{0, 0}: WhiteRook,
		{7, 0}: WhiteRook,
	})
	s.Castling[White] = CastlingRights{KingSide: true, QueenSide: true}

	next, _ := s.ApplyMove(Position{0, 0}, Position{0, 4})
	rights := next.Castling[White]
	if rights.QueenSide {
		t.Errorf("queen-side rook move must clear queen-side rights")
	}
	if !rights.KingSide {
		t.Errorf("king-side rights must survive a queen-side rook move")
	}

}

func TestRookMoveFromNonHomeFile(t *testing.T) {
	s := bareState(White, map[Position]Piece{
		{4, 0}: WhiteKing,
		{3, 3}: WhiteRook,
	})
	s.Castling[White] = CastlingRights{KingSide: true, QueenSide: false}

	next, _ := s.ApplyMove(Position{3, 3}, Position{3, 6})
	if got := next.Castling[White]; got != s.Castling[White] {
		t.Errorf("rook move from a non-home file must not touch rights, got %+v", got)
	}
}

func TestKingMoveRevokesRights(t *testing.T) {
	s := bareState(White, map[Position]Piece{
		{4, 0}: WhiteKing,
		{0, 0}: WhiteRook,
		{7, 0}: WhiteRook,
	})
	s.Castling[White] = CastlingRights{KingSide: true, QueenSide: true}

	next, _ := s.ApplyMove(Position{4, 0}, Position{4, 1})
	if _, ok := next.Castling[White]; ok {
		t.Errorf("any king move revokes both castling rights")
	}
	if _, ok := next.Board[Position{0, 0}]; !ok {
		t.Errorf("a one-square king move must not relocate rooks")
	}
}

func TestPromotion(t *testing.T) {
	s := bareState(White, map[Position]Piece{
		{0, 0}: WhiteKing,
		{7, 7}: BlackKing,
		{1, 6}: WhitePawn,
	})

	next, promo := s.ApplyMove(Position{1, 6}, Position{1, 7})
	if promo != (Position{1, 7}) {
		t.Fatalf("reaching the last rank must flag a pending promotion, got %v", promo)
	}
	if next.Board[promo] != WhitePawn {
		t.Errorf("the pawn stays on the board until the promotion is resolved")
	}

	resolved := next.ResolvePromotion(promo, Queen)
	if resolved.Board[promo] != WhiteQueen {
		t.Errorf("promotion must replace the pawn with the chosen kind and color")
	}
	if next.Board[promo] != WhitePawn {
		t.Errorf("ResolvePromotion must not mutate its input state")
	}
}

func TestApplyMovePanicsOnEmptyOrigin(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ApplyMove on an empty origin must panic")
		}
	}()
	s := NewState()
	s.ApplyMove(Position{4, 4}, Position{4, 5})
}
