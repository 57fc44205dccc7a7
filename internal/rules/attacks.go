package rules

// Attack generation: the set of squares a piece could capture on,
// ignoring whether doing so would expose its own king. Used to build
// opponent threat maps; these are not legal moves.

var knightOffsets = [8][2]int{
	{-2, 1}, {-2, -1}, {2, 1}, {2, -1},
	{1, -2}, {1, 2}, {-1, -2}, {-1, 2},
}

// forward returns the pawn advance direction for a color.
func forward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// slide walks one ray outward from pos. Empty squares are included and
// the ray continues; the first occupied square stops it, included only
// if it holds an opposing piece.
func (b Board) slide(pos Position, df, dr int, out PositionSet) {
	own := b[pos].Color()
	for step := 1; step < 8; step++ {
		target := Position{pos.File + df*step, pos.Rank + dr*step}
		if !target.Valid() {
			return
		}
		if piece, ok := b[target]; ok {
			if piece.Color() != own {
				out.Add(target)
			}
			return
		}
		out.Add(target)
	}
}

// fromPoints includes each fixed target square that is in bounds and
// not occupied by a friendly piece.
func (b Board) fromPoints(pos Position, points []Position, out PositionSet) {
	own := b[pos].Color()
	for _, target := range points {
		if !target.Valid() {
			continue
		}
		if piece, ok := b[target]; ok && piece.Color() == own {
			continue
		}
		out.Add(target)
	}
}

func (b Board) orthogonalAttacks(pos Position, out PositionSet) {
	b.slide(pos, 1, 0, out)
	b.slide(pos, -1, 0, out)
	b.slide(pos, 0, 1, out)
	b.slide(pos, 0, -1, out)
}

func (b Board) diagonalAttacks(pos Position, out PositionSet) {
	b.slide(pos, 1, 1, out)
	b.slide(pos, 1, -1, out)
	b.slide(pos, -1, 1, out)
	b.slide(pos, -1, -1, out)
}

func (b Board) knightAttacks(pos Position, out PositionSet) {
	points := make([]Position, 0, 8)
	for _, off := range knightOffsets {
		points = append(points, Position{pos.File + off[0], pos.Rank + off[1]})
	}
	b.fromPoints(pos, points, out)
}

func (b Board) kingAttacks(pos Position, out PositionSet) {
	points := make([]Position, 0, 8)
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			points = append(points, Position{pos.File + df, pos.Rank + dr})
		}
	}
	b.fromPoints(pos, points, out)
}

// pawnAttacks adds the two forward-diagonal squares. Pawn attack
// squares differ from pawn move squares: they count whether or not a
// capturable piece currently stands there.
func (b Board) pawnAttacks(pos Position, out PositionSet) {
	dir := forward(b[pos].Color())
	b.fromPoints(pos, []Position{
		{pos.File - 1, pos.Rank + dir},
		{pos.File + 1, pos.Rank + dir},
	}, out)
}

// AttackedSquares returns every square the piece at pos threatens.
// The square must be occupied.
func (b Board) AttackedSquares(pos Position) PositionSet {
	out := PositionSet{}
	switch b[pos].Kind() {
	case King:
		b.kingAttacks(pos, out)
	case Queen:
		b.orthogonalAttacks(pos, out)
		b.diagonalAttacks(pos, out)
	case Bishop:
		b.diagonalAttacks(pos, out)
	case Knight:
		b.knightAttacks(pos, out)
	case Rook:
		b.orthogonalAttacks(pos, out)
	case Pawn:
		b.pawnAttacks(pos, out)
	}
	return out
}

// AttackedBySide returns the union of attacked squares over every
// piece of the given color.
func (b Board) AttackedBySide(c Color) PositionSet {
	out := PositionSet{}
	for pos, piece := range b {
		if piece.Color() != c {
			continue
		}
		for target := range b.AttackedSquares(pos) {
			out.Add(target)
		}
	}
	return out
}
