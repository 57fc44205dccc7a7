package rules

// Kind represents the type of a chess piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece combines Kind and Color into a single value, so a piece with an
// impossible color cannot be represented.
// Encoded as: kind + color*6
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
)

// NewPiece creates a Piece from Kind and Color.
func NewPiece(k Kind, c Color) Piece {
	return Piece(k) + Piece(c)*6
}

// Kind returns the Kind of the piece.
func (p Piece) Kind() Kind {
	return Kind(p % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	return Color(p / 6)
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	chars := "PNBRQKpnbrqk"
	if int(p) >= len(chars) {
		return " "
	}
	return string(chars[p])
}

// Glyph returns the unicode figurine for the piece (e.g. "♞").
func (p Piece) Glyph() string {
	glyphs := []string{"♙", "♘", "♗", "♖", "♕", "♔", "♟", "♞", "♝", "♜", "♛", "♚"}
	if int(p) >= len(glyphs) {
		return " "
	}
	return glyphs[p]
}
