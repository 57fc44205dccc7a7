// Package rules implements the chess rules engine: board state and
// fully legal move generation, including check avoidance, castling,
// en passant and pawn promotion triggering. Every operation is a pure
// function of its inputs; successor states are new values and the
// caller holds exactly one current state at a time.
package rules

import "fmt"

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Position identifies a board square by file (column) and rank (row),
// both in [0,8). Rank 0 is White's home rank, rank 7 is Black's.
type Position struct {
	File, Rank int
}

// NoPosition is the sentinel for "no square".
var NoPosition = Position{-1, -1}

// Valid reports whether the position lies on the 8x8 board.
func (p Position) Valid() bool {
	return p.File >= 0 && p.File < 8 && p.Rank >= 0 && p.Rank < 8
}

// String returns the algebraic notation for the position (e.g. "e4").
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+p.File, '1'+p.Rank)
}

// PositionSet is a set of board squares.
type PositionSet map[Position]struct{}

// Add inserts a position into the set.
func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

// Contains reports whether the set holds the position.
func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// MoveMap maps an origin square to the set of its legal destinations.
// Origins with no legal moves are absent.
type MoveMap map[Position]PositionSet

// add inserts a destination for an origin, creating the entry on first use.
func (m MoveMap) add(from, to Position) {
	set, ok := m[from]
	if !ok {
		set = PositionSet{}
		m[from] = set
	}
	set.Add(to)
}
