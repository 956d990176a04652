package fengen

import "fmt"

// NSquares is the number of squares on the board.
const NSquares = 64

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return ""
}

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// Piece pairs a piece type with its color. The zero value marks an
// empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Symbol returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Symbol() byte {
	var letter byte
	switch p.Type {
	case Pawn:
		letter = 'p'
	case Rook:
		letter = 'r'
	case Knight:
		letter = 'n'
	case Bishop:
		letter = 'b'
	case Queen:
		letter = 'q'
	case King:
		letter = 'k'
	default:
		panic("symbol of empty piece")
	}
	if p.Color == White {
		letter -= 'a' - 'A'
	}
	return letter
}

// Square is a board cell index in [0, 64), file-major within a rank:
// a1 is 0, h1 is 7, a8 is 56.
type Square int

// SquareOf converts a (file, rank) pair in [0,8)x[0,8) to a Square.
// Out-of-range input is a programming defect and panics.
func SquareOf(file, rank int) Square {
	if file < 0 || file >= 8 || rank < 0 || rank >= 8 {
		panic(fmt.Sprintf("square indices out of bounds: file=%d, rank=%d", file, rank))
	}
	return Square(8*rank + file)
}

// Coords is the inverse of SquareOf.
func (s Square) Coords() (file, rank int) {
	if s < 0 || s >= NSquares {
		panic(fmt.Sprintf("square index out of bounds: %d", s))
	}
	return int(s) % 8, int(s) / 8
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	file, rank := s.Coords()
	return string([]byte{byte('a' + file), byte('1' + rank)})
}

// Board holds 64 square slots and the side to move. It is built once
// by the placement engine and read-only afterwards.
type Board struct {
	squares [NSquares]Piece
	Turn    Color
}

// NewBoard returns an empty board with White to move.
func NewBoard() Board {
	return Board{Turn: White}
}

func (b *Board) PieceAt(s Square) Piece {
	if s < 0 || s >= NSquares {
		panic(fmt.Sprintf("square index out of bounds: %d", s))
	}
	return b.squares[s]
}

func (b *Board) SetPiece(s Square, p Piece) {
	if s < 0 || s >= NSquares {
		panic(fmt.Sprintf("square index out of bounds: %d", s))
	}
	b.squares[s] = p
}
