package fengen

import "strings"

// FEN serializes the board to Forsyth-Edwards Notation. Castling
// rights, en-passant target and move counters are not tracked, so the
// metadata suffix is always "- - 0 1".
func (b *Board) FEN() string {
	var fen strings.Builder
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(SquareOf(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				fen.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			fen.WriteByte(piece.Symbol())
		}
		if emptyCount != 0 {
			fen.WriteByte(byte('0' + emptyCount))
		}
		if rank != 0 {
			fen.WriteByte('/')
		}
	}

	fen.WriteByte(' ')
	if b.Turn == White {
		fen.WriteByte('w')
	} else {
		fen.WriteByte('b')
	}
	fen.WriteString(" - - 0 1")

	return fen.String()
}

// Grid renders the board as an 8x8 character grid, rank 8 on top,
// with '.' for empty squares, followed by a side-to-move line.
func (b *Board) Grid() string {
	var s strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(SquareOf(file, rank))
			if piece.IsEmpty() {
				s.WriteByte('.')
			} else {
				s.WriteByte(piece.Symbol())
			}
		}
		s.WriteByte('\n')
	}
	s.WriteString("Turn: " + b.Turn.String())
	return s.String()
}

// RandomFEN generates a random two-king position and returns its FEN.
func RandomFEN() string {
	board := RandomBoard(NewSource())
	return board.FEN()
}
