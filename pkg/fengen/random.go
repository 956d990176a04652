package fengen

// kingMoves lists the 8 king-step offsets as (file, rank) deltas.
var kingMoves = [8][2]int{
	{1, 1},
	{1, -1},
	{1, 0},
	{0, 1},
	{0, -1},
	{-1, 1},
	{-1, -1},
	{-1, 0},
}

// kingExclusion returns the square itself plus every square one king
// step away, clipped to the board. Between 4 (corner) and 9 (interior)
// squares.
func kingExclusion(sq Square) []Square {
	file, rank := sq.Coords()
	excluded := make([]Square, 0, 9)
	excluded = append(excluded, sq)
	for _, delta := range kingMoves {
		f := file + delta[0]
		r := rank + delta[1]
		if f < 0 || f >= 8 || r < 0 || r >= 8 {
			continue
		}
		excluded = append(excluded, SquareOf(f, r))
	}
	return excluded
}

// RandomBoard builds a board holding exactly two kings of opposite
// color on distinct, non-adjacent squares, with a uniformly random
// side to move. All other squares stay empty.
func RandomBoard(src Source) Board {
	board := NewBoard()
	if src.Bool() {
		board.Turn = White
	} else {
		board.Turn = Black
	}

	whiteKing := Square(src.Intn(NSquares))
	board.SetPiece(whiteKing, Piece{Type: King, Color: White})

	occupied := [NSquares]bool{}
	for _, sq := range kingExclusion(whiteKing) {
		occupied[sq] = true
	}

	// Candidates keep ascending square order; the draw bound below is
	// len(free), never a precomputed count.
	free := make([]Square, 0, NSquares-4)
	for sq := Square(0); sq < NSquares; sq++ {
		if occupied[sq] {
			continue
		}
		free = append(free, sq)
	}

	blackKing := free[src.Intn(len(free))]
	board.SetPiece(blackKing, Piece{Type: King, Color: Black})

	// TODO: place the rest of the pieces

	return board
}
