package fengen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/notnil/chess"
)

func TestEmptyBoardFEN(t *testing.T) {
	board := NewBoard()
	want := "8/8/8/8/8/8/8/8 w - - 0 1"
	if diff := cmp.Diff(want, board.FEN()); diff != "" {
		t.Errorf("FEN mismatch (-want +got):\n%s", diff)
	}
}

func boardField(t *testing.T, fen string) string {
	t.Helper()
	fields := strings.Split(fen, " ")
	if len(fields) != 6 {
		t.Fatalf("FEN %q has %d fields, want 6", fen, len(fields))
	}
	return fields[0]
}

func TestFENRankFieldsSumToEight(t *testing.T) {
	src := NewSource()
	for i := 0; i < 100; i++ {
		board := RandomBoard(src)
		fen := board.FEN()
		ranks := strings.Split(boardField(t, fen), "/")
		if len(ranks) != 8 {
			t.Fatalf("FEN %q has %d rank fields, want 8", fen, len(ranks))
		}
		for _, rank := range ranks {
			sum := 0
			for _, ch := range rank {
				if ch >= '1' && ch <= '8' {
					sum += int(ch - '0')
				} else {
					sum++
				}
			}
			if sum != 8 {
				t.Fatalf("rank field %q of %q sums to %d, want 8", rank, fen, sum)
			}
		}
	}
}

func TestFENTurnField(t *testing.T) {
	src := NewSource()
	for i := 0; i < 100; i++ {
		board := RandomBoard(src)
		fields := strings.Split(board.FEN(), " ")
		want := "w"
		if board.Turn == Black {
			want = "b"
		}
		if fields[1] != want {
			t.Errorf("turn field = %q for turn %v", fields[1], board.Turn)
		}
	}
}

func TestFENFixedSuffix(t *testing.T) {
	src := NewSource()
	for i := 0; i < 100; i++ {
		board := RandomBoard(src)
		fen := board.FEN()
		if !strings.HasSuffix(fen, " - - 0 1") {
			t.Errorf("FEN %q lacks the fixed metadata suffix", fen)
		}
	}
}

func TestFENParsesBack(t *testing.T) {
	src := NewSource()
	for i := 0; i < 100; i++ {
		board := RandomBoard(src)
		fen := board.FEN()
		fenFunc, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("generated FEN %q does not parse: %v", fen, err)
		}
		game := chess.NewGame(fenFunc)
		wantTurn := chess.White
		if board.Turn == Black {
			wantTurn = chess.Black
		}
		if game.Position().Turn() != wantTurn {
			t.Errorf("parsed turn %v, want %v for %q", game.Position().Turn(), wantTurn, fen)
		}
	}
}

func TestGrid(t *testing.T) {
	board := NewBoard()
	board.SetPiece(0, Piece{Type: King, Color: White})
	board.SetPiece(63, Piece{Type: King, Color: Black})

	want := strings.Join([]string{
		".......k",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"K.......",
		"Turn: White",
	}, "\n")
	if diff := cmp.Diff(want, board.Grid()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGridTurnLine(t *testing.T) {
	board := NewBoard()
	board.Turn = Black
	if !strings.HasSuffix(board.Grid(), "Turn: Black") {
		t.Errorf("grid %q does not end with the turn line", board.Grid())
	}
}

func TestRandomFEN(t *testing.T) {
	for i := 0; i < 100; i++ {
		fen := RandomFEN()
		if _, err := chess.FEN(fen); err != nil {
			t.Fatalf("RandomFEN produced unparsable %q: %v", fen, err)
		}
	}
}
