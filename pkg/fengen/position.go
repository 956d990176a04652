package fengen

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Position is the stored form of a generated board.
type Position struct {
	FEN         string             `json:"fen" bson:"fen"`
	IsWhiteTurn bool               `json:"is_white_turn" bson:"is_white_turn"`
	WhiteKing   string             `json:"white_king" bson:"white_king"`
	BlackKing   string             `json:"black_king" bson:"black_king"`
	CreatedAt   primitive.DateTime `json:"created_at" bson:"created_at"`
	Eval        *Evaluation        `json:"eval,omitempty" bson:"eval,omitempty"`
}

// Evaluation is an engine verdict on a position: centipawns from the
// side to move, or moves to mate when Mate is set.
type Evaluation struct {
	Score    int    `json:"score" bson:"score"`
	Mate     bool   `json:"mate" bson:"mate"`
	BestMove string `json:"best_move,omitempty" bson:"best_move,omitempty"`
}

// NewPosition captures a generated board as a Position document.
func NewPosition(board Board) Position {
	pos := Position{
		FEN:         board.FEN(),
		IsWhiteTurn: board.Turn == White,
		CreatedAt:   primitive.NewDateTimeFromTime(time.Now()),
	}
	for sq := Square(0); sq < NSquares; sq++ {
		piece := board.PieceAt(sq)
		if piece.Type != King {
			continue
		}
		if piece.Color == White {
			pos.WhiteKing = sq.String()
		} else {
			pos.BlackKing = sq.String()
		}
	}
	return pos
}

func (p Position) String() string {
	j, _ := json.MarshalIndent(p, "", "\t")
	return string(j)
}
