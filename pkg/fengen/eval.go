package fengen

import (
	"fmt"

	"github.com/freeeve/uci"
)

const evalDepth = 10

// SetupEngine starts a UCI engine at the given path.
func SetupEngine(path string, arg ...string) (*uci.Engine, error) {
	e, err := uci.NewEngine(path, arg...)
	if err != nil {
		return nil, err
	}

	err = e.SetOptions(uci.Options{
		MultiPV: 1,
		Hash:    128,
		Ponder:  false,
		OwnBook: true,
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// EvaluatePosition asks the engine for a fixed-depth verdict on the
// position.
func EvaluatePosition(e *uci.Engine, pos Position) (*Evaluation, error) {
	if err := e.SetFEN(pos.FEN); err != nil {
		return nil, err
	}
	results, err := e.GoDepth(evalDepth)
	if err != nil {
		return nil, err
	}
	if len(results.Results) == 0 {
		return nil, fmt.Errorf("engine returned no results for %s", pos.FEN)
	}

	best := results.Results[0]
	eval := &Evaluation{
		Score: best.Score,
		Mate:  best.Mate,
	}
	if len(best.BestMoves) > 0 {
		eval.BestMove = best.BestMoves[0]
	}
	return eval, nil
}
