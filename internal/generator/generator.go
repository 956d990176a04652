package generator

import (
	"fmt"
	"log"
	"sync"

	"github.com/andreyeyy/fen-generator/internal/config"
	"github.com/andreyeyy/fen-generator/internal/dao"
	"github.com/andreyeyy/fen-generator/pkg/fengen"
	"github.com/notnil/chess"
)

type BatchGeneratorFactory struct {
	StockfishPath string
	StockfishArgs []string
	PositionRepo  dao.PositionRepository
}

func NewBatchGeneratorFactory(cfg *config.Configuration, positionRepo dao.PositionRepository) *BatchGeneratorFactory {
	return &BatchGeneratorFactory{
		StockfishPath: cfg.Stockfish.Path,
		StockfishArgs: cfg.Stockfish.Args,
		PositionRepo:  positionRepo,
	}
}

func (f BatchGeneratorFactory) CreateBatchGenerator(count int) BatchGenerator {
	return BatchGenerator{
		count:         count,
		stockfishPath: f.StockfishPath,
		stockfishArgs: f.StockfishArgs,
		positionRepo:  f.PositionRepo,
		done:          false,
	}
}

// BatchGenerator generates a batch of random king positions, checks
// each FEN parses back into a game, optionally scores it with the
// engine, and stores everything through the repository.
type BatchGenerator struct {
	mu        sync.Mutex
	positions []fengen.Position
	generated int
	err       error
	done      bool

	positionRepo  dao.PositionRepository
	count         int
	stockfishPath string
	stockfishArgs []string
}

func (b *BatchGenerator) Done() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}

func (b *BatchGenerator) StartWork() {
	go b.Generate()
}

func (b *BatchGenerator) Result() interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.positions
}

func (b *BatchGenerator) Progress() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return float64(b.generated) / float64(b.count)
}

func (b *BatchGenerator) Error() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *BatchGenerator) fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = err
	b.done = true
}

func (b *BatchGenerator) Generate() {
	var engine engineScorer
	if b.stockfishPath != "" {
		e, err := fengen.SetupEngine(b.stockfishPath, b.stockfishArgs...)
		if err != nil {
			b.fail(fmt.Errorf("error starting engine: %w", err))
			return
		}
		defer e.Close()
		engine = func(pos fengen.Position) (*fengen.Evaluation, error) {
			return fengen.EvaluatePosition(e, pos)
		}
	}

	src := fengen.NewSource()
	positions := make([]fengen.Position, 0, b.count)

	for i := 0; i < b.count; i++ {
		board := fengen.RandomBoard(src)
		pos := fengen.NewPosition(board)

		fenFunc, err := chess.FEN(pos.FEN)
		if err != nil {
			b.fail(fmt.Errorf("generated unparsable fen %q: %w", pos.FEN, err))
			return
		}
		chess.NewGame(fenFunc)

		if engine != nil {
			eval, err := engine(pos)
			if err != nil {
				log.Println("engine evaluation failed:", err.Error())
			} else {
				pos.Eval = eval
			}
		}

		if err := b.positionRepo.InsertPosition(pos); err != nil {
			b.fail(fmt.Errorf("error saving position: %w", err))
			return
		}
		positions = append(positions, pos)

		b.mu.Lock()
		b.generated = i + 1
		b.mu.Unlock()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.positions = positions
	b.done = true
}

type engineScorer func(fengen.Position) (*fengen.Evaluation, error)
