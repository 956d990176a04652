package generator

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/andreyeyy/fen-generator/pkg/fengen"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryRepository keeps positions in a slice for tests.
type memoryRepository struct {
	mu        sync.Mutex
	positions []fengen.Position
	failing   bool
}

func (m *memoryRepository) InsertPosition(pos fengen.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return fmt.Errorf("repository unavailable")
	}
	m.positions = append(m.positions, pos)
	return nil
}

func (m *memoryRepository) InsertAllPositions(positions []fengen.Position) error {
	for _, pos := range positions {
		if err := m.InsertPosition(pos); err != nil {
			return err
		}
	}
	return nil
}

func (m *memoryRepository) GetRandomPosition() (fengen.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.positions) == 0 {
		return fengen.Position{}, fmt.Errorf("no positions stored")
	}
	return m.positions[0], nil
}

func (m *memoryRepository) GetPositionsBetweenDates(startTime primitive.DateTime, endTime primitive.DateTime) ([]fengen.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]fengen.Position, 0)
	for _, pos := range m.positions {
		if pos.CreatedAt >= startTime && pos.CreatedAt <= endTime {
			res = append(res, pos)
		}
	}
	return res, nil
}

func (m *memoryRepository) CountPositions() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.positions)), nil
}

func waitForWorker(t *testing.T, w Worker) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for !w.Done() {
		if time.Now().After(deadline) {
			t.Fatal("worker did not finish in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestBatchGeneratorStoresRequestedCount(t *testing.T) {
	repo := &memoryRepository{}
	factory := &BatchGeneratorFactory{PositionRepo: repo}

	worker := factory.CreateBatchGenerator(25)
	worker.StartWork()
	waitForWorker(t, &worker)

	if err := worker.Error(); err != nil {
		t.Fatalf("worker failed: %v", err)
	}
	count, _ := repo.CountPositions()
	if count != 25 {
		t.Errorf("stored %d positions, want 25", count)
	}

	positions, ok := worker.Result().([]fengen.Position)
	if !ok {
		t.Fatalf("result has type %T, want []fengen.Position", worker.Result())
	}
	if len(positions) != 25 {
		t.Errorf("result holds %d positions, want 25", len(positions))
	}
	for _, pos := range positions {
		if !strings.HasSuffix(pos.FEN, " - - 0 1") {
			t.Errorf("position FEN %q lacks the fixed suffix", pos.FEN)
		}
		if pos.WhiteKing == "" || pos.BlackKing == "" {
			t.Errorf("position %q missing king squares", pos.FEN)
		}
	}
	if p := worker.Progress(); p != 1 {
		t.Errorf("finished worker progress = %v, want 1", p)
	}
}

func TestBatchGeneratorReportsRepositoryError(t *testing.T) {
	repo := &memoryRepository{failing: true}
	factory := &BatchGeneratorFactory{PositionRepo: repo}

	worker := factory.CreateBatchGenerator(3)
	worker.StartWork()
	waitForWorker(t, &worker)

	if worker.Error() == nil {
		t.Fatal("worker reported no error for a failing repository")
	}
}
