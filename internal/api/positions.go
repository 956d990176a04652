package api

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/andreyeyy/fen-generator/internal/dao"
	"github.com/andreyeyy/fen-generator/internal/generator"
	"github.com/andreyeyy/fen-generator/pkg/fengen"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PositionApi struct {
	PositionRepository dao.PositionRepository
	GeneratorFactory   *generator.BatchGeneratorFactory
	MaxBatch           int
	activeJobs         map[string]generator.Worker
	mu                 sync.RWMutex
}

func NewPositionApi(positionRepo dao.PositionRepository, generatorFactory *generator.BatchGeneratorFactory, maxBatch int) *PositionApi {
	return &PositionApi{
		PositionRepository: positionRepo,
		GeneratorFactory:   generatorFactory,
		MaxBatch:           maxBatch,
		activeJobs:         make(map[string]generator.Worker, 0),
	}
}

// Position generates a fresh random position and returns it without
// storing anything.
func (p *PositionApi) Position(ctx *gin.Context) {
	board := fengen.RandomBoard(fengen.NewSource())
	ctx.JSON(http.StatusOK, fengen.NewPosition(board))
}

// StoredPosition returns a uniformly random previously stored position.
func (p *PositionApi) StoredPosition(ctx *gin.Context) {
	pos, err := p.PositionRepository.GetRandomPosition()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, pos)
}

// StartBatch launches a background batch generation job and returns
// its id.
func (p *PositionApi) StartBatch(ctx *gin.Context) {
	countStr := ctx.DefaultQuery("count", "100")
	count, err := strconv.Atoi(countStr)
	if err != nil || count <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "count should be a positive integer",
		})
		return
	}
	if count > p.MaxBatch {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "count exceeds the configured batch limit",
		})
		return
	}

	worker := p.GeneratorFactory.CreateBatchGenerator(count)
	id := uuid.New().String()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeJobs[id] = &worker
	worker.StartWork()
	ctx.JSON(http.StatusOK, gin.H{
		"job_id": id,
	})
}

// GetJobStatus polls a running batch job; finished jobs are removed
// once reported.
func (p *PositionApi) GetJobStatus(ctx *gin.Context) {
	id := ctx.Param("job_id")
	p.mu.Lock()
	defer p.mu.Unlock()
	worker, ok := p.activeJobs[id]
	if !ok {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	done := worker.Done()
	if done {
		delete(p.activeJobs, id)
		if worker.Error() != nil {
			ctx.JSON(http.StatusOK, gin.H{
				"done":  done,
				"error": worker.Error().Error(),
			})
		} else {
			ctx.JSON(http.StatusOK, gin.H{
				"done":   done,
				"result": worker.Result(),
			})
		}
	} else {
		ctx.JSON(http.StatusOK, gin.H{
			"done":     done,
			"progress": worker.Progress(),
		})
	}
}
