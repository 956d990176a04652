package main

import (
	"github.com/andreyeyy/fen-generator/internal/api"
	"github.com/andreyeyy/fen-generator/internal/config"
	"github.com/andreyeyy/fen-generator/internal/dao"
	"github.com/andreyeyy/fen-generator/internal/db"
	"github.com/andreyeyy/fen-generator/internal/generator"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		panic(err)
	}

	dbClient, err := db.NewDbClient(cfg)
	if err != nil {
		panic(err)
	}
	defer dbClient.Close()

	positionRepo := dao.NewPositionRepository(dbClient)
	generatorFactory := generator.NewBatchGeneratorFactory(cfg, positionRepo)
	positionApi := api.NewPositionApi(positionRepo, generatorFactory, cfg.Generator.MaxBatch)

	router := gin.Default()
	router.GET("/api/position", positionApi.Position)
	router.GET("/api/position/stored", positionApi.StoredPosition)
	router.POST("/api/position/batch", positionApi.StartBatch)
	router.GET("/api/position/batch/:job_id", positionApi.GetJobStatus)

	if err := router.Run(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
		panic(err)
	}
}
