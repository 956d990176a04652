package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyeyy/fen-generator/internal/db"
	"github.com/andreyeyy/fen-generator/pkg/fengen"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PositionRepository interface {
	InsertPosition(pos fengen.Position) error

	InsertAllPositions(positions []fengen.Position) error

	GetRandomPosition() (fengen.Position, error)

	GetPositionsBetweenDates(startTime primitive.DateTime, endTime primitive.DateTime) ([]fengen.Position, error)

	CountPositions() (int64, error)
}

type positionRepository struct {
	dbClient *db.PositionDbClient
}

func NewPositionRepository(dbClient *db.PositionDbClient) PositionRepository {
	return &positionRepository{dbClient}
}

func (p *positionRepository) InsertPosition(pos fengen.Position) error {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	_, err := p.dbClient.PositionCollection.InsertOne(ctx, pos)
	return err
}

func (p *positionRepository) InsertAllPositions(positions []fengen.Position) error {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(positions))
	for _, pos := range positions {
		docs = append(docs, pos)
	}
	_, err := p.dbClient.PositionCollection.InsertMany(ctx, docs)
	return err
}

func (p *positionRepository) GetRandomPosition() (fengen.Position, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	sampleStage := bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}}

	cursor, err := p.dbClient.PositionCollection.Aggregate(ctx, mongo.Pipeline{sampleStage})
	if err != nil {
		return fengen.Position{}, err
	}

	var loadedPositions []fengen.Position
	if err = cursor.All(ctx, &loadedPositions); err != nil {
		return fengen.Position{}, err
	}
	if len(loadedPositions) != 1 {
		return fengen.Position{}, fmt.Errorf("aggregate with $size = 1 returned more than 1 samples or no samples")
	}
	return loadedPositions[0], nil
}

func (p *positionRepository) GetPositionsBetweenDates(startTime primitive.DateTime, endTime primitive.DateTime) ([]fengen.Position, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	filter := bson.D{
		{
			Key: "created_at", Value: bson.D{
				{Key: "$gte", Value: startTime},
				{Key: "$lte", Value: endTime},
			},
		},
	}

	cur, err := p.dbClient.PositionCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var positions []fengen.Position
	if err = cur.All(ctx, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (p *positionRepository) CountPositions() (int64, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	return p.dbClient.PositionCollection.CountDocuments(ctx, bson.D{})
}
