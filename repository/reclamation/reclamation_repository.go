package reclamation

import (
	"context"

	"github.com/kariago/kariago-backend/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	coll *mongo.Collection
}

type ReclamationRepository interface {
	Create(ctx context.Context, data *model.ReclamationEntity) (*model.ReclamationEntity, error)
	List(ctx context.Context) ([]model.ReclamationDetail, error)
	EnsureIndexes(ctx context.Context) error
}

func NewReclamationRepository(db *mongo.Database) ReclamationRepository {
	return &Mongo{coll: db.Collection("reclamations")}
}

func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id_reclamation", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "id_user", Value: 1}},
		},
	})
	return err
}

func (s *Mongo) Create(ctx context.Context, data *model.ReclamationEntity) (*model.ReclamationEntity, error) {
	result, err := s.coll.InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.ID = oid
	}
	return data, nil
}

func (s *Mongo) List(ctx context.Context) ([]model.ReclamationDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "id_user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var reclamations []model.ReclamationDetail
	if err := cursor.All(ctx, &reclamations); err != nil {
		return nil, err
	}
	return reclamations, nil
}
