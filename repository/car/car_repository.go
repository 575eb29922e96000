package car

import (
	"context"
	"errors"

	"github.com/kariago/kariago-backend/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateKey marks a unique-index violation on the matricule.
var ErrDuplicateKey = errors.New("duplicate key")

type Mongo struct {
	coll *mongo.Collection
}

type CarRepository interface {
	Create(ctx context.Context, data *model.CarEntity) (*model.CarEntity, error)
	Get(ctx context.Context, filter *model.CarFilter) (*model.CarEntity, error)
	List(ctx context.Context) ([]model.CarEntity, error)
	EnsureIndexes(ctx context.Context) error
}

func NewCarRepository(db *mongo.Database) CarRepository {
	return &Mongo{coll: db.Collection("cars")}
}

func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "matricule", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "id_car", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (s *Mongo) Create(ctx context.Context, data *model.CarEntity) (*model.CarEntity, error) {
	result, err := s.coll.InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.ID = oid
	}
	return data, nil
}

func (s *Mongo) Get(ctx context.Context, filter *model.CarFilter) (*model.CarEntity, error) {
	query := bson.M{}

	if !filter.ID.IsZero() {
		query["_id"] = filter.ID
	}
	if filter.Matricule != "" {
		query["matricule"] = filter.Matricule
	}

	var entity model.CarEntity
	if err := s.coll.FindOne(ctx, query).Decode(&entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *Mongo) List(ctx context.Context) ([]model.CarEntity, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var cars []model.CarEntity
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}
