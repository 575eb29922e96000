package user

import (
	"context"
	"errors"

	"github.com/kariago/kariago-backend/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateKey marks a unique-index violation so callers can map it to a
// Conflict instead of a generic write failure.
var ErrDuplicateKey = errors.New("duplicate key")

type Mongo struct {
	coll *mongo.Collection
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *model.UserUpdate) (*model.UserEntity, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, code string) error
	EnsureIndexes(ctx context.Context) error
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection("users")}
}

func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "cin", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "cin", Value: 1}, {Key: "num_phone", Value: 1}},
		},
	})
	return err
}

func (s *Mongo) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
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

func (s *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := bson.M{}

	if !filter.ID.IsZero() {
		query["_id"] = filter.ID
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.Cin != "" {
		query["cin"] = filter.Cin
	}
	if filter.NumPhone != "" {
		query["num_phone"] = filter.NumPhone
	}

	var entity model.UserEntity
	if err := s.coll.FindOne(ctx, query).Decode(&entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *Mongo) List(ctx context.Context) ([]model.UserEntity, error) {
	// Password hash stays on the server even before serialization.
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var users []model.UserEntity
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Mongo) Update(ctx context.Context, id primitive.ObjectID, upd *model.UserUpdate) (*model.UserEntity, error) {
	set := bson.M{}
	if upd.Permis != "" {
		set["permis"] = upd.Permis
	}
	if upd.NumPhone != "" {
		set["num_phone"] = upd.NumPhone
	}
	if upd.Email != "" {
		set["email"] = upd.Email
	}
	if len(set) == 0 {
		return s.Get(ctx, &model.UserFilter{ID: id})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var entity model.UserEntity
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&entity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &entity, nil
}

func (s *Mongo) SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{
		"$set":   bson.M{"password": passwordHash},
		"$unset": bson.M{"resetToken": ""},
	}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (s *Mongo) SetResetToken(ctx context.Context, id primitive.ObjectID, code string) error {
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"resetToken": code}})
	return err
}
