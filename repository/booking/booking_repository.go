package booking

import (
	"context"
	"fmt"

	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	coll *mongo.Collection
}

type BookingRepository interface {
	Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.BookingEntity, error)
	List(ctx context.Context) ([]model.BookingDetail, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to constant.BookingStatus) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &Mongo{coll: db.Collection("bookings")}
}

func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id_booking", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "id_user", Value: 1}, {Key: "id_car", Value: 1}},
		},
	})
	return err
}

func (s *Mongo) Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error) {
	result, err := s.coll.InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.ID = oid
	}
	return data, nil
}

func (s *Mongo) Get(ctx context.Context, id primitive.ObjectID) (*model.BookingEntity, error) {
	var entity model.BookingEntity
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns all bookings with their user and car summaries embedded,
// joined server-side so listing stays a single round trip.
func (s *Mongo) List(ctx context.Context) ([]model.BookingDetail, error) {
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
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "cars"},
			{Key: "localField", Value: "id_car"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "car"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$car"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var bookings []model.BookingDetail
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus moves a booking from one status to another. The filter carries
// the expected current status so concurrent transitions cannot double-apply;
// the boolean reports whether a document actually changed.
func (s *Mongo) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to constant.BookingStatus) (bool, error) {
	if !constant.ValidBookingStatus(from) || !constant.ValidBookingStatus(to) {
		return false, fmt.Errorf("invalid booking status transition %q -> %q", from, to)
	}

	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}
