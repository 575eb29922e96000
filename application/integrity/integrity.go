package integrity

import (
	"context"

	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/model"
	carrepo "github.com/kariago/kariago-backend/repository/car"
	userrepo "github.com/kariago/kariago-backend/repository/user"
	"github.com/kariago/kariago-backend/utils/errors"
	"github.com/kariago/kariago-backend/utils/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// IntegrityApp enforces the cross-entity existence checks the store cannot
// express as foreign keys. A malformed id fails before any round trip.
type IntegrityApp interface {
	RequireUser(ctx context.Context, id string) (*model.UserEntity, error)
	RequireCar(ctx context.Context, id string) (*model.CarEntity, error)
}

type integrityAppImpl struct {
	userRepo userrepo.UserRepository
	carRepo  carrepo.CarRepository
}

func NewIntegrityApp(userRepo userrepo.UserRepository, carRepo carrepo.CarRepository) IntegrityApp {
	return &integrityAppImpl{userRepo: userRepo, carRepo: carRepo}
}

// ParseID validates the store's native 24-hex identifier format.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.SetCustomError(constant.ErrInvalidID)
	}
	return oid, nil
}

func (s *integrityAppImpl) RequireUser(ctx context.Context, id string) (*model.UserEntity, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: oid})
	if err != nil {
		logger.Error("[RequireUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

func (s *integrityAppImpl) RequireCar(ctx context.Context, id string) (*model.CarEntity, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	car, err := s.carRepo.Get(ctx, &model.CarFilter{ID: oid})
	if err != nil {
		logger.Error("[RequireCar] err carRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrCarNotFound)
	}
	return car, nil
}
