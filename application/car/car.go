package car

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kariago/kariago-backend/application/integrity"
	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/model"
	carrepo "github.com/kariago/kariago-backend/repository/car"
	cerr "github.com/kariago/kariago-backend/utils/errors"
	"github.com/kariago/kariago-backend/utils/logger"
	"go.uber.org/zap"
)

type CarApp interface {
	CreateCar(ctx context.Context, req *model.CreateCarRequest) (*model.CarEntity, error)
	ListCars(ctx context.Context) ([]model.CarEntity, error)
	GetCar(ctx context.Context, id string) (*model.CarEntity, error)
}

type carAppImpl struct {
	carRepo carrepo.CarRepository
}

func NewCarApp(carRepo carrepo.CarRepository) CarApp {
	return &carAppImpl{carRepo: carRepo}
}

func (s *carAppImpl) CreateCar(ctx context.Context, req *model.CreateCarRequest) (*model.CarEntity, error) {
	existingCar, err := s.carRepo.Get(ctx, &model.CarFilter{Matricule: req.Matricule})
	if err != nil {
		logger.Error("[CreateCar] err carRepo.Get matricule", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if existingCar != nil {
		return nil, cerr.SetCustomError(constant.ErrMatriculeExists)
	}

	carWork := true
	if req.CarWork != nil {
		carWork = *req.CarWork
	}

	newUUID, _ := uuid.NewRandom()
	carEntity := &model.CarEntity{
		IDCar:           newUUID.String(),
		Matricule:       req.Matricule,
		Marque:          req.Marque,
		Panne:           req.Panne,
		PanneIA:         req.PanneIA,
		Location:        req.Location,
		VisiteTechnique: req.VisiteTechnique,
		CarWork:         carWork,
		DateAssurance:   req.DateAssurance,
		Vignette:        req.Vignette,
	}

	carEntity, err = s.carRepo.Create(ctx, carEntity)
	if err != nil {
		if errors.Is(err, carrepo.ErrDuplicateKey) {
			return nil, cerr.SetCustomError(constant.ErrMatriculeExists)
		}
		logger.Error("[CreateCar] err carRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return carEntity, nil
}

func (s *carAppImpl) ListCars(ctx context.Context) ([]model.CarEntity, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCars] err carRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return cars, nil
}

func (s *carAppImpl) GetCar(ctx context.Context, id string) (*model.CarEntity, error) {
	oid, err := integrity.ParseID(id)
	if err != nil {
		return nil, err
	}

	car, err := s.carRepo.Get(ctx, &model.CarFilter{ID: oid})
	if err != nil {
		logger.Error("[GetCar] err carRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, cerr.SetCustomError(constant.ErrCarNotFound)
	}
	return car, nil
}
