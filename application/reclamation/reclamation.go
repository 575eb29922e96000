package reclamation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kariago/kariago-backend/application/integrity"
	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/model"
	reclamationrepo "github.com/kariago/kariago-backend/repository/reclamation"
	cerr "github.com/kariago/kariago-backend/utils/errors"
	"github.com/kariago/kariago-backend/utils/logger"
	"go.uber.org/zap"
)

type ReclamationApp interface {
	CreateReclamation(ctx context.Context, req *model.CreateReclamationRequest) (*model.ReclamationEntity, error)
	ListReclamations(ctx context.Context) ([]model.ReclamationDetail, error)
}

type reclamationAppImpl struct {
	integrityApp    integrity.IntegrityApp
	reclamationRepo reclamationrepo.ReclamationRepository
}

func NewReclamationApp(integrityApp integrity.IntegrityApp, reclamationRepo reclamationrepo.ReclamationRepository) ReclamationApp {
	return &reclamationAppImpl{
		integrityApp:    integrityApp,
		reclamationRepo: reclamationRepo,
	}
}

func (s *reclamationAppImpl) CreateReclamation(ctx context.Context, req *model.CreateReclamationRequest) (*model.ReclamationEntity, error) {
	user, err := s.integrityApp.RequireUser(ctx, req.IDUser)
	if err != nil {
		return nil, err
	}

	newUUID, _ := uuid.NewRandom()
	reclamationEntity := &model.ReclamationEntity{
		IDReclamation: newUUID.String(),
		IDUser:        user.ID,
		Message:       req.Message,
		DateCreated:   time.Now(),
	}

	reclamationEntity, err = s.reclamationRepo.Create(ctx, reclamationEntity)
	if err != nil {
		logger.Error("[CreateReclamation] err reclamationRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return reclamationEntity, nil
}

func (s *reclamationAppImpl) ListReclamations(ctx context.Context) ([]model.ReclamationDetail, error) {
	reclamations, err := s.reclamationRepo.List(ctx)
	if err != nil {
		logger.Error("[ListReclamations] err reclamationRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return reclamations, nil
}
