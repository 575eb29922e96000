package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kariago/kariago-backend/application/integrity"
	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/model"
	bookingrepo "github.com/kariago/kariago-backend/repository/booking"
	"github.com/kariago/kariago-backend/thirdparty/rabbitmq"
	cerr "github.com/kariago/kariago-backend/utils/errors"
	"github.com/kariago/kariago-backend/utils/logger"
	"go.uber.org/zap"
)

type BookingApp interface {
	CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingEntity, error)
	ListBookings(ctx context.Context) ([]model.BookingDetail, error)
	ExpireBooking(ctx context.Context, id string) error
}

type bookingAppImpl struct {
	integrityApp integrity.IntegrityApp
	bookingRepo  bookingrepo.BookingRepository
	publisher    *rabbitmq.Publisher
}

func NewBookingApp(integrityApp integrity.IntegrityApp, bookingRepo bookingrepo.BookingRepository, publisher *rabbitmq.Publisher) BookingApp {
	return &bookingAppImpl{
		integrityApp: integrityApp,
		bookingRepo:  bookingRepo,
		publisher:    publisher,
	}
}

func (s *bookingAppImpl) CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingEntity, error) {
	// Both references must exist before anything is written; the store has
	// no foreign keys to enforce this.
	user, err := s.integrityApp.RequireUser(ctx, req.IDUser)
	if err != nil {
		return nil, err
	}
	car, err := s.integrityApp.RequireCar(ctx, req.IDCar)
	if err != nil {
		return nil, err
	}

	newUUID, _ := uuid.NewRandom()
	bookingEntity := &model.BookingEntity{
		IDBooking:          newUUID.String(),
		DateHourBooking:    req.DateHourBooking,
		DateHourExpire:     req.DateHourExpire,
		IDUser:             user.ID,
		IDCar:              car.ID,
		CurrentKeyCar:      req.CurrentKeyCar,
		Image:              req.Image,
		Status:             constant.BookingStatusPending,
		Contrat:            req.Contrat,
		Paiement:           req.Paiement,
		LocationBeforeRent: req.LocationBeforeRent,
		EstimatedLocation:  req.EstimatedLocation,
	}

	bookingEntity, err = s.bookingRepo.Create(ctx, bookingEntity)
	if err != nil {
		logger.Error("[CreateBooking] err bookingRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	// Schedule cancellation for when the booking lapses unconfirmed.
	msg := rabbitmq.BookingExpirationMessage{
		BookingID: bookingEntity.ID.Hex(),
		ExpiresAt: bookingEntity.DateHourExpire,
	}
	if err := s.publisher.PublishBookingExpiration(msg); err != nil {
		logger.Error("[CreateBooking] err PublishBookingExpiration", zap.String("error", err.Error()))
	}

	return bookingEntity, nil
}

func (s *bookingAppImpl) ListBookings(ctx context.Context) ([]model.BookingDetail, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		logger.Error("[ListBookings] err bookingRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return bookings, nil
}

// ExpireBooking cancels a pending booking whose expiry timestamp passed.
// Confirmed and already-canceled bookings are left alone.
func (s *bookingAppImpl) ExpireBooking(ctx context.Context, id string) error {
	oid, err := integrity.ParseID(id)
	if err != nil {
		return err
	}

	bookingEntity, err := s.bookingRepo.Get(ctx, oid)
	if err != nil {
		logger.Error("[ExpireBooking] err bookingRepo.Get", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if bookingEntity == nil {
		return cerr.SetCustomError(constant.ErrBookingNotFound)
	}

	if bookingEntity.Status != constant.BookingStatusPending {
		return nil
	}
	if time.Now().Before(bookingEntity.DateHourExpire) {
		return nil
	}

	changed, err := s.bookingRepo.UpdateStatus(ctx, oid, constant.BookingStatusPending, constant.BookingStatusCanceled)
	if err != nil {
		logger.Error("[ExpireBooking] err bookingRepo.UpdateStatus", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if changed {
		logger.Info("[ExpireBooking] booking canceled", zap.String("booking_id", id))
	}

	return nil
}
