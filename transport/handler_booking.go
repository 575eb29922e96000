package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/model"
	"github.com/kariago/kariago-backend/utils/errors"
	validatorx "github.com/kariago/kariago-backend/utils/validator"
)

// CreateBooking handler
// @Summary Create a booking
// @Description Requires both referenced user and car to exist
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body model.CreateBookingRequest true "Booking Request"
// @Success 201 {object} model.BookingEntity
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /api/bookings [post]
func (s *RestHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BookingApp.CreateBooking(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Booking created successfully", res)
}

// ListBookings handler
// @Summary List bookings with user and car summaries
// @Tags Bookings
// @Produce json
// @Success 200 {array} model.BookingDetail
// @Router /api/bookings [get]
func (s *RestHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	res, err := s.BookingApp.ListBookings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExpireBooking cancels a lapsed pending booking. Reached only through the
// internal surface guarded by the service API key.
func (s *RestHandler) ExpireBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.BookingApp.ExpireBooking(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Booking expiry processed")
}
