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

// CreateCar handler
// @Summary Add a car to the fleet
// @Tags Cars
// @Accept json
// @Produce json
// @Param request body model.CreateCarRequest true "Car Request"
// @Success 201 {object} model.CarEntity
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /api/cars [post]
func (s *RestHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CarApp.CreateCar(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Car added successfully", res)
}

// ListCars handler
// @Summary List cars
// @Tags Cars
// @Produce json
// @Success 200 {array} model.CarEntity
// @Router /api/cars [get]
func (s *RestHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	res, err := s.CarApp.ListCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCar handler
// @Summary Get a single car
// @Tags Cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} model.CarEntity
// @Failure 404 {object} errors.CustomError
// @Router /api/cars/{id} [get]
func (s *RestHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := s.CarApp.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
