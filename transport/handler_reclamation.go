package transport

import (
	"encoding/json"
	"net/http"

	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/model"
	"github.com/kariago/kariago-backend/utils/errors"
	validatorx "github.com/kariago/kariago-backend/utils/validator"
)

// CreateReclamation handler
// @Summary Submit a reclamation
// @Description Requires the referenced user to exist
// @Tags Reclamations
// @Accept json
// @Produce json
// @Param request body model.CreateReclamationRequest true "Reclamation Request"
// @Success 201 {object} model.ReclamationEntity
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /api/reclamations [post]
func (s *RestHandler) CreateReclamation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateReclamationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReclamationApp.CreateReclamation(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Reclamation submitted successfully", res)
}

// ListReclamations handler
// @Summary List reclamations with user summaries
// @Tags Reclamations
// @Produce json
// @Success 200 {array} model.ReclamationDetail
// @Router /api/reclamations [get]
func (s *RestHandler) ListReclamations(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReclamationApp.ListReclamations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
