package estimates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/restoreassist/billing/internal/domain"
	"github.com/restoreassist/billing/internal/dto"
	equipmentservice "github.com/restoreassist/billing/internal/service/equipmentservice"
	"github.com/restoreassist/billing/pkg/utils"
	"github.com/restoreassist/billing/pkg/validate"
)

type Service interface {
	Estimate(ctx context.Context, selections []domain.EquipmentSelection, durationDays int) (*domain.EquipmentEstimate, error)
	GetCatalog(ctx context.Context) ([]domain.EquipmentGroup, error)
}

type EstimateHandler struct {
	equipmentService Service
}

func New(equipmentService Service) *EstimateHandler {
	return &EstimateHandler{
		equipmentService: equipmentService,
	}
}

// Estimate godoc
//
//	@Summary		Estimate equipment cost
//	@Description	Compute daily and total hire cost, power draw and drying status for a selection of equipment over a job duration.
//	@Tags			Estimates
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EquipmentEstimateRequestDTO		true	"Selections and duration"
//	@Success		200		{object}	dto.EquipmentEstimateResponseDTO	"Estimate"
//	@Failure		400		{object}	utils.Response						"Invalid request body"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		422		{object}	utils.Response						"Invalid duration"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/estimates/equipment [post]
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req dto.EquipmentEstimateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	selections := make([]domain.EquipmentSelection, len(req.Selections))
	for i, sel := range req.Selections {
		selections[i] = domain.EquipmentSelection{
			GroupID:                sel.GroupID,
			Quantity:               sel.Quantity,
			DailyRateCentsOverride: sel.DailyRateCentsOverride,
		}
	}

	estimate, err := h.equipmentService.Estimate(r.Context(), selections, req.DurationDays)
	if err != nil {
		switch {
		case errors.Is(err, equipmentservice.ErrInvalidDuration):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.EquipmentEstimateResponseDTO{
		DurationDays:        estimate.DurationDays,
		TotalDailyCostCents: estimate.TotalDailyCostCents,
		TotalCostCents:      estimate.TotalCostCents,
		TotalAmps:           estimate.TotalAmps,
	}
	response.Lines = make([]dto.EquipmentEstimateLineDTO, len(estimate.Lines))
	for i, line := range estimate.Lines {
		response.Lines[i] = dto.EquipmentEstimateLineDTO{
			GroupID:        line.GroupID,
			Name:           line.Name,
			Category:       string(line.Category),
			Quantity:       line.Quantity,
			DailyRateCents: line.DailyRateCents,
			DailyCostCents: line.DailyCostCents,
			TotalCostCents: line.TotalCostCents,
			Amps:           line.Amps,
		}
	}

	if req.DryingIndex != nil {
		response.DryingStatus = string(equipmentservice.DryingStatusFor(*req.DryingIndex))
	}
	if len(req.MoistureReadings) > 0 {
		reading := validate.NormalizeMoisture(req.MoistureReadings)
		if reading.Kind != validate.MoistureUnparseable {
			avg := reading.Average()
			response.MoistureAverage = &avg
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCatalog godoc
//
//	@Summary		List equipment groups
//	@Description	List the equipment catalog with categories, amperage and default daily hire rates.
//	@Tags			Estimates
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.EquipmentGroupDTO	"Equipment groups"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/equipment/groups [get]
func (h *EstimateHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	groups, err := h.equipmentService.GetCatalog(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch equipment groups")
		return
	}

	response := make([]dto.EquipmentGroupDTO, len(groups))
	for i, g := range groups {
		response[i] = dto.EquipmentGroupDTO{
			ID:                    g.ID,
			Name:                  g.Name,
			Category:              string(g.Category),
			Amps:                  g.Amps,
			DefaultDailyRateCents: g.DefaultDailyRateCents,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
