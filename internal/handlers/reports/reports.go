package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/restoreassist/billing/internal/dto"
	"github.com/restoreassist/billing/internal/generation"
	"github.com/restoreassist/billing/pkg/utils"
)

type Service interface {
	Generate(ctx context.Context, payload generation.PromptPayload) (*generation.Result, error)
}

type ReportHandler struct {
	generationService Service
}

func New(generationService Service) *ReportHandler {
	return &ReportHandler{
		generationService: generationService,
	}
}

// Generate godoc
//
//	@Summary		Generate report text
//	@Description	Generate report narrative from a prompt. Models are tried in preference order; the first one that answers wins.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GenerateReportRequestDTO	true	"Prompt payload"
//	@Success		200		{object}	dto.GenerateReportResponseDTO	"Generated text and the model that produced it"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		502		{object}	utils.Response					"All models failed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/reports/generate [post]
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateReportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	result, err := h.generationService.Generate(r.Context(), generation.PromptPayload{
		Prompt:    req.Prompt,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		switch {
		case errors.Is(err, generation.ErrGenerationFailed):
			utils.RespondWithError(w, http.StatusBadGateway, "generation failed")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GenerateReportResponseDTO{
		Text:      result.Text,
		ModelUsed: result.ModelUsed,
	})
}
