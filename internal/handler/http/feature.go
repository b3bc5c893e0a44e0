package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffhub-io/ess-backend-go/internal/domain/feature"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
)

type FeatureHandler interface {
	GetFeatures(w http.ResponseWriter, r *http.Request)
	UpdateFeatures(w http.ResponseWriter, r *http.Request)
}

type featureHandlerImpl struct {
	featureService feature.FeatureService
}

func NewFeatureHandler(featureService feature.FeatureService) FeatureHandler {
	return &featureHandlerImpl{
		featureService: featureService,
	}
}

// GetFeatures handles GET /superadmin/features
func (h *featureHandlerImpl) GetFeatures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.featureService.ListFeatures(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateFeatures handles POST /superadmin/features
func (h *featureHandlerImpl) UpdateFeatures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req feature.UpdateFeaturesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.featureService.UpdateFeatures(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Features updated", result)
}
