package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/outflo-api/internal/domain"
	"github.com/vfg2006/outflo-api/internal/usecases/campaigning"
	"github.com/vfg2006/outflo-api/pkg/apiErrors"
	"github.com/vfg2006/outflo-api/pkg/log"
)

const campaignDeletedMessage = "Campaign deleted successfully"

func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context())
		if err != nil {
			writeCampaignError(w, r, err, "Error fetching campaigns")
			return
		}

		writeJSON(w, r, http.StatusOK, campaigns)
	})
}

func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			writeCampaignError(w, r, err, "Error fetching campaign")
			return
		}

		writeJSON(w, r, http.StatusOK, campaign)
	})
}

func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateCampaignRequest
		if !decodeBody(w, r, &request) {
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), &request)
		if err != nil {
			writeCampaignError(w, r, err, "Error creating campaign")
			return
		}

		writeJSON(w, r, http.StatusCreated, campaign)
	})
}

func UpdateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateCampaignRequest
		if !decodeBody(w, r, &request) {
			return
		}

		// O ID da URL sempre prevalece
		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.UpdateCampaign(r.Context(), &request)
		if err != nil {
			writeCampaignError(w, r, err, "Error updating campaign")
			return
		}

		writeJSON(w, r, http.StatusOK, campaign)
	})
}

func DeleteCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, err := service.DeleteCampaign(r.Context(), id); err != nil {
			writeCampaignError(w, r, err, "Error deleting campaign")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.DeleteCampaignResponse{Message: campaignDeletedMessage})
	})
}

// writeCampaignError traduz o erro do usecase; erros 5xx levam só a mensagem genérica
func writeCampaignError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	var campaignErr *campaigning.CampaignError
	if !errors.As(err, &campaignErr) {
		log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
		return
	}

	if apiErrors.StatusFor(campaignErr.Code) >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithField("campaign_id", campaignErr.CampaignID).WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, campaignErr.Code, fallbackMessage, nil)
		return
	}

	var details any
	if campaignErr.CampaignID != "" {
		details = map[string]any{"campaignID": campaignErr.CampaignID}
	}

	apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
}
