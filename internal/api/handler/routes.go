package handler

import (
	"net/http"

	"github.com/vfg2006/outflo-api/internal/api/handler/router"
	"github.com/vfg2006/outflo-api/internal/usecases/campaigning"
	"github.com/vfg2006/outflo-api/internal/usecases/outreach"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
	}
}

func PersonalizedMessage(service outreach.OutreachService) []router.Route {
	return []router.Route{
		{
			Path:    "/personalized-message",
			Method:  http.MethodPost,
			Handler: GeneratePersonalizedMessage(service),
		},
	}
}
