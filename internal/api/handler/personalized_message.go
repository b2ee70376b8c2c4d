package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/outflo-api/internal/domain"
	"github.com/vfg2006/outflo-api/internal/usecases/outreach"
	"github.com/vfg2006/outflo-api/pkg/apiErrors"
	"github.com/vfg2006/outflo-api/pkg/log"
)

func GeneratePersonalizedMessage(service outreach.OutreachService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.PersonalizedMessageRequest
		if !decodeBody(w, r, &request) {
			return
		}

		message, err := service.GenerateMessage(r.Context(), request.URL)
		if err != nil {
			var outreachErr *outreach.OutreachError
			switch {
			case outreach.IsValidationError(err):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			case errors.As(err, &outreachErr) && outreach.IsUpstreamError(err):
				apiErrors.WriteError(w, outreachErr.Code, outreachErr.Err.Error(), nil)

			default:
				log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar mensagem personalizada")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
			}
			return
		}

		writeJSON(w, r, http.StatusOK, domain.PersonalizedMessageResponse{Message: message})
	})
}
