package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outflo-api/internal/api/handler/router"
	"github.com/vfg2006/outflo-api/internal/domain"
	"github.com/vfg2006/outflo-api/internal/usecases/campaigning"
	"github.com/vfg2006/outflo-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/outflo-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newCampaignRouter(t *testing.T) (http.Handler, *mocks.MockCampaignService) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	return router.New(router.WithRoutes(Campaigns(service)...)), service
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sampleCampaign(status domain.CampaignStatus) *domain.Campaign {
	ts := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	return &domain.Campaign{
		ID:          "cmp1",
		Name:        "Q1 Outreach",
		Description: "...",
		Status:      status,
		Leads:       []string{"https://www.linkedin.com/in/jdoe"},
		AccountIDs:  []string{"acc1"},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestCreateCampaign(t *testing.T) {
	h, service := newCampaignRouter(t)

	service.EXPECT().
		CreateCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
			assert.Equal(t, "Q1 Outreach", request.Name)
			assert.Nil(t, request.Status)
			return sampleCampaign(domain.CampaignStatusActive), nil
		})

	rec := doRequest(h, http.MethodPost, "/campaigns",
		`{"name":"Q1 Outreach","description":"...","leads":["https://www.linkedin.com/in/jdoe"],"accountIDs":["acc1"]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"id": "cmp1",
		"name": "Q1 Outreach",
		"description": "...",
		"status": "ACTIVE",
		"leads": ["https://www.linkedin.com/in/jdoe"],
		"accountIDs": ["acc1"],
		"createdAt": "2025-03-14T10:00:00Z",
		"updatedAt": "2025-03-14T10:00:00Z"
	}`, rec.Body.String())
}

func TestCreateCampaign_Errors(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		serviceErr   error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "JSON malformado",
			body:         `{"name":`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body","code":"VAL_001"}`,
		},
		{
			name:         "dados obrigatórios ausentes",
			body:         `{"name":"x"}`,
			serviceErr:   campaigning.NewCampaignError(campaigning.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, ""),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"name and description are required","code":"VAL_002"}`,
		},
		{
			name:         "lead inválido",
			body:         `{"name":"x","description":"y","leads":["not-a-url"]}`,
			serviceErr:   campaigning.NewCampaignError(campaigning.ErrInvalidLead, apiErrors.ErrInvalidFormat, "some leads are not valid LinkedIn URLs: not-a-url"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"lead is not a valid LinkedIn URL: some leads are not valid LinkedIn URLs: not-a-url","code":"VAL_003"}`,
		},
		{
			name:         "erro de banco não vaza detalhes",
			body:         `{"name":"x","description":"y"}`,
			serviceErr:   campaigning.NewCampaignError(campaigning.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to create campaign"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Error creating campaign","code":"SRV_002"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, service := newCampaignRouter(t)
			if tt.serviceErr != nil {
				service.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(nil, tt.serviceErr)
			}

			rec := doRequest(h, http.MethodPost, "/campaigns", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestWriteCampaignError_Details(t *testing.T) {
	t.Run("sem ID a chave details é omitida", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/campaigns", nil)

		writeCampaignError(rec, req, campaigning.NewCampaignError(campaigning.ErrInvalidAccountID, apiErrors.ErrInvalidFormat, "accountIDs[0] is empty"), "Error creating campaign")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Body.String(), "details")
		assert.NotContains(t, rec.Body.String(), "null")
	})

	t.Run("com ID devolve o campaignID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/campaigns/cmp1", nil)

		writeCampaignError(rec, req, campaigning.NewCampaignErrorWithID(campaigning.ErrInvalidTransition, apiErrors.ErrInvalidStatusChange, "cmp1", ""), "Error updating campaign")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"details":{"campaignID":"cmp1"}`)
	})
}

func TestListCampaigns(t *testing.T) {
	t.Run("lista vazia renderiza []", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().ListCampaigns(gomock.Any()).Return([]*domain.Campaign{}, nil)

		rec := doRequest(h, http.MethodGet, "/campaigns", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("erro interno", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().ListCampaigns(gomock.Any()).Return(nil,
			campaigning.NewCampaignError(campaigning.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list campaigns"))

		rec := doRequest(h, http.MethodGet, "/campaigns", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Error fetching campaigns","code":"SRV_002"}`, rec.Body.String())
	})
}

func TestGetCampaign(t *testing.T) {
	t.Run("encontrada", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().GetCampaign(gomock.Any(), "cmp1").Return(sampleCampaign(domain.CampaignStatusDeleted), nil)

		rec := doRequest(h, http.MethodGet, "/campaigns/cmp1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"DELETED"`)
	})

	t.Run("inexistente", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().GetCampaign(gomock.Any(), "missing").Return(nil,
			campaigning.NewCampaignErrorWithID(campaigning.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, "missing", ""))

		rec := doRequest(h, http.MethodGet, "/campaigns/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"campaign not found","code":"CMP_001","details":{"campaignID":"missing"}}`, rec.Body.String())
	})
}

func TestUpdateCampaign(t *testing.T) {
	t.Run("usa o ID da URL e só os campos enviados", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().
			UpdateCampaign(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
				assert.Equal(t, "cmp1", request.ID)
				require.NotNil(t, request.Status)
				assert.Equal(t, domain.CampaignStatusInactive, *request.Status)
				assert.Nil(t, request.Name)
				assert.Nil(t, request.Leads)
				return sampleCampaign(domain.CampaignStatusInactive), nil
			})

		rec := doRequest(h, http.MethodPut, "/campaigns/cmp1", `{"status":"INACTIVE"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"INACTIVE"`)
	})

	t.Run("transição inválida", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any()).Return(nil,
			campaigning.NewCampaignErrorWithID(campaigning.ErrInvalidTransition, apiErrors.ErrInvalidStatusChange, "cmp1", "use DELETE to delete a campaign"))

		rec := doRequest(h, http.MethodPut, "/campaigns/cmp1", `{"status":"DELETED"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"CMP_002"`)
	})

	t.Run("inexistente", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any()).Return(nil,
			campaigning.NewCampaignErrorWithID(campaigning.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, "nope", ""))

		rec := doRequest(h, http.MethodPut, "/campaigns/nope", `{"name":"x"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("JSON malformado", func(t *testing.T) {
		h, _ := newCampaignRouter(t)

		rec := doRequest(h, http.MethodPut, "/campaigns/cmp1", `[`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"VAL_001"`)
	})
}

func TestDeleteCampaign(t *testing.T) {
	t.Run("soft delete", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().DeleteCampaign(gomock.Any(), "cmp1").Return(sampleCampaign(domain.CampaignStatusDeleted), nil)

		rec := doRequest(h, http.MethodDelete, "/campaigns/cmp1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Campaign deleted successfully"}`, rec.Body.String())
	})

	t.Run("inexistente", func(t *testing.T) {
		h, service := newCampaignRouter(t)
		service.EXPECT().DeleteCampaign(gomock.Any(), "never").Return(nil,
			campaigning.NewCampaignErrorWithID(campaigning.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, "never", ""))

		rec := doRequest(h, http.MethodDelete, "/campaigns/never", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_UnknownRoutes(t *testing.T) {
	h, _ := newCampaignRouter(t)

	rec := doRequest(h, http.MethodGet, "/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found","code":"RTE_001"}`, rec.Body.String())

	rec = doRequest(h, http.MethodPatch, "/campaigns/cmp1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"RTE_002"`)
}
