package campaigning

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outflo-api/internal/domain"
)

// memoryCampaignRepository guarda campanhas em memória com as mesmas regras do
// repositório Postgres: UPDATE só em status listável e listagem por created_at.
type memoryCampaignRepository struct {
	mu        sync.Mutex
	campaigns map[string]*domain.Campaign
}

func newMemoryCampaignRepository() *memoryCampaignRepository {
	return &memoryCampaignRepository{campaigns: make(map[string]*domain.Campaign)}
}

func (r *memoryCampaignRepository) CreateCampaign(_ context.Context, campaign *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[campaign.ID]; ok {
		return fmt.Errorf("duplicate key %s", campaign.ID)
	}
	r.campaigns[campaign.ID] = cloneCampaign(campaign)
	return nil
}

func (r *memoryCampaignRepository) GetCampaignByID(_ context.Context, campaignID string) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return nil, nil
	}
	return cloneCampaign(campaign), nil
}

func (r *memoryCampaignRepository) ListCampaigns(_ context.Context, availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns := make([]*domain.Campaign, 0, len(r.campaigns))
	for _, campaign := range r.campaigns {
		if slices.Contains(availableStatus, campaign.Status) {
			campaigns = append(campaigns, cloneCampaign(campaign))
		}
	}

	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.Before(campaigns[j].CreatedAt)
	})

	return campaigns, nil
}

func (r *memoryCampaignRepository) UpdateCampaign(_ context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign, ok := r.campaigns[request.ID]
	if !ok || !slices.Contains(domain.ListableStatuses, campaign.Status) {
		return nil, nil
	}

	if request.Name != nil {
		campaign.Name = *request.Name
	}
	if request.Description != nil {
		campaign.Description = *request.Description
	}
	if request.Status != nil {
		campaign.Status = *request.Status
	}
	if request.Leads != nil {
		campaign.Leads = slices.Clone(*request.Leads)
	}
	if request.AccountIDs != nil {
		campaign.AccountIDs = slices.Clone(*request.AccountIDs)
	}
	campaign.UpdatedAt = request.UpdatedAt

	return cloneCampaign(campaign), nil
}

func cloneCampaign(campaign *domain.Campaign) *domain.Campaign {
	clone := *campaign
	clone.Leads = slices.Clone(campaign.Leads)
	clone.AccountIDs = slices.Clone(campaign.AccountIDs)
	return &clone
}

func newMemoryService() *Service {
	ids := []string{"cmpMEMORY001", "cmpMEMORY002", "cmpMEMORY003"}
	clock := fixedNow

	return &Service{
		campaignRepository: newMemoryCampaignRepository(),
		generateID: func() (string, error) {
			id := ids[0]
			ids = ids[1:]
			return id, nil
		},
		now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
	}
}

func listedIDs(campaigns []*domain.Campaign) []string {
	ids := make([]string, 0, len(campaigns))
	for _, campaign := range campaigns {
		ids = append(ids, campaign.ID)
	}
	return ids
}

func TestService_CampaignLifecycle(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	first, err := service.CreateCampaign(ctx, &domain.CreateCampaignRequest{
		Name:        "Q1 Outreach",
		Description: "Campanha do primeiro trimestre",
		Leads:       []string{"https://www.linkedin.com/in/jdoe"},
	})
	require.NoError(t, err)

	second, err := service.CreateCampaign(ctx, &domain.CreateCampaignRequest{
		Name:        "Q2 Outreach",
		Description: "Campanha do segundo trimestre",
		Status:      statusPtr(domain.CampaignStatusInactive),
	})
	require.NoError(t, err)

	listed, err := service.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID}, listedIDs(listed))

	deleted, err := service.DeleteCampaign(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDeleted, deleted.Status)
	assert.True(t, deleted.UpdatedAt.After(first.UpdatedAt))

	listed, err = service.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID}, listedIDs(listed))

	fetched, err := service.GetCampaign(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDeleted, fetched.Status)
	assert.Equal(t, first.Leads, fetched.Leads)

	again, err := service.DeleteCampaign(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, deleted.UpdatedAt, again.UpdatedAt)

	_, err = service.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{
		ID:     first.ID,
		Status: statusPtr(domain.CampaignStatusActive),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	fetched, err = service.GetCampaign(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDeleted, fetched.Status)

	activated, err := service.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{
		ID:     second.ID,
		Status: statusPtr(domain.CampaignStatusActive),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusActive, activated.Status)
	assert.Equal(t, second.Name, activated.Name)
}

func TestMemoryCampaignRepository_UpdateSkipsDeleted(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryCampaignRepository()
	require.NoError(t, repo.CreateCampaign(ctx, existingCampaign(domain.CampaignStatusDeleted)))

	campaign, err := repo.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{
		ID:     "cmp1",
		Status: statusPtr(domain.CampaignStatusActive),
	})
	require.NoError(t, err)
	assert.Nil(t, campaign)

	stored, err := repo.GetCampaignByID(ctx, "cmp1")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDeleted, stored.Status)
}
