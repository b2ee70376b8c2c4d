package campaigning

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/outflo-api/infrastructure/repository"
	"github.com/vfg2006/outflo-api/internal/domain"
	"github.com/vfg2006/outflo-api/pkg/apiErrors"
	"github.com/vfg2006/outflo-api/pkg/log"
	"github.com/vfg2006/outflo-api/pkg/utils"
)

type CampaignService interface {
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	generateID         func() (string, error)
	now                func() time.Time
}

func NewService(campaignRepository repository.CampaignRepository) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		generateID:         utils.GenerateID,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// ListCampaigns lista somente campanhas ACTIVE e INACTIVE
func (s *Service) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepository.ListCampaigns(ctx, domain.ListableStatuses)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar campanhas no repositório")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list campaigns")
	}

	if campaigns == nil {
		campaigns = make([]*domain.Campaign, 0)
	}

	return campaigns, nil
}

// GetCampaign busca a campanha em qualquer status, inclusive DELETED
func (s *Service) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	return s.findCampaign(ctx, campaignID)
}

func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if err := validateCreateRequest(request); err != nil {
		return nil, err
	}

	campaignID, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar ID da campanha")
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "")
	}

	status := domain.CampaignStatusActive
	if request.Status != nil {
		status = *request.Status
	}

	leads := request.Leads
	if leads == nil {
		leads = make([]string, 0)
	}

	accountIDs := request.AccountIDs
	if accountIDs == nil {
		accountIDs = make([]string, 0)
	}

	now := s.now()
	campaign := &domain.Campaign{
		ID:          campaignID,
		Name:        request.Name,
		Description: request.Description,
		Status:      status,
		Leads:       leads,
		AccountIDs:  accountIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.campaignRepository.CreateCampaign(ctx, campaign); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao salvar campanha no repositório")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to create campaign")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaign.ID,
		"status":      campaign.Status,
		"leads":       len(campaign.Leads),
	}).Info("Campanha criada")

	return campaign, nil
}

// UpdateCampaign aplica uma atualização parcial respeitando a máquina de estados
func (s *Service) UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	if request.ID == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := validateUpdateRequest(request); err != nil {
		return nil, err
	}

	current, err := s.findCampaign(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	target := current.Status
	if request.Status != nil {
		target = *request.Status
	}

	if err := validateTransition(current.ID, current.Status, target); err != nil {
		return nil, err
	}

	request.UpdatedAt = s.now()

	campaign, err := s.saveUpdate(ctx, request)
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		// Nenhuma linha alterada: a campanha sumiu ou foi deletada depois da leitura
		return nil, s.resolveSkippedUpdate(ctx, request.ID)
	}

	return campaign, nil
}

// DeleteCampaign é um soft delete: a campanha passa para DELETED e nunca é removida.
// Deletar uma campanha já deletada não altera nada.
func (s *Service) DeleteCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	current, err := s.findCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if current.Status.IsTerminal() {
		log.ForContext(ctx).WithField("campaign_id", campaignID).Debug("Campanha já deletada, nada a fazer")
		return current, nil
	}

	deleted := domain.CampaignStatusDeleted
	campaign, err := s.saveUpdate(ctx, &domain.UpdateCampaignRequest{
		ID:        campaignID,
		Status:    &deleted,
		UpdatedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		// Outro delete venceu a corrida; o resultado continua sendo DELETED
		return s.findDeleted(ctx, campaignID)
	}

	log.ForContext(ctx).WithField("campaign_id", campaignID).Info("Campanha deletada")

	return campaign, nil
}

func (s *Service) findCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, campaignID)
	if err != nil {
		log.ForContext(ctx).WithField("campaign_id", campaignID).WithError(err).Error("Erro ao buscar campanha no repositório")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "failed to get campaign")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return campaign, nil
}

func (s *Service) saveUpdate(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.UpdateCampaign(ctx, request)
	if err != nil {
		log.ForContext(ctx).WithField("campaign_id", request.ID).WithError(err).Error("Erro ao atualizar campanha no repositório")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "failed to update campaign")
	}

	return campaign, nil
}

// resolveSkippedUpdate relê a campanha quando o UPDATE não alterou nenhuma linha
func (s *Service) resolveSkippedUpdate(ctx context.Context, campaignID string) error {
	if _, err := s.findCampaign(ctx, campaignID); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("campaign_id", campaignID).Warn("Campanha deletada durante a atualização")

	return NewCampaignErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidStatusChange, campaignID,
		"campaign is deleted and can no longer be changed")
}

func (s *Service) findDeleted(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	current, err := s.findCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if !current.Status.IsTerminal() {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "failed to delete campaign")
	}

	return current, nil
}
