package repository

//go:generate mockgen -source=campaign.go -destination=mocks/campaign_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/outflo-api/infrastructure/database/postgres"
	"github.com/vfg2006/outflo-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id",
	"name",
	"description",
	"status",
	"leads",
	"account_ids",
	"created_at",
	"updated_at",
}

// CampaignRepository persiste campanhas. Não existe remoção física:
// o "delete" é um UpdateCampaign com status DELETED.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) error
	GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	sqlQuery, args, err := squirrel.
		Insert(campaignsTable).
		Columns(campaignColumns...).
		Values(
			campaign.ID,
			campaign.Name,
			campaign.Description,
			string(campaign.Status),
			pq.Array(campaign.Leads),
			pq.Array(campaign.AccountIDs),
			campaign.CreatedAt,
			campaign.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	sqlQuery, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error) {
	statuses := make([]string, 0, len(availableStatus))
	for _, status := range availableStatus {
		statuses = append(statuses, string(status))
	}

	// Sem status permitidos não há o que listar
	if len(statuses) == 0 {
		return make([]*domain.Campaign, 0), nil
	}

	sqlQuery, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"status": statuses}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar a campanha")
		}

		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar sobre os resultados")
	}

	return campaigns, nil
}

// UpdateCampaign aplica somente os campos enviados e devolve o registro atualizado.
// Só altera campanhas em status listável, então uma campanha DELETED nunca é tocada.
// Retorna nil, nil quando nenhuma linha foi alterada (inexistente ou já DELETED).
func (r *campaignRepository) UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	if request.ID == "" {
		return nil, errors.New("ID is required")
	}

	mutableStatuses := make([]string, 0, len(domain.ListableStatuses))
	for _, status := range domain.ListableStatuses {
		mutableStatuses = append(mutableStatuses, string(status))
	}

	queryBuilder := squirrel.
		Update(campaignsTable).
		Set("updated_at", request.UpdatedAt).
		Where(squirrel.Eq{"id": request.ID}).
		Where(squirrel.Eq{"status": mutableStatuses}).
		Suffix("RETURNING id, name, description, status, leads, account_ids, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	if request.Name != nil {
		queryBuilder = queryBuilder.Set("name", *request.Name)
	}

	if request.Description != nil {
		queryBuilder = queryBuilder.Set("description", *request.Description)
	}

	if request.Status != nil {
		queryBuilder = queryBuilder.Set("status", string(*request.Status))
	}

	if request.Leads != nil {
		queryBuilder = queryBuilder.Set("leads", pq.Array(*request.Leads))
	}

	if request.AccountIDs != nil {
		queryBuilder = queryBuilder.Set("account_ids", pq.Array(*request.AccountIDs))
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return campaign, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	var leads, accountIDs pq.StringArray
	if err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Status,
		&leads,
		&accountIDs,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	campaign.Leads = []string(leads)
	if campaign.Leads == nil {
		campaign.Leads = make([]string, 0)
	}

	campaign.AccountIDs = []string(accountIDs)
	if campaign.AccountIDs == nil {
		campaign.AccountIDs = make([]string, 0)
	}

	return campaign, nil
}

func wrapDatabaseError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return errors.Wrapf(pqErr, "database error (code: %s)", pqErr.Code)
	}
	return errors.Wrap(err, "failed to execute query")
}
