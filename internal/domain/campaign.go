package domain

import (
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusInactive CampaignStatus = "INACTIVE"
	CampaignStatusDeleted  CampaignStatus = "DELETED"
)

// ListableStatuses é a lista explícita de status retornados na listagem.
// DELETED fica de fora por não estar aqui, e não por negação.
var ListableStatuses = []CampaignStatus{
	CampaignStatusActive,
	CampaignStatusInactive,
}

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusInactive, CampaignStatusDeleted:
		return true
	}
	return false
}

// IsTerminal indica que nenhuma transição sai deste status
func (s CampaignStatus) IsTerminal() bool {
	return s == CampaignStatusDeleted
}

type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      CampaignStatus `json:"status"`
	Leads       []string       `json:"leads"`
	AccountIDs  []string       `json:"accountIDs"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type CreateCampaignRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      *CampaignStatus `json:"status,omitempty"`
	Leads       []string        `json:"leads,omitempty"`
	AccountIDs  []string        `json:"accountIDs,omitempty"`
}

// UpdateCampaignRequest carrega apenas os campos enviados; nil significa "não alterar"
type UpdateCampaignRequest struct {
	ID          string          `json:"-"`
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *CampaignStatus `json:"status,omitempty"`
	Leads       *[]string       `json:"leads,omitempty"`
	AccountIDs  *[]string       `json:"accountIDs,omitempty"`
	UpdatedAt   time.Time       `json:"-"`
}

type DeleteCampaignResponse struct {
	Message string `json:"message"`
}
