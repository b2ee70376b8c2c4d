package campaigning

import (
	"fmt"
	"strings"

	"github.com/vfg2006/outflo-api/internal/domain"
	"github.com/vfg2006/outflo-api/pkg/apiErrors"
)

var leadPrefixes = []string{
	"https://linkedin.com/",
	"https://www.linkedin.com/",
}

// IsValidLead aceita apenas URLs https do LinkedIn com caminho após o host
func IsValidLead(lead string) bool {
	for _, prefix := range leadPrefixes {
		if strings.HasPrefix(lead, prefix) && len(lead) > len(prefix) {
			return true
		}
	}
	return false
}

// validateLeads rejeita a escrita inteira se qualquer lead for inválido
func validateLeads(leads []string) error {
	invalid := make([]string, 0)
	for _, lead := range leads {
		if !IsValidLead(lead) {
			invalid = append(invalid, lead)
		}
	}

	if len(invalid) > 0 {
		return NewCampaignError(ErrInvalidLead, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("some leads are not valid LinkedIn URLs: %s", strings.Join(invalid, ", ")))
	}

	return nil
}

func validateAccountIDs(accountIDs []string) error {
	for i, accountID := range accountIDs {
		if strings.TrimSpace(accountID) == "" {
			return NewCampaignError(ErrInvalidAccountID, apiErrors.ErrInvalidFormat,
				fmt.Sprintf("accountIDs[%d] is empty", i))
		}
	}
	return nil
}

func validateStatus(status domain.CampaignStatus) error {
	if !status.IsValid() {
		return NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("status must be one of ACTIVE, INACTIVE, DELETED, got %q", status))
	}
	return nil
}

// validateTransition aplica a máquina de estados: ACTIVE <-> INACTIVE livre,
// DELETED só via DeleteCampaign e sem saída.
func validateTransition(campaignID string, from, to domain.CampaignStatus) error {
	if from.IsTerminal() {
		return NewCampaignErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidStatusChange, campaignID,
			"campaign is deleted and can no longer be changed")
	}

	if to == domain.CampaignStatusDeleted {
		return NewCampaignErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidStatusChange, campaignID,
			"use DELETE to delete a campaign")
	}

	return nil
}

func validateCreateRequest(request *domain.CreateCampaignRequest) error {
	if strings.TrimSpace(request.Name) == "" || strings.TrimSpace(request.Description) == "" {
		return NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "")
	}

	if request.Status != nil {
		if err := validateStatus(*request.Status); err != nil {
			return err
		}

		if *request.Status == domain.CampaignStatusDeleted {
			return NewCampaignError(ErrInvalidTransition, apiErrors.ErrInvalidStatusChange,
				"a campaign cannot be created as DELETED")
		}
	}

	if err := validateLeads(request.Leads); err != nil {
		return err
	}

	return validateAccountIDs(request.AccountIDs)
}

func validateUpdateRequest(request *domain.UpdateCampaignRequest) error {
	if request.Name != nil && strings.TrimSpace(*request.Name) == "" {
		return NewCampaignErrorWithID(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, request.ID, "name must not be empty")
	}

	if request.Description != nil && strings.TrimSpace(*request.Description) == "" {
		return NewCampaignErrorWithID(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, request.ID, "description must not be empty")
	}

	if request.Status != nil {
		if err := validateStatus(*request.Status); err != nil {
			return err
		}
	}

	if request.Leads != nil {
		if err := validateLeads(*request.Leads); err != nil {
			return err
		}
	}

	if request.AccountIDs != nil {
		if err := validateAccountIDs(*request.AccountIDs); err != nil {
			return err
		}
	}

	return nil
}
