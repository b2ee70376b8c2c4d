package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação
	ErrCampaignIDRequired  = errors.New("campaign ID is required")
	ErrMissingRequiredData = errors.New("name and description are required")
	ErrInvalidLead         = errors.New("lead is not a valid LinkedIn URL")
	ErrInvalidAccountID    = errors.New("account ID must not be empty")
	ErrInvalidStatus       = errors.New("invalid campaign status")
	ErrInvalidTransition   = errors.New("campaign status transition not allowed")

	// Erros de busca
	ErrCampaignNotFound = errors.New("campaign not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating campaign ID")
)

var validationErrors = []error{
	ErrCampaignIDRequired,
	ErrMissingRequiredData,
	ErrInvalidLead,
	ErrInvalidAccountID,
	ErrInvalidStatus,
	ErrInvalidTransition,
}

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}

// IsValidationError indica erro de entrada do cliente
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCampaignNotFound)
}
