package outreach

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidProfileURL = errors.New("url must be a LinkedIn profile URL")

	// Erros de serviços externos
	ErrProfileFetch      = errors.New("failed to fetch LinkedIn profile")
	ErrMessageGeneration = errors.New("failed to generate message")
)

// OutreachError é um erro com contexto adicional para geração de mensagens
type OutreachError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ProfileURL string // URL do perfil envolvido
	Details    string // Detalhes adicionais
}

func (e *OutreachError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OutreachError) Unwrap() error {
	return e.Err
}

func NewOutreachError(err error, code string, profileURL string, details string) *OutreachError {
	return &OutreachError{
		Err:        err,
		Code:       code,
		ProfileURL: profileURL,
		Details:    details,
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidProfileURL)
}

// IsUpstreamError indica falha em um dos serviços externos
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrProfileFetch) || errors.Is(err, ErrMessageGeneration)
}
