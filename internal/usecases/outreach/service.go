package outreach

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"

	"github.com/vfg2006/outflo-api/infrastructure/integrator/groq"
	"github.com/vfg2006/outflo-api/infrastructure/integrator/linkedin"
	"github.com/vfg2006/outflo-api/pkg/apiErrors"
	"github.com/vfg2006/outflo-api/pkg/log"
)

type OutreachService interface {
	GenerateMessage(ctx context.Context, profileURL string) (string, error)
}

type Service struct {
	linkedInIntegrator linkedin.LinkedInIntegrator
	groqIntegrator     groq.GroqIntegrator
	inflight           *inflight
}

func NewService(linkedInIntegrator linkedin.LinkedInIntegrator, groqIntegrator groq.GroqIntegrator) OutreachService {
	return &Service{
		linkedInIntegrator: linkedInIntegrator,
		groqIntegrator:     groqIntegrator,
		inflight:           newInflight(),
	}
}

// GenerateMessage busca o perfil e gera uma mensagem personalizada.
// Chamadas concorrentes para a mesma URL compartilham a mesma busca e geração.
func (s *Service) GenerateMessage(ctx context.Context, profileURL string) (string, error) {
	profileURL = strings.TrimSpace(profileURL)
	if profileURL == "" || !strings.Contains(profileURL, "linkedin.com") {
		return "", NewOutreachError(ErrInvalidProfileURL, apiErrors.ErrInvalidFormat, profileURL, "")
	}

	// A chamada compartilhada não herda o cancelamento de quem a iniciou
	sharedCtx := context.WithoutCancel(ctx)

	message, err, shared := s.inflight.do(ctx, profileURL, func() (string, error) {
		return s.generate(sharedCtx, profileURL)
	})

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"profile_url": profileURL,
		"shared":      shared,
	})

	if err != nil {
		logger.WithError(err).Warn("Geração de mensagem não concluída")
		return "", err
	}

	logger.Info("Mensagem personalizada gerada")

	return message, nil
}

func (s *Service) generate(ctx context.Context, profileURL string) (string, error) {
	profile, err := s.linkedInIntegrator.GetProfile(ctx, profileURL)
	if err != nil {
		log.ForContext(ctx).WithField("profile_url", profileURL).WithError(err).Error("Erro ao buscar perfil no LinkedIn")
		return "", NewOutreachError(ErrProfileFetch, apiErrors.ErrExternalService, profileURL, "")
	}

	prompt := BuildPrompt(profile)

	message, err := s.groqIntegrator.GenerateMessage(ctx, prompt)
	if err != nil {
		log.ForContext(ctx).WithField("profile_url", profileURL).WithError(err).Error("Erro ao gerar mensagem no Groq")
		return "", NewOutreachError(ErrMessageGeneration, apiErrors.ErrExternalService, profileURL, "")
	}

	return message, nil
}
