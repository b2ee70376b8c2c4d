package groq

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	groqdomain "github.com/vfg2006/outflo-api/infrastructure/integrator/groq/domain"
	"github.com/vfg2006/outflo-api/infrastructure/integrator/groq/groqclient"
	"github.com/vfg2006/outflo-api/pkg/log"
)

// ErrEmptyCompletion indica resposta sem escolhas ou com conteúdo em branco
var ErrEmptyCompletion = errors.New("completion returned no message")

type GroqIntegrator interface {
	GenerateMessage(ctx context.Context, prompt string) (string, error)
}

type GroqService struct {
	Client groqclient.Client
	model  string
}

func New(client groqclient.Client, model string) GroqIntegrator {
	return &GroqService{
		Client: client,
		model:  model,
	}
}

// GenerateMessage envia o prompt como mensagem de sistema e devolve o conteúdo da primeira escolha
func (s *GroqService) GenerateMessage(ctx context.Context, prompt string) (string, error) {
	resp, err := s.Client.CreateChatCompletion(ctx, groqdomain.ChatCompletionRequest{
		Model: s.model,
		Messages: []groqdomain.ChatMessage{
			{Role: groqdomain.RoleSystem, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar mensagem")
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	if resp.Usage != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"upstream_model":  resp.Model,
			"upstream_tokens": resp.Usage.TotalTokens,
		}).Debug("Mensagem gerada")
	}

	return resp.Choices[0].Message.Content, nil
}
