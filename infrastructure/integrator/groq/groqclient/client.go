package groqclient

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	groqdomain "github.com/vfg2006/outflo-api/infrastructure/integrator/groq/domain"
	"github.com/vfg2006/outflo-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxResponseBytes limita o corpo lido de qualquer resposta do Groq
const maxResponseBytes = 1 << 20

// ErrResponseTooLarge indica um corpo de resposta acima de maxResponseBytes
var ErrResponseTooLarge = errors.New("resposta excede o tamanho máximo permitido")

type Client interface {
	CreateChatCompletion(ctx context.Context, request groqdomain.ChatCompletionRequest) (*groqdomain.ChatCompletionResponse, error)
}

type GroqClient struct {
	httpClient *http.Client
	config     config.Groq
}

func NewClient(cfg *config.Config) Client {
	return &GroqClient{
		httpClient: &http.Client{
			Timeout: cfg.Groq.Timeout,
		},
		config: cfg.Groq,
	}
}

func readBody(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxResponseBytes+1))
	if err != nil {
		return nil, err
	}

	if len(data) > maxResponseBytes {
		return nil, ErrResponseTooLarge
	}

	return data, nil
}
