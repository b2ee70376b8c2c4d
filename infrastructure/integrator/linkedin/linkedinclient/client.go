package linkedinclient

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	linkedindomain "github.com/vfg2006/outflo-api/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/outflo-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxResponseBytes limita o corpo lido de qualquer resposta do RapidAPI
const maxResponseBytes = 1 << 20

// ErrResponseTooLarge indica um corpo de resposta acima de maxResponseBytes
var ErrResponseTooLarge = errors.New("resposta excede o tamanho máximo permitido")

type Client interface {
	GetProfileByURL(ctx context.Context, profileURL string) (*linkedindomain.ProfileData, error)
}

type LinkedInClient struct {
	httpClient *http.Client
	config     config.LinkedIn
}

// NewClient cria o client do RapidAPI com o timeout configurado
func NewClient(cfg *config.Config) Client {
	return &LinkedInClient{
		httpClient: &http.Client{
			Timeout: cfg.LinkedIn.Timeout,
		},
		config: cfg.LinkedIn,
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
