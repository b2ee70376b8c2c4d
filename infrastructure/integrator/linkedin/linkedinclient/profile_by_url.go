package linkedinclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
	linkedindomain "github.com/vfg2006/outflo-api/infrastructure/integrator/linkedin/domain"
)

const profileByURLPath = "/get-profile-data-by-url"

// StatusError é devolvido quando o RapidAPI responde com status diferente de 2xx
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("requisição falhou com status %d", e.StatusCode)
}

func (c *LinkedInClient) GetProfileByURL(ctx context.Context, profileURL string) (*linkedindomain.ProfileData, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, profileByURLPath)

	query := endpoint.Query()
	query.Set("url", profileURL)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("X-RapidAPI-Key", c.config.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.config.Host)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{StatusCode: resp.StatusCode}

		var errorResponse linkedindomain.ErrorResponse
		if json.Unmarshal(body, &errorResponse) == nil {
			statusErr.Message = errorResponse.Message
		}

		return nil, statusErr
	}

	var profile linkedindomain.ProfileData
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &profile, nil
}
