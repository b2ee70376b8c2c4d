package groqclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
	groqdomain "github.com/vfg2006/outflo-api/infrastructure/integrator/groq/domain"
)

const chatCompletionsPath = "/chat/completions"

// APIError é devolvido quando a API responde com status diferente de 2xx
type APIError struct {
	StatusCode int
	Details    groqdomain.ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.Message != "" {
		return fmt.Sprintf("requisição falhou com status %d (%s): %s", e.StatusCode, e.Details.Type, e.Details.Message)
	}
	return fmt.Sprintf("requisição falhou com status %d", e.StatusCode)
}

func (c *GroqClient) CreateChatCompletion(ctx context.Context, request groqdomain.ChatCompletionRequest) (*groqdomain.ChatCompletionResponse, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, chatCompletionsPath)

	if request.Model == "" {
		request.Model = c.config.Model
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
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
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errorResponse groqdomain.ErrorResponse
		if json.Unmarshal(body, &errorResponse) == nil {
			apiErr.Details = errorResponse.Error
		}

		return nil, apiErr
	}

	var response groqdomain.ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &response, nil
}
