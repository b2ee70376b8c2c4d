package linkedin

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	linkedindomain "github.com/vfg2006/outflo-api/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/outflo-api/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/outflo-api/internal/domain"
)

// ErrIncompleteProfile indica que o perfil veio sem algum campo obrigatório
var ErrIncompleteProfile = errors.New("linkedin profile is missing required fields")

type LinkedInIntegrator interface {
	GetProfile(ctx context.Context, profileURL string) (*domain.Profile, error)
}

type LinkedInService struct {
	Client linkedinclient.Client
}

func New(client linkedinclient.Client) LinkedInIntegrator {
	return &LinkedInService{
		Client: client,
	}
}

// GetProfile busca o perfil e exige nome, sobrenome, empresa e localização
func (s *LinkedInService) GetProfile(ctx context.Context, profileURL string) (*domain.Profile, error) {
	data, err := s.Client.GetProfileByURL(ctx, profileURL)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar perfil %s", profileURL)
	}

	profile := toProfile(data, profileURL)

	if missing := missingFields(profile); len(missing) > 0 {
		return nil, errors.Wrap(ErrIncompleteProfile, fmt.Sprintf("campos ausentes: %s", strings.Join(missing, ", ")))
	}

	return profile, nil
}

func toProfile(data *linkedindomain.ProfileData, profileURL string) *domain.Profile {
	profile := &domain.Profile{
		FirstName:  strings.TrimSpace(data.FirstName),
		LastName:   strings.TrimSpace(data.LastName),
		Summary:    strings.TrimSpace(data.Summary),
		Occupation: strings.TrimSpace(data.Headline),
		ProfileURL: profileURL,
	}

	if position := data.CurrentPosition(); position != nil {
		profile.Company = strings.TrimSpace(position.CompanyName)
		if title := strings.TrimSpace(position.Title); title != "" {
			profile.Occupation = title
		}
	}

	if data.Geo != nil {
		profile.Location = strings.TrimSpace(data.Geo.Full)
	}

	return profile
}

func missingFields(profile *domain.Profile) []string {
	missing := make([]string, 0)
	if profile.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if profile.LastName == "" {
		missing = append(missing, "lastName")
	}
	if profile.Company == "" {
		missing = append(missing, "position[0].companyName")
	}
	if profile.Location == "" {
		missing = append(missing, "geo.full")
	}
	return missing
}
