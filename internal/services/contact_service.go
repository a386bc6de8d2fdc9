package services

import (
	"context"

	"go.uber.org/zap"

	"ecotours/internal/models/db_models"
	"ecotours/internal/models/request_models"
	"ecotours/internal/models/response_models"
	"ecotours/internal/repositories"
	"ecotours/pkg/utils"
)

type ContactServiceInterface interface {
	CrudService[request_models.ContactInput, response_models.Contact]
	LatestSocialLinks(ctx context.Context) (*response_models.SocialLinks, error)
}

type contactService struct {
	*resource[db_models.Contact, request_models.ContactInput, response_models.Contact]
	contacts repositories.ContactRepository
}

func NewContactService(repo repositories.ContactRepository, log *zap.Logger) ContactServiceInterface {
	return &contactService{
		resource: &resource[db_models.Contact, request_models.ContactInput, response_models.Contact]{
			name:     "contact",
			notFound: utils.ErrContactNotFound,
			repo:     repo,
			log:      log,
			newInput: func() *request_models.ContactInput { return &request_models.ContactInput{} },
			prefill:  (*request_models.ContactInput).FromModel,
			apply: func(in *request_models.ContactInput, m *db_models.Contact, _ *uploads) error {
				in.Apply(m)
				return nil
			},
			present: func(_ context.Context, m *db_models.Contact) response_models.Contact {
				return response_models.NewContact(m)
			},
		},
		contacts: repo,
	}
}

func (s *contactService) LatestSocialLinks(ctx context.Context) (*response_models.SocialLinks, error) {
	latest, err := s.contacts.Latest(ctx)
	if err != nil {
		return nil, s.fail(ctx, "latest social links", 0, err)
	}
	links := response_models.NewSocialLinks(latest)
	return &links, nil
}
