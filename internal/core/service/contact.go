package service

import (
	"context"

	"github.com/rs/zerolog"

	"tdm/internal/core/domain"
	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
	"tdm/internal/core/port"
	"tdm/internal/core/validation"
)

type ContactService struct {
	repo   port.ContactRepository
	uow    port.UnitOfWork
	logger zerolog.Logger
}

func NewContactService(repo port.ContactRepository, uow port.UnitOfWork, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, uow: uow, logger: logger}
}

func (s *ContactService) GetAll(ctx context.Context) ([]response.ContactResponse, error) {
	contacts, err := s.repo.GetAll(ctx)

	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(contacts)).Msg("fetched all contacts")

	return response.NewContactResponses(contacts), nil
}

func (s *ContactService) GetByID(ctx context.Context, id int64) (response.ContactResponse, error) {
	contact, err := s.repo.GetByID(ctx, id)

	if err != nil {
		return response.ContactResponse{}, err
	}

	if contact == nil {
		return response.ContactResponse{}, domain.NewNotFoundError("contact", id)
	}

	return response.NewContactResponse(contact), nil
}

func (s *ContactService) GetByName(ctx context.Context, name string) ([]response.ContactResponse, error) {
	contacts, err := s.repo.GetByName(ctx, name)

	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", name).Int("count", len(contacts)).Msg("searched contacts by name")

	return response.NewContactResponses(contacts), nil
}

func (s *ContactService) GetByEmail(ctx context.Context, email string) (response.ContactResponse, error) {
	contact, err := s.repo.GetByEmail(ctx, email)

	if err != nil {
		return response.ContactResponse{}, err
	}

	if contact == nil {
		return response.ContactResponse{}, &domain.NotFoundError{
			Entity:  "contact",
			Message: "contact with email '" + email + "' not found",
		}
	}

	return response.NewContactResponse(contact), nil
}

func (s *ContactService) Create(ctx context.Context, req request.CreateContactRequest) (response.ContactResponse, error) {
	s.logger.Info().Str("first_name", req.FirstName).Str("last_name", req.LastName).Msg("creating contact")

	if err := validation.Struct(req); err != nil {
		return response.ContactResponse{}, err
	}

	if err := s.checkUniqueEmail(ctx, req.Email, 0); err != nil {
		return response.ContactResponse{}, err
	}

	contact, err := domain.NewContact(req.FirstName, req.LastName, req.Phone, req.Email, req.Address, req.Description)

	if err != nil {
		return response.ContactResponse{}, err
	}

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, contact)
	})

	if err != nil {
		return response.ContactResponse{}, err
	}

	s.logger.Info().Int64("id", contact.ID).Msg("contact created")

	return response.NewContactResponse(contact), nil
}

func (s *ContactService) Update(ctx context.Context, id int64, req request.UpdateContactRequest) (response.ContactResponse, error) {
	s.logger.Info().Int64("id", id).Msg("updating contact")

	if err := validation.Struct(req); err != nil {
		return response.ContactResponse{}, err
	}

	contact, err := s.repo.GetByID(ctx, id)

	if err != nil {
		return response.ContactResponse{}, err
	}

	if contact == nil {
		s.logger.Warn().Int64("id", id).Msg("contact not found")
		return response.ContactResponse{}, domain.NewNotFoundError("contact", id)
	}

	if err := s.checkUniqueEmail(ctx, req.Email, id); err != nil {
		return response.ContactResponse{}, err
	}

	if err := contact.Update(req.FirstName, req.LastName, req.Phone, req.Email, req.Address, req.Description); err != nil {
		return response.ContactResponse{}, err
	}

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, contact)
	})

	if err != nil {
		return response.ContactResponse{}, err
	}

	s.logger.Info().Int64("id", contact.ID).Msg("contact updated")

	return response.NewContactResponse(contact), nil
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	s.logger.Info().Int64("id", id).Msg("deleting contact")

	contact, err := s.repo.GetByID(ctx, id)

	if err != nil {
		return err
	}

	if contact == nil {
		s.logger.Warn().Int64("id", id).Msg("contact not found")
		return domain.NewNotFoundError("contact", id)
	}

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})

	if err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("contact deleted")

	return nil
}

// DeleteRange removes every listed contact that exists and reports how many
// rows actually went away. Ids with no row are skipped, not errors.
func (s *ContactService) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	s.logger.Info().Int("requested", len(ids)).Msg("deleting contacts")

	if err := validation.IDs(ids); err != nil {
		return 0, err
	}

	var deleted int64

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.repo.DeleteRange(ctx, ids)
		return err
	})

	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("deleted", deleted).Msg("contacts deleted")

	return deleted, nil
}

// checkUniqueEmail rejects an email already owned by a different contact.
// selfID is zero on create; on update a contact keeping its own email passes.
func (s *ContactService) checkUniqueEmail(ctx context.Context, email string, selfID int64) error {
	if email == "" {
		return nil
	}

	existing, err := s.repo.GetByEmail(ctx, email)

	if err != nil {
		return err
	}

	if existing != nil && existing.ID != selfID {
		s.logger.Warn().Str("email", email).Msg("duplicate contact email")
		return domain.NewConflictError("contact with email '%s' already exists", email)
	}

	return nil
}
