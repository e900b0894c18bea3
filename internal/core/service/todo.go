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

type TodoItemService struct {
	repo     port.TodoItemRepository
	contacts port.ContactRepository
	uow      port.UnitOfWork
	logger   zerolog.Logger
}

func NewTodoItemService(repo port.TodoItemRepository, contacts port.ContactRepository, uow port.UnitOfWork, logger zerolog.Logger) *TodoItemService {
	return &TodoItemService{repo: repo, contacts: contacts, uow: uow, logger: logger}
}

func (s *TodoItemService) GetAll(ctx context.Context) ([]response.TodoItemResponse, error) {
	items, err := s.repo.GetAll(ctx)

	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(items)).Msg("fetched all to-do items")

	return response.NewTodoItemResponses(items), nil
}

func (s *TodoItemService) GetByID(ctx context.Context, id int64) (response.TodoItemResponse, error) {
	item, err := s.loadItem(ctx, id)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	return response.NewTodoItemResponse(item), nil
}

func (s *TodoItemService) GetByContactID(ctx context.Context, contactID int64) ([]response.TodoItemResponse, error) {
	contact, err := s.contacts.GetByID(ctx, contactID)

	if err != nil {
		return nil, err
	}

	if contact == nil {
		return nil, domain.NewNotFoundError("contact", contactID)
	}

	items, err := s.repo.GetByContactID(ctx, contactID)

	if err != nil {
		return nil, err
	}

	return response.NewTodoItemResponses(items), nil
}

func (s *TodoItemService) GetByStatus(ctx context.Context, status domain.TodoStatus) ([]response.TodoItemResponse, error) {
	if !status.Valid() {
		return nil, domain.NewBadRequestError("unknown to-do status %d", int(status))
	}

	items, err := s.repo.GetByStatus(ctx, status)

	if err != nil {
		return nil, err
	}

	return response.NewTodoItemResponses(items), nil
}

func (s *TodoItemService) GetByPriority(ctx context.Context, priority domain.Priority) ([]response.TodoItemResponse, error) {
	if !priority.Valid() {
		return nil, domain.NewBadRequestError("unknown priority %d", int(priority))
	}

	items, err := s.repo.GetByPriority(ctx, priority)

	if err != nil {
		return nil, err
	}

	return response.NewTodoItemResponses(items), nil
}

func (s *TodoItemService) GetOverdue(ctx context.Context) ([]response.TodoItemResponse, error) {
	items, err := s.repo.GetOverdue(ctx)

	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(items)).Msg("fetched overdue to-do items")

	return response.NewTodoItemResponses(items), nil
}

func (s *TodoItemService) GetToday(ctx context.Context) ([]response.TodoItemResponse, error) {
	items, err := s.repo.GetToday(ctx)

	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(items)).Msg("fetched today's to-do items")

	return response.NewTodoItemResponses(items), nil
}

func (s *TodoItemService) SearchByTitle(ctx context.Context, title string) ([]response.TodoItemResponse, error) {
	items, err := s.repo.GetByTitle(ctx, title)

	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("title", title).Int("count", len(items)).Msg("searched to-do items by title")

	return response.NewTodoItemResponses(items), nil
}

func (s *TodoItemService) Create(ctx context.Context, req request.CreateTodoItemRequest) (response.TodoItemResponse, error) {
	s.logger.Info().Str("title", req.Title).Msg("creating to-do item")

	if err := validation.Struct(req); err != nil {
		return response.TodoItemResponse{}, err
	}

	status, err := domain.ParseTodoStatus(req.Status)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	priority, err := domain.ParsePriority(req.Priority)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	contactName, err := s.resolveContactName(ctx, req.ContactID)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	item, err := domain.NewTodoItem(req.Title, req.Details, req.DueDate, status, priority, req.ContactID, req.Description)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	item.ContactName = contactName

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, item)
	})

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	s.logger.Info().Int64("id", item.ID).Msg("to-do item created")

	return response.NewTodoItemResponse(item), nil
}

func (s *TodoItemService) Update(ctx context.Context, id int64, req request.UpdateTodoItemRequest) (response.TodoItemResponse, error) {
	s.logger.Info().Int64("id", id).Msg("updating to-do item")

	if err := validation.Struct(req); err != nil {
		return response.TodoItemResponse{}, err
	}

	item, err := s.loadItem(ctx, id)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	status, err := domain.ParseTodoStatus(req.Status)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	priority, err := domain.ParsePriority(req.Priority)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	contactName, err := s.resolveContactName(ctx, req.ContactID)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	if err := item.Update(req.Title, req.Details, req.DueDate, status, priority, req.ContactID, req.Description); err != nil {
		return response.TodoItemResponse{}, err
	}

	item.ContactName = contactName

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, item)
	})

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	s.logger.Info().Int64("id", item.ID).Msg("to-do item updated")

	return response.NewTodoItemResponse(item), nil
}

func (s *TodoItemService) Complete(ctx context.Context, id int64) (response.TodoItemResponse, error) {
	s.logger.Info().Int64("id", id).Msg("completing to-do item")

	item, err := s.loadItem(ctx, id)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	item.Complete()

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, item)
	})

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	return response.NewTodoItemResponse(item), nil
}

func (s *TodoItemService) Cancel(ctx context.Context, id int64) (response.TodoItemResponse, error) {
	s.logger.Info().Int64("id", id).Msg("cancelling to-do item")

	item, err := s.loadItem(ctx, id)

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	item.Cancel()

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, item)
	})

	if err != nil {
		return response.TodoItemResponse{}, err
	}

	return response.NewTodoItemResponse(item), nil
}

func (s *TodoItemService) Delete(ctx context.Context, id int64) error {
	s.logger.Info().Int64("id", id).Msg("deleting to-do item")

	if _, err := s.loadItem(ctx, id); err != nil {
		return err
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})

	if err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("to-do item deleted")

	return nil
}

func (s *TodoItemService) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	s.logger.Info().Int("requested", len(ids)).Msg("deleting to-do items")

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

	s.logger.Info().Int64("deleted", deleted).Msg("to-do items deleted")

	return deleted, nil
}

func (s *TodoItemService) loadItem(ctx context.Context, id int64) (*domain.TodoItem, error) {
	item, err := s.repo.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if item == nil {
		s.logger.Warn().Int64("id", id).Msg("to-do item not found")
		return nil, domain.NewNotFoundError("to-do item", id)
	}

	return item, nil
}

// resolveContactName verifies the referenced contact exists and returns its
// display name. A missing contact is the caller's mistake, not a lookup miss.
func (s *TodoItemService) resolveContactName(ctx context.Context, contactID *int64) (string, error) {
	if contactID == nil {
		return "", nil
	}

	contact, err := s.contacts.GetByID(ctx, *contactID)

	if err != nil {
		return "", err
	}

	if contact == nil {
		s.logger.Warn().Int64("contact_id", *contactID).Msg("referenced contact not found")
		return "", domain.NewBadRequestError("contact with id %d does not exist", *contactID)
	}

	return contact.FullName(), nil
}
