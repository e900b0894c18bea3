package port

import (
	"context"

	"tdm/internal/core/domain"
	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
)

// TodoItemRepository loads and stores to-do items. Read methods fill in the
// denormalized ContactName for items linked to a contact.
type TodoItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TodoItem, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.TodoItem, error)
	GetAll(ctx context.Context) ([]domain.TodoItem, error)
	GetByContactID(ctx context.Context, contactID int64) ([]domain.TodoItem, error)
	GetByStatus(ctx context.Context, status domain.TodoStatus) ([]domain.TodoItem, error)
	GetByPriority(ctx context.Context, priority domain.Priority) ([]domain.TodoItem, error)
	GetOverdue(ctx context.Context) ([]domain.TodoItem, error)
	GetToday(ctx context.Context) ([]domain.TodoItem, error)
	GetByTitle(ctx context.Context, title string) ([]domain.TodoItem, error)
	Create(ctx context.Context, item *domain.TodoItem) error
	Update(ctx context.Context, item *domain.TodoItem) error
	Delete(ctx context.Context, id int64) error
	DeleteRange(ctx context.Context, ids []int64) (int64, error)
}

type TodoItemService interface {
	GetAll(ctx context.Context) ([]response.TodoItemResponse, error)
	GetByID(ctx context.Context, id int64) (response.TodoItemResponse, error)
	GetByContactID(ctx context.Context, contactID int64) ([]response.TodoItemResponse, error)
	GetByStatus(ctx context.Context, status domain.TodoStatus) ([]response.TodoItemResponse, error)
	GetByPriority(ctx context.Context, priority domain.Priority) ([]response.TodoItemResponse, error)
	GetOverdue(ctx context.Context) ([]response.TodoItemResponse, error)
	GetToday(ctx context.Context) ([]response.TodoItemResponse, error)
	SearchByTitle(ctx context.Context, title string) ([]response.TodoItemResponse, error)
	Create(ctx context.Context, req request.CreateTodoItemRequest) (response.TodoItemResponse, error)
	Update(ctx context.Context, id int64, req request.UpdateTodoItemRequest) (response.TodoItemResponse, error)
	Complete(ctx context.Context, id int64) (response.TodoItemResponse, error)
	Cancel(ctx context.Context, id int64) (response.TodoItemResponse, error)
	Delete(ctx context.Context, id int64) error
	DeleteRange(ctx context.Context, ids []int64) (int64, error)
}
