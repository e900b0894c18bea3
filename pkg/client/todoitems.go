package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tdm/internal/core/domain"
	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
	"tdm/internal/core/validation"
)

type TodoItemsClient struct {
	c *Client
}

func (tc *TodoItemsClient) GetAll(ctx context.Context) ([]response.TodoItemResponse, error) {
	var items []response.TodoItemResponse

	err := tc.c.get(ctx, "/api/to-do-items", nil, &items)

	return items, err
}

func (tc *TodoItemsClient) GetByID(ctx context.Context, id int64) (response.TodoItemResponse, error) {
	var item response.TodoItemResponse

	err := tc.c.get(ctx, fmt.Sprintf("/api/to-do-items/%d", id), nil, &item)

	return item, err
}

func (tc *TodoItemsClient) GetByContactID(ctx context.Context, contactID int64) ([]response.TodoItemResponse, error) {
	var items []response.TodoItemResponse

	err := tc.c.get(ctx, fmt.Sprintf("/api/to-do-items/contact/%d", contactID), nil, &items)

	return items, err
}

func (tc *TodoItemsClient) GetByStatus(ctx context.Context, status domain.TodoStatus) ([]response.TodoItemResponse, error) {
	if !status.Valid() {
		return nil, domain.NewBadRequestError("unknown to-do status %d", int(status))
	}

	var items []response.TodoItemResponse

	err := tc.c.get(ctx, "/api/to-do-items/status/"+status.String(), nil, &items)

	return items, err
}

func (tc *TodoItemsClient) GetByPriority(ctx context.Context, priority domain.Priority) ([]response.TodoItemResponse, error) {
	if !priority.Valid() {
		return nil, domain.NewBadRequestError("unknown priority %d", int(priority))
	}

	var items []response.TodoItemResponse

	err := tc.c.get(ctx, "/api/to-do-items/priority/"+priority.String(), nil, &items)

	return items, err
}

func (tc *TodoItemsClient) GetOverdue(ctx context.Context) ([]response.TodoItemResponse, error) {
	var items []response.TodoItemResponse

	err := tc.c.get(ctx, "/api/to-do-items/overdue", nil, &items)

	return items, err
}

func (tc *TodoItemsClient) GetToday(ctx context.Context) ([]response.TodoItemResponse, error) {
	var items []response.TodoItemResponse

	err := tc.c.get(ctx, "/api/to-do-items/today", nil, &items)

	return items, err
}

func (tc *TodoItemsClient) SearchByTitle(ctx context.Context, title string) ([]response.TodoItemResponse, error) {
	var items []response.TodoItemResponse

	err := tc.c.get(ctx, "/api/to-do-items/search", url.Values{"title": {title}}, &items)

	return items, err
}

func (tc *TodoItemsClient) Create(ctx context.Context, req request.CreateTodoItemRequest) (response.TodoItemResponse, error) {
	var item response.TodoItemResponse

	if err := validation.Struct(req); err != nil {
		return item, err
	}

	err := tc.c.do(ctx, http.MethodPost, "/api/to-do-items", req, &item)

	return item, err
}

func (tc *TodoItemsClient) Update(ctx context.Context, id int64, req request.UpdateTodoItemRequest) (response.TodoItemResponse, error) {
	var item response.TodoItemResponse

	if err := validation.Struct(req); err != nil {
		return item, err
	}

	err := tc.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/to-do-items/%d", id), req, &item)

	return item, err
}

func (tc *TodoItemsClient) Complete(ctx context.Context, id int64) (response.TodoItemResponse, error) {
	var item response.TodoItemResponse

	err := tc.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/to-do-items/%d/complete", id), nil, &item)

	return item, err
}

func (tc *TodoItemsClient) Cancel(ctx context.Context, id int64) (response.TodoItemResponse, error) {
	var item response.TodoItemResponse

	err := tc.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/to-do-items/%d/cancel", id), nil, &item)

	return item, err
}

func (tc *TodoItemsClient) Delete(ctx context.Context, id int64) error {
	return tc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/to-do-items/%d", id), nil, nil)
}

func (tc *TodoItemsClient) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	if err := validation.IDs(ids); err != nil {
		return 0, err
	}

	var result response.DeletedCountResponse

	err := tc.c.do(ctx, http.MethodDelete, "/api/to-do-items/delete-range", ids, &result)

	return result.DeletedCount, err
}
