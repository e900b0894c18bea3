package client

import (
	"context"
	"fmt"
	"net/http"

	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
	"tdm/internal/core/validation"
)

type UsersClient struct {
	c *Client
}

func (uc *UsersClient) GetAll(ctx context.Context) ([]response.UserResponse, error) {
	var users []response.UserResponse

	err := uc.c.get(ctx, "/api/users", nil, &users)

	return users, err
}

func (uc *UsersClient) GetByID(ctx context.Context, id int64) (response.UserResponse, error) {
	var user response.UserResponse

	err := uc.c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &user)

	return user, err
}

func (uc *UsersClient) GetByRoleID(ctx context.Context, roleID int64) ([]response.UserResponse, error) {
	var users []response.UserResponse

	err := uc.c.get(ctx, fmt.Sprintf("/api/users/by-role/%d", roleID), nil, &users)

	return users, err
}

func (uc *UsersClient) Login(ctx context.Context, req request.LoginUserRequest) (response.LoginUserResponse, error) {
	var result response.LoginUserResponse

	if err := validation.Struct(req); err != nil {
		return result, err
	}

	err := uc.c.do(ctx, http.MethodPost, "/api/users/login", req, &result)

	return result, err
}

func (uc *UsersClient) Create(ctx context.Context, req request.CreateUserRequest) (response.UserResponse, error) {
	var user response.UserResponse

	if err := validation.Struct(req); err != nil {
		return user, err
	}

	err := uc.c.do(ctx, http.MethodPost, "/api/users", req, &user)

	return user, err
}

func (uc *UsersClient) Update(ctx context.Context, id int64, req request.UpdateUserRequest) (response.UserResponse, error) {
	var user response.UserResponse

	if err := validation.Struct(req); err != nil {
		return user, err
	}

	err := uc.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), req, &user)

	return user, err
}

func (uc *UsersClient) Delete(ctx context.Context, id int64) error {
	return uc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}

func (uc *UsersClient) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	if err := validation.IDs(ids); err != nil {
		return 0, err
	}

	var result response.DeletedCountResponse

	err := uc.c.do(ctx, http.MethodDelete, "/api/users/delete-range", ids, &result)

	return result.DeletedCount, err
}
