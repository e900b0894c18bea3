package port

import (
	"context"

	"tdm/internal/core/domain"
	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
)

// UserRepository loads and stores users. Read methods fill in the
// denormalized RoleName from the joined role row.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByRoleID(ctx context.Context, roleID int64) ([]domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	DeleteRange(ctx context.Context, ids []int64) (int64, error)
}

type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	GetAll(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, role *domain.Role) error
}

type UserService interface {
	GetAll(ctx context.Context) ([]response.UserResponse, error)
	GetByID(ctx context.Context, id int64) (response.UserResponse, error)
	GetByRoleID(ctx context.Context, roleID int64) ([]response.UserResponse, error)
	Login(ctx context.Context, req request.LoginUserRequest) (response.LoginUserResponse, error)
	Create(ctx context.Context, req request.CreateUserRequest) (response.UserResponse, error)
	Update(ctx context.Context, id int64, req request.UpdateUserRequest) (response.UserResponse, error)
	Delete(ctx context.Context, id int64) error
	DeleteRange(ctx context.Context, ids []int64) (int64, error)
}
