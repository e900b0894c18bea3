package service

import (
	"context"

	"github.com/rs/zerolog"

	"tdm/internal/core/domain"
	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
	"tdm/internal/core/port"
	"tdm/internal/core/util"
	"tdm/internal/core/validation"
)

type UserService struct {
	repo   port.UserRepository
	roles  port.RoleRepository
	uow    port.UnitOfWork
	logger zerolog.Logger
}

func NewUserService(repo port.UserRepository, roles port.RoleRepository, uow port.UnitOfWork, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, roles: roles, uow: uow, logger: logger}
}

func (s *UserService) GetAll(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.GetAll(ctx)

	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(users)).Msg("fetched all users")

	return response.NewUserResponses(users), nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (response.UserResponse, error) {
	user, err := s.loadUser(ctx, id)

	if err != nil {
		return response.UserResponse{}, err
	}

	return response.NewUserResponse(user), nil
}

func (s *UserService) GetByRoleID(ctx context.Context, roleID int64) ([]response.UserResponse, error) {
	role, err := s.roles.GetByID(ctx, roleID)

	if err != nil {
		return nil, err
	}

	if role == nil {
		return nil, domain.NewNotFoundError("role", roleID)
	}

	users, err := s.repo.GetByRoleID(ctx, roleID)

	if err != nil {
		return nil, err
	}

	return response.NewUserResponses(users), nil
}

// Login checks the credentials in a fixed order: unknown login is a not
// found, a wrong password or a blocked account is a bad request. The order is
// load-bearing for clients that distinguish the two.
func (s *UserService) Login(ctx context.Context, req request.LoginUserRequest) (response.LoginUserResponse, error) {
	s.logger.Info().Str("login", req.Login).Msg("user login attempt")

	if err := validation.Struct(req); err != nil {
		return response.LoginUserResponse{}, err
	}

	user, err := s.repo.GetByLogin(ctx, req.Login)

	if err != nil {
		return response.LoginUserResponse{}, err
	}

	if user == nil {
		s.logger.Warn().Str("login", req.Login).Msg("login not found")
		return response.LoginUserResponse{}, &domain.NotFoundError{
			Entity:  "user",
			Message: "user with login '" + req.Login + "' not found",
		}
	}

	if err := util.ComparePassword(req.Password, user.PasswordHash); err != nil {
		s.logger.Warn().Str("login", req.Login).Msg("wrong password")
		return response.LoginUserResponse{}, domain.NewBadRequestError("wrong password")
	}

	if user.IsBlocked {
		s.logger.Warn().Str("login", req.Login).Msg("blocked user login attempt")
		return response.LoginUserResponse{}, domain.NewBadRequestError("user '%s' is blocked", req.Login)
	}

	s.logger.Info().Int64("id", user.ID).Str("login", user.Login).Msg("user logged in")

	return response.NewLoginUserResponse(user), nil
}

func (s *UserService) Create(ctx context.Context, req request.CreateUserRequest) (response.UserResponse, error) {
	s.logger.Info().Str("login", req.Login).Msg("creating user")

	if err := validation.Struct(req); err != nil {
		return response.UserResponse{}, err
	}

	existing, err := s.repo.GetByLogin(ctx, req.Login)

	if err != nil {
		return response.UserResponse{}, err
	}

	if existing != nil {
		s.logger.Warn().Str("login", req.Login).Msg("duplicate login")
		return response.UserResponse{}, domain.NewConflictError("user with login '%s' already exists", req.Login)
	}

	role, err := s.roles.GetByID(ctx, req.RoleID)

	if err != nil {
		return response.UserResponse{}, err
	}

	if role == nil {
		return response.UserResponse{}, domain.NewBadRequestError("role with id %d does not exist", req.RoleID)
	}

	hash, err := util.HashPassword(req.Password)

	if err != nil {
		return response.UserResponse{}, err
	}

	user, err := domain.NewUser(req.Login, hash, false, req.RoleID, req.Description)

	if err != nil {
		return response.UserResponse{}, err
	}

	user.RoleName = role.Name

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, user)
	})

	if err != nil {
		return response.UserResponse{}, err
	}

	s.logger.Info().Int64("id", user.ID).Str("login", user.Login).Msg("user created")

	return response.NewUserResponse(user), nil
}

func (s *UserService) Update(ctx context.Context, id int64, req request.UpdateUserRequest) (response.UserResponse, error) {
	s.logger.Info().Int64("id", id).Msg("updating user")

	if err := validation.Struct(req); err != nil {
		return response.UserResponse{}, err
	}

	user, err := s.loadUser(ctx, id)

	if err != nil {
		return response.UserResponse{}, err
	}

	existing, err := s.repo.GetByLogin(ctx, req.Login)

	if err != nil {
		return response.UserResponse{}, err
	}

	if existing != nil && existing.ID != id {
		s.logger.Warn().Str("login", req.Login).Msg("duplicate login")
		return response.UserResponse{}, domain.NewConflictError("user with login '%s' already exists", req.Login)
	}

	role, err := s.roles.GetByID(ctx, req.RoleID)

	if err != nil {
		return response.UserResponse{}, err
	}

	if role == nil {
		return response.UserResponse{}, domain.NewBadRequestError("role with id %d does not exist", req.RoleID)
	}

	if err := user.Update(req.Login, req.IsBlocked, req.RoleID, req.Description); err != nil {
		return response.UserResponse{}, err
	}

	user.RoleName = role.Name

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, user)
	})

	if err != nil {
		return response.UserResponse{}, err
	}

	s.logger.Info().Int64("id", user.ID).Msg("user updated")

	return response.NewUserResponse(user), nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	s.logger.Info().Int64("id", id).Msg("deleting user")

	if _, err := s.loadUser(ctx, id); err != nil {
		return err
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})

	if err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("user deleted")

	return nil
}

func (s *UserService) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	s.logger.Info().Int("requested", len(ids)).Msg("deleting users")

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

	s.logger.Info().Int64("deleted", deleted).Msg("users deleted")

	return deleted, nil
}

func (s *UserService) loadUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if user == nil {
		s.logger.Warn().Int64("id", id).Msg("user not found")
		return nil, domain.NewNotFoundError("user", id)
	}

	return user, nil
}
