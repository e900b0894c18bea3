package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"tdm/internal/adapter/database/sqlite"
	"tdm/internal/adapter/database/sqlite/repository"
	"tdm/internal/core/domain"
	"tdm/internal/core/model/request"
	"tdm/internal/core/port"
	"tdm/internal/core/service"
	"tdm/pkg/test"
	"tdm/pkg/test/factory"
)

type UserServiceSuite struct {
	suite.Suite
	svc   port.UserService
	roles port.RoleRepository
}

func (s *UserServiceSuite) SetupTest() {
	RegisterTestingT(s.T())

	db := test.InitTestDB(s.T())

	userRepo := repository.NewUserRepository(db)
	s.roles = repository.NewRoleRepository(db)

	s.svc = service.NewUserService(userRepo, s.roles, sqlite.NewUnitOfWork(db), zerolog.Nop())
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) TestSeededRolesArePresent() {
	admin, err := s.roles.GetByName(context.Background(), "admin")
	Expect(err).To(BeNil())
	Expect(admin).NotTo(BeNil())

	user, err := s.roles.GetByName(context.Background(), "user")
	Expect(err).To(BeNil())
	Expect(user).NotTo(BeNil())
}

func (s *UserServiceSuite) TestCreate_HashesPasswordAndResolvesRole() {
	user, err := s.svc.Create(context.Background(), factory.CreateUserRequest())

	Expect(err).To(BeNil())
	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Login).To(Equal("jdoe"))
	Expect(user.RoleName).To(Equal("admin"))
	Expect(user.IsBlocked).To(BeFalse())
}

func (s *UserServiceSuite) TestCreate_DuplicateLoginConflicts() {
	_, err := s.svc.Create(context.Background(), factory.CreateUserRequest())
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateUserRequest())

	var conflictErr *domain.ConflictError
	Expect(err).To(BeAssignableToTypeOf(conflictErr))
}

func (s *UserServiceSuite) TestCreate_MissingRoleIsBadRequest() {
	_, err := s.svc.Create(context.Background(), factory.CreateUserRequest(map[string]any{
		"RoleID": int64(99),
	}))

	var badRequestErr *domain.BadRequestError
	Expect(err).To(BeAssignableToTypeOf(badRequestErr))
}

func (s *UserServiceSuite) TestCreate_ShortPasswordFailsValidation() {
	_, err := s.svc.Create(context.Background(), factory.CreateUserRequest(map[string]any{
		"Password": "12345",
	}))

	var validationErr *domain.ValidationError
	Expect(err).To(BeAssignableToTypeOf(validationErr))
}

func (s *UserServiceSuite) TestLogin_Succeeds() {
	_, err := s.svc.Create(context.Background(), factory.CreateUserRequest())
	Expect(err).To(BeNil())

	result, err := s.svc.Login(context.Background(), request.LoginUserRequest{
		Login:    "jdoe",
		Password: "s3cret!",
	})

	Expect(err).To(BeNil())
	Expect(result.Login).To(Equal("jdoe"))
	Expect(result.RoleName).To(Equal("admin"))
}

func (s *UserServiceSuite) TestLogin_UnknownLoginIsNotFound() {
	_, err := s.svc.Login(context.Background(), request.LoginUserRequest{
		Login:    "ghost",
		Password: "whatever",
	})

	var notFoundErr *domain.NotFoundError
	Expect(err).To(BeAssignableToTypeOf(notFoundErr))
}

func (s *UserServiceSuite) TestLogin_WrongPasswordIsBadRequest() {
	_, err := s.svc.Create(context.Background(), factory.CreateUserRequest())
	Expect(err).To(BeNil())

	_, err = s.svc.Login(context.Background(), request.LoginUserRequest{
		Login:    "jdoe",
		Password: "not-the-password",
	})

	var badRequestErr *domain.BadRequestError
	Expect(err).To(BeAssignableToTypeOf(badRequestErr))
	Expect(err.Error()).To(Equal("wrong password"))
}

func (s *UserServiceSuite) TestLogin_BlockedUserIsBadRequest() {
	created, err := s.svc.Create(context.Background(), factory.CreateUserRequest())
	Expect(err).To(BeNil())

	_, err = s.svc.Update(context.Background(), created.ID, factory.UpdateUserRequest(map[string]any{
		"IsBlocked": true,
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Login(context.Background(), request.LoginUserRequest{
		Login:    "jdoe",
		Password: "s3cret!",
	})

	var badRequestErr *domain.BadRequestError
	Expect(err).To(BeAssignableToTypeOf(badRequestErr))
	Expect(err.Error()).To(ContainSubstring("blocked"))
}

func (s *UserServiceSuite) TestUpdate_LoginUniquenessAgainstOthers() {
	_, err := s.svc.Create(context.Background(), factory.CreateUserRequest())
	Expect(err).To(BeNil())

	second, err := s.svc.Create(context.Background(), factory.CreateUserRequest(map[string]any{
		"Login": "asmith",
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Update(context.Background(), second.ID, factory.UpdateUserRequest())

	var conflictErr *domain.ConflictError
	Expect(err).To(BeAssignableToTypeOf(conflictErr))
}

func (s *UserServiceSuite) TestUpdate_KeepingOwnLoginPasses() {
	created, err := s.svc.Create(context.Background(), factory.CreateUserRequest())
	Expect(err).To(BeNil())

	updated, err := s.svc.Update(context.Background(), created.ID, factory.UpdateUserRequest(map[string]any{
		"Description": "still jdoe",
	}))

	Expect(err).To(BeNil())
	Expect(updated.Login).To(Equal("jdoe"))
	Expect(updated.Description).To(Equal("still jdoe"))
}

func (s *UserServiceSuite) TestGetByRoleID() {
	_, err := s.svc.Create(context.Background(), factory.CreateUserRequest())
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateUserRequest(map[string]any{
		"Login":  "asmith",
		"RoleID": int64(2),
	}))
	Expect(err).To(BeNil())

	admins, err := s.svc.GetByRoleID(context.Background(), 1)

	Expect(err).To(BeNil())
	Expect(admins).To(HaveLen(1))
	Expect(admins[0].Login).To(Equal("jdoe"))
}

func (s *UserServiceSuite) TestDeleteRange_Counts() {
	first, err := s.svc.Create(context.Background(), factory.CreateUserRequest())
	Expect(err).To(BeNil())

	second, err := s.svc.Create(context.Background(), factory.CreateUserRequest(map[string]any{
		"Login": "asmith",
	}))
	Expect(err).To(BeNil())

	deleted, err := s.svc.DeleteRange(context.Background(), []int64{first.ID, second.ID, 500})

	Expect(err).To(BeNil())
	Expect(deleted).To(Equal(int64(2)))
}
