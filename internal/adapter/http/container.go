package http

import (
	"github.com/rs/zerolog"

	"tdm/internal/adapter/http/handler"
	"tdm/internal/core/port"
	"tdm/internal/core/service"
)

// Repositories is the persistence surface the container wires services to,
// filled by either database adapter.
type Repositories struct {
	Contacts   port.ContactRepository
	TodoItems  port.TodoItemRepository
	Users      port.UserRepository
	Roles      port.RoleRepository
	UnitOfWork port.UnitOfWork
}

type Container struct {
	ContactService  port.ContactService
	TodoItemService port.TodoItemService
	UserService     port.UserService

	ContactHandler  *handler.ContactHandler
	TodoItemHandler *handler.TodoItemHandler
	UserHandler     *handler.UserHandler
}

func NewContainer(repos Repositories, logger zerolog.Logger) *Container {
	contactSvc := service.NewContactService(repos.Contacts, repos.UnitOfWork, logger)
	todoSvc := service.NewTodoItemService(repos.TodoItems, repos.Contacts, repos.UnitOfWork, logger)
	userSvc := service.NewUserService(repos.Users, repos.Roles, repos.UnitOfWork, logger)

	return &Container{
		ContactService:  contactSvc,
		TodoItemService: todoSvc,
		UserService:     userSvc,

		ContactHandler:  handler.NewContactHandler(contactSvc, logger),
		TodoItemHandler: handler.NewTodoItemHandler(todoSvc, logger),
		UserHandler:     handler.NewUserHandler(userSvc, logger),
	}
}
