package response

import "tdm/internal/core/domain"

// Mapping from entities to their public shapes is pure: no lookups, no
// side effects. Denormalized fields (ContactName, RoleName) are filled by
// the repositories before entities reach this point.

func NewContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewContactResponses(contacts []domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))

	for i := range contacts {
		out = append(out, NewContactResponse(&contacts[i]))
	}

	return out
}

func NewTodoItemResponse(t *domain.TodoItem) TodoItemResponse {
	return TodoItemResponse{
		ID:          t.ID,
		Title:       t.Title,
		Details:     t.Details,
		DueDate:     t.DueDate,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		ContactID:   t.ContactID,
		ContactName: t.ContactName,
		CompletedAt: t.CompletedAt,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTodoItemResponses(items []domain.TodoItem) []TodoItemResponse {
	out := make([]TodoItemResponse, 0, len(items))

	for i := range items {
		out = append(out, NewTodoItemResponse(&items[i]))
	}

	return out
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Login:       u.Login,
		IsBlocked:   u.IsBlocked,
		RoleID:      u.RoleID,
		RoleName:    u.RoleName,
		Description: u.Description,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))

	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}

	return out
}

func NewLoginUserResponse(u *domain.User) LoginUserResponse {
	return LoginUserResponse{
		ID:        u.ID,
		Login:     u.Login,
		RoleID:    u.RoleID,
		RoleName:  u.RoleName,
		IsBlocked: u.IsBlocked,
	}
}
