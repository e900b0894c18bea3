package request

type CreateContactRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=20,phone"`
	Email       string `json:"email,omitempty" validate:"omitempty,max=200,email"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=500"`
	Description string `json:"description,omitempty"`
}

type UpdateContactRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=20,phone"`
	Email       string `json:"email,omitempty" validate:"omitempty,max=200,email"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=500"`
	Description string `json:"description,omitempty"`
}

type CreateTodoItemRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Details     string `json:"details,omitempty"`
	DueDate     *int64 `json:"dueDate,omitempty" validate:"omitempty,min=0"`
	Status      string `json:"status,omitempty" validate:"omitempty,todostatus"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,todopriority"`
	ContactID   *int64 `json:"contactId,omitempty" validate:"omitempty,gt=0"`
	Description string `json:"description,omitempty"`
}

type UpdateTodoItemRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Details     string `json:"details,omitempty"`
	DueDate     *int64 `json:"dueDate,omitempty" validate:"omitempty,min=0"`
	Status      string `json:"status,omitempty" validate:"omitempty,todostatus"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,todopriority"`
	ContactID   *int64 `json:"contactId,omitempty" validate:"omitempty,gt=0"`
	Description string `json:"description,omitempty"`
}

type CreateUserRequest struct {
	Login       string `json:"login" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=6,max=100"`
	RoleID      int64  `json:"roleId" validate:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

type UpdateUserRequest struct {
	Login       string `json:"login" validate:"required,min=3,max=50"`
	IsBlocked   bool   `json:"isBlocked"`
	RoleID      int64  `json:"roleId" validate:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

type LoginUserRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}
