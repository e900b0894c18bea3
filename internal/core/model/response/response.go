package response

type ContactResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

type TodoItemResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Details     string `json:"details,omitempty"`
	DueDate     *int64 `json:"dueDate,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	ContactID   *int64 `json:"contactId,omitempty"`
	ContactName string `json:"contactName,omitempty"`
	CompletedAt *int64 `json:"completedAt,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	IsBlocked   bool   `json:"isBlocked"`
	RoleID      int64  `json:"roleId"`
	RoleName    string `json:"roleName"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

type LoginUserResponse struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	RoleID    int64  `json:"roleId"`
	RoleName  string `json:"roleName"`
	IsBlocked bool   `json:"isBlocked"`
}

type DeletedCountResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ErrorResponse is the body for single-message failures. Validation failures
// use a bare array of ValidationFailure instead.
type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationFailure struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}
