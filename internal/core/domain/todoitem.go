package domain

import (
	"fmt"
	"strings"
	"time"
)

type TodoStatus int

const (
	TodoStatusNotStarted TodoStatus = iota
	TodoStatusInProgress
	TodoStatusCompleted
	TodoStatusCancelled
)

var todoStatusNames = []string{"notStarted", "inProgress", "completed", "cancelled"}

func (s TodoStatus) String() string {
	if !s.Valid() {
		return "unknown"
	}

	return todoStatusNames[s]
}

func (s TodoStatus) Valid() bool {
	return s >= TodoStatusNotStarted && s <= TodoStatusCancelled
}

// ParseTodoStatus maps the camelCase wire name back to the enum. The empty
// string falls back to NotStarted so omitted fields pick up the default.
func ParseTodoStatus(name string) (TodoStatus, error) {
	if name == "" {
		return TodoStatusNotStarted, nil
	}

	for i, n := range todoStatusNames {
		if n == name {
			return TodoStatus(i), nil
		}
	}

	return -1, fmt.Errorf("invalid status: %s", name)
}

type Priority int

const (
	PriorityNotSpecified Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var priorityNames = []string{"notSpecified", "low", "medium", "high", "urgent"}

func (p Priority) String() string {
	if !p.Valid() {
		return "unknown"
	}

	return priorityNames[p]
}

func (p Priority) Valid() bool {
	return p >= PriorityNotSpecified && p <= PriorityUrgent
}

func ParsePriority(name string) (Priority, error) {
	if name == "" {
		return PriorityLow, nil
	}

	for i, n := range priorityNames {
		if n == name {
			return Priority(i), nil
		}
	}

	return -1, fmt.Errorf("invalid priority: %s", name)
}

const maxTitleLength = 200

type TodoItem struct {
	ID          int64
	Title       string
	Details     string
	DueDate     *int64
	Status      TodoStatus
	Priority    Priority
	ContactID   *int64
	ContactName string
	CompletedAt *int64
	Description string
	CreatedAt   int64
	UpdatedAt   int64
}

func NewTodoItem(title, details string, dueDate *int64, status TodoStatus, priority Priority, contactID *int64, description string) (*TodoItem, error) {
	if err := checkTodoItemFields(title, dueDate, status, priority, contactID); err != nil {
		return nil, err
	}

	now := time.Now().Unix()

	return &TodoItem{
		Title:       title,
		Details:     details,
		DueDate:     dueDate,
		Status:      status,
		Priority:    priority,
		ContactID:   contactID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (t *TodoItem) Update(title, details string, dueDate *int64, status TodoStatus, priority Priority, contactID *int64, description string) error {
	if err := checkTodoItemFields(title, dueDate, status, priority, contactID); err != nil {
		return err
	}

	t.Title = title
	t.Details = details
	t.DueDate = dueDate
	t.Status = status
	t.Priority = priority
	t.ContactID = contactID
	t.Description = description
	t.UpdatedAt = time.Now().Unix()

	return nil
}

// Complete stamps CompletedAt and UpdatedAt with the same instant.
func (t *TodoItem) Complete() {
	now := time.Now().Unix()

	t.Status = TodoStatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
}

func (t *TodoItem) Cancel() {
	t.Status = TodoStatusCancelled
	t.UpdatedAt = time.Now().Unix()
}

// IsOverdue reports whether the item is past due and still open.
func (t *TodoItem) IsOverdue(now int64) bool {
	return t.DueDate != nil && *t.DueDate < now &&
		t.Status != TodoStatusCompleted && t.Status != TodoStatusCancelled
}

func checkTodoItemFields(title string, dueDate *int64, status TodoStatus, priority Priority, contactID *int64) error {
	var violations []FieldViolation

	if strings.TrimSpace(title) == "" {
		violations = append(violations, FieldViolation{"title", "title is required"})
	} else if len(title) > maxTitleLength {
		violations = append(violations, FieldViolation{"title", "title must not exceed 200 characters"})
	}

	if dueDate != nil && *dueDate < 0 {
		violations = append(violations, FieldViolation{"dueDate", "due date must not be negative"})
	}

	if !status.Valid() {
		violations = append(violations, FieldViolation{"status", "invalid status value"})
	}

	if !priority.Valid() {
		violations = append(violations, FieldViolation{"priority", "invalid priority value"})
	}

	if contactID != nil && *contactID <= 0 {
		violations = append(violations, FieldViolation{"contactId", "contact id must be positive"})
	}

	if len(violations) > 0 {
		return NewValidationError(violations...)
	}

	return nil
}
