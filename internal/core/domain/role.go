package domain

import (
	"strings"
	"time"
)

type Role struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   int64
	UpdatedAt   int64
}

func NewRole(name, description string) (*Role, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError(FieldViolation{"name", "role name is required"})
	}

	now := time.Now().Unix()

	return &Role{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (r *Role) Update(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError(FieldViolation{"name", "role name is required"})
	}

	r.Name = name
	r.Description = description
	r.UpdatedAt = time.Now().Unix()

	return nil
}
