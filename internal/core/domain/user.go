package domain

import (
	"strings"
	"time"
)

const (
	minLoginLength = 3
	maxLoginLength = 50
)

type User struct {
	ID           int64
	Login        string
	PasswordHash string
	IsBlocked    bool
	RoleID       int64
	RoleName     string
	Description  string
	CreatedAt    int64
	UpdatedAt    int64
}

func NewUser(login, passwordHash string, isBlocked bool, roleID int64, description string) (*User, error) {
	var violations []FieldViolation

	violations = append(violations, checkLogin(login)...)

	if strings.TrimSpace(passwordHash) == "" {
		violations = append(violations, FieldViolation{"password", "password hash is required"})
	}

	if roleID <= 0 {
		violations = append(violations, FieldViolation{"roleId", "role id must be positive"})
	}

	if len(violations) > 0 {
		return nil, NewValidationError(violations...)
	}

	now := time.Now().Unix()

	return &User{
		Login:        login,
		PasswordHash: passwordHash,
		IsBlocked:    isBlocked,
		RoleID:       roleID,
		Description:  description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *User) Update(login string, isBlocked bool, roleID int64, description string) error {
	var violations []FieldViolation

	violations = append(violations, checkLogin(login)...)

	if roleID <= 0 {
		violations = append(violations, FieldViolation{"roleId", "role id must be positive"})
	}

	if len(violations) > 0 {
		return NewValidationError(violations...)
	}

	u.Login = login
	u.IsBlocked = isBlocked
	u.RoleID = roleID
	u.Description = description
	u.UpdatedAt = time.Now().Unix()

	return nil
}

func (u *User) UpdatePassword(passwordHash string) error {
	if strings.TrimSpace(passwordHash) == "" {
		return NewValidationError(FieldViolation{"password", "password hash is required"})
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().Unix()

	return nil
}

func checkLogin(login string) []FieldViolation {
	if strings.TrimSpace(login) == "" {
		return []FieldViolation{{"login", "login is required"}}
	}

	if len(login) < minLoginLength || len(login) > maxLoginLength {
		return []FieldViolation{{"login", "login must be between 3 and 50 characters"}}
	}

	return nil
}
