package domain

import (
	"strings"
	"time"
)

const (
	maxNameLength    = 100
	maxPhoneLength   = 20
	maxEmailLength   = 200
	maxAddressLength = 500
)

type Contact struct {
	ID          int64
	FirstName   string
	LastName    string
	Phone       string
	Email       string
	Address     string
	Description string
	CreatedAt   int64
	UpdatedAt   int64
}

// NewContact builds a contact and re-checks every field rule. The request
// validator enforces the same rules earlier; the factory keeps the entity
// from ever being constructed in an invalid state by any other caller.
func NewContact(firstName, lastName, phone, email, address, description string) (*Contact, error) {
	if err := checkContactFields(firstName, lastName, phone, email, address); err != nil {
		return nil, err
	}

	now := time.Now().Unix()

	return &Contact{
		FirstName:   firstName,
		LastName:    lastName,
		Phone:       phone,
		Email:       email,
		Address:     address,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (c *Contact) Update(firstName, lastName, phone, email, address, description string) error {
	if err := checkContactFields(firstName, lastName, phone, email, address); err != nil {
		return err
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.Description = description
	c.UpdatedAt = time.Now().Unix()

	return nil
}

func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

func checkContactFields(firstName, lastName, phone, email, address string) error {
	var violations []FieldViolation

	if strings.TrimSpace(firstName) == "" {
		violations = append(violations, FieldViolation{"firstName", "first name is required"})
	} else if len(firstName) > maxNameLength {
		violations = append(violations, FieldViolation{"firstName", "first name must not exceed 100 characters"})
	}

	if strings.TrimSpace(lastName) == "" {
		violations = append(violations, FieldViolation{"lastName", "last name is required"})
	} else if len(lastName) > maxNameLength {
		violations = append(violations, FieldViolation{"lastName", "last name must not exceed 100 characters"})
	}

	if len(phone) > maxPhoneLength {
		violations = append(violations, FieldViolation{"phone", "phone must not exceed 20 characters"})
	}

	if len(email) > maxEmailLength {
		violations = append(violations, FieldViolation{"email", "email must not exceed 200 characters"})
	}

	if len(address) > maxAddressLength {
		violations = append(violations, FieldViolation{"address", "address must not exceed 500 characters"})
	}

	if len(violations) > 0 {
		return NewValidationError(violations...)
	}

	return nil
}
