package domain_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"tdm/internal/core/domain"
)

func TestNewContact_Valid(t *testing.T) {
	RegisterTestingT(t)

	contact, err := domain.NewContact("Ivan", "Petrov", "+375 29 123-45-67", "ivan@example.com", "Minsk", "")

	Expect(err).To(BeNil())
	Expect(contact.ID).To(BeZero())
	Expect(contact.FirstName).To(Equal("Ivan"))
	Expect(contact.CreatedAt).NotTo(BeZero())
	Expect(contact.UpdatedAt).To(Equal(contact.CreatedAt))
}

func TestNewContact_CollectsAllViolations(t *testing.T) {
	RegisterTestingT(t)

	_, err := domain.NewContact("", "", strings.Repeat("1", 21), "", "", "")

	var validationErr *domain.ValidationError
	Expect(err).To(BeAssignableToTypeOf(validationErr))

	validationErr = err.(*domain.ValidationError)
	Expect(len(validationErr.Violations)).To(Equal(3))

	names := make([]string, 0, len(validationErr.Violations))

	for _, v := range validationErr.Violations {
		names = append(names, v.PropertyName)
	}

	Expect(names).To(ContainElements("firstName", "lastName", "phone"))
}

func TestNewContact_BlankNamesRejected(t *testing.T) {
	RegisterTestingT(t)

	_, err := domain.NewContact("   ", "\t", "", "", "", "")

	Expect(err).NotTo(BeNil())
}

func TestContact_Update_Revalidates(t *testing.T) {
	RegisterTestingT(t)

	contact, err := domain.NewContact("Ivan", "Petrov", "", "", "", "")
	Expect(err).To(BeNil())

	err = contact.Update("", "Petrov", "", "", "", "")

	Expect(err).NotTo(BeNil())
}

func TestContact_FullName(t *testing.T) {
	RegisterTestingT(t)

	contact, err := domain.NewContact("Anna", "Ivanova", "", "", "", "")

	Expect(err).To(BeNil())
	Expect(contact.FullName()).To(Equal("Anna Ivanova"))
}

func TestNewContact_FieldLimits(t *testing.T) {
	RegisterTestingT(t)

	long := strings.Repeat("x", 101)

	_, err := domain.NewContact(long, "Petrov", "", "", "", "")
	Expect(err).NotTo(BeNil())

	_, err = domain.NewContact("Ivan", "Petrov", "", strings.Repeat("a", 190)+"@example.com", "", "")
	Expect(err).NotTo(BeNil())

	_, err = domain.NewContact("Ivan", "Petrov", "", "", strings.Repeat("a", 501), "")
	Expect(err).NotTo(BeNil())
}
