package factory

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestFactoryAppliesOverrides(t *testing.T) {
	RegisterTestingT(t)

	due := int64(1700000000)
	contactID := int64(7)

	req := CreateTodoItemRequest(map[string]any{
		"Title":     "Water the plants",
		"DueDate":   &due,
		"Status":    "inProgress",
		"ContactID": &contactID,
	})

	Expect(req.Title).To(Equal("Water the plants"))
	Expect(req.DueDate).To(Equal(&due))
	Expect(req.Status).To(Equal("inProgress"))
	Expect(req.ContactID).To(Equal(&contactID))
	Expect(req.Priority).To(BeEmpty())
}

func TestFactoryKeepsDefaultsWithoutOverrides(t *testing.T) {
	RegisterTestingT(t)

	req := CreateContactRequest()

	Expect(req.FirstName).To(Equal("Ivan"))
	Expect(req.LastName).To(Equal("Petrov"))
	Expect(req.Email).To(BeEmpty())
	Expect(req.Phone).To(Equal("+375 (29) 123-45-67"))
}

func TestFactoryMergesLaterMapsOverEarlier(t *testing.T) {
	RegisterTestingT(t)

	req := CreateUserRequest(
		map[string]any{"Login": "first"},
		map[string]any{"Login": "second", "RoleID": int64(2)},
	)

	Expect(req.Login).To(Equal("second"))
	Expect(req.RoleID).To(Equal(int64(2)))
	Expect(req.Password).To(Equal("s3cret!"))
}
