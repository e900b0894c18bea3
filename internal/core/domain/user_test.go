package domain_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"tdm/internal/core/domain"
)

func TestNewUser_Valid(t *testing.T) {
	RegisterTestingT(t)

	user, err := domain.NewUser("jdoe", "$2a$10$hash", false, 1, "")

	Expect(err).To(BeNil())
	Expect(user.Login).To(Equal("jdoe"))
	Expect(user.IsBlocked).To(BeFalse())
	Expect(user.CreatedAt).NotTo(BeZero())
}

func TestNewUser_LoginBounds(t *testing.T) {
	RegisterTestingT(t)

	_, err := domain.NewUser("ab", "$2a$10$hash", false, 1, "")
	Expect(err).NotTo(BeNil())

	_, err = domain.NewUser(strings.Repeat("a", 51), "$2a$10$hash", false, 1, "")
	Expect(err).NotTo(BeNil())

	_, err = domain.NewUser("abc", "$2a$10$hash", false, 1, "")
	Expect(err).To(BeNil())

	_, err = domain.NewUser(strings.Repeat("a", 50), "$2a$10$hash", false, 1, "")
	Expect(err).To(BeNil())
}

func TestUser_Update(t *testing.T) {
	RegisterTestingT(t)

	user, err := domain.NewUser("jdoe", "$2a$10$hash", false, 1, "")
	Expect(err).To(BeNil())

	err = user.Update("jsmith", true, 2, "ops")

	Expect(err).To(BeNil())
	Expect(user.Login).To(Equal("jsmith"))
	Expect(user.IsBlocked).To(BeTrue())
	Expect(user.RoleID).To(Equal(int64(2)))
}

func TestNewRole_RequiresName(t *testing.T) {
	RegisterTestingT(t)

	_, err := domain.NewRole("", "")
	Expect(err).NotTo(BeNil())

	role, err := domain.NewRole("admin", "administrators")
	Expect(err).To(BeNil())
	Expect(role.Name).To(Equal("admin"))
}
