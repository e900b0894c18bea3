package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"tdm/internal/adapter/database/sqlite"
	"tdm/internal/adapter/database/sqlite/repository"
	adapterhttp "tdm/internal/adapter/http"
	"tdm/internal/adapter/http/routes"
	"tdm/internal/core/model/response"
	"tdm/pkg/test"
	"tdm/pkg/test/factory"
)

type HandlerSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *HandlerSuite) SetupTest() {
	RegisterTestingT(s.T())

	db := test.InitTestDB(s.T())

	container := adapterhttp.NewContainer(adapterhttp.Repositories{
		Contacts:   repository.NewContactRepository(db),
		TodoItems:  repository.NewTodoItemRepository(db),
		Users:      repository.NewUserRepository(db),
		Roles:      repository.NewRoleRepository(db),
		UnitOfWork: sqlite.NewUnitOfWork(db),
	}, zerolog.Nop())

	s.router = routes.SetupRouterForTests(routes.Handlers{
		Contacts:  container.ContactHandler,
		TodoItems: container.TodoItemHandler,
		Users:     container.UserHandler,
	}, zerolog.Nop())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		Expect(err).To(BeNil())
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	return rr
}

func (s *HandlerSuite) createContact(overrides ...map[string]any) response.ContactResponse {
	rr := s.request(http.MethodPost, "/api/contacts", factory.CreateContactRequest(overrides...))
	Expect(rr.Code).To(Equal(http.StatusCreated))

	var contact response.ContactResponse
	Expect(json.Unmarshal(rr.Body.Bytes(), &contact)).To(Succeed())

	return contact
}

func (s *HandlerSuite) TestCreateContact_ReturnsCreatedWithLocation() {
	rr := s.request(http.MethodPost, "/api/contacts", factory.CreateContactRequest())

	Expect(rr.Code).To(Equal(http.StatusCreated))

	var contact response.ContactResponse
	Expect(json.Unmarshal(rr.Body.Bytes(), &contact)).To(Succeed())
	Expect(contact.ID).To(BeNumerically(">", 0))
	Expect(rr.Header().Get("Location")).To(Equal(fmt.Sprintf("/api/contacts/%d", contact.ID)))
}

func (s *HandlerSuite) TestCreateContact_ValidationBodyIsBareArray() {
	rr := s.request(http.MethodPost, "/api/contacts", factory.CreateContactRequest(map[string]any{
		"FirstName": "",
	}))

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	var failures []response.ValidationFailure
	Expect(json.Unmarshal(rr.Body.Bytes(), &failures)).To(Succeed())
	Expect(failures).To(HaveLen(1))
	Expect(failures[0].PropertyName).To(Equal("firstName"))
	Expect(failures[0].ErrorMessage).NotTo(BeEmpty())
}

func (s *HandlerSuite) TestGetContact_MissingIs404() {
	rr := s.request(http.MethodGet, "/api/contacts/999", nil)

	Expect(rr.Code).To(Equal(http.StatusNotFound))

	var errResp response.ErrorResponse
	Expect(json.Unmarshal(rr.Body.Bytes(), &errResp)).To(Succeed())
	Expect(errResp.Error).To(ContainSubstring("not found"))
}

func (s *HandlerSuite) TestCreateContact_DuplicateEmailIs409() {
	s.createContact(map[string]any{"Email": "dup@example.com"})

	rr := s.request(http.MethodPost, "/api/contacts", factory.CreateContactRequest(map[string]any{
		"FirstName": "Other",
		"Email":     "dup@example.com",
	}))

	Expect(rr.Code).To(Equal(http.StatusConflict))
}

func (s *HandlerSuite) TestDeleteContact_Returns204() {
	contact := s.createContact()

	rr := s.request(http.MethodDelete, fmt.Sprintf("/api/contacts/%d", contact.ID), nil)

	Expect(rr.Code).To(Equal(http.StatusNoContent))
	Expect(rr.Body.Len()).To(BeZero())
}

func (s *HandlerSuite) TestDeleteRange_ReturnsDeletedCount() {
	first := s.createContact()
	second := s.createContact(map[string]any{"FirstName": "Anna"})

	rr := s.request(http.MethodDelete, "/api/contacts/delete-range", []int64{first.ID, second.ID, 999})

	Expect(rr.Code).To(Equal(http.StatusOK))

	var result response.DeletedCountResponse
	Expect(json.Unmarshal(rr.Body.Bytes(), &result)).To(Succeed())
	Expect(result.DeletedCount).To(Equal(int64(2)))
}

func (s *HandlerSuite) TestGetContact_InvalidIDIs400() {
	rr := s.request(http.MethodGet, "/api/contacts/abc", nil)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *HandlerSuite) TestCreateTodoItem_MissingContactIs400() {
	missing := int64(999)

	rr := s.request(http.MethodPost, "/api/to-do-items", factory.CreateTodoItemRequest(map[string]any{
		"ContactID": &missing,
	}))

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	var errResp response.ErrorResponse
	Expect(json.Unmarshal(rr.Body.Bytes(), &errResp)).To(Succeed())
	Expect(errResp.Error).To(ContainSubstring("does not exist"))
}

func (s *HandlerSuite) TestTodoItemLifecycleOverHTTP() {
	rr := s.request(http.MethodPost, "/api/to-do-items", factory.CreateTodoItemRequest(map[string]any{
		"Title":    "Ship release",
		"Priority": "high",
	}))
	Expect(rr.Code).To(Equal(http.StatusCreated))

	var item response.TodoItemResponse
	Expect(json.Unmarshal(rr.Body.Bytes(), &item)).To(Succeed())
	Expect(item.Status).To(Equal("notStarted"))
	Expect(item.Priority).To(Equal("high"))

	rr = s.request(http.MethodPut, fmt.Sprintf("/api/to-do-items/%d/complete", item.ID), nil)
	Expect(rr.Code).To(Equal(http.StatusOK))

	Expect(json.Unmarshal(rr.Body.Bytes(), &item)).To(Succeed())
	Expect(item.Status).To(Equal("completed"))
	Expect(item.CompletedAt).NotTo(BeNil())

	rr = s.request(http.MethodGet, "/api/to-do-items/status/completed", nil)
	Expect(rr.Code).To(Equal(http.StatusOK))

	var items []response.TodoItemResponse
	Expect(json.Unmarshal(rr.Body.Bytes(), &items)).To(Succeed())
	Expect(items).To(HaveLen(1))
}

func (s *HandlerSuite) TestGetTodoItemsByStatus_UnknownStatusIs400() {
	rr := s.request(http.MethodGet, "/api/to-do-items/status/bogus", nil)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *HandlerSuite) TestLoginFlowOverHTTP() {
	rr := s.request(http.MethodPost, "/api/users", factory.CreateUserRequest())
	Expect(rr.Code).To(Equal(http.StatusCreated))

	rr = s.request(http.MethodPost, "/api/users/login", map[string]string{
		"login":    "jdoe",
		"password": "s3cret!",
	})
	Expect(rr.Code).To(Equal(http.StatusOK))

	var result response.LoginUserResponse
	Expect(json.Unmarshal(rr.Body.Bytes(), &result)).To(Succeed())
	Expect(result.Login).To(Equal("jdoe"))
	Expect(result.RoleName).To(Equal("admin"))

	rr = s.request(http.MethodPost, "/api/users/login", map[string]string{
		"login":    "jdoe",
		"password": "wrong",
	})
	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	rr = s.request(http.MethodPost, "/api/users/login", map[string]string{
		"login":    "ghost",
		"password": "whatever",
	})
	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *HandlerSuite) TestCreateUser_ResponseOmitsPassword() {
	rr := s.request(http.MethodPost, "/api/users", factory.CreateUserRequest())

	Expect(rr.Code).To(Equal(http.StatusCreated))
	Expect(rr.Body.String()).NotTo(ContainSubstring("password"))
	Expect(rr.Body.String()).NotTo(ContainSubstring("s3cret"))
}
