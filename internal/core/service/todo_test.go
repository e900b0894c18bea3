package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"tdm/internal/adapter/database/sqlite"
	"tdm/internal/adapter/database/sqlite/repository"
	"tdm/internal/core/domain"
	"tdm/internal/core/model/response"
	"tdm/internal/core/port"
	"tdm/internal/core/service"
	"tdm/pkg/test"
	"tdm/pkg/test/factory"
)

type TodoItemServiceSuite struct {
	suite.Suite
	svc      port.TodoItemService
	contacts port.ContactService
}

func (s *TodoItemServiceSuite) SetupTest() {
	RegisterTestingT(s.T())

	db := test.InitTestDB(s.T())

	contactRepo := repository.NewContactRepository(db)
	todoRepo := repository.NewTodoItemRepository(db)
	uow := sqlite.NewUnitOfWork(db)

	s.svc = service.NewTodoItemService(todoRepo, contactRepo, uow, zerolog.Nop())
	s.contacts = service.NewContactService(contactRepo, uow, zerolog.Nop())
}

func TestTodoItemServiceSuite(t *testing.T) {
	suite.Run(t, new(TodoItemServiceSuite))
}

func (s *TodoItemServiceSuite) createContact() response.ContactResponse {
	contact, err := s.contacts.Create(context.Background(), factory.CreateContactRequest())
	Expect(err).To(BeNil())

	return contact
}

func (s *TodoItemServiceSuite) TestCreate_Defaults() {
	item, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest())

	Expect(err).To(BeNil())
	Expect(item.ID).To(BeNumerically(">", 0))
	Expect(item.Status).To(Equal("notStarted"))
	Expect(item.Priority).To(Equal("low"))
	Expect(item.ContactName).To(BeEmpty())
}

func (s *TodoItemServiceSuite) TestCreate_WithContactDenormalizesName() {
	contact := s.createContact()

	item, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"ContactID": &contact.ID,
	}))

	Expect(err).To(BeNil())
	Expect(item.ContactName).To(Equal("Ivan Petrov"))
}

func (s *TodoItemServiceSuite) TestCreate_MissingContactIsBadRequest() {
	missing := int64(999)

	_, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"ContactID": &missing,
	}))

	var badRequestErr *domain.BadRequestError
	Expect(err).To(BeAssignableToTypeOf(badRequestErr))
}

func (s *TodoItemServiceSuite) TestGetByStatus_FiltersExactly() {
	_, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":  "Open task",
		"Status": "inProgress",
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":  "Finished task",
		"Status": "completed",
	}))
	Expect(err).To(BeNil())

	items, err := s.svc.GetByStatus(context.Background(), domain.TodoStatusInProgress)

	Expect(err).To(BeNil())
	Expect(items).To(HaveLen(1))
	Expect(items[0].Title).To(Equal("Open task"))
}

func (s *TodoItemServiceSuite) TestGetByPriority() {
	_, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":    "Urgent task",
		"Priority": "urgent",
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title": "Default task",
	}))
	Expect(err).To(BeNil())

	items, err := s.svc.GetByPriority(context.Background(), domain.PriorityUrgent)

	Expect(err).To(BeNil())
	Expect(items).To(HaveLen(1))
	Expect(items[0].Title).To(Equal("Urgent task"))
}

func (s *TodoItemServiceSuite) TestGetOverdue_ExcludesClosedAndFuture() {
	past := time.Now().Add(-24 * time.Hour).Unix()
	future := time.Now().Add(24 * time.Hour).Unix()

	_, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":   "Past open",
		"DueDate": &past,
		"Status":  "inProgress",
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":   "Past completed",
		"DueDate": &past,
		"Status":  "completed",
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":   "Past cancelled",
		"DueDate": &past,
		"Status":  "cancelled",
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":   "Future open",
		"DueDate": &future,
		"Status":  "inProgress",
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title": "Undated",
	}))
	Expect(err).To(BeNil())

	items, err := s.svc.GetOverdue(context.Background())

	Expect(err).To(BeNil())
	Expect(items).To(HaveLen(1))
	Expect(items[0].Title).To(Equal("Past open"))
}

func (s *TodoItemServiceSuite) TestGetToday_WindowIsCurrentLocalDay() {
	now := time.Now()
	today := now.Unix()
	yesterday := now.Add(-48 * time.Hour).Unix()
	nextWeek := now.Add(7 * 24 * time.Hour).Unix()

	_, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":   "Due today",
		"DueDate": &today,
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":   "Due earlier",
		"DueDate": &yesterday,
	}))
	Expect(err).To(BeNil())

	_, err = s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title":   "Due next week",
		"DueDate": &nextWeek,
	}))
	Expect(err).To(BeNil())

	items, err := s.svc.GetToday(context.Background())

	Expect(err).To(BeNil())
	Expect(items).To(HaveLen(1))
	Expect(items[0].Title).To(Equal("Due today"))
}

func (s *TodoItemServiceSuite) TestGetToday_DayBoundariesAreInclusive() {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	startOfDay := dayStart.Unix()
	endOfDay := dayStart.Add(24*time.Hour - time.Second).Unix()
	lastNight := startOfDay - 1

	for title, due := range map[string]*int64{
		"At midnight":  &startOfDay,
		"Last second":  &endOfDay,
		"Night before": &lastNight,
	} {
		_, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
			"Title":   title,
			"DueDate": due,
		}))
		Expect(err).To(BeNil())
	}

	items, err := s.svc.GetToday(context.Background())

	Expect(err).To(BeNil())
	Expect(items).To(HaveLen(2))

	titles := make([]string, 0, len(items))

	for _, item := range items {
		titles = append(titles, item.Title)
	}

	Expect(titles).To(ConsistOf("At midnight", "Last second"))
}

func (s *TodoItemServiceSuite) TestSearchByTitle_CaseSensitive() {
	_, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title": "Prepare Quarterly Report",
	}))
	Expect(err).To(BeNil())

	items, err := s.svc.SearchByTitle(context.Background(), "Quarterly")
	Expect(err).To(BeNil())
	Expect(items).To(HaveLen(1))

	items, err = s.svc.SearchByTitle(context.Background(), "quarterly")
	Expect(err).To(BeNil())
	Expect(items).To(BeEmpty())
}

func (s *TodoItemServiceSuite) TestComplete_StampsCompletedAt() {
	created, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest())
	Expect(err).To(BeNil())

	item, err := s.svc.Complete(context.Background(), created.ID)

	Expect(err).To(BeNil())
	Expect(item.Status).To(Equal("completed"))
	Expect(item.CompletedAt).NotTo(BeNil())
	Expect(*item.CompletedAt).To(Equal(item.UpdatedAt))
}

func (s *TodoItemServiceSuite) TestCancel() {
	created, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest())
	Expect(err).To(BeNil())

	item, err := s.svc.Cancel(context.Background(), created.ID)

	Expect(err).To(BeNil())
	Expect(item.Status).To(Equal("cancelled"))
	Expect(item.CompletedAt).To(BeNil())
}

func (s *TodoItemServiceSuite) TestDeletingContactNullsItemReference() {
	contact := s.createContact()

	created, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"ContactID": &contact.ID,
	}))
	Expect(err).To(BeNil())

	Expect(s.contacts.Delete(context.Background(), contact.ID)).To(Succeed())

	item, err := s.svc.GetByID(context.Background(), created.ID)

	Expect(err).To(BeNil())
	Expect(item.ContactID).To(BeNil())
	Expect(item.ContactName).To(BeEmpty())
}

func (s *TodoItemServiceSuite) TestDeleteRange_Counts() {
	first, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest())
	Expect(err).To(BeNil())

	second, err := s.svc.Create(context.Background(), factory.CreateTodoItemRequest(map[string]any{
		"Title": "Second",
	}))
	Expect(err).To(BeNil())

	deleted, err := s.svc.DeleteRange(context.Background(), []int64{first.ID, second.ID, 404})

	Expect(err).To(BeNil())
	Expect(deleted).To(Equal(int64(2)))
}

func (s *TodoItemServiceSuite) TestGetByContactID_MissingContactNotFound() {
	_, err := s.svc.GetByContactID(context.Background(), 999)

	var notFoundErr *domain.NotFoundError
	Expect(err).To(BeAssignableToTypeOf(notFoundErr))
}
