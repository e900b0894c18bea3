package domain_test

import (
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"tdm/internal/core/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNewTodoItem_Defaults(t *testing.T) {
	RegisterTestingT(t)

	item, err := domain.NewTodoItem("Buy milk", "", nil, domain.TodoStatusNotStarted, domain.PriorityLow, nil, "")

	Expect(err).To(BeNil())
	Expect(item.Status).To(Equal(domain.TodoStatusNotStarted))
	Expect(item.Priority).To(Equal(domain.PriorityLow))
	Expect(item.DueDate).To(BeNil())
	Expect(item.CompletedAt).To(BeNil())
	Expect(item.CreatedAt).NotTo(BeZero())
}

func TestNewTodoItem_Violations(t *testing.T) {
	RegisterTestingT(t)

	_, err := domain.NewTodoItem("", "", int64Ptr(-1), domain.TodoStatusNotStarted, domain.PriorityLow, int64Ptr(0), "")

	var validationErr *domain.ValidationError
	Expect(err).To(BeAssignableToTypeOf(validationErr))

	validationErr = err.(*domain.ValidationError)
	Expect(len(validationErr.Violations)).To(Equal(3))
}

func TestNewTodoItem_TitleLimit(t *testing.T) {
	RegisterTestingT(t)

	_, err := domain.NewTodoItem(strings.Repeat("x", 201), "", nil, domain.TodoStatusNotStarted, domain.PriorityLow, nil, "")

	Expect(err).NotTo(BeNil())
}

func TestTodoItem_Complete_StampsTimestamps(t *testing.T) {
	RegisterTestingT(t)

	item, err := domain.NewTodoItem("Task", "", nil, domain.TodoStatusInProgress, domain.PriorityMedium, nil, "")
	Expect(err).To(BeNil())

	item.Complete()

	Expect(item.Status).To(Equal(domain.TodoStatusCompleted))
	Expect(item.CompletedAt).NotTo(BeNil())
	Expect(*item.CompletedAt).To(Equal(item.UpdatedAt))
}

func TestTodoItem_Cancel(t *testing.T) {
	RegisterTestingT(t)

	item, err := domain.NewTodoItem("Task", "", nil, domain.TodoStatusInProgress, domain.PriorityMedium, nil, "")
	Expect(err).To(BeNil())

	item.Cancel()

	Expect(item.Status).To(Equal(domain.TodoStatusCancelled))
	Expect(item.CompletedAt).To(BeNil())
}

func TestTodoItem_IsOverdue(t *testing.T) {
	RegisterTestingT(t)

	now := time.Now().Unix()

	past, _ := domain.NewTodoItem("Past", "", int64Ptr(now-3600), domain.TodoStatusInProgress, domain.PriorityLow, nil, "")
	Expect(past.IsOverdue(now)).To(BeTrue())

	future, _ := domain.NewTodoItem("Future", "", int64Ptr(now+3600), domain.TodoStatusInProgress, domain.PriorityLow, nil, "")
	Expect(future.IsOverdue(now)).To(BeFalse())

	undated, _ := domain.NewTodoItem("Undated", "", nil, domain.TodoStatusInProgress, domain.PriorityLow, nil, "")
	Expect(undated.IsOverdue(now)).To(BeFalse())

	done, _ := domain.NewTodoItem("Done", "", int64Ptr(now-3600), domain.TodoStatusInProgress, domain.PriorityLow, nil, "")
	done.Complete()
	Expect(done.IsOverdue(now)).To(BeFalse())

	cancelled, _ := domain.NewTodoItem("Cancelled", "", int64Ptr(now-3600), domain.TodoStatusInProgress, domain.PriorityLow, nil, "")
	cancelled.Cancel()
	Expect(cancelled.IsOverdue(now)).To(BeFalse())
}

func TestParseTodoStatus(t *testing.T) {
	RegisterTestingT(t)

	status, err := domain.ParseTodoStatus("inProgress")
	Expect(err).To(BeNil())
	Expect(status).To(Equal(domain.TodoStatusInProgress))

	status, err = domain.ParseTodoStatus("")
	Expect(err).To(BeNil())
	Expect(status).To(Equal(domain.TodoStatusNotStarted))

	_, err = domain.ParseTodoStatus("bogus")
	Expect(err).NotTo(BeNil())
}

func TestParsePriority(t *testing.T) {
	RegisterTestingT(t)

	priority, err := domain.ParsePriority("urgent")
	Expect(err).To(BeNil())
	Expect(priority).To(Equal(domain.PriorityUrgent))

	priority, err = domain.ParsePriority("")
	Expect(err).To(BeNil())
	Expect(priority).To(Equal(domain.PriorityLow))

	_, err = domain.ParsePriority("bogus")
	Expect(err).NotTo(BeNil())
}

func TestEnumWireNames(t *testing.T) {
	RegisterTestingT(t)

	Expect(domain.TodoStatusNotStarted.String()).To(Equal("notStarted"))
	Expect(domain.TodoStatusCancelled.String()).To(Equal("cancelled"))
	Expect(domain.PriorityNotSpecified.String()).To(Equal("notSpecified"))
	Expect(domain.PriorityHigh.String()).To(Equal("high"))
	Expect(domain.TodoStatus(9).String()).To(Equal("unknown"))
}
