package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tdm/internal/adapter/http/helper"
	"tdm/internal/core/domain"
	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
	"tdm/internal/core/port"
)

type TodoItemHandler struct {
	svc    port.TodoItemService
	logger zerolog.Logger
}

func NewTodoItemHandler(svc port.TodoItemService, logger zerolog.Logger) *TodoItemHandler {
	return &TodoItemHandler{svc: svc, logger: logger}
}

func (h *TodoItemHandler) GetAll(c *gin.Context) {
	items, err := h.svc.GetAll(c.Request.Context())

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *TodoItemHandler) GetByID(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	item, err := h.svc.GetByID(c.Request.Context(), id)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *TodoItemHandler) GetByContactID(c *gin.Context) {
	contactID, ok := helper.ParseID(c, "contactId")

	if !ok {
		return
	}

	items, err := h.svc.GetByContactID(c.Request.Context(), contactID)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *TodoItemHandler) GetByStatus(c *gin.Context) {
	status, err := domain.ParseTodoStatus(c.Param("status"))

	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	items, err := h.svc.GetByStatus(c.Request.Context(), status)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *TodoItemHandler) GetByPriority(c *gin.Context) {
	priority, err := domain.ParsePriority(c.Param("priority"))

	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	items, err := h.svc.GetByPriority(c.Request.Context(), priority)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *TodoItemHandler) GetOverdue(c *gin.Context) {
	items, err := h.svc.GetOverdue(c.Request.Context())

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *TodoItemHandler) GetToday(c *gin.Context) {
	items, err := h.svc.GetToday(c.Request.Context())

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *TodoItemHandler) SearchByTitle(c *gin.Context) {
	items, err := h.svc.SearchByTitle(c.Request.Context(), c.Query("title"))

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *TodoItemHandler) Create(c *gin.Context) {
	req, ok := helper.Bind[request.CreateTodoItemRequest](c)

	if !ok {
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/to-do-items/%d", item.ID))
	c.JSON(http.StatusCreated, item)
}

func (h *TodoItemHandler) Update(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	req, ok := helper.Bind[request.UpdateTodoItemRequest](c)

	if !ok {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, req)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *TodoItemHandler) Complete(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	item, err := h.svc.Complete(c.Request.Context(), id)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *TodoItemHandler) Cancel(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	item, err := h.svc.Cancel(c.Request.Context(), id)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *TodoItemHandler) Delete(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoItemHandler) DeleteRange(c *gin.Context) {
	ids, ok := helper.Bind[[]int64](c)

	if !ok {
		return
	}

	deleted, err := h.svc.DeleteRange(c.Request.Context(), ids)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.DeletedCountResponse{DeletedCount: deleted})
}
