package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tdm/internal/adapter/http/helper"
	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
	"tdm/internal/core/port"
)

type ContactHandler struct {
	svc    port.ContactService
	logger zerolog.Logger
}

func NewContactHandler(svc port.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, logger: logger}
}

func (h *ContactHandler) GetAll(c *gin.Context) {
	contacts, err := h.svc.GetAll(c.Request.Context())

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	contact, err := h.svc.GetByID(c.Request.Context(), id)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) SearchByName(c *gin.Context) {
	contacts, err := h.svc.GetByName(c.Request.Context(), c.Query("name"))

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) SearchByEmail(c *gin.Context) {
	contact, err := h.svc.GetByEmail(c.Request.Context(), c.Query("email"))

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Create(c *gin.Context) {
	req, ok := helper.Bind[request.CreateContactRequest](c)

	if !ok {
		return
	}

	contact, err := h.svc.Create(c.Request.Context(), req)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/contacts/%d", contact.ID))
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	req, ok := helper.Bind[request.UpdateContactRequest](c)

	if !ok {
		return
	}

	contact, err := h.svc.Update(c.Request.Context(), id, req)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
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

func (h *ContactHandler) DeleteRange(c *gin.Context) {
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
