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

type UserHandler struct {
	svc    port.UserService
	logger zerolog.Logger
}

func NewUserHandler(svc port.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.svc.GetAll(c.Request.Context())

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), id)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByRoleID(c *gin.Context) {
	roleID, ok := helper.ParseID(c, "roleId")

	if !ok {
		return
	}

	users, err := h.svc.GetByRoleID(c.Request.Context(), roleID)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Login(c *gin.Context) {
	req, ok := helper.Bind[request.LoginUserRequest](c)

	if !ok {
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Create(c *gin.Context) {
	req, ok := helper.Bind[request.CreateUserRequest](c)

	if !ok {
		return
	}

	user, err := h.svc.Create(c.Request.Context(), req)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/users/%d", user.ID))
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := helper.ParseID(c, "id")

	if !ok {
		return
	}

	req, ok := helper.Bind[request.UpdateUserRequest](c)

	if !ok {
		return
	}

	user, err := h.svc.Update(c.Request.Context(), id, req)

	if err != nil {
		helper.WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
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

func (h *UserHandler) DeleteRange(c *gin.Context) {
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
