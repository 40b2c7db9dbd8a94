package api

import (
	"errors"
	"net/http"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	commands commands.UserCommands
	queries  queries.UserQueries
}

func NewUserHandler(cmd commands.UserCommands, qry queries.UserQueries) *UserHandler {
	return &UserHandler{commands: cmd, queries: qry}
}

// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "User payload"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email is already in use")
		case errors.Is(err, commands.ErrInvalidUserData):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), userID, req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email is already in use")
		case errors.Is(err, commands.ErrInvalidUserData):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Delete user
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, commands.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.Status(http.StatusNoContent)
}
