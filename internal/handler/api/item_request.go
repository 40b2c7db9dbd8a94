package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemRequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewItemRequestHandler(cmd commands.RequestCommands, qry queries.RequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{commands: cmd, queries: qry}
}

// @Summary Post an item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param request body reqdto.CreateItemRequestRequest true "Request payload"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), caller, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrInvalidRequestData):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request description")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary Get an item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), caller, requestID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, queries.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List own item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemRequestResponse
// @Router /requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	h.list(c, h.queries.ListOwn)
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemRequestResponse
// @Router /requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	h.list(c, h.queries.ListOthers)
}

func (h *ItemRequestHandler) list(
	c *gin.Context,
	fetch func(ctx context.Context, callerID uuid.UUID, p queries.Page) ([]*queries.RequestView, error),
) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}

	views, err := fetch(c.Request.Context(), caller, page)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}
