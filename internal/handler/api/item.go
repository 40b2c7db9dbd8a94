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

type ItemHandler struct {
	commands commands.ItemCommands
	queries  queries.ItemQueries
}

func NewItemHandler(cmd commands.ItemCommands, qry queries.ItemQueries) *ItemHandler {
	return &ItemHandler{commands: cmd, queries: qry}
}

// @Summary List an item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param request body reqdto.CreateItemRequest true "Item payload"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), caller, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found")
		case errors.Is(err, commands.ErrInvalidItemData):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), caller, itemID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Delete an item
// @Tags items
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), caller, itemID); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get an item
// @Description Owners additionally see lastBooking and nextBooking.
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), itemID, caller)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, queries.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}

	views, err := h.queries.ListForOwner(c.Request.Context(), caller, page)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search items
// @Description Case-insensitive match on name or description; only
// available items are returned. A blank query yields an empty list.
// @Tags items
// @Produce json
// @Param text query string true "Search text"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	views, err := h.queries.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Comment on an item
// @Description Only users whose approved booking of the item has already
// concluded may comment.
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment payload"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.AddComment(c.Request.Context(), caller, itemID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, commands.ErrCommentNotAllowed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "User has not finished renting this item")
		case errors.Is(err, commands.ErrInvalidComment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid comment text")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}
