package api

import (
	"net/http"
	"strconv"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageFrom = 0
	defaultPageSize = 10
)

var errMissingIdentity = errs.New("caller identity missing from context")

// callerID reads the identity the middleware stored. Routes using it are
// always behind RequireSharer, so a miss is a wiring bug.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return uuid.Nil, false
	}
	return id, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// parsePage reads the from/size query window with the standard defaults.
func parsePage(c *gin.Context) (queries.Page, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", strconv.Itoa(defaultPageFrom)))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from parameter")
		return queries.Page{}, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid size parameter")
		return queries.Page{}, false
	}

	p, err := queries.NewPage(from, size)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination window")
		return queries.Page{}, false
	}
	return p, true
}
