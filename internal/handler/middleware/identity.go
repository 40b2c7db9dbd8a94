package middleware

import (
	"net/http"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerHeader carries the caller's identity. Authentication happens at
// the gateway in front of this service; here the header is trusted and
// only validated for shape.
const SharerHeader = "X-Sharer-User-Id"

const sharerIDKey = "sharer_user_id"

var errMissingSharer = errs.New("caller identity header missing or malformed")

// RequireSharer rejects requests without a well-formed caller id and
// stores the parsed id on the context for handlers.
func RequireSharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header is required")
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id must be a valid UUID")
			return
		}

		c.Set(sharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(sharerIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
