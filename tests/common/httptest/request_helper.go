//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"gearshare/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// executes HTTP request with optional sharer identity header
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, sharerID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if sharerID != uuid.Nil {
		req.Header.Set(middleware.SharerHeader, sharerID.String())
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// executes HTTP request with an arbitrary raw header value, for tests
// that exercise the identity middleware itself
func PerformRequestRawHeader(t *testing.T, router *gin.Engine, method, path string, body any, headerValue string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if headerValue != "" {
		req.Header.Set(middleware.SharerHeader, headerValue)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
