package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(limit int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", BodyLimit(limit), func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestBodyLimit_UnderLimit(t *testing.T) {
	router := setupLimitedRouter(16)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", strings.NewReader("small"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodyLimit_DeclaredLengthRejected(t *testing.T) {
	router := setupLimitedRouter(16)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", strings.NewReader(strings.Repeat("x", 64)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestBodyLimit_StreamedBodyCut(t *testing.T) {
	router := setupLimitedRouter(16)

	w := httptest.NewRecorder()
	// unknown length, so only the reader can enforce the cap
	req, _ := http.NewRequest("POST", "/upload", io.NopCloser(strings.NewReader(strings.Repeat("x", 64))))
	req.ContentLength = -1
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
