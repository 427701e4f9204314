package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestWrap_Success(t *testing.T) {
	w := serve(Wrap[int](func(context.Context) (int, error) { return 7, nil }))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":20000,"message":"success","data":7}`, w.Body.String())
}

func TestWrap_Error(t *testing.T) {
	w := serve(Wrap[int](func(context.Context) (int, error) { return 0, errors.New("queue unavailable") }))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":50000,"message":"queue unavailable"}`, w.Body.String())
}
