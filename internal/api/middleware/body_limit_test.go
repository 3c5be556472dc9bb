package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxBodyBytes_RejectsDeclaredLength(t *testing.T) {
	called := false
	h := MaxBodyBytes(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"too long"}`)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"success":false,"data":"request body too large"}`, rec.Body.String())
	assert.False(t, called)
}

func TestMaxBodyBytes_CapsUndeclaredLength(t *testing.T) {
	var readErr error
	h := MaxBodyBytes(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"too long"}`))
	req.ContentLength = -1
	h.ServeHTTP(httptest.NewRecorder(), req)

	var mbe *http.MaxBytesError
	require.True(t, errors.As(readErr, &mbe))
	assert.Equal(t, int64(8), mbe.Limit)
}

func TestMaxBodyBytes_AllowsSmallBody(t *testing.T) {
	var got string
	h := MaxBodyBytes(64)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name":"X"}`)))
	assert.Equal(t, `{"name":"X"}`, got)
}
