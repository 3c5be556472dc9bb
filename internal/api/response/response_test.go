package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	payload := map[string]string{"hello": "world"}

	WriteJSON(w, http.StatusOK, payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "world", body["hello"])
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusInternalServerError, "internal server error")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "internal server error", body["error"])
}

func TestWriteJSON_NilValue(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, nil)

	// json.Encode(nil) produces "null\n"
	assert.Equal(t, "null\n", w.Body.String())
}

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	WriteSuccess(w, http.StatusCreated, []map[string]string{{"slug": "zx9-speaker"}})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"slug":"zx9-speaker"}]}`, w.Body.String())
}

func TestWriteSuccess_EmptyList(t *testing.T) {
	w := httptest.NewRecorder()

	WriteSuccess(w, http.StatusOK, []string{})

	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}

func TestWriteFailure(t *testing.T) {
	w := httptest.NewRecorder()

	WriteFailure(w, http.StatusNotFound, "Product with category chairs not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"data":"Product with category chairs not found"}`, w.Body.String())
}

func TestWriteBoard(t *testing.T) {
	w := httptest.NewRecorder()

	WriteBoard(w, http.StatusCreated, map[string]string{"name": "Chair"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"board":{"name":"Chair"}}`, w.Body.String())
}

func TestWriteMessage(t *testing.T) {
	w := httptest.NewRecorder()

	WriteMessage(w, http.StatusOK, "Task successfully updated")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":"Task successfully updated"}`, w.Body.String())
}
