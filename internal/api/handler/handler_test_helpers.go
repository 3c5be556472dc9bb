package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	mw "github.com/edvin/catalog/internal/api/middleware"
)

// newRequest creates a new HTTP request with an optional JSON body.
func newRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// newRequestRaw creates a new HTTP request with a raw string body.
func newRequestRaw(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// withChiURLParam adds a chi URL parameter to the request context.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// envelope mirrors response.Envelope with the data left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(rec *httptest.ResponseRecorder) envelope {
	var body envelope
	json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

// boardEnvelope mirrors response.BoardEnvelope with the board left raw.
type boardEnvelope struct {
	Success bool            `json:"success"`
	Board   json.RawMessage `json:"board"`
}

func decodeBoard(rec *httptest.ResponseRecorder) boardEnvelope {
	var body boardEnvelope
	json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

// decodeMessage returns the envelope data as a string.
func decodeMessage(rec *httptest.ResponseRecorder) string {
	var msg string
	json.Unmarshal(decodeEnvelope(rec).Data, &msg)
	return msg
}

// decodeErrorResponse parses the JSON error response body into a map.
func decodeErrorResponse(rec *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

// withIdentity injects an authenticated caller into the request context.
func withIdentity(r *http.Request, id string) *http.Request {
	return r.WithContext(mw.WithIdentity(r.Context(), &mw.Identity{ID: id}))
}
