package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditStore receives audit entries. *mongo.Collection satisfies it.
type AuditStore interface {
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// AuditLogger is an async audit log writer.
type AuditLogger struct {
	store  AuditStore
	logger zerolog.Logger
	ch     chan AuditEntry
	done   chan struct{}
	once   sync.Once
}

// AuditEntry is one audited mutation as stored in the audit collection.
type AuditEntry struct {
	Identity    string         `bson:"identity,omitempty"`
	RequestID   string         `bson:"requestId,omitempty"`
	Method      string         `bson:"method"`
	Path        string         `bson:"path"`
	Resource    string         `bson:"resource"`
	ResourceID  string         `bson:"resourceId,omitempty"`
	StatusCode  int            `bson:"statusCode"`
	RequestBody map[string]any `bson:"requestBody,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt"`
}

func NewAuditLogger(store AuditStore, logger zerolog.Logger) *AuditLogger {
	al := &AuditLogger{
		store:  store,
		logger: logger,
		ch:     make(chan AuditEntry, 1024),
		done:   make(chan struct{}),
	}
	go al.drain()
	return al
}

func (al *AuditLogger) drain() {
	defer close(al.done)
	for entry := range al.ch {
		// use context.Background since this is async
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err := al.store.InsertOne(ctx, entry)
		cancel()
		if err != nil {
			al.logger.Error().Err(err).Str("path", entry.Path).Msg("failed to write audit log")
		}
	}
}

// Close stops accepting entries and waits until the buffered ones are
// written. It is safe to call more than once.
func (al *AuditLogger) Close() {
	al.once.Do(func() { close(al.ch) })
	<-al.done
}

// Middleware returns a chi middleware that records mutating requests.
func (al *AuditLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only audit mutating operations.
		if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodDelete {
			next.ServeHTTP(w, r)
			return
		}

		// Read and re-buffer the request body. A read error, such as hitting
		// the body limit, is replayed after the buffered bytes so the
		// handler sees it too.
		var bodyBytes []byte
		if r.Body != nil {
			var readErr error
			bodyBytes, readErr = io.ReadAll(r.Body)
			var body io.Reader = bytes.NewReader(bodyBytes)
			if readErr != nil {
				body = io.MultiReader(body, errReader{readErr})
			}
			r.Body = io.NopCloser(body)
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		entry := AuditEntry{
			RequestID:   w.Header().Get(RequestIDHeader),
			Method:      r.Method,
			Path:        r.URL.Path,
			Resource:    extractResource(r.URL.Path),
			ResourceID:  extractResourceID(r),
			StatusCode:  sw.status,
			RequestBody: sanitizeBody(bodyBytes),
			CreatedAt:   time.Now().UTC(),
		}
		if identity := GetIdentity(r.Context()); identity != nil {
			entry.Identity = identity.ID
		}

		select {
		case al.ch <- entry:
		default:
			al.logger.Warn().Msg("audit log buffer full, dropping entry")
		}
	})
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

// extractResource names the audited resource from the route path:
// /tasks is a task mutation, anything else a product mutation.
func extractResource(path string) string {
	if strings.TrimSuffix(path, "/") == "/tasks" {
		return "task"
	}
	return "product"
}

// extractResourceID picks the most specific id from the query string.
func extractResourceID(r *http.Request) string {
	q := r.URL.Query()
	for _, key := range []string{"taskId", "_id", "id", "boardId"} {
		if v := q.Get(key); v != "" {
			return v
		}
	}
	return ""
}

// sensitiveFields are fields that should be redacted from audit logs.
var sensitiveFields = map[string]bool{
	"password": true, "api_key": true, "secret": true, "token": true,
}

func sanitizeBody(body []byte) map[string]any {
	if len(body) == 0 {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil
	}
	for k := range data {
		if sensitiveFields[k] {
			data[k] = "[REDACTED]"
		}
	}
	return data
}
