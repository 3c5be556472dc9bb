package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/catalog/internal/api/handler"
	mw "github.com/edvin/catalog/internal/api/middleware"
)

// maxBodyBytes caps mutation bodies before they are buffered for the audit
// log or decoded.
const maxBodyBytes = 1 << 20

// Route is one entry of the catalog route table. Protected routes run behind
// bearer auth and the audit logger.
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	Protected bool
}

func (s *Server) publicRoutes() []Route {
	product := handler.NewProduct(s.services.Product)

	return []Route{
		{Method: http.MethodGet, Pattern: "/", Handler: product.GetBySlug},
		{Method: http.MethodGet, Pattern: "/all", Handler: product.List},
		{Method: http.MethodGet, Pattern: "/all/ids", Handler: product.ListIDs},
		{Method: http.MethodGet, Pattern: "/categories", Handler: product.Categories},
		{Method: http.MethodGet, Pattern: "/{category}/ids", Handler: product.ListIDsByCategory},
		{Method: http.MethodGet, Pattern: "/{category}/slugs", Handler: product.ListSlugsByCategory},
		{Method: http.MethodGet, Pattern: "/{category}", Handler: product.ListByCategory},
	}
}

func (s *Server) mutationRoutes() []Route {
	product := handler.NewProduct(s.services.Product)
	task := handler.NewTask(s.services.Task)

	return []Route{
		{Method: http.MethodPost, Pattern: "/", Handler: product.Create, Protected: true},
		{Method: http.MethodPut, Pattern: "/", Handler: product.Update, Protected: true},
		{Method: http.MethodDelete, Pattern: "/", Handler: product.Delete, Protected: true},
		{Method: http.MethodPost, Pattern: "/tasks", Handler: task.Create, Protected: true},
		{Method: http.MethodPut, Pattern: "/tasks", Handler: task.Update, Protected: true},
		{Method: http.MethodDelete, Pattern: "/tasks", Handler: task.Delete, Protected: true},
	}
}

// mount registers routes on r. Protected routes get the auth, body limit and
// audit middleware; the rest are mounted bare.
func (s *Server) mount(r chi.Router, routes []Route) {
	for _, rt := range routes {
		if !rt.Protected {
			r.Method(rt.Method, rt.Pattern, rt.Handler)
			continue
		}
		guarded := r.With(mw.Auth([]byte(s.cfg.JWTSecret)), mw.MaxBodyBytes(maxBodyBytes))
		if s.auditLogger != nil {
			guarded = guarded.With(s.auditLogger.Middleware)
		}
		guarded.Method(rt.Method, rt.Pattern, rt.Handler)
	}
	s.routes = append(s.routes, routes...)
}

// Routes returns the catalog routes mounted on this server.
func (s *Server) Routes() []Route {
	return s.routes
}
