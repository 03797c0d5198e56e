// Package httptransport assembles the HTTP surface: public registration,
// the session-protected officer workflow, the admin verification hook, and
// operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	encounterhandler "pawtrol/internal/encounter/handler"
	officerhandler "pawtrol/internal/officer/handler"
	"pawtrol/internal/platform/health"
	"pawtrol/pkg/platform/middleware/admin"
	"pawtrol/pkg/platform/middleware/auth"
	"pawtrol/pkg/platform/middleware/request"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger       *slog.Logger
	JWTValidator *auth.Validator
	AdminToken   string

	Officers   *officerhandler.Handler
	Encounters *encounterhandler.Handler
	Health     *health.Handler
}

// NewRouter wires middleware and routes. Everything under the authed group
// carries an officer session; verification is checked again in the services,
// not trusted from the token.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(d.Logger))

	d.Health.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	d.Officers.RegisterPublic(r)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(d.JWTValidator, d.Logger))
		d.Officers.Register(r)
		d.Encounters.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(admin.RequireToken(d.AdminToken, d.Logger))
		d.Officers.RegisterAdmin(r)
	})

	return r
}
