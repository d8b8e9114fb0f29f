package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oceansouq/platform-core/internal/domain"
)

// RouterConfig carries edge tunables that do not belong to the core.
type RouterConfig struct {
	RegisterRateLimitRPS   float64
	RegisterRateLimitBurst int
}

// NewRouter registers routes and the middleware stack. Centralizing routes
// here keeps auth gating and error behavior consistent across verticals.
func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	registerMetrics()
	registrationLimiter := newIPLimiter(cfg.RegisterRateLimitRPS, cfg.RegisterRateLimitBurst)

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(localeMiddleware)
	r.Use(metricsMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)
	r.Handle("/metrics", metricsHandler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(registrationLimiter.middleware)
			r.Post("/auth/register", handler.registerKind(domain.KindBuyer))
			r.Post("/sellers/register", handler.registerKind(domain.KindSeller))
			r.Post("/drivers/register", handler.registerKind(domain.KindDriver))
			r.Post("/captains/register", handler.registerKind(domain.KindCaptain))
			r.Post("/restaurants/register", handler.registerKind(domain.KindRestaurant))
			r.Post("/hotels/register", handler.registerKind(domain.KindHotel))
			r.Post("/services/register", handler.registerKind(domain.KindServiceProvider))
			r.Post("/experiences/register", handler.registerKind(domain.KindExperienceProvider))
		})

		r.Post("/auth/login", handler.login(domain.AudienceUser))
		r.Post("/command/login", handler.login(domain.AudienceCommand))
		r.Post("/drivers/login", handler.login(domain.AudienceDriver))
		r.Post("/captains/login", handler.login(domain.AudienceCaptain))
		r.Post("/restaurants/login", handler.login(domain.AudienceRestaurant))
		r.Post("/hotels/login", handler.login(domain.AudienceHotel))

		r.Group(func(r chi.Router) {
			r.Use(handler.requireAuth(domain.AudienceUser, domain.CapUserSelf))
			r.Get("/auth/me", handler.me)
			r.Post("/rides/estimate", handler.estimateRide)
		})

		r.Group(func(r chi.Router) {
			r.Use(handler.requireAuth(domain.AudienceCaptain, domain.CapRideCaptain))
			r.Get("/captains/me", handler.dashboardMe)
		})
		r.Group(func(r chi.Router) {
			r.Use(handler.requireAuth(domain.AudienceDriver, domain.CapDeliveryDriver))
			r.Get("/drivers/me", handler.dashboardMe)
		})
		r.Group(func(r chi.Router) {
			r.Use(handler.requireAuth(domain.AudienceRestaurant, domain.CapRestaurantManage))
			r.Get("/restaurants/me", handler.dashboardMe)
		})
		r.Group(func(r chi.Router) {
			r.Use(handler.requireAuth(domain.AudienceHotel, domain.CapHotelManage))
			r.Get("/hotels/me", handler.dashboardMe)
		})

		r.Group(func(r chi.Router) {
			r.Use(handler.requireAuth(domain.AudienceCommand, domain.CapAdminAny))
			r.Get("/admin/subjects", handler.listSubjects)
			r.Patch("/admin/subjects/{subject_id}/status", handler.updateSubjectStatus)
			r.Patch("/admin/subjects/{subject_id}/role", handler.updateSubjectRole)
		})
	})

	return r
}
