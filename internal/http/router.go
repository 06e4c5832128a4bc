package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/mworx/stockroom/docs"
	"github.com/mworx/stockroom/internal/http/handlers"
	"github.com/mworx/stockroom/internal/models"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.With(RateLimit).Post("/login", handlers.LoginHandler)
	r.Post("/refresh", handlers.RefreshHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/logout", handlers.LogoutHandler)
		r.Get("/me", handlers.MeHandler)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.GetItemsHandler)
			r.Post("/", handlers.CreateItemHandler)
			r.Get("/search", handlers.FilterItemsHandler)
			r.Get("/export", handlers.ExportItemsHandler)
			r.Get("/{id}", handlers.GetItemByIDHandler)
			r.Put("/{id}", handlers.UpdateItemHandler)
			r.With(RequireRole(models.RoleAdmin, models.RoleManager)).
				Delete("/{id}", handlers.DeleteItemHandler)
		})

		r.Get("/alerts", handlers.GetAlertsHandler)
		r.Post("/alerts/{id}/acknowledge", handlers.AcknowledgeAlertHandler)
		r.Get("/activities", handlers.GetActivitiesHandler)
		r.Get("/dashboard/stats", handlers.GetDashboardStatsHandler)
	})

	return r
}
