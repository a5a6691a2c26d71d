package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkravets/backoffice/api/http/handlers"
)

// RegisterBlog wires the blog service routes onto the given Fiber app.
// Post reads stay open; every mutation goes through the JWT gate, so an
// unauthenticated request is rejected before any handler body runs.
func RegisterBlog(app *fiber.App, auth *handlers.AuthHandler, posts *handlers.PostHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	v1.Get("/posts", posts.List)
	v1.Get("/posts/:id", posts.GetByID)
	v1.Post("/posts", authMW, posts.Create)
	v1.Put("/posts/:id", authMW, posts.Update)
	v1.Delete("/posts/:id", authMW, posts.Delete)
}

// RegisterRecords wires the business-records service routes. The records
// service is deliberately unauthenticated.
func RegisterRecords(app *fiber.App, partners *handlers.PartnerHandler, sales *handlers.SaleHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/partners", partners.Create)
	v1.Get("/partners", partners.List)
	v1.Put("/partners/:id", partners.Update)
	v1.Delete("/partners/:id", partners.Delete)

	v1.Post("/sales", sales.Create)
	v1.Get("/sales", sales.List)
	v1.Delete("/sales/:id", sales.Delete)
}
