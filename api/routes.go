package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers every endpoint. Reads accept an optional bearer token;
// blog writes and uploads require one.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", handlers.healthHandler.health())

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.extractPrincipal)

		// Blog posts
		r.Get("/blog", handlers.blogPostHandler.searchBlogPosts())
		r.Get("/blog/{bltnNo}", handlers.blogPostHandler.getBlogPost())

		// Agreements
		r.Get("/user/agree", handlers.agreementHandler.listAgreements())
		r.Post("/user/agree/search", handlers.agreementHandler.searchAgreements())
		r.Put("/user/agree", handlers.agreementHandler.updateConsent())

		// Customer info
		r.Get("/user/info", handlers.customerInfoHandler.listCustomers())
		r.Post("/user/info", handlers.customerInfoHandler.searchCustomers())
		r.Get("/user/info/{custNo}", handlers.customerInfoHandler.getCustomer())

		r.Get("/files/{docNo}", handlers.fileHandler.downloadFile())

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requirePrincipal)

			r.Post("/blog", handlers.blogPostHandler.createBlogPost())
			r.Put("/blog/{bltnNo}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blog/{bltnNo}", handlers.blogPostHandler.deleteBlogPost())

			r.Post("/files/upload", handlers.fileHandler.uploadFile())
		})
	})
}
