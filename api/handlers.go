package api

import (
	"time"

	"github.com/rpupo63/cms-admin-backend/config"
	"github.com/rpupo63/cms-admin-backend/database"
	"github.com/rpupo63/cms-admin-backend/services"
	"github.com/rs/zerolog/log"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, uploader *services.Uploader, c map[string]string, startupTime time.Time) *routeHandlers {
	excerpter := services.NewExcerpter(config.GetInt(c, "EXCERPT_LENGTH", services.DefaultExcerptLength))
	maxUploadBytes := int64(config.GetInt(c, "MAX_UPLOAD_MB", 10)) << 20

	return &routeHandlers{
		blogPostHandler:     newBlogPostHandler(database.BlogPostRepo(), excerpter),
		agreementHandler:    newAgreementHandler(database.AgreementRepo()),
		customerInfoHandler: newCustomerInfoHandler(database.CustomerInfoRepo()),
		fileHandler:         newFileHandler(uploader, maxUploadBytes),
		healthHandler:       newHealthHandler(NewResponder(log.With().Str("handlerName", "healthHandler").Logger()), startupTime),
	}
}
