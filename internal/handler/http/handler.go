// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and the HTML views for the movie
// catalog. Session resolution, login gating, logging, and tracing concerns
// are all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/service"
)

type Handler struct {
	services *service.Services

	templates *templates

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		templates: mustParseTemplates(),
		logger:    logger,
	}
}
