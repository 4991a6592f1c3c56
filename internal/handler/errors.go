package handler

import (
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/api"
	"github.com/sevici/backend-go/internal/bikeshare"
)

// errorResponse maps service errors onto HTTP statuses
func errorResponse(err error) (events.APIGatewayProxyResponse, error) {
	var (
		coordErr    api.InvalidCoordinatesError
		paramErr    api.InvalidParameterError
		filterErr   *bikeshare.InvalidFilterError
		noRouteErr  *bikeshare.NoRouteError
		providerErr *bikeshare.ProviderAPIError
	)

	switch {
	case errors.As(err, &coordErr), errors.As(err, &paramErr):
		return api.Error(err.Error(), http.StatusBadRequest)
	case errors.As(err, &filterErr):
		return api.Error(filterErr.Error(), http.StatusBadRequest)
	case errors.As(err, &noRouteErr):
		return api.Error(noRouteErr.Error(), http.StatusNotFound)
	case errors.As(err, &providerErr):
		log.Error().Err(err).Msg("Station provider failure")
		return api.Error("Error fetching stations from provider", http.StatusBadGateway)
	default:
		log.Error().Err(err).Msg("Unhandled request error")
		return api.Error("Internal Server Error", http.StatusInternalServerError)
	}
}
