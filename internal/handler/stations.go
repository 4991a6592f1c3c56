package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sevici/backend-go/internal/api"
	"github.com/sevici/backend-go/internal/bikeshare"
	"github.com/sevici/backend-go/internal/models"
)

type StationsHandler struct {
	service bikeshare.BikeService
}

func NewStationsHandler(service bikeshare.BikeService) *StationsHandler {
	return &StationsHandler{
		service: service,
	}
}

func (h *StationsHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	// Lookup of a single station by name
	if name, ok := params["name"]; ok {
		view, err := h.service.FindStation(ctx, name)
		if err != nil {
			return errorResponse(err)
		}
		if view == nil {
			return api.Error("Station not found", http.StatusNotFound)
		}
		return api.Success(view)
	}

	minAvailability, err := api.ParseMinAvailability(params)
	if err != nil {
		return errorResponse(err)
	}

	resp, err := h.service.Overview(ctx, models.StationQuery{
		Address:         params["address"],
		MinAvailability: minAvailability,
	})
	if err != nil {
		return errorResponse(err)
	}

	return api.Success(resp)
}
