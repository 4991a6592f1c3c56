package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sevici/backend-go/internal/api"
	"github.com/sevici/backend-go/internal/bikeshare"
)

type RoutesHandler struct {
	service bikeshare.BikeService
}

func NewRoutesHandler(service bikeshare.BikeService) *RoutesHandler {
	return &RoutesHandler{
		service: service,
	}
}

func (h *RoutesHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	origin, err := api.ParsePoint(params, "originLat", "originLon")
	if err != nil {
		return errorResponse(err)
	}
	destination, err := api.ParsePoint(params, "destLat", "destLon")
	if err != nil {
		return errorResponse(err)
	}

	resp, err := h.service.PlanRoute(ctx, origin, destination)
	if err != nil {
		return errorResponse(err)
	}

	return api.Success(resp)
}
