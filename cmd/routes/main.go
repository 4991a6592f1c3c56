package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/app"
	"github.com/sevici/backend-go/internal/config"
	"github.com/sevici/backend-go/internal/handler"
)

var (
	lambdaStart   = lambda.Start // Allow mocking of lambda.Start in tests
	routesHandler *handler.RoutesHandler
	setupOnce     sync.Once
	setupErr      error
)

func setup(ctx context.Context) error {
	setupOnce.Do(func() {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			setupErr = fmt.Errorf("loading config: %w", err)
			return
		}
		cfg.InitializeLogging()

		components, err := app.Build(ctx, cfg, config.GetCacheConfig(), nil)
		if err != nil {
			setupErr = err
			return
		}

		routesHandler = handler.NewRoutesHandler(components.Service)
	})
	return setupErr
}

func init() {
	if err := setup(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to initialize routes handler")
	}
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if routesHandler == nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"responseType":"error","error":"Handler not initialized"}`,
		}, nil
	}
	return routesHandler.HandleRequest(ctx, request)
}

func main() {
	lambdaStart(handleRequest)
}
