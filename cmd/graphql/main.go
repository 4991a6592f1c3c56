package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/graph"
	"github.com/sevici/backend-go/internal/app"
	"github.com/sevici/backend-go/internal/cache"
	"github.com/sevici/backend-go/internal/config"
	"github.com/sevici/backend-go/internal/station"
)

var (
	lambdaStart                         = lambda.Start
	handler       *graph.Handler
	setupOnce     sync.Once
	sourceFactory station.SourceFactory = &station.DefaultSourceFactory{}
	initHandler                         = defaultInitHandler
)

func defaultInitHandler(ctx context.Context) (*graph.Handler, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.InitializeLogging()

	cacheCfg := config.GetCacheConfig()
	components, err := app.Build(ctx, cfg, cacheCfg, sourceFactory)
	if err != nil {
		return nil, err
	}

	apqCache, err := cache.NewGraphQLCache(cacheCfg)
	if err != nil {
		return nil, fmt.Errorf("initializing query cache: %w", err)
	}

	resolver := &graph.Resolver{Service: components.Service}
	return graph.NewHandler(resolver, nil, apqCache), nil
}

func handleRequest(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if handler == nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"errors": ["Handler not initialized"]}`,
		}, fmt.Errorf("handler not initialized")
	}
	return handler.HandleRequest(ctx, event)
}

func InitializeService() error {
	var initError error
	setupOnce.Do(func() {
		if sourceFactory == nil {
			sourceFactory = &station.DefaultSourceFactory{}
		}
		log.Debug().Msg("Initializing GraphQL service...")
		var err error
		handler, err = initHandler(context.Background())
		if err != nil {
			initError = fmt.Errorf("failed to initialize handler: %w", err)
			log.Error().Err(err).Msg("Failed to initialize handler")
			return
		}
		log.Debug().Msg("GraphQL service initialized successfully")
	})
	return initError
}

func init() {
	if err := InitializeService(); err != nil {
		log.Error().Err(err).Msg("Failed to initialize service")
	}
}

func main() {
	lambdaStart(handleRequest)
}
