package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/bikeshare"
	"github.com/sevici/backend-go/internal/handler"
)

// APIGatewayHandler is implemented by the Lambda request handlers
type APIGatewayHandler interface {
	HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)
}

type Options struct {
	Service        bikeshare.BikeService
	GraphQL        http.Handler
	Contract       string
	CacheStats     func() map[string]uint64
	AllowedOrigins []string
}

// NewRouter mounts the REST and GraphQL endpoints on a chi router
func NewRouter(opts Options) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler(opts))

	stations := Adapt(handler.NewStationsHandler(opts.Service))
	r.Get("/stations", stations)
	r.Get("/stations/{name}", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		q.Set("name", chi.URLParam(req, "name"))
		req.URL.RawQuery = q.Encode()
		stations(w, req)
	})
	r.Get("/route", Adapt(handler.NewRoutesHandler(opts.Service)))

	if opts.GraphQL != nil {
		r.Handle("/graphql", opts.GraphQL)
	}

	return r
}

func healthHandler(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{
			"status":    "ok",
			"contract":  opts.Contract,
			"timestamp": time.Now().UTC(),
		}
		if opts.CacheStats != nil {
			body["cache"] = opts.CacheStats()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write health response")
		}
	}
}

// Adapt serves an API Gateway handler over plain HTTP
func Adapt(h APIGatewayHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := events.APIGatewayProxyRequest{
			HTTPMethod:            r.Method,
			Path:                  r.URL.Path,
			Headers:               make(map[string]string, len(r.Header)),
			QueryStringParameters: make(map[string]string),
		}
		for key := range r.Header {
			request.Headers[key] = r.Header.Get(key)
		}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				request.QueryStringParameters[key] = values[0]
			}
		}
		if r.Body != nil {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "reading body", http.StatusBadRequest)
				return
			}
			request.Body = string(body)
		}

		resp, err := h.HandleRequest(r.Context(), request)
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("Handler returned error")
			if resp.StatusCode == 0 {
				resp.StatusCode = http.StatusInternalServerError
			}
		}

		for key, value := range resp.Headers {
			// CORS is negotiated by the router middleware
			if key == "Access-Control-Allow-Origin" {
				continue
			}
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.WriteString(w, resp.Body); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write response")
		}
	}
}
