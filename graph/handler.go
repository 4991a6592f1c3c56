package graph

import (
	"bytes"
	"context"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"
)

const queryCacheSize = 1000

type RequestCreator func(ctx context.Context, method, url string, body *bytes.Buffer) (*http.Request, error)

type Handler struct {
	srv            *handler.Server
	requestCreator RequestCreator
}

func defaultRequestCreator(ctx context.Context, method, url string, body *bytes.Buffer) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// NewHandler builds the GraphQL server. apqCache enables automatic
// persisted queries when non-nil.
func NewHandler(resolver *Resolver, requestCreator RequestCreator, apqCache graphql.Cache[string]) *Handler {
	if requestCreator == nil {
		requestCreator = defaultRequestCreator
	}

	srv := handler.New(NewExecutableSchema(resolver))

	// Configure the server with HTTP-only settings
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](queryCacheSize))
	if apqCache != nil {
		srv.Use(extension.AutomaticPersistedQuery{Cache: apqCache})
	}
	srv.SetErrorPresenter(graphql.DefaultErrorPresenter)
	srv.SetRecoverFunc(graphql.DefaultRecover)

	return &Handler{
		srv:            srv,
		requestCreator: requestCreator,
	}
}

// ServeHTTP lets the handler be mounted on an HTTP router
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.srv.ServeHTTP(w, r)
}

func (h *Handler) HandleRequest(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if event.HTTPMethod == "" {
		event.HTTPMethod = http.MethodPost
	}
	if event.HTTPMethod != http.MethodPost {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusMethodNotAllowed,
			Body:       "Only POST method is allowed",
		}, nil
	}

	req, err := h.requestCreator(ctx, event.HTTPMethod, "http://localhost/graphql", bytes.NewBufferString(event.Body))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create request")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"errors": ["Failed to create request"]}`,
		}, err
	}

	// Add any headers from the event
	for key, value := range event.Headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("Content-Type", "application/json")

	w := &responseWriter{
		headers: make(http.Header),
		body:    &bytes.Buffer{},
		code:    http.StatusOK,
	}

	h.srv.ServeHTTP(w, req)

	return events.APIGatewayProxyResponse{
		StatusCode: w.code,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: w.body.String(),
	}, nil
}

// responseWriter implements http.ResponseWriter
type responseWriter struct {
	headers http.Header
	body    *bytes.Buffer
	code    int
}

func (w *responseWriter) Header() http.Header {
	return w.headers
}

func (w *responseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.code = statusCode
}
