package main

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sevici/backend-go/internal/bikeshare"
	"github.com/sevici/backend-go/internal/handler"
	"github.com/sevici/backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	stations []models.Station
}

func (s staticSource) FetchStations(context.Context) ([]models.Station, error) {
	return s.stations, nil
}

func TestSetup(t *testing.T) {
	require.NoError(t, setup(context.Background()))
	assert.NotNil(t, stationsHandler)
}

func TestLambdaStart(t *testing.T) {
	originalStart := lambdaStart
	defer func() { lambdaStart = originalStart }()

	var startCalled bool
	lambdaStart = func(h interface{}) {
		startCalled = true

		handlerType := reflect.TypeOf(h)
		require.Equal(t, reflect.Func, handlerType.Kind())
		assert.Equal(t, 2, handlerType.NumIn())
		assert.Equal(t, reflect.TypeOf(events.APIGatewayProxyRequest{}), handlerType.In(1))
		assert.Equal(t, reflect.TypeOf(events.APIGatewayProxyResponse{}), handlerType.Out(0))
	}

	main()
	assert.True(t, startCalled)
}

func TestHandleRequest(t *testing.T) {
	original := stationsHandler
	defer func() { stationsHandler = original }()

	service := bikeshare.NewService(staticSource{stations: []models.Station{
		{Name: "A", Address: "Plaza Nueva", Capacity: 10, FreeSlots: 2, AvailableBikes: 8},
		{Name: "B", Address: "Calle Betis", Capacity: 10, FreeSlots: 9, AvailableBikes: 1},
	}}, "Seville")
	stationsHandler = handler.NewStationsHandler(service)

	tests := []struct {
		name           string
		params         map[string]string
		expectedStatus int
		expectedShown  int
	}{
		{name: "default filter", params: nil, expectedStatus: http.StatusOK, expectedShown: 1},
		{name: "everything", params: map[string]string{"minAvailability": "0"}, expectedStatus: http.StatusOK, expectedShown: 2},
		{name: "address", params: map[string]string{"minAvailability": "0", "address": "betis"}, expectedStatus: http.StatusOK, expectedShown: 1},
		{name: "bad filter", params: map[string]string{"minAvailability": "abc"}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := handleRequest(context.Background(), events.APIGatewayProxyRequest{QueryStringParameters: tt.params})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, response.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var resp models.OverviewResponse
				require.NoError(t, json.Unmarshal([]byte(response.Body), &resp))
				assert.Equal(t, tt.expectedShown, resp.Shown)
				assert.Equal(t, 2, resp.Total)
			}
		})
	}
}

func TestHandleRequest_NotInitialized(t *testing.T) {
	original := stationsHandler
	defer func() { stationsHandler = original }()
	stationsHandler = nil

	response, err := handleRequest(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
}
