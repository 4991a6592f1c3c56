package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sevici/backend-go/internal/models"
	"github.com/sevici/backend-go/internal/station"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    defaultHeaders(),
		Body:       string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    defaultHeaders(),
		Body:       string(body),
	}, nil
}

func defaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// Parameter parsing helpers

// ParsePoint reads a coordinate pair from the given keys. Both keys are
// required.
func ParsePoint(params map[string]string, latKey, lonKey string) (models.Point, error) {
	latStr, hasLat := params[latKey]
	lonStr, hasLon := params[lonKey]

	if !hasLat || !hasLon {
		return models.Point{}, InvalidCoordinatesError{Reason: fmt.Sprintf("%s and %s are required", latKey, lonKey)}
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || math.IsNaN(lat) {
		return models.Point{}, InvalidCoordinatesError{Reason: fmt.Sprintf("%s is not a number", latKey)}
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil || math.IsNaN(lon) {
		return models.Point{}, InvalidCoordinatesError{Reason: fmt.Sprintf("%s is not a number", lonKey)}
	}

	if err := ValidatePoint(models.Point{Latitude: lat, Longitude: lon}); err != nil {
		return models.Point{}, err
	}

	return models.Point{Latitude: lat, Longitude: lon}, nil
}

// ValidatePoint checks latitude and longitude ranges. NaN is never in range.
func ValidatePoint(p models.Point) error {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return InvalidCoordinatesError{Reason: "not a number"}
	}
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return InvalidCoordinatesError{Reason: "out of range"}
	}
	return nil
}

// ParseMinAvailability reads minAvailability as a whole percentage (0-100)
// and returns it as a ratio. Absent means 50%.
func ParseMinAvailability(params map[string]string) (float64, error) {
	value, ok := params["minAvailability"]
	if !ok || strings.TrimSpace(value) == "" {
		return station.DefaultMinAvailability, nil
	}

	percentage, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(percentage) {
		return 0, InvalidParameterError{Name: "minAvailability", Reason: "must be a number"}
	}
	if percentage < 0 || percentage > 100 {
		return 0, InvalidParameterError{Name: "minAvailability", Reason: "must be between 0 and 100"}
	}

	return percentage / 100.0, nil
}

type InvalidCoordinatesError struct {
	Reason string
}

func (e InvalidCoordinatesError) Error() string {
	if e.Reason == "" {
		return "Invalid coordinates"
	}
	return "Invalid coordinates: " + e.Reason
}

type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Name, e.Reason)
}
