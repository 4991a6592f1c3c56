package station

import (
	"testing"

	"github.com/sevici/backend-go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSearchByAddress(t *testing.T) {
	t.Parallel()

	e1 := models.Station{Name: "Est1", Address: "Calle A", Capacity: 10, FreeSlots: 5, AvailableBikes: 3}
	e2 := models.Station{Name: "Est2", Address: "Calle B", Latitude: 1, Longitude: 1, Capacity: 10, FreeSlots: 5, AvailableBikes: 4}
	e3 := models.Station{Name: "Est3", Address: "Avenida de la Constitución", Capacity: 20, AvailableBikes: 2}
	stations := []models.Station{e1, e2, e3}

	tests := []struct {
		name     string
		query    string
		expected []models.Station
	}{
		{name: "lowercase query matches uppercase address", query: "b", expected: []models.Station{e2}},
		{name: "common prefix keeps order", query: "CALLE", expected: []models.Station{e1, e2}},
		{name: "empty query returns everything", query: "", expected: []models.Station{e1, e2, e3}},
		{name: "non-ascii substring", query: "CONSTITUCIÓN", expected: []models.Station{e3}},
		{name: "no match", query: "Triana", expected: []models.Station{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SearchByAddress(stations, tt.query))
		})
	}
}

func TestSearchByAddressReturnsCopy(t *testing.T) {
	t.Parallel()

	stations := []models.Station{{Name: "a", Address: "Calle A"}}
	result := SearchByAddress(stations, "")
	result[0].Name = "changed"

	assert.Equal(t, "a", stations[0].Name)
}

func TestFilterByAvailability(t *testing.T) {
	t.Parallel()

	e1 := newStation("Est1", 10, 8)
	e2 := newStation("Est2", 10, 4)
	e3 := newStation("Est3", 10, 2)
	e4 := newStation("Est4", 0, 0)
	stations := []models.Station{e1, e2, e3, e4}

	tests := []struct {
		name     string
		minRatio float64
		expected []models.Station
	}{
		{name: "default threshold", minRatio: DefaultMinAvailability, expected: []models.Station{e1}},
		{name: "thirty percent", minRatio: 0.3, expected: []models.Station{e1, e2}},
		{name: "zero excludes only zero capacity", minRatio: 0.0, expected: []models.Station{e1, e2, e3}},
		{name: "exact ratio qualifies", minRatio: 0.4, expected: []models.Station{e1, e2}},
		{name: "full only", minRatio: 1.0, expected: []models.Station{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterByAvailability(stations, tt.minRatio))
		})
	}
}

func TestFilterByAvailabilityZeroThresholdKeepsEmptyStations(t *testing.T) {
	t.Parallel()

	noBikes := newStation("none", 12, 0)
	result := FilterByAvailability([]models.Station{noBikes}, 0)
	assert.Equal(t, []models.Station{noBikes}, result)
}

func TestFindByName(t *testing.T) {
	t.Parallel()

	first := models.Station{Name: "dup", Address: "first"}
	second := models.Station{Name: "dup", Address: "second"}

	got, ok := FindByName([]models.Station{first, second}, "dup")
	assert.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = FindByName([]models.Station{first}, "missing")
	assert.False(t, ok)
}
