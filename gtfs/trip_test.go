package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrip(t *testing.T) {
	trip, err := newTrip(&rawTrip{
		TripID:               "T1",
		RouteID:              "R1",
		ServiceID:            "WEEKDAY",
		TripHeadsign:         "Downtown",
		DirectionID:          "1",
		WheelchairAccessible: "1",
		BikesAllowed:         "2",
	})
	require.NoError(t, err)

	assert.Equal(t, "T1", trip.ID)
	assert.Equal(t, "R1", trip.RouteID)
	assert.Equal(t, "WEEKDAY", trip.ServiceID)
	assert.Equal(t, "Downtown", trip.Headsign)
	require.NotNil(t, trip.Direction)
	assert.Equal(t, DirectionB, *trip.Direction)
	require.NotNil(t, trip.WheelchairAccessible)
	assert.True(t, *trip.WheelchairAccessible)
	require.NotNil(t, trip.BikesAllowed)
	assert.False(t, *trip.BikesAllowed)
}

func TestNewTripMinimal(t *testing.T) {
	trip, err := newTrip(&rawTrip{TripID: "T1", RouteID: "R1", ServiceID: "WEEKDAY"})
	require.NoError(t, err)

	assert.Empty(t, trip.Headsign)
	assert.Nil(t, trip.Direction)
	assert.Nil(t, trip.WheelchairAccessible)
	assert.Nil(t, trip.BikesAllowed)
}

func TestNewTripInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  *rawTrip
	}{
		{"missing trip_id", &rawTrip{RouteID: "R1", ServiceID: "WEEKDAY"}},
		{"missing route_id", &rawTrip{TripID: "T1", ServiceID: "WEEKDAY"}},
		{"missing service_id", &rawTrip{TripID: "T1", RouteID: "R1"}},
		{"bad direction", &rawTrip{TripID: "T1", RouteID: "R1", ServiceID: "WEEKDAY", DirectionID: "2"}},
		{"bad bikes_allowed", &rawTrip{TripID: "T1", RouteID: "R1", ServiceID: "WEEKDAY", BikesAllowed: "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTrip(tt.raw)
			assert.Error(t, err)
		})
	}
}
