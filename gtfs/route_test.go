package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouteName(t *testing.T) {
	tests := []struct {
		name  string
		short string
		long  string
		want  RouteName
	}{
		{"short only", "7", "", ShortName("7")},
		{"long only", "", "Mainline", LongName("Mainline")},
		{"both", "7", "Mainline", LongAndShortName{Long: "Mainline", Short: "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newRouteName(tt.short, tt.long)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := newRouteName("", "")
	assert.Equal(t, ErrRouteNameRequired, err)
}

func TestRouteNameAccessors(t *testing.T) {
	route := &Route{ID: "R1", Name: LongAndShortName{Long: "Mainline", Short: "7"}}
	long, ok := route.LongName()
	assert.True(t, ok)
	assert.Equal(t, "Mainline", long)
	short, ok := route.ShortName()
	assert.True(t, ok)
	assert.Equal(t, "7", short)
	assert.Equal(t, "Mainline (7)", route.DisplayName())

	route = &Route{ID: "R2", Name: ShortName("7")}
	_, ok = route.LongName()
	assert.False(t, ok)
	assert.Equal(t, "7", route.DisplayName())

	route = &Route{ID: "R3", Name: LongName("Mainline")}
	_, ok = route.ShortName()
	assert.False(t, ok)
	assert.Equal(t, "Mainline", route.DisplayName())
}

func TestNewRoute(t *testing.T) {
	route, err := newRoute(&rawRoute{
		RouteID:          "R1",
		AgencyID:         "1",
		RouteShortName:   "7",
		RouteLongName:    "Mainline",
		RouteType:        "3",
		RouteColor:       "FFAA00",
		RouteSortOrder:   "12",
		ContinuousPickup: "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "R1", route.ID)
	assert.Equal(t, RouteTypeBus, route.Type)
	assert.Equal(t, LongAndShortName{Long: "Mainline", Short: "7"}, route.Name)
	require.NotNil(t, route.Color)
	assert.Equal(t, "#ffaa00", route.Color.Hex())
	assert.Nil(t, route.TextColor)
	require.NotNil(t, route.SortOrder)
	assert.Equal(t, 12, *route.SortOrder)
	require.NotNil(t, route.ContinuousPickup)
	assert.Equal(t, ContinuityNone, *route.ContinuousPickup)
	assert.Nil(t, route.ContinuousDropOff)

	// An absent route_type means tram.
	route, err = newRoute(&rawRoute{RouteID: "R2", RouteShortName: "8"})
	require.NoError(t, err)
	assert.Equal(t, RouteTypeTram, route.Type)
}

func TestNewRouteInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  *rawRoute
	}{
		{"missing route_id", &rawRoute{RouteShortName: "7", RouteType: "3"}},
		{"missing both names", &rawRoute{RouteID: "R1", RouteType: "3"}},
		{"unknown route_type", &rawRoute{RouteID: "R1", RouteShortName: "7", RouteType: "12"}},
		{"bad color", &rawRoute{RouteID: "R1", RouteShortName: "7", RouteColor: "pumpkin"}},
		{"bad sort order", &rawRoute{RouteID: "R1", RouteShortName: "7", RouteSortOrder: "first"}},
		{"bad continuous_drop_off", &rawRoute{RouteID: "R1", RouteShortName: "7", ContinuousDropOff: "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newRoute(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestRouteTypeString(t *testing.T) {
	assert.Equal(t, "Subway", RouteTypeSubway.String())
	assert.Equal(t, "Monorail", RouteTypeMonorail.String())
	assert.Equal(t, "Unknown", RouteType(42).String())
}
