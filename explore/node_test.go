package explore

import (
	"testing"

	"github.com/rmrobinson/gtfs-explore/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSchedule builds a small feed: station A with platform A1, standalone
// stop B, and route R1 running trips T1 (A1 then B) and T2 (B only). R2 has
// no trips.
func testSchedule() *gtfs.Schedule {
	return &gtfs.Schedule{
		Stops: gtfs.Stops{
			"A":  {ID: "A", Location: &gtfs.StationDetails{Name: "Downtown", Lat: 43.47, Lon: -80.54}},
			"A1": {ID: "A1", Location: &gtfs.StopDetails{Name: "Platform 1", Lat: 43.47, Lon: -80.54, ParentStation: "A"}},
			"B":  {ID: "B", Location: &gtfs.StopDetails{Name: "Uptown", Lat: 43.51, Lon: -80.55}},
		},
		Routes: gtfs.Routes{
			"R1": {ID: "R1", Name: gtfs.LongAndShortName{Long: "Mainline", Short: "7"}, Type: gtfs.RouteTypeBus},
			"R2": {ID: "R2", Name: gtfs.ShortName("8"), Type: gtfs.RouteTypeBus},
		},
		Trips: gtfs.Trips{
			"T1": {ID: "T1", RouteID: "R1", ServiceID: "WEEKDAY", Headsign: "Downtown"},
			"T2": {ID: "T2", RouteID: "R1", ServiceID: "WEEKDAY", Headsign: "Uptown"},
		},
		StopTimes: gtfs.StopTimes{
			"T1": {
				{TripID: "T1", StopID: "A1", Sequence: 1},
				{TripID: "T1", StopID: "B", Sequence: 2},
			},
			"T2": {
				{TripID: "T2", StopID: "B", Sequence: 1},
			},
		},
	}
}

func TestNewRootNode(t *testing.T) {
	schedule := testSchedule()
	root := NewRootNode(schedule)

	assert.Equal(t, schedule, root.Schedule)
	assert.Nil(t, root.Parent)
	assert.Empty(t, root.ID)
	assert.Empty(t, root.Name)
}

func TestStopChild(t *testing.T) {
	root := NewRootNode(testSchedule())
	child, err := root.StopChild("A")
	require.NoError(t, err)

	assert.Equal(t, root, child.Parent)
	assert.Equal(t, "A", child.ID)
	assert.Equal(t, "Downtown", child.Name)
	assert.Len(t, child.Schedule.Stops, 2)

	_, err = root.StopChild("Z")
	assert.Error(t, err)
}

func TestRouteChild(t *testing.T) {
	root := NewRootNode(testSchedule())
	child, err := root.RouteChild("R1")
	require.NoError(t, err)

	assert.Equal(t, root, child.Parent)
	assert.Equal(t, "R1", child.ID)
	assert.Equal(t, "Mainline (7)", child.Name)
	assert.Len(t, child.Schedule.Trips, 2)

	_, err = root.RouteChild("R9")
	assert.Error(t, err)
}

func TestTripChild(t *testing.T) {
	root := NewRootNode(testSchedule())
	child, err := root.TripChild("T1")
	require.NoError(t, err)

	assert.Equal(t, root, child.Parent)
	assert.Equal(t, "T1", child.ID)
	assert.Equal(t, "Downtown", child.Name)
	assert.Len(t, child.Schedule.Stops, 2)

	_, err = root.TripChild("T9")
	assert.Error(t, err)
}

func TestChildOfChildKeepsParentChain(t *testing.T) {
	root := NewRootNode(testSchedule())
	stopNode, err := root.StopChild("B")
	require.NoError(t, err)
	routeNode, err := stopNode.RouteChild("R1")
	require.NoError(t, err)

	assert.Equal(t, stopNode, routeNode.Parent)
	assert.Equal(t, root, routeNode.Parent.Parent)
}
