package gtfs

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testFeedTables = map[string]string{
	stopsFileName: "stop_id,stop_name,stop_lat,stop_lon,location_type,parent_station\n" +
		"A,Downtown,43.47,-80.54,1,\n" +
		"A1,Platform 1,43.47,-80.54,0,A\n" +
		"B,Uptown,43.51,-80.55,,\n",
	routesFileName: "route_id,route_short_name,route_long_name,route_type\n" +
		"R1,7,Mainline,3\n",
	tripsFileName: "trip_id,route_id,service_id,trip_headsign\n" +
		"T1,R1,WEEKDAY,Downtown\n",
	stopTimesFileName: "trip_id,stop_id,stop_sequence,arrival_time\n" +
		"T1,A1,1,08:00:00\n" +
		"T1,B,2,25:10:00\n",
}

func testFeedZip(t *testing.T, tables map[string]string) *zip.Reader {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, contents := range tables {
		f, err := writer.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return reader
}

func TestLoadFromZip(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))
	schedule, err := loader.LoadFromZip(testFeedZip(t, testFeedTables))
	require.NoError(t, err)

	assert.Len(t, schedule.Stops, 3)
	assert.Len(t, schedule.Routes, 1)
	assert.Len(t, schedule.Trips, 1)
	assert.Equal(t, 2, schedule.StopTimes.Count())

	station, ok := schedule.Stops["A"]
	require.True(t, ok)
	assert.Equal(t, LocationTypeStation, station.Location.LocationType())

	platform, ok := schedule.Stops["A1"]
	require.True(t, ok)
	parent, ok := platform.ParentStation()
	require.True(t, ok)
	assert.Equal(t, "A", parent)

	// An empty location_type means a plain stop.
	plain, ok := schedule.Stops["B"]
	require.True(t, ok)
	assert.Equal(t, LocationTypeStop, plain.Location.LocationType())

	entries := schedule.StopTimes["T1"]
	require.Len(t, entries, 2)
	assert.Equal(t, "A1", entries[0].StopID)
	require.NotNil(t, entries[1].ArrivalTime)
	assert.Equal(t, "01:10:00", entries[1].ArrivalTime.String())
}

func TestLoadHooks(t *testing.T) {
	loaded := map[string]int{}
	loader := NewLoader(zaptest.NewLogger(t)).WithHooks(Hooks{
		TableLoaded: func(table string, records int) {
			loaded[table] = records
		},
	})

	_, err := loader.LoadFromZip(testFeedZip(t, testFeedTables))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		stopsFileName:     3,
		routesFileName:    1,
		tripsFileName:     1,
		stopTimesFileName: 2,
	}, loaded)
}

func TestLoadMissingTable(t *testing.T) {
	tables := map[string]string{}
	for name, contents := range testFeedTables {
		if name == tripsFileName {
			continue
		}
		tables[name] = contents
	}

	loader := NewLoader(zaptest.NewLogger(t))
	_, err := loader.LoadFromZip(testFeedZip(t, tables))

	var missing *MissingTableError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, tripsFileName, missing.Table)
}

func TestLoadBadRecord(t *testing.T) {
	tables := map[string]string{}
	for name, contents := range testFeedTables {
		tables[name] = contents
	}
	// A platform record with no name cannot be converted.
	tables[stopsFileName] = "stop_id,stop_name,stop_lat,stop_lon\nA1,,43.47,-80.54\n"

	loader := NewLoader(zaptest.NewLogger(t))
	_, err := loader.LoadFromZip(testFeedZip(t, tables))

	var table *TableError
	require.True(t, errors.As(err, &table))
	assert.Equal(t, stopsFileName, table.Table)
	assert.Contains(t, err.Error(), "stop 'A1'")
}

func TestLoadShortRecords(t *testing.T) {
	tables := map[string]string{}
	for name, contents := range testFeedTables {
		tables[name] = contents
	}
	// Trailing optional columns are routinely omitted per record.
	tables[stopsFileName] = "stop_id,stop_name,stop_lat,stop_lon,location_type,parent_station\n" +
		"A,Downtown,43.47,-80.54,1\n" +
		"A1,Platform 1,43.47,-80.54,0,A\n" +
		"B,Uptown,43.51,-80.55\n"

	loader := NewLoader(zaptest.NewLogger(t))
	schedule, err := loader.LoadFromZip(testFeedZip(t, tables))
	require.NoError(t, err)
	assert.Len(t, schedule.Stops, 3)
}
