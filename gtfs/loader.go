package gtfs

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

const (
	stopsFileName     = "stops.txt"
	routesFileName    = "routes.txt"
	tripsFileName     = "trips.txt"
	stopTimesFileName = "stop_times.txt"
)

// MissingTableError is returned when a required table is absent from the
// feed container.
type MissingTableError struct {
	Table string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("failed to open %s: not found", e.Table)
}

// TableError is returned when a required table is present but one of its
// records cannot be parsed.
type TableError struct {
	Table string
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Table, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TableError) Unwrap() error {
	return e.Err
}

// Hooks carries optional callbacks fired while a feed loads. Nil members are
// skipped. The callbacks exist for progress reporting; they must not retain
// the values they are handed.
type Hooks struct {
	// DownloadProgress is called with the running byte count as feed bytes
	// arrive over the network.
	DownloadProgress func(bytes int)
	// TableLoaded is called once per table after all of its records parsed.
	TableLoaded func(table string, records int)
}

// Loader reads the four required GTFS tables into a Schedule.
type Loader struct {
	logger *zap.Logger
	hooks  Hooks
}

// NewLoader creates a loader that logs diagnostics to the supplied logger.
func NewLoader(logger *zap.Logger) *Loader {
	gocsv.SetCSVReader(feedCSVReader)
	return &Loader{
		logger: logger,
	}
}

// WithHooks attaches progress callbacks to the loader.
func (l *Loader) WithHooks(hooks Hooks) *Loader {
	l.hooks = hooks
	return l
}

// LoadFromURL downloads a zipped feed and loads it.
func (l *Loader) LoadFromURL(ctx context.Context, url string) (*Schedule, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	client := http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status %d retrieving %s", resp.StatusCode, url)
	}

	var buf bytes.Buffer
	writer := io.Writer(&buf)
	if l.hooks.DownloadProgress != nil {
		writer = io.MultiWriter(&buf, &progressCounter{report: l.hooks.DownloadProgress})
	}
	if _, err := io.Copy(writer, resp.Body); err != nil {
		return nil, err
	}

	l.logger.Debug("downloaded feed",
		zap.String("url", url),
		zap.Int("bytes", buf.Len()),
	)

	zipReader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return nil, err
	}

	return l.LoadFromZip(zipReader)
}

// LoadFromZip loads a feed from an already-open zip archive.
func (l *Loader) LoadFromZip(archive *zip.Reader) (*Schedule, error) {
	files := map[string]*zip.File{}
	for _, file := range archive.File {
		files[file.Name] = file
	}

	return l.load(func(table string) (io.ReadCloser, error) {
		file, ok := files[table]
		if !ok {
			return nil, &MissingTableError{Table: table}
		}
		return file.Open()
	})
}

// LoadFromFSPath loads a feed from a directory of unpacked table files.
func (l *Loader) LoadFromFSPath(ctx context.Context, path string) (*Schedule, error) {
	return l.load(func(table string) (io.ReadCloser, error) {
		f, err := os.Open(filepath.Join(path, table))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &MissingTableError{Table: table}
			}
			return nil, err
		}
		return f, nil
	})
}

func (l *Loader) load(open func(table string) (io.ReadCloser, error)) (*Schedule, error) {
	schedule := NewSchedule()

	tables := []struct {
		name  string
		parse func(io.Reader, *Schedule) (int, error)
	}{
		{stopsFileName, l.parseStops},
		{routesFileName, l.parseRoutes},
		{tripsFileName, l.parseTrips},
		{stopTimesFileName, l.parseStopTimes},
	}

	for _, table := range tables {
		reader, err := open(table.name)
		if err != nil {
			return nil, err
		}

		records, err := table.parse(reader, schedule)
		reader.Close()
		if err != nil {
			l.logger.Debug("error parsing table",
				zap.String("table", table.name),
				zap.Error(err),
			)
			return nil, &TableError{Table: table.name, Err: err}
		}

		l.logger.Debug("loaded table",
			zap.String("table", table.name),
			zap.Int("records", records),
		)
		if l.hooks.TableLoaded != nil {
			l.hooks.TableLoaded(table.name, records)
		}
	}

	return schedule, nil
}

func (l *Loader) parseStops(r io.Reader, schedule *Schedule) (int, error) {
	var rows []*rawStop
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, err
	}

	for _, row := range rows {
		stop, err := newStop(row)
		if err != nil {
			return 0, fmt.Errorf("stop '%s': %v", row.StopID, err)
		}
		schedule.Stops[stop.ID] = stop
	}
	return len(rows), nil
}

func (l *Loader) parseRoutes(r io.Reader, schedule *Schedule) (int, error) {
	var rows []*rawRoute
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, err
	}

	for _, row := range rows {
		route, err := newRoute(row)
		if err != nil {
			return 0, fmt.Errorf("route '%s': %v", row.RouteID, err)
		}
		schedule.Routes[route.ID] = route
	}
	return len(rows), nil
}

func (l *Loader) parseTrips(r io.Reader, schedule *Schedule) (int, error) {
	var rows []*rawTrip
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, err
	}

	for _, row := range rows {
		trip, err := newTrip(row)
		if err != nil {
			return 0, fmt.Errorf("trip '%s': %v", row.TripID, err)
		}
		schedule.Trips[trip.ID] = trip
	}
	return len(rows), nil
}

func (l *Loader) parseStopTimes(r io.Reader, schedule *Schedule) (int, error) {
	var rows []*rawStopTime
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, err
	}

	for _, row := range rows {
		stopTime, err := newStopTime(row)
		if err != nil {
			return 0, fmt.Errorf("stop time for trip '%s': %v", row.TripID, err)
		}
		schedule.StopTimes[stopTime.TripID] = append(schedule.StopTimes[stopTime.TripID], stopTime)
	}
	return len(rows), nil
}

type progressCounter struct {
	total  int
	report func(bytes int)
}

func (c *progressCounter) Write(p []byte) (int, error) {
	c.total += len(p)
	c.report(c.total)
	return len(p), nil
}

// GTFS files routinely omit optional trailing columns, so the CSV reader
// must not enforce a uniform field count.
func feedCSVReader(in io.Reader) gocsv.CSVReader {
	csvReader := csv.NewReader(in)
	csvReader.FieldsPerRecord = -1
	return csvReader
}
