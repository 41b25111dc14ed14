// Package gtfs models the static portion of a GTFS transit feed: stops,
// routes, trips and per-trip stop timings. It loads the four required tables
// from a zipped feed or an unpacked directory, and can project a loaded
// schedule down to the subset reachable from a single route, stop or trip.
package gtfs

import "fmt"

// Stops is a collection of stops, keyed by stop id.
type Stops map[string]*Stop

// Routes is a collection of routes, keyed by route id.
type Routes map[string]*Route

// Trips is a collection of trips, keyed by trip id.
type Trips map[string]*Trip

// StopTimes groups the feed's stop-time entries by trip id. Entries within a
// trip keep the order they appeared in the source; callers that need
// sequence order must sort.
type StopTimes map[string][]*StopTime

// Count returns the total number of stop-time entries across all trips.
func (st StopTimes) Count() int {
	count := 0
	for _, entries := range st {
		count += len(entries)
	}
	return count
}

// Schedule is an in-memory transit schedule: either a whole loaded feed, or
// a projected subset of one. Projected schedules are referentially closed by
// construction; a schedule loaded straight from a feed carries whatever the
// feed contained, consistent or not.
type Schedule struct {
	Stops     Stops
	Routes    Routes
	Trips     Trips
	StopTimes StopTimes
}

// NewSchedule returns an empty schedule with all collections initialized.
func NewSchedule() *Schedule {
	return &Schedule{
		Stops:     Stops{},
		Routes:    Routes{},
		Trips:     Trips{},
		StopTimes: StopTimes{},
	}
}

// String summarizes the size of each collection.
func (s *Schedule) String() string {
	return fmt.Sprintf("Stops: %d\nRoutes: %d\nTrips: %d\nStop times: %d",
		len(s.Stops), len(s.Routes), len(s.Trips), s.StopTimes.Count())
}
