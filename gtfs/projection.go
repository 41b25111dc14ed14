package gtfs

import (
	"errors"
	"fmt"
)

// ErrHierarchyCycle is returned when the parent references among stops form
// a cycle, which a well-formed feed never contains.
var ErrHierarchyCycle = errors.New("cycle in stop hierarchy")

// NoSuchRouteError is returned when a projection selector names a route that
// is not present in the source schedule.
type NoSuchRouteError struct {
	RouteID string
}

func (e *NoSuchRouteError) Error() string {
	return fmt.Sprintf("no such route: %s", e.RouteID)
}

// NoSuchStopError is returned when a projection selector names a stop that
// is not present in the source schedule.
type NoSuchStopError struct {
	StopID string
}

func (e *NoSuchStopError) Error() string {
	return fmt.Sprintf("no such stop: %s", e.StopID)
}

// NoSuchTripError is returned when a projection selector names a trip that
// is not present in the source schedule.
type NoSuchTripError struct {
	TripID string
}

func (e *NoSuchTripError) Error() string {
	return fmt.Sprintf("no such trip: %s", e.TripID)
}

// DescendantsError is returned when the stop hierarchy below a stop cannot
// be walked, either because a referenced stop is missing from the table or
// because the parent references form a cycle.
type DescendantsError struct {
	StopID string
	Err    error
}

func (e *DescendantsError) Error() string {
	return fmt.Sprintf("error getting descendants for stop %s: %v", e.StopID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DescendantsError) Unwrap() error {
	return e.Err
}

// ProjectByRoute builds a new schedule holding exactly the entities
// reachable from the given route: the route itself, its trips, the
// stop-time entries of those trips, and the stops those entries visit. The
// source schedule is not modified; every record in the result is a copy.
func (s *Schedule) ProjectByRoute(routeID string) (*Schedule, error) {
	route, ok := s.Routes[routeID]
	if !ok {
		return nil, &NoSuchRouteError{RouteID: routeID}
	}

	result := NewSchedule()
	result.Routes[routeID] = route.clone()

	for id, trip := range s.Trips {
		if trip.RouteID == routeID {
			result.Trips[id] = trip.clone()
		}
	}

	// Group the selected trips' entries by stop id first; the keys of that
	// grouping decide which stops make it into the result. Entries without a
	// stop id (location-group pickup) drive no stop selection and are
	// dropped from the projection.
	timesByStop := map[string][]*StopTime{}
	for tripID, entries := range s.StopTimes {
		if _, ok := result.Trips[tripID]; !ok {
			continue
		}
		for _, entry := range entries {
			if entry.StopID == "" {
				continue
			}
			timesByStop[entry.StopID] = append(timesByStop[entry.StopID], entry)
		}
	}

	for id, stop := range s.Stops {
		if _, ok := timesByStop[id]; ok {
			result.Stops[id] = stop.clone()
		}
	}

	// Regroup back by trip id, walking the source order so entries within a
	// trip stay in feed order.
	for tripID := range result.Trips {
		for _, entry := range s.StopTimes[tripID] {
			if entry.StopID == "" {
				continue
			}
			result.StopTimes[tripID] = append(result.StopTimes[tripID], entry.clone())
		}
	}

	return result, nil
}

// ProjectByStop builds a new schedule holding exactly the entities reachable
// from the given stop: the stop and its full descendant subtree, the
// stop-time entries that visit any stop in that subtree, and the trips and
// routes those entries belong to. Ancestors of the selected stop are not
// included. The source schedule is not modified; every record in the result
// is a copy.
func (s *Schedule) ProjectByStop(stopID string) (*Schedule, error) {
	root, ok := s.Stops[stopID]
	if !ok {
		return nil, &NoSuchStopError{StopID: stopID}
	}

	// One pass over every stop builds the parent to children index; the
	// closure below only ever walks downward.
	children := map[string][]string{}
	for id, stop := range s.Stops {
		if parent, ok := stop.ParentStation(); ok {
			children[parent] = append(children[parent], id)
		}
	}

	result := NewSchedule()
	if err := s.collectDescendants(root, children, result.Stops); err != nil {
		return nil, &DescendantsError{StopID: stopID, Err: err}
	}

	for tripID, entries := range s.StopTimes {
		for _, entry := range entries {
			if entry.StopID == "" {
				continue
			}
			if _, ok := result.Stops[entry.StopID]; !ok {
				continue
			}
			result.StopTimes[tripID] = append(result.StopTimes[tripID], entry.clone())
		}
	}

	tripsByRoute := map[string][]string{}
	for id, trip := range s.Trips {
		if _, ok := result.StopTimes[id]; !ok {
			continue
		}
		result.Trips[id] = trip.clone()
		tripsByRoute[trip.RouteID] = append(tripsByRoute[trip.RouteID], id)
	}

	for id, route := range s.Routes {
		if _, ok := tripsByRoute[id]; ok {
			result.Routes[id] = route.clone()
		}
	}

	return result, nil
}

// collectDescendants copies stop and everything below it in the hierarchy
// into acc. A stop reached twice means the parent references loop; a child
// id without a stop record means the table is corrupt. Both end the walk
// with an error rather than recursing forever.
func (s *Schedule) collectDescendants(stop *Stop, children map[string][]string, acc Stops) error {
	if _, ok := acc[stop.ID]; ok {
		return ErrHierarchyCycle
	}
	acc[stop.ID] = stop.clone()

	for _, childID := range children[stop.ID] {
		child, ok := s.Stops[childID]
		if !ok {
			return &NoSuchStopError{StopID: childID}
		}
		if err := s.collectDescendants(child, children, acc); err != nil {
			return &DescendantsError{StopID: childID, Err: err}
		}
	}
	return nil
}

// ProjectByTrip builds a new schedule holding exactly the entities reachable
// from the given trip: the trip itself, its route, its stop-time entries,
// and the stops those entries visit. The source schedule is not modified;
// every record in the result is a copy.
func (s *Schedule) ProjectByTrip(tripID string) (*Schedule, error) {
	trip, ok := s.Trips[tripID]
	if !ok {
		return nil, &NoSuchTripError{TripID: tripID}
	}

	result := NewSchedule()
	result.Trips[tripID] = trip.clone()

	if route, ok := s.Routes[trip.RouteID]; ok {
		result.Routes[route.ID] = route.clone()
	}

	for _, entry := range s.StopTimes[tripID] {
		result.StopTimes[tripID] = append(result.StopTimes[tripID], entry.clone())
		if entry.StopID == "" {
			continue
		}
		if stop, ok := s.Stops[entry.StopID]; ok {
			result.Stops[stop.ID] = stop.clone()
		}
	}

	return result, nil
}
