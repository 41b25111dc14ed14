package gtfs

import (
	"fmt"
	"strings"
)

// Direction distinguishes the two opposing directions of travel on a route.
// The feed assigns no inherent meaning to either value.
type Direction int

const (
	// DirectionA is the direction encoded as 0 in the feed.
	DirectionA Direction = 0
	// DirectionB is the direction encoded as 1 in the feed.
	DirectionB Direction = 1
)

func parseOptionalDirection(s string) (*Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	switch s {
	case "0":
		direction := DirectionA
		return &direction, nil
	case "1":
		direction := DirectionB
		return &direction, nil
	default:
		return nil, fmt.Errorf("invalid direction_id '%s'", s)
	}
}

// Trip represents a single run of a vehicle along a route, on the days
// described by its service calendar.
type Trip struct {
	ID                   string
	RouteID              string
	ServiceID            string
	Headsign             string
	ShortName            string
	Direction            *Direction
	BlockID              string
	ShapeID              string
	WheelchairAccessible *bool
	BikesAllowed         *bool
}

func (t *Trip) clone() *Trip {
	c := *t

	if t.Direction != nil {
		val := *t.Direction
		c.Direction = &val
	}
	if t.WheelchairAccessible != nil {
		val := *t.WheelchairAccessible
		c.WheelchairAccessible = &val
	}
	if t.BikesAllowed != nil {
		val := *t.BikesAllowed
		c.BikesAllowed = &val
	}

	return &c
}

// rawTrip is the CSV shape of a trips.txt record.
type rawTrip struct {
	TripID               string `csv:"trip_id"`
	RouteID              string `csv:"route_id"`
	ServiceID            string `csv:"service_id"`
	TripHeadsign         string `csv:"trip_headsign"`
	TripShortName        string `csv:"trip_short_name"`
	DirectionID          string `csv:"direction_id"`
	BlockID              string `csv:"block_id"`
	ShapeID              string `csv:"shape_id"`
	WheelchairAccessible string `csv:"wheelchair_accessible"`
	BikesAllowed         string `csv:"bikes_allowed"`
}

func newTrip(raw *rawTrip) (*Trip, error) {
	id, err := requireField("trip_id", raw.TripID)
	if err != nil {
		return nil, err
	}
	routeID, err := requireField("route_id", raw.RouteID)
	if err != nil {
		return nil, err
	}
	serviceID, err := requireField("service_id", raw.ServiceID)
	if err != nil {
		return nil, err
	}

	direction, err := parseOptionalDirection(raw.DirectionID)
	if err != nil {
		return nil, err
	}
	wheelchair, err := parseTriState("wheelchair_accessible", raw.WheelchairAccessible)
	if err != nil {
		return nil, err
	}
	bikes, err := parseTriState("bikes_allowed", raw.BikesAllowed)
	if err != nil {
		return nil, err
	}

	return &Trip{
		ID:                   id,
		RouteID:              routeID,
		ServiceID:            serviceID,
		Headsign:             optField(raw.TripHeadsign),
		ShortName:            optField(raw.TripShortName),
		Direction:            direction,
		BlockID:              optField(raw.BlockID),
		ShapeID:              optField(raw.ShapeID),
		WheelchairAccessible: wheelchair,
		BikesAllowed:         bikes,
	}, nil
}
