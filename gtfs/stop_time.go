package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day, not anchored to any date. Feeds may
// encode times past 24:00:00 for service that runs beyond midnight; hours are
// taken modulo 24 when parsing.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime parses an HH:MM:SS value from the feed.
func ParseClockTime(s string) (ClockTime, error) {
	segments := strings.Split(s, ":")
	if len(segments) != 3 {
		return ClockTime{}, fmt.Errorf("invalid time '%s': expected 3 segments", s)
	}

	hour, err := strconv.Atoi(segments[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time '%s': bad hour segment: %v", s, err)
	}
	minute, err := strconv.Atoi(segments[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time '%s': bad minute segment: %v", s, err)
	}
	second, err := strconv.Atoi(segments[2])
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time '%s': bad second segment: %v", s, err)
	}

	if hour < 0 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return ClockTime{}, fmt.Errorf("invalid time '%s'", s)
	}

	return ClockTime{
		Hour:   hour % 24,
		Minute: minute,
		Second: second,
	}, nil
}

// String formats the time as HH:MM:SS.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Before reports whether t is earlier in the day than other.
func (t ClockTime) Before(other ClockTime) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	if t.Minute != other.Minute {
		return t.Minute < other.Minute
	}
	return t.Second < other.Second
}

func parseOptionalClockTime(name, s string) (*ClockTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := ParseClockTime(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", name, err)
	}
	return &t, nil
}

// StopPolicy indicates how pickup or drop off is handled at a stop on a trip.
type StopPolicy int

const (
	// StopPolicyScheduled is a regularly scheduled pickup or drop off.
	StopPolicyScheduled StopPolicy = 0
	// StopPolicyUnavailable means no pickup or drop off is available.
	StopPolicyUnavailable StopPolicy = 1
	// StopPolicyPrearrange means the rider must phone the agency ahead of time.
	StopPolicyPrearrange StopPolicy = 2
	// StopPolicyCoordinateWithDriver means the rider must coordinate with the driver.
	StopPolicyCoordinateWithDriver StopPolicy = 3
)

// String presents the caller with a human readable version of this enum.
func (sp StopPolicy) String() string {
	switch sp {
	case StopPolicyScheduled:
		return "Regularly Scheduled"
	case StopPolicyUnavailable:
		return "Unavailable"
	case StopPolicyPrearrange:
		return "Prearrange"
	case StopPolicyCoordinateWithDriver:
		return "Coordinate With Driver"
	default:
		return "Unknown"
	}
}

func parseOptionalStopPolicy(name, s string) (*StopPolicy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	switch s {
	case "0", "1", "2", "3":
		policy := StopPolicy(int(s[0] - '0'))
		return &policy, nil
	default:
		return nil, fmt.Errorf("invalid %s '%s'", name, s)
	}
}

// Timepoint indicates how precise a stop time is.
type Timepoint int

const (
	// TimepointApproximate means the time is approximate.
	TimepointApproximate Timepoint = 0
	// TimepointExact means the time is exact.
	TimepointExact Timepoint = 1
)

// String presents the caller with a human readable version of this enum.
func (tp Timepoint) String() string {
	switch tp {
	case TimepointApproximate:
		return "Approximate"
	case TimepointExact:
		return "Exact"
	default:
		return "Unknown"
	}
}

func parseOptionalTimepoint(s string) (*Timepoint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	switch s {
	case "0":
		tp := TimepointApproximate
		return &tp, nil
	case "1":
		tp := TimepointExact
		return &tp, nil
	default:
		return nil, fmt.Errorf("invalid timepoint '%s'", s)
	}
}

// StopTime represents the scheduled visit of a trip to a single stop. The
// stop id is optional: feeds using the location-group extension may describe
// pickup by area rather than by fixed stop.
type StopTime struct {
	TripID                   string
	StopID                   string
	ArrivalTime              *ClockTime
	DepartureTime            *ClockTime
	LocationGroupID          string
	LocationID               string
	Sequence                 int
	Headsign                 string
	StartPickupDropOffWindow *ClockTime
	EndPickupDropOffWindow   *ClockTime
	PickupType               *StopPolicy
	DropOffType              *StopPolicy
	ContinuousPickup         *ContinuityPolicy
	ContinuousDropOff        *ContinuityPolicy
	ShapeDistTraveled        *float64
	Timepoint                *Timepoint
	PickupBookingRuleID      string
	DropOffBookingRuleID     string
}

func (st *StopTime) clone() *StopTime {
	c := *st

	if st.ArrivalTime != nil {
		val := *st.ArrivalTime
		c.ArrivalTime = &val
	}
	if st.DepartureTime != nil {
		val := *st.DepartureTime
		c.DepartureTime = &val
	}
	if st.StartPickupDropOffWindow != nil {
		val := *st.StartPickupDropOffWindow
		c.StartPickupDropOffWindow = &val
	}
	if st.EndPickupDropOffWindow != nil {
		val := *st.EndPickupDropOffWindow
		c.EndPickupDropOffWindow = &val
	}
	if st.PickupType != nil {
		val := *st.PickupType
		c.PickupType = &val
	}
	if st.DropOffType != nil {
		val := *st.DropOffType
		c.DropOffType = &val
	}
	if st.ContinuousPickup != nil {
		val := *st.ContinuousPickup
		c.ContinuousPickup = &val
	}
	if st.ContinuousDropOff != nil {
		val := *st.ContinuousDropOff
		c.ContinuousDropOff = &val
	}
	c.ShapeDistTraveled = cloneFloat(st.ShapeDistTraveled)
	if st.Timepoint != nil {
		val := *st.Timepoint
		c.Timepoint = &val
	}

	return &c
}

// rawStopTime is the CSV shape of a stop_times.txt record.
type rawStopTime struct {
	TripID                   string `csv:"trip_id"`
	ArrivalTime              string `csv:"arrival_time"`
	DepartureTime            string `csv:"departure_time"`
	StopID                   string `csv:"stop_id"`
	LocationGroupID          string `csv:"location_group_id"`
	LocationID               string `csv:"location_id"`
	StopSequence             string `csv:"stop_sequence"`
	StopHeadsign             string `csv:"stop_headsign"`
	StartPickupDropOffWindow string `csv:"start_pickup_drop_off_window"`
	EndPickupDropOffWindow   string `csv:"end_pickup_drop_off_window"`
	PickupType               string `csv:"pickup_type"`
	DropOffType              string `csv:"drop_off_type"`
	ContinuousPickup         string `csv:"continuous_pickup"`
	ContinuousDropOff        string `csv:"continuous_drop_off"`
	ShapeDistTraveled        string `csv:"shape_dist_traveled"`
	Timepoint                string `csv:"timepoint"`
	PickupBookingRuleID      string `csv:"pickup_booking_rule_id"`
	DropOffBookingRuleID     string `csv:"drop_off_booking_rule_id"`
}

func newStopTime(raw *rawStopTime) (*StopTime, error) {
	tripID, err := requireField("trip_id", raw.TripID)
	if err != nil {
		return nil, err
	}

	sequenceField, err := requireField("stop_sequence", raw.StopSequence)
	if err != nil {
		return nil, err
	}
	sequence, err := strconv.Atoi(sequenceField)
	if err != nil || sequence < 0 {
		return nil, fmt.Errorf("invalid stop_sequence '%s'", sequenceField)
	}

	arrival, err := parseOptionalClockTime("arrival_time", raw.ArrivalTime)
	if err != nil {
		return nil, err
	}
	departure, err := parseOptionalClockTime("departure_time", raw.DepartureTime)
	if err != nil {
		return nil, err
	}
	windowStart, err := parseOptionalClockTime("start_pickup_drop_off_window", raw.StartPickupDropOffWindow)
	if err != nil {
		return nil, err
	}
	windowEnd, err := parseOptionalClockTime("end_pickup_drop_off_window", raw.EndPickupDropOffWindow)
	if err != nil {
		return nil, err
	}

	pickup, err := parseOptionalStopPolicy("pickup_type", raw.PickupType)
	if err != nil {
		return nil, err
	}
	dropOff, err := parseOptionalStopPolicy("drop_off_type", raw.DropOffType)
	if err != nil {
		return nil, err
	}
	continuousPickup, err := parseOptionalContinuityPolicy("continuous_pickup", raw.ContinuousPickup)
	if err != nil {
		return nil, err
	}
	continuousDropOff, err := parseOptionalContinuityPolicy("continuous_drop_off", raw.ContinuousDropOff)
	if err != nil {
		return nil, err
	}

	shapeDist, err := parseOptionalFloat("shape_dist_traveled", raw.ShapeDistTraveled)
	if err != nil {
		return nil, err
	}
	timepoint, err := parseOptionalTimepoint(raw.Timepoint)
	if err != nil {
		return nil, err
	}

	return &StopTime{
		TripID:                   tripID,
		StopID:                   optField(raw.StopID),
		ArrivalTime:              arrival,
		DepartureTime:            departure,
		LocationGroupID:          optField(raw.LocationGroupID),
		LocationID:               optField(raw.LocationID),
		Sequence:                 sequence,
		Headsign:                 optField(raw.StopHeadsign),
		StartPickupDropOffWindow: windowStart,
		EndPickupDropOffWindow:   windowEnd,
		PickupType:               pickup,
		DropOffType:              dropOff,
		ContinuousPickup:         continuousPickup,
		ContinuousDropOff:        continuousDropOff,
		ShapeDistTraveled:        shapeDist,
		Timepoint:                timepoint,
		PickupBookingRuleID:      optField(raw.PickupBookingRuleID),
		DropOffBookingRuleID:     optField(raw.DropOffBookingRuleID),
	}, nil
}
