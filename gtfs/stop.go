package gtfs

import (
	"fmt"
	"time"
)

// LocationType identifies which kind of location a stop record describes.
type LocationType int

const (
	// LocationTypeStop is a platform or standalone stop where riders board.
	LocationTypeStop LocationType = 0
	// LocationTypeStation is a structure grouping one or more platforms.
	LocationTypeStation LocationType = 1
	// LocationTypeEntranceExit is a way in or out of a station.
	LocationTypeEntranceExit LocationType = 2
	// LocationTypeGenericNode is a pathway node inside a station.
	LocationTypeGenericNode LocationType = 3
	// LocationTypeBoardingArea is a spot on a platform where riders board.
	LocationTypeBoardingArea LocationType = 4
)

// String presents the caller with a human readable version of this enum.
func (lt LocationType) String() string {
	switch lt {
	case LocationTypeStop:
		return "Stop"
	case LocationTypeStation:
		return "Station"
	case LocationTypeEntranceExit:
		return "Entrance/Exit"
	case LocationTypeGenericNode:
		return "Generic Node"
	case LocationTypeBoardingArea:
		return "Boarding Area"
	default:
		return "Unknown"
	}
}

// LocationDetails holds the fields whose required/optional status depends on
// the stop's location type. The feed specification imposes a different
// contract per type; collapsing them into one all-optional shape would
// silently legalize invalid records, so each type keeps its own struct.
type LocationDetails interface {
	// LocationType reports which variant this is.
	LocationType() LocationType
}

// StopDetails is the shape of a platform or standalone stop: name and
// coordinates are required, the parent station is optional.
type StopDetails struct {
	Name          string
	Lat           float64
	Lon           float64
	ParentStation string
}

// LocationType reports which variant this is.
func (d *StopDetails) LocationType() LocationType { return LocationTypeStop }

// StationDetails is the shape of a station: name and coordinates are
// required. Stations are hierarchy roots and carry no parent reference.
type StationDetails struct {
	Name string
	Lat  float64
	Lon  float64
}

// LocationType reports which variant this is.
func (d *StationDetails) LocationType() LocationType { return LocationTypeStation }

// EntranceExitDetails is the shape of a station entrance or exit: name,
// coordinates and the parent station are all required.
type EntranceExitDetails struct {
	Name          string
	Lat           float64
	Lon           float64
	ParentStation string
}

// LocationType reports which variant this is.
func (d *EntranceExitDetails) LocationType() LocationType { return LocationTypeEntranceExit }

// GenericNodeDetails is the shape of a pathway node: only the parent station
// is required.
type GenericNodeDetails struct {
	Name          string
	Lat           *float64
	Lon           *float64
	ParentStation string
}

// LocationType reports which variant this is.
func (d *GenericNodeDetails) LocationType() LocationType { return LocationTypeGenericNode }

// BoardingAreaDetails is the shape of a boarding area: only the parent
// station is required.
type BoardingAreaDetails struct {
	Name          string
	Lat           *float64
	Lon           *float64
	ParentStation string
}

// LocationType reports which variant this is.
func (d *BoardingAreaDetails) LocationType() LocationType { return LocationTypeBoardingArea }

// Stop represents a location where a vehicle may pick up or drop off riders,
// or a grouping element in a station hierarchy.
type Stop struct {
	ID                 string
	Code               string
	TTSName            string
	Description        string
	ZoneID             string
	URL                string
	Timezone           *time.Location
	WheelchairBoarding *bool
	LevelID            string
	PlatformCode       string

	// Location carries the variant-specific required fields.
	Location LocationDetails
}

// Name returns the stop name, if the location type carries one.
func (s *Stop) Name() (string, bool) {
	switch d := s.Location.(type) {
	case *StopDetails:
		return d.Name, true
	case *StationDetails:
		return d.Name, true
	case *EntranceExitDetails:
		return d.Name, true
	case *GenericNodeDetails:
		return d.Name, d.Name != ""
	case *BoardingAreaDetails:
		return d.Name, d.Name != ""
	}
	return "", false
}

// Lat returns the stop latitude, if the location type carries one.
func (s *Stop) Lat() (float64, bool) {
	switch d := s.Location.(type) {
	case *StopDetails:
		return d.Lat, true
	case *StationDetails:
		return d.Lat, true
	case *EntranceExitDetails:
		return d.Lat, true
	case *GenericNodeDetails:
		if d.Lat != nil {
			return *d.Lat, true
		}
	case *BoardingAreaDetails:
		if d.Lat != nil {
			return *d.Lat, true
		}
	}
	return 0, false
}

// Lon returns the stop longitude, if the location type carries one.
func (s *Stop) Lon() (float64, bool) {
	switch d := s.Location.(type) {
	case *StopDetails:
		return d.Lon, true
	case *StationDetails:
		return d.Lon, true
	case *EntranceExitDetails:
		return d.Lon, true
	case *GenericNodeDetails:
		if d.Lon != nil {
			return *d.Lon, true
		}
	case *BoardingAreaDetails:
		if d.Lon != nil {
			return *d.Lon, true
		}
	}
	return 0, false
}

// ParentStation returns the id of the stop's parent station, if one is set.
// Stations never have a parent.
func (s *Stop) ParentStation() (string, bool) {
	switch d := s.Location.(type) {
	case *StopDetails:
		return d.ParentStation, d.ParentStation != ""
	case *EntranceExitDetails:
		return d.ParentStation, true
	case *GenericNodeDetails:
		return d.ParentStation, true
	case *BoardingAreaDetails:
		return d.ParentStation, true
	}
	return "", false
}

func (s *Stop) clone() *Stop {
	c := *s

	if s.WheelchairBoarding != nil {
		val := *s.WheelchairBoarding
		c.WheelchairBoarding = &val
	}

	switch d := s.Location.(type) {
	case *StopDetails:
		dc := *d
		c.Location = &dc
	case *StationDetails:
		dc := *d
		c.Location = &dc
	case *EntranceExitDetails:
		dc := *d
		c.Location = &dc
	case *GenericNodeDetails:
		dc := *d
		dc.Lat = cloneFloat(d.Lat)
		dc.Lon = cloneFloat(d.Lon)
		c.Location = &dc
	case *BoardingAreaDetails:
		dc := *d
		dc.Lat = cloneFloat(d.Lat)
		dc.Lon = cloneFloat(d.Lon)
		c.Location = &dc
	}

	return &c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	val := *f
	return &val
}

// rawStop is the CSV shape of a stops.txt record. All fields decode as
// strings so that absent optional columns stay distinguishable.
type rawStop struct {
	StopID             string `csv:"stop_id"`
	StopCode           string `csv:"stop_code"`
	StopName           string `csv:"stop_name"`
	TTSStopName        string `csv:"tts_stop_name"`
	StopDesc           string `csv:"stop_desc"`
	StopLat            string `csv:"stop_lat"`
	StopLon            string `csv:"stop_lon"`
	ZoneID             string `csv:"zone_id"`
	StopURL            string `csv:"stop_url"`
	LocationType       string `csv:"location_type"`
	ParentStation      string `csv:"parent_station"`
	StopTimezone       string `csv:"stop_timezone"`
	WheelchairBoarding string `csv:"wheelchair_boarding"`
	LevelID            string `csv:"level_id"`
	PlatformCode       string `csv:"platform_code"`
}

func newStop(raw *rawStop) (*Stop, error) {
	id, err := requireField("stop_id", raw.StopID)
	if err != nil {
		return nil, err
	}

	location, err := newLocationDetails(raw)
	if err != nil {
		return nil, err
	}

	var tz *time.Location
	if name := optField(raw.StopTimezone); name != "" {
		tz, err = time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("invalid stop_timezone '%s': %v", name, err)
		}
	}

	wheelchair, err := parseTriState("wheelchair_boarding", raw.WheelchairBoarding)
	if err != nil {
		return nil, err
	}

	return &Stop{
		ID:                 id,
		Code:               optField(raw.StopCode),
		TTSName:            optField(raw.TTSStopName),
		Description:        optField(raw.StopDesc),
		ZoneID:             optField(raw.ZoneID),
		URL:                optField(raw.StopURL),
		Timezone:           tz,
		WheelchairBoarding: wheelchair,
		LevelID:            optField(raw.LevelID),
		PlatformCode:       optField(raw.PlatformCode),
		Location:           location,
	}, nil
}

func newLocationDetails(raw *rawStop) (LocationDetails, error) {
	locationType := optField(raw.LocationType)
	if locationType == "" {
		locationType = "0"
	}

	var details LocationDetails
	var err error
	switch locationType {
	case "0":
		details, err = newStopDetails(raw)
	case "1":
		details, err = newStationDetails(raw)
	case "2":
		details, err = newEntranceExitDetails(raw)
	case "3":
		details, err = newGenericNodeDetails(raw)
	case "4":
		details, err = newBoardingAreaDetails(raw)
	default:
		return nil, fmt.Errorf("invalid location_type '%s'", locationType)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load location as type '%s': %v", locationType, err)
	}
	return details, nil
}

func newStopDetails(raw *rawStop) (LocationDetails, error) {
	name, err := requireField("stop_name", raw.StopName)
	if err != nil {
		return nil, err
	}
	lat, err := parseRequiredFloat("stop_lat", raw.StopLat)
	if err != nil {
		return nil, err
	}
	lon, err := parseRequiredFloat("stop_lon", raw.StopLon)
	if err != nil {
		return nil, err
	}

	return &StopDetails{
		Name:          name,
		Lat:           lat,
		Lon:           lon,
		ParentStation: optField(raw.ParentStation),
	}, nil
}

func newStationDetails(raw *rawStop) (LocationDetails, error) {
	name, err := requireField("stop_name", raw.StopName)
	if err != nil {
		return nil, err
	}
	lat, err := parseRequiredFloat("stop_lat", raw.StopLat)
	if err != nil {
		return nil, err
	}
	lon, err := parseRequiredFloat("stop_lon", raw.StopLon)
	if err != nil {
		return nil, err
	}

	return &StationDetails{
		Name: name,
		Lat:  lat,
		Lon:  lon,
	}, nil
}

func newEntranceExitDetails(raw *rawStop) (LocationDetails, error) {
	name, err := requireField("stop_name", raw.StopName)
	if err != nil {
		return nil, err
	}
	lat, err := parseRequiredFloat("stop_lat", raw.StopLat)
	if err != nil {
		return nil, err
	}
	lon, err := parseRequiredFloat("stop_lon", raw.StopLon)
	if err != nil {
		return nil, err
	}
	parent, err := requireField("parent_station", raw.ParentStation)
	if err != nil {
		return nil, err
	}

	return &EntranceExitDetails{
		Name:          name,
		Lat:           lat,
		Lon:           lon,
		ParentStation: parent,
	}, nil
}

func newGenericNodeDetails(raw *rawStop) (LocationDetails, error) {
	lat, err := parseOptionalFloat("stop_lat", raw.StopLat)
	if err != nil {
		return nil, err
	}
	lon, err := parseOptionalFloat("stop_lon", raw.StopLon)
	if err != nil {
		return nil, err
	}
	parent, err := requireField("parent_station", raw.ParentStation)
	if err != nil {
		return nil, err
	}

	return &GenericNodeDetails{
		Name:          optField(raw.StopName),
		Lat:           lat,
		Lon:           lon,
		ParentStation: parent,
	}, nil
}

func newBoardingAreaDetails(raw *rawStop) (LocationDetails, error) {
	lat, err := parseOptionalFloat("stop_lat", raw.StopLat)
	if err != nil {
		return nil, err
	}
	lon, err := parseOptionalFloat("stop_lon", raw.StopLon)
	if err != nil {
		return nil, err
	}
	parent, err := requireField("parent_station", raw.ParentStation)
	if err != nil {
		return nil, err
	}

	return &BoardingAreaDetails{
		Name:          optField(raw.StopName),
		Lat:           lat,
		Lon:           lon,
		ParentStation: parent,
	}, nil
}
