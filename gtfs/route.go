package gtfs

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RouteType represents the possible set of route vehicle types.
type RouteType int

const (
	// RouteTypeTram is a route served by a tram, streetcar or light rail.
	RouteTypeTram RouteType = 0
	// RouteTypeSubway is a route served by a subway or metro.
	RouteTypeSubway RouteType = 1
	// RouteTypeRail is a route served by a heavy rail system.
	RouteTypeRail RouteType = 2
	// RouteTypeBus is a route served by a bus.
	RouteTypeBus RouteType = 3
	// RouteTypeFerry is a route served by a ferry.
	RouteTypeFerry RouteType = 4
	// RouteTypeCableTram is a route served by a cable-driven tram system.
	RouteTypeCableTram RouteType = 5
	// RouteTypeAerialLift is a route served by an aerial lift system.
	RouteTypeAerialLift RouteType = 6
	// RouteTypeFunicular is a route served by a funicular system.
	RouteTypeFunicular RouteType = 7
	// RouteTypeTrolleybus is a route served by an electric bus on overhead wires.
	RouteTypeTrolleybus RouteType = 8
	// RouteTypeMonorail is a route served by a monorail.
	RouteTypeMonorail RouteType = 9
)

// String presents the caller with a human readable version of this enum.
func (rt RouteType) String() string {
	switch rt {
	case RouteTypeTram:
		return "Tram/Streetcar/Light Rail"
	case RouteTypeSubway:
		return "Subway"
	case RouteTypeRail:
		return "Rail"
	case RouteTypeBus:
		return "Bus"
	case RouteTypeFerry:
		return "Ferry"
	case RouteTypeCableTram:
		return "Cable Tram"
	case RouteTypeAerialLift:
		return "Aerial Lift"
	case RouteTypeFunicular:
		return "Funicular"
	case RouteTypeTrolleybus:
		return "Trolleybus"
	case RouteTypeMonorail:
		return "Monorail"
	default:
		return "Unknown"
	}
}

func parseRouteType(s string) (RouteType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "0"
	}

	switch s {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return RouteType(int(s[0] - '0')), nil
	default:
		return 0, fmt.Errorf("invalid route_type '%s'", s)
	}
}

// ContinuityPolicy indicates whether, and how, riders may board or alight
// away from fixed stops along a vehicle's path. Routes and stop times share
// this enum.
type ContinuityPolicy int

const (
	// ContinuityContinuous means continuous stopping is available.
	ContinuityContinuous ContinuityPolicy = 0
	// ContinuityNone means no continuous stopping.
	ContinuityNone ContinuityPolicy = 1
	// ContinuityPrearrange means continuous stopping must be arranged with the agency.
	ContinuityPrearrange ContinuityPolicy = 2
	// ContinuityCoordinateWithDriver means continuous stopping is coordinated with the driver.
	ContinuityCoordinateWithDriver ContinuityPolicy = 3
)

// String presents the caller with a human readable version of this enum.
func (cp ContinuityPolicy) String() string {
	switch cp {
	case ContinuityContinuous:
		return "Continuous"
	case ContinuityNone:
		return "Not Continuous"
	case ContinuityPrearrange:
		return "Prearrange"
	case ContinuityCoordinateWithDriver:
		return "Coordinate With Driver"
	default:
		return "Unknown"
	}
}

func parseOptionalContinuityPolicy(name, s string) (*ContinuityPolicy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	switch s {
	case "0", "1", "2", "3":
		policy := ContinuityPolicy(int(s[0] - '0'))
		return &policy, nil
	default:
		return nil, fmt.Errorf("invalid %s '%s'", name, s)
	}
}

// RouteName captures the feed requirement that a route carries a short name,
// a long name, or both; a route with neither cannot be constructed.
type RouteName interface {
	isRouteName()
}

// ShortName is a route name with only the short form present.
type ShortName string

// LongName is a route name with only the long form present.
type LongName string

// LongAndShortName is a route name with both forms present.
type LongAndShortName struct {
	Long  string
	Short string
}

func (ShortName) isRouteName()        {}
func (LongName) isRouteName()         {}
func (LongAndShortName) isRouteName() {}

// ErrRouteNameRequired is returned when a route record carries neither a
// short nor a long name.
var ErrRouteNameRequired = errors.New("route_short_name or route_long_name is required")

func newRouteName(short, long string) (RouteName, error) {
	switch {
	case short != "" && long != "":
		return LongAndShortName{Long: long, Short: short}, nil
	case short != "":
		return ShortName(short), nil
	case long != "":
		return LongName(long), nil
	default:
		return nil, ErrRouteNameRequired
	}
}

// Route represents a logical unit of service that visits a collection of
// stops. The physical instantiation of a route is a trip.
type Route struct {
	ID                string
	AgencyID          string
	Name              RouteName
	Description       string
	Type              RouteType
	URL               string
	Color             *colorful.Color
	TextColor         *colorful.Color
	SortOrder         *int
	ContinuousPickup  *ContinuityPolicy
	ContinuousDropOff *ContinuityPolicy
	NetworkID         string
}

// LongName returns the route's long name, if it has one.
func (r *Route) LongName() (string, bool) {
	switch n := r.Name.(type) {
	case LongName:
		return string(n), true
	case LongAndShortName:
		return n.Long, true
	}
	return "", false
}

// ShortName returns the route's short name, if it has one.
func (r *Route) ShortName() (string, bool) {
	switch n := r.Name.(type) {
	case ShortName:
		return string(n), true
	case LongAndShortName:
		return n.Short, true
	}
	return "", false
}

// DisplayName returns "Long (Short)" when both names are present, and
// whichever name exists otherwise.
func (r *Route) DisplayName() string {
	switch n := r.Name.(type) {
	case ShortName:
		return string(n)
	case LongName:
		return string(n)
	case LongAndShortName:
		return fmt.Sprintf("%s (%s)", n.Long, n.Short)
	}
	return r.ID
}

func (r *Route) clone() *Route {
	c := *r

	if r.Color != nil {
		val := *r.Color
		c.Color = &val
	}
	if r.TextColor != nil {
		val := *r.TextColor
		c.TextColor = &val
	}
	if r.SortOrder != nil {
		val := *r.SortOrder
		c.SortOrder = &val
	}
	if r.ContinuousPickup != nil {
		val := *r.ContinuousPickup
		c.ContinuousPickup = &val
	}
	if r.ContinuousDropOff != nil {
		val := *r.ContinuousDropOff
		c.ContinuousDropOff = &val
	}

	return &c
}

// rawRoute is the CSV shape of a routes.txt record.
type rawRoute struct {
	RouteID           string `csv:"route_id"`
	AgencyID          string `csv:"agency_id"`
	RouteShortName    string `csv:"route_short_name"`
	RouteLongName     string `csv:"route_long_name"`
	RouteDesc         string `csv:"route_desc"`
	RouteType         string `csv:"route_type"`
	RouteURL          string `csv:"route_url"`
	RouteColor        string `csv:"route_color"`
	RouteTextColor    string `csv:"route_text_color"`
	RouteSortOrder    string `csv:"route_sort_order"`
	ContinuousPickup  string `csv:"continuous_pickup"`
	ContinuousDropOff string `csv:"continuous_drop_off"`
	NetworkID         string `csv:"network_id"`
}

func newRoute(raw *rawRoute) (*Route, error) {
	id, err := requireField("route_id", raw.RouteID)
	if err != nil {
		return nil, err
	}

	name, err := newRouteName(optField(raw.RouteShortName), optField(raw.RouteLongName))
	if err != nil {
		return nil, err
	}

	routeType, err := parseRouteType(raw.RouteType)
	if err != nil {
		return nil, err
	}

	color, err := parseOptionalColor("route_color", raw.RouteColor)
	if err != nil {
		return nil, err
	}
	textColor, err := parseOptionalColor("route_text_color", raw.RouteTextColor)
	if err != nil {
		return nil, err
	}

	sortOrder, err := parseOptionalInt("route_sort_order", raw.RouteSortOrder)
	if err != nil {
		return nil, err
	}

	pickup, err := parseOptionalContinuityPolicy("continuous_pickup", raw.ContinuousPickup)
	if err != nil {
		return nil, err
	}
	dropOff, err := parseOptionalContinuityPolicy("continuous_drop_off", raw.ContinuousDropOff)
	if err != nil {
		return nil, err
	}

	return &Route{
		ID:                id,
		AgencyID:          optField(raw.AgencyID),
		Name:              name,
		Description:       optField(raw.RouteDesc),
		Type:              routeType,
		URL:               optField(raw.RouteURL),
		Color:             color,
		TextColor:         textColor,
		SortOrder:         sortOrder,
		ContinuousPickup:  pickup,
		ContinuousDropOff: dropOff,
		NetworkID:         optField(raw.NetworkID),
	}, nil
}

// parseOptionalColor parses the six hex digit color convention used by
// route_color and route_text_color. The feed omits the leading '#'.
func parseOptionalColor(name, s string) (*colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	color, err := colorful.Hex("#" + s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s '%s': %v", name, s, err)
	}
	return &color, nil
}
