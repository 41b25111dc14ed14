// Package explore implements interactive, dot-addressed navigation over a
// loaded GTFS schedule. Each navigation step projects the current schedule
// down to the subset reachable from the selected entity, so every position
// in the tree holds a consistent relational view of the feed.
package explore

import (
	"github.com/rmrobinson/gtfs-explore/gtfs"
)

// Node is one position in the navigation tree. The root node holds the whole
// loaded feed; child nodes hold the projection reachable from the entity
// they were selected by. Nodes are immutable after construction, and the
// parent link is a read-only back-reference.
type Node struct {
	Schedule *gtfs.Schedule
	Parent   *Node
	ID       string
	Name     string
}

// NewRootNode wraps a freshly loaded schedule as the navigation root.
func NewRootNode(schedule *gtfs.Schedule) *Node {
	return &Node{
		Schedule: schedule,
	}
}

// RouteChild projects the node's schedule down to the given route and wraps
// the result as a child of this node.
func (n *Node) RouteChild(routeID string) (*Node, error) {
	projected, err := n.Schedule.ProjectByRoute(routeID)
	if err != nil {
		return nil, err
	}

	name := ""
	if route, ok := n.Schedule.Routes[routeID]; ok {
		name = route.DisplayName()
	}

	return &Node{
		Schedule: projected,
		Parent:   n,
		ID:       routeID,
		Name:     name,
	}, nil
}

// StopChild projects the node's schedule down to the given stop and its
// descendants and wraps the result as a child of this node.
func (n *Node) StopChild(stopID string) (*Node, error) {
	projected, err := n.Schedule.ProjectByStop(stopID)
	if err != nil {
		return nil, err
	}

	name := ""
	if stop, ok := n.Schedule.Stops[stopID]; ok {
		name, _ = stop.Name()
	}

	return &Node{
		Schedule: projected,
		Parent:   n,
		ID:       stopID,
		Name:     name,
	}, nil
}

// TripChild projects the node's schedule down to the given trip and wraps
// the result as a child of this node.
func (n *Node) TripChild(tripID string) (*Node, error) {
	projected, err := n.Schedule.ProjectByTrip(tripID)
	if err != nil {
		return nil, err
	}

	name := ""
	if trip, ok := n.Schedule.Trips[tripID]; ok {
		name = trip.Headsign
	}

	return &Node{
		Schedule: projected,
		Parent:   n,
		ID:       tripID,
		Name:     name,
	}, nil
}
