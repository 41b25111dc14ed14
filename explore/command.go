package explore

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// InvalidCommandError is returned when a segment is neither a known action
// nor an entity id at its dispatch level.
type InvalidCommandError struct {
	Command string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command: %s", e.Command)
}

// SubcommandRequiredError is returned when a collection name is the final
// segment of a command; navigating into a collection is not a terminal
// action, so something must follow.
type SubcommandRequiredError struct {
	Collection string
}

func (e *SubcommandRequiredError) Error() string {
	return fmt.Sprintf("%s subcommand required", e.Collection)
}

// CollectionError wraps a failure from a collection dispatcher with the
// collection that produced it.
type CollectionError struct {
	Collection string
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("error interpreting %s subcommand: %v", e.Collection, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CollectionError) Unwrap() error {
	return e.Err
}

// GetEntityError is returned when projecting the schedule down to a selected
// entity fails.
type GetEntityError struct {
	Kind string
	ID   string
	Err  error
}

func (e *GetEntityError) Error() string {
	return fmt.Sprintf("error getting %s %s: %v", e.Kind, e.ID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *GetEntityError) Unwrap() error {
	return e.Err
}

// ExecError is returned when the remainder of a command fails against the
// child node an entity segment navigated into.
type ExecError struct {
	Kind string
	ID   string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("error executing command for %s %s: %v", e.Kind, e.ID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExecError) Unwrap() error {
	return e.Err
}

const (
	kindStop  = "stop"
	kindRoute = "route"
	kindTrip  = "trip"
)

// Interpreter executes dot-delimited navigation commands against a Node.
// Reports go to out as plain text; errors are returned, never printed, so
// the outermost caller decides how to render them.
type Interpreter struct {
	out io.Writer
}

// NewInterpreter creates an interpreter writing reports to out.
func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{
		out: out,
	}
}

// Interpret executes one input line against the given node. The line is
// split into its dot-separated segments once, up front; dispatch then walks
// the segment list.
func (i *Interpreter) Interpret(node *Node, line string) error {
	return i.dispatch(node, strings.Split(line, "."))
}

func (i *Interpreter) dispatch(node *Node, segments []string) error {
	if len(segments) == 0 {
		return &InvalidCommandError{}
	}

	first, rest := segments[0], segments[1:]
	switch first {
	case "info":
		fmt.Fprintln(i.out, node.Schedule)
		return nil
	case "stops":
		if len(rest) == 0 {
			return &SubcommandRequiredError{Collection: "stops"}
		}
		if err := i.dispatchStops(node, rest); err != nil {
			return &CollectionError{Collection: "stops", Err: err}
		}
		return nil
	case "routes":
		if len(rest) == 0 {
			return &SubcommandRequiredError{Collection: "routes"}
		}
		if err := i.dispatchRoutes(node, rest); err != nil {
			return &CollectionError{Collection: "routes", Err: err}
		}
		return nil
	case "trips":
		if len(rest) == 0 {
			return &SubcommandRequiredError{Collection: "trips"}
		}
		if err := i.dispatchTrips(node, rest); err != nil {
			return &CollectionError{Collection: "trips", Err: err}
		}
		return nil
	default:
		return &InvalidCommandError{Command: strings.Join(segments, ".")}
	}
}

func (i *Interpreter) dispatchStops(node *Node, segments []string) error {
	first, rest := segments[0], segments[1:]
	switch first {
	case "list":
		ids := make([]string, 0, len(node.Schedule.Stops))
		for id := range node.Schedule.Stops {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			if name, ok := node.Schedule.Stops[id].Name(); ok {
				fmt.Fprintf(i.out, "%s: %s\n", id, name)
			} else {
				fmt.Fprintf(i.out, "%s: Unnamed Location\n", id)
			}
		}
		return nil
	case "info":
		fmt.Fprintf(i.out, "Stops: %d\n", len(node.Schedule.Stops))
		return nil
	}

	stop, ok := node.Schedule.Stops[first]
	if !ok {
		return &InvalidCommandError{Command: strings.Join(segments, ".")}
	}

	child, err := node.StopChild(stop.ID)
	if err != nil {
		return &GetEntityError{Kind: kindStop, ID: stop.ID, Err: err}
	}
	if err := i.dispatch(child, rest); err != nil {
		return &ExecError{Kind: kindStop, ID: stop.ID, Err: err}
	}
	return nil
}

func (i *Interpreter) dispatchRoutes(node *Node, segments []string) error {
	first, rest := segments[0], segments[1:]
	switch first {
	case "list":
		ids := make([]string, 0, len(node.Schedule.Routes))
		for id := range node.Schedule.Routes {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			fmt.Fprintf(i.out, "%s: %s\n", id, node.Schedule.Routes[id].DisplayName())
		}
		return nil
	case "info":
		fmt.Fprintf(i.out, "Routes: %d\n", len(node.Schedule.Routes))
		return nil
	}

	route, ok := node.Schedule.Routes[first]
	if !ok {
		return &InvalidCommandError{Command: strings.Join(segments, ".")}
	}

	child, err := node.RouteChild(route.ID)
	if err != nil {
		return &GetEntityError{Kind: kindRoute, ID: route.ID, Err: err}
	}
	if err := i.dispatch(child, rest); err != nil {
		return &ExecError{Kind: kindRoute, ID: route.ID, Err: err}
	}
	return nil
}

func (i *Interpreter) dispatchTrips(node *Node, segments []string) error {
	first, rest := segments[0], segments[1:]
	switch first {
	case "list":
		ids := make([]string, 0, len(node.Schedule.Trips))
		for id := range node.Schedule.Trips {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			if trip := node.Schedule.Trips[id]; trip.Headsign != "" {
				fmt.Fprintf(i.out, "%s: %s\n", id, trip.Headsign)
			} else {
				fmt.Fprintln(i.out, id)
			}
		}
		return nil
	case "info":
		fmt.Fprintf(i.out, "Trips: %d\n", len(node.Schedule.Trips))
		return nil
	}

	trip, ok := node.Schedule.Trips[first]
	if !ok {
		return &InvalidCommandError{Command: strings.Join(segments, ".")}
	}

	child, err := node.TripChild(trip.ID)
	if err != nil {
		return &GetEntityError{Kind: kindTrip, ID: trip.ID, Err: err}
	}
	if err := i.dispatch(child, rest); err != nil {
		return &ExecError{Kind: kindTrip, ID: trip.ID, Err: err}
	}
	return nil
}
