package core

import "strings"

// Route is an immutable town sequence with its cumulative distance.
//
// Routes come out of Trace, trips.Trips and shortest.ShortestRoute;
// callers never mutate one. AddStop derives a new Route and leaves the
// receiver (and every Route previously derived from it) untouched, so
// search packages can branch freely from a shared prefix.
//
// The zero Route is empty: no towns, distance 0.
type Route struct {
	towns    []string
	distance int64
}

// NewRoute builds a Route from at least one town and a non-negative
// cumulative distance. The towns slice is copied, never retained.
func NewRoute(distance int64, towns ...string) (Route, error) {
	if len(towns) == 0 {
		return Route{}, ErrEmptyRoute
	}
	if distance < 0 {
		return Route{}, ErrNegativeDistance
	}

	stops := make([]string, len(towns))
	copy(stops, towns)

	return Route{towns: stops, distance: distance}, nil
}

// Origin returns the first town, or "" for the zero Route.
func (r Route) Origin() string {
	if len(r.towns) == 0 {
		return ""
	}
	return r.towns[0]
}

// Destination returns the last town, or "" for the zero Route.
func (r Route) Destination() string {
	if len(r.towns) == 0 {
		return ""
	}
	return r.towns[len(r.towns)-1]
}

// NumStops counts the hops travelled: towns minus one. A single-town
// route has zero stops.
func (r Route) NumStops() int {
	if len(r.towns) == 0 {
		return 0
	}
	return len(r.towns) - 1
}

// Distance returns the cumulative distance of the route.
func (r Route) Distance() int64 {
	return r.distance
}

// Towns returns a copy of the town sequence; mutating it does not
// affect the Route.
func (r Route) Towns() []string {
	out := make([]string, len(r.towns))
	copy(out, r.towns)

	return out
}

// AddStop derives a new Route extended by one town and one hop
// distance. The full-slice expression pins capacity to length, forcing
// append to reallocate; two routes branching off the same prefix can
// therefore never stomp each other's backing array.
func (r Route) AddStop(town string, distance int64) Route {
	towns := append(r.towns[:len(r.towns):len(r.towns)], town)

	return Route{towns: towns, distance: r.distance + distance}
}

// String renders the route as its towns joined by '-': "A-B-C".
func (r Route) String() string {
	return strings.Join(r.towns, "-")
}
