// Package parse declares the sentinel errors of the input grammar.
package parse

import "errors"

// Sentinel errors for input parsing.
var (
	// ErrEdgeSyntax is returned when an edge token, or a town name in
	// a network file, does not match the grammar.
	ErrEdgeSyntax = errors.New("parse: malformed edge token")

	// ErrSelfLoop is returned when an edge starts and ends in the
	// same town.
	ErrSelfLoop = errors.New("parse: self-loop edge")

	// ErrBadDistance is returned when a distance is zero, negative or
	// does not fit in an int64.
	ErrBadDistance = errors.New("parse: distance must be a positive integer")

	// ErrPathSyntax is returned when a path input is empty or holds
	// anything but dash-separated towns.
	ErrPathSyntax = errors.New("parse: malformed path")
)
