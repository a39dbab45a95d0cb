// Package parse: token parsing for edges, edge lists and paths.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/kiwirail/core"
)

var (
	// edgeRE captures an edge token: two town letters and a distance,
	// as in "AB5".
	edgeRE = regexp.MustCompile(`^(\p{Lu})(\p{Lu})(\d+)$`)

	// townRE matches a bare town name: one uppercase letter.
	townRE = regexp.MustCompile(`^\p{Lu}$`)
)

// Edge parses one edge token such as "AB5" into a core.Edge.
// Surrounding whitespace is ignored.
func Edge(token string) (core.Edge, error) {
	m := edgeRE.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return core.Edge{}, fmt.Errorf("%w: %q", ErrEdgeSyntax, token)
	}

	d, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		// \d+ matched, so the only way here is int64 overflow.
		return core.Edge{}, fmt.Errorf("%w: %q", ErrBadDistance, m[3])
	}

	return validEdge(m[1], m[2], d)
}

// Edges parses a comma-separated edge list such as
// "AB5, BC4, CD8". Blank input yields an empty list; a blank token
// between commas is a syntax error.
func Edges(text string) ([]core.Edge, error) {
	if strings.TrimSpace(text) == "" {
		return []core.Edge{}, nil
	}

	tokens := strings.Split(text, ",")
	edges := make([]core.Edge, 0, len(tokens))
	for _, token := range tokens {
		e, err := Edge(token)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// Path parses a dash-separated town sequence such as "A-B-C".
// A single town is a valid path of one; empty input is not.
func Path(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrPathSyntax)
	}

	parts := strings.Split(text, "-")
	towns := make([]string, 0, len(parts))
	for _, part := range parts {
		town := strings.TrimSpace(part)
		if !townRE.MatchString(town) {
			return nil, fmt.Errorf("%w: bad town %q in %q", ErrPathSyntax, part, text)
		}
		towns = append(towns, town)
	}

	return towns, nil
}

// validEdge applies the semantic checks shared by every input format:
// town shape, no self-loops, positive distance.
func validEdge(from, to string, distance int64) (core.Edge, error) {
	if !townRE.MatchString(from) || !townRE.MatchString(to) {
		return core.Edge{}, fmt.Errorf("%w: towns %q, %q", ErrEdgeSyntax, from, to)
	}
	if from == to {
		return core.Edge{}, fmt.Errorf("%w: %s→%s", ErrSelfLoop, from, to)
	}
	if distance < 1 {
		return core.Edge{}, fmt.Errorf("%w: got %d", ErrBadDistance, distance)
	}

	return core.Edge{From: from, To: to, Distance: distance}, nil
}
