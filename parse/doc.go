// Package parse turns the textual Kiwiland formats into core values:
// edge tokens, edge lists, dash-separated paths and whole network
// files.
//
// Grammar:
//
//   - Town:  one uppercase letter, "A".
//   - Edge:  two distinct towns and a positive distance, "AB5".
//   - Edges: comma-separated edge tokens, "AB5, BC4, CD8".
//   - Path:  dash-separated towns, "A-B-C". One town is already a
//     path; tracing needs two, but that is the graph's business.
//
// Whitespace around any token is ignored. Blank input to Edges is an
// empty network, not an error; a blank token between commas is.
//
// Network files:
//
// Network reads a file and picks the format by extension. ".yaml" and
// ".yml" decode a document of the shape
//
//	routes:
//	  - {from: A, to: B, distance: 5}
//
// and every other extension is plain text: edge tokens separated by
// commas or newlines, with '#' opening a comment line. Both formats
// pass through the same semantic checks, so a self-loop or a zero
// distance fails identically whichever file it came from.
//
// Errors:
//
//   - ErrEdgeSyntax  - token or town does not match the grammar.
//   - ErrSelfLoop    - edge starts and ends in the same town.
//   - ErrBadDistance - distance is not a positive int64.
//   - ErrPathSyntax  - path input empty or malformed.
//
// File-level failures (unreadable file, broken YAML) wrap the
// underlying error instead of a package sentinel, so errors.Is still
// reaches os.ErrNotExist and friends.
//
// parse validates shape, not meaning: duplicate routes are a graph
// concern and surface later, from core.NewGraph.
package parse
